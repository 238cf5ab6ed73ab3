package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/segmentio/kafka-go"
)

// Worker consumes stale-path events and calls the frontend's revalidation
// webhook. Failures are logged and the event is dropped; the next mutation
// of the same page produces a fresh event anyway.
type Worker struct {
	reader   *kafka.Reader
	client   *http.Client
	endpoint string
	secret   string
}

func NewWorker(brokers []string, topic, frontendURL, secret string) *Worker {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  "studio-backend-revalidator",
		MinBytes: 1,
		MaxBytes: 1e6,
	})
	return &Worker{
		reader:   reader,
		client:   &http.Client{Timeout: 10 * time.Second},
		endpoint: frontendURL + "/api/revalidate",
		secret:   secret,
	}
}

// Start blocks reading events until ctx is cancelled.
func (w *Worker) Start(ctx context.Context) {
	log.Printf("revalidate worker started, webhook %s", w.endpoint)
	for {
		msg, err := w.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("revalidate worker: read message: %v", err)
			continue
		}

		var event StaleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("revalidate worker: bad payload: %v", err)
			continue
		}

		if err := w.callWebhook(ctx, event.Path); err != nil {
			log.Printf("revalidate worker: %s: %v", event.Path, err)
		}
	}
}

func (w *Worker) callWebhook(ctx context.Context, path string) error {
	body, _ := json.Marshal(map[string]string{"path": path})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if w.secret != "" {
		req.Header.Set("Authorization", "Bearer "+w.secret)
	}

	resp, err := w.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned %d", resp.StatusCode)
	}
	return nil
}

func (w *Worker) Close() error {
	return w.reader.Close()
}
