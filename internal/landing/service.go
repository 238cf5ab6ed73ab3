package landing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/fproduction/studio-backend/internal/catalog"
)

// Internal reasons why a resolve produced an empty feed. Callers log them;
// the public payload is the same empty result either way.
const (
	ReasonServiceNotFound = "service_not_found"
	ReasonNoEvents        = "no_events_in_order"
)

const DefaultLimit = 6

// Query selects one page of the landing feed. Either FilterType (a frontend
// filter label) or ServiceName (an exact catalog name) must be set;
// ServiceName wins when both are present.
type Query struct {
	FilterType  string
	ServiceName string
	Page        int
	Limit       int
}

// FeedItem is one landing-page image with its owning event attached. Type
// is always "image"; the frontend mixes the feed with video cards.
type FeedItem struct {
	ID        string     `json:"id"`
	URL       string     `json:"url"`
	S3Key     string     `json:"s3Key"`
	Title     *string    `json:"title"`
	Format    *string    `json:"format"`
	Width     *int       `json:"width"`
	Height    *int       `json:"height"`
	Type      string     `json:"type"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	Event     EventBrief `json:"event"`
}

type EventBrief struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Client *string `json:"client,omitempty"`
}

// ServiceBrief names the catalog service the feed was resolved against.
type ServiceBrief struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Result is one resolved page of the landing feed. Note carries the
// human-readable explanation for an empty feed; Reason is its stable tag
// for logs.
type Result struct {
	Items   []FeedItem
	Service *ServiceBrief
	Total   int
	Page    int
	Limit   int
	HasMore bool
	Reason  string // empty when the feed resolved normally
	Note    string
}

// Service resolves landing feed pages. It is read-only: resolving a page
// never mutates anything, so repeated calls with the same arguments return
// the same result for unchanged data.
type Service struct {
	repo    Repository
	filters FilterMap
	urlFor  func(s3Key string) string
}

func NewService(repo Repository, filters FilterMap, urlFor func(string) string) *Service {
	return &Service{repo: repo, filters: filters, urlFor: urlFor}
}

// Filters exposes the known filter labels for error payloads.
func (s *Service) Filters() []string {
	return s.filters.Available()
}

// ErrUnknownFilter is returned when the query names neither a known filter
// label nor an explicit service.
var ErrUnknownFilter = errors.New("unknown landing filter")

// Resolve builds one page of the landing feed.
//
// The target service is looked up case-insensitively; its event order
// manifest decides which events contribute images and in what order.
// Within an event, images run newest first. Manifest entries pointing at
// deleted events are skipped. Pagination slices the flattened list; page
// and limit fall back to 1 and DefaultLimit when out of range.
func (s *Service) Resolve(ctx context.Context, q Query) (*Result, error) {
	serviceName := q.ServiceName
	if serviceName == "" {
		name, ok := s.filters.Resolve(q.FilterType)
		if !ok {
			return nil, ErrUnknownFilter
		}
		serviceName = name
	}
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	svc, err := s.repo.FindServiceByName(ctx, serviceName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("landing: no service named %q (filter %q)", serviceName, q.FilterType)
			out := emptyResult(page, limit, ReasonServiceNotFound)
			out.Note = fmt.Sprintf("Không tìm thấy service %q", serviceName)
			return out, nil
		}
		return nil, err
	}
	brief := &ServiceBrief{ID: svc.ID, Name: svc.Name}

	manifest := svc.Manifest()
	if len(manifest) == 0 {
		out := emptyResult(page, limit, ReasonNoEvents)
		out.Service = brief
		out.Note = "Service chưa có event nào được liên kết"
		return out, nil
	}

	events, err := s.repo.FindEventsWithLandingImages(ctx, []string(manifest))
	if err != nil {
		return nil, err
	}

	ordered := catalog.SortByManifest(events, manifest, func(e EventMedia) string { return e.ID })

	items := make([]FeedItem, 0)
	for _, e := range ordered {
		eventBrief := EventBrief{ID: e.ID, Title: e.Title, Client: e.Client}
		for _, img := range e.Images {
			items = append(items, FeedItem{
				ID:        img.ID,
				URL:       s.urlFor(img.S3Key),
				S3Key:     img.S3Key,
				Title:     img.Title,
				Format:    img.Format,
				Width:     img.Width,
				Height:    img.Height,
				Type:      "image",
				CreatedAt: img.CreatedAt,
				UpdatedAt: img.UpdatedAt,
				Event:     eventBrief,
			})
		}
	}

	total := len(items)
	start := (page - 1) * limit
	end := page * limit
	if start > total {
		start = total
	}
	pageItems := items[start:min(end, total)]

	return &Result{
		Items:   pageItems,
		Service: brief,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasMore: end < total,
	}, nil
}

func emptyResult(page, limit int, reason string) *Result {
	return &Result{Items: []FeedItem{}, Page: page, Limit: limit, Reason: reason}
}
