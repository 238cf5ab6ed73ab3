package contact

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/fproduction/studio-backend/internal/notification"
	"github.com/fproduction/studio-backend/internal/revalidate"
)

var (
	ErrMissingName   = errors.New("full name is required")
	ErrInvalidPhone  = errors.New("invalid phone number")
	ErrInvalidStatus = errors.New("invalid contact status")
)

type Service struct {
	repo     Repository
	notify   notification.Service
	notifier revalidate.Notifier
}

func NewService(repo Repository, notify notification.Service, notifier revalidate.Notifier) *Service {
	return &Service{repo: repo, notify: notify, notifier: notifier}
}

// Submit records a public inquiry and sends the notification email.
// The email is best effort: its outcome is stored on the row but never
// fails the submission.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*Contact, error) {
	fullName := strings.TrimSpace(req.FullName)
	if fullName == "" {
		return nil, ErrMissingName
	}
	phone := strings.TrimSpace(req.Phone)
	if !IsValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	c := &Contact{
		FullName: fullName,
		Phone:    phone,
		Address:  req.Address,
		Content:  req.Content,
		Status:   StatusNew,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	n := notification.ContactNotification{
		ReferenceID: c.ReferenceID,
		FullName:    c.FullName,
		Phone:       c.Phone,
		SubmittedAt: c.CreatedAt.Format("02/01/2006 15:04"),
	}
	if c.Address != nil {
		n.Address = *c.Address
	}
	if c.Content != nil {
		n.Content = *c.Content
	}

	fields := map[string]interface{}{"email_sent": true}
	if err := s.notify.NotifyNewContact(n); err != nil {
		log.Printf("contact %s: notification email failed: %v", c.ReferenceID, err)
		msg := err.Error()
		fields = map[string]interface{}{"email_sent": false, "email_error": msg}
	}
	if err := s.repo.Update(ctx, c, fields); err != nil {
		log.Printf("contact %s: failed to record email outcome: %v", c.ReferenceID, err)
	}

	return c, nil
}

func (s *Service) List(ctx context.Context, page, limit int, status string) ([]Contact, int64, error) {
	if status != "" && !IsValidStatus(status) {
		return nil, 0, ErrInvalidStatus
	}
	return s.repo.ListPaginated(ctx, page, limit, status)
}

func (s *Service) Get(ctx context.Context, id string) (*Contact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (*Contact, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if req.Status != nil {
		if !IsValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		fields["status"] = *req.Status
	}
	if req.Note != nil {
		fields["note"] = *req.Note
	}
	if len(fields) > 0 {
		if err := s.repo.Update(ctx, c, fields); err != nil {
			return nil, err
		}
	}

	s.notifier.PathStale(ctx, "/admin/contacts", "contact updated")
	return s.repo.GetByID(ctx, id)
}
