package dashboard

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/fproduction/studio-backend/internal/catalog"
	"github.com/fproduction/studio-backend/internal/contact"
	"github.com/fproduction/studio-backend/internal/event"
	"github.com/fproduction/studio-backend/internal/image"
	"github.com/fproduction/studio-backend/internal/video"
)

// Summary is the admin dashboard headline counts.
type Summary struct {
	Events        int64 `json:"events"`
	Images        int64 `json:"images"`
	Videos        int64 `json:"videos"`
	Services      int64 `json:"services"`
	Contacts      int64 `json:"contacts"`
	ContactsNew   int64 `json:"contactsNew"`
	LandingImages int64 `json:"landingImages"`
	LandingVideos int64 `json:"landingVideos"`
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Summarize runs the eight counts concurrently and fails on the first error.
func (s *Service) Summarize(ctx context.Context) (*Summary, error) {
	var sum Summary
	g, ctx := errgroup.WithContext(ctx)

	count := func(dst *int64, model interface{}, conds ...interface{}) {
		g.Go(func() error {
			q := s.db.WithContext(ctx).Model(model)
			if len(conds) > 0 {
				q = q.Where(conds[0], conds[1:]...)
			}
			return q.Count(dst).Error
		})
	}

	count(&sum.Events, &event.Event{})
	count(&sum.Images, &image.Image{})
	count(&sum.Videos, &video.Video{})
	count(&sum.Services, &catalog.Service{})
	count(&sum.Contacts, &contact.Contact{})
	count(&sum.ContactsNew, &contact.Contact{}, "status = ?", contact.StatusNew)
	count(&sum.LandingImages, &image.Image{}, "show_on_landing = ?", true)
	count(&sum.LandingVideos, &video.Video{}, "show_on_landing = ?", true)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &sum, nil
}
