package landing

import (
	"context"

	"gorm.io/gorm"

	"github.com/fproduction/studio-backend/internal/catalog"
	"github.com/fproduction/studio-backend/internal/image"
)

// EventMedia is an event together with the images it may show on the
// landing page, newest image first.
type EventMedia struct {
	ID     string
	Title  string
	Client *string
	Images []image.Image
}

type Repository interface {
	FindServiceByName(ctx context.Context, name string) (*catalog.Service, error)
	FindEventsWithLandingImages(ctx context.Context, eventIDs []string) ([]EventMedia, error)
}

type gormRepository struct {
	db       *gorm.DB
	services catalog.Repository
}

func NewRepository(db *gorm.DB, services catalog.Repository) Repository {
	return &gormRepository{db: db, services: services}
}

func (r *gormRepository) FindServiceByName(ctx context.Context, name string) (*catalog.Service, error) {
	return r.services.FindByName(ctx, name)
}

type eventRow struct {
	ID     string
	Title  string
	Client *string
}

func (eventRow) TableName() string { return "events" }

func (r *gormRepository) FindEventsWithLandingImages(ctx context.Context, eventIDs []string) ([]EventMedia, error) {
	if len(eventIDs) == 0 {
		return nil, nil
	}

	var rows []eventRow
	err := r.db.WithContext(ctx).Where("id IN ?", eventIDs).Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]EventMedia, 0, len(rows))
	for _, row := range rows {
		var images []image.Image
		err := r.db.WithContext(ctx).
			Joins("JOIN event_images ON event_images.image_id = images.id").
			Where("event_images.event_id = ? AND images.show_on_landing = ?", row.ID, true).
			Order("images.created_at DESC").
			Find(&images).Error
		if err != nil {
			return nil, err
		}
		out = append(out, EventMedia{ID: row.ID, Title: row.Title, Client: row.Client, Images: images})
	}
	return out, nil
}
