package event

import (
	"context"

	"gorm.io/gorm"

	"github.com/fproduction/studio-backend/internal/image"
	"github.com/fproduction/studio-backend/internal/video"
)

type Repository interface {
	ListPaginated(ctx context.Context, page, limit int, search string) ([]Event, int64, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, e *Event, fields map[string]interface{}) error
	ReplaceImages(ctx context.Context, e *Event, imageIDs []string) error
	ReplaceVideos(ctx context.Context, e *Event, videoIDs []string) error
	Delete(ctx context.Context, e *Event) error
	Count(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListPaginated(ctx context.Context, page, limit int, search string) ([]Event, int64, error) {
	q := r.db.WithContext(ctx).Model(&Event{})
	if search != "" {
		like := "%" + search + "%"
		q = q.Where("title ILIKE ? OR client ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var events []Event
	err := q.Preload("Images").Preload("Videos").
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&events).Error
	return events, total, err
}

func (r *gormRepository) GetByID(ctx context.Context, id string) (*Event, error) {
	var e Event
	err := r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("images.created_at DESC") }).
		Preload("Videos").
		First(&e, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *gormRepository) Create(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Omit("Images", "Videos").Create(e).Error
}

func (r *gormRepository) Update(ctx context.Context, e *Event, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(e).Updates(fields).Error
}

func (r *gormRepository) ReplaceImages(ctx context.Context, e *Event, imageIDs []string) error {
	refs := make([]image.Image, 0, len(imageIDs))
	for _, id := range imageIDs {
		refs = append(refs, image.Image{ID: id})
	}
	return r.db.WithContext(ctx).Model(e).Association("Images").Replace(&refs)
}

func (r *gormRepository) ReplaceVideos(ctx context.Context, e *Event, videoIDs []string) error {
	refs := make([]video.Video, 0, len(videoIDs))
	for _, id := range videoIDs {
		refs = append(refs, video.Video{ID: id})
	}
	return r.db.WithContext(ctx).Model(e).Association("Videos").Replace(&refs)
}

// Delete removes the event and its join rows. The images and videos
// themselves are kept; they may belong to other events.
func (r *gormRepository) Delete(ctx context.Context, e *Event) error {
	return r.db.WithContext(ctx).Select("Images", "Videos").Delete(e).Error
}

func (r *gormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Event{}).Count(&n).Error
	return n, err
}
