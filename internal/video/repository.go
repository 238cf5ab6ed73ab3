package video

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListRecent(ctx context.Context, limit int) ([]Video, error)
	GetByID(ctx context.Context, id string) (*Video, error)
	Create(ctx context.Context, v *Video) error
	Update(ctx context.Context, v *Video, fields map[string]interface{}) error
	ReplaceEvents(ctx context.Context, v *Video, eventIDs []string) error
	Delete(ctx context.Context, v *Video) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListRecent(ctx context.Context, limit int) ([]Video, error) {
	var videos []Video
	err := r.db.WithContext(ctx).
		Preload("Events").
		Order("created_at DESC").
		Limit(limit).
		Find(&videos).Error
	return videos, err
}

func (r *gormRepository) GetByID(ctx context.Context, id string) (*Video, error) {
	var v Video
	if err := r.db.WithContext(ctx).Preload("Events").First(&v, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *gormRepository) Create(ctx context.Context, v *Video) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *gormRepository) Update(ctx context.Context, v *Video, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(v).Updates(fields).Error
}

func (r *gormRepository) ReplaceEvents(ctx context.Context, v *Video, eventIDs []string) error {
	refs := make([]EventSummary, 0, len(eventIDs))
	for _, id := range eventIDs {
		refs = append(refs, EventSummary{ID: id})
	}
	return r.db.WithContext(ctx).Model(v).Association("Events").Replace(&refs)
}

func (r *gormRepository) Delete(ctx context.Context, v *Video) error {
	return r.db.WithContext(ctx).Select("Events").Delete(v).Error
}
