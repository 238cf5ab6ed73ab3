package image

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListPaginated(ctx context.Context, page, limit int, sortBy, sortOrder string) ([]Image, int64, error)
	ListRecent(ctx context.Context, limit int) ([]Image, error)
	GetByID(ctx context.Context, id string) (*Image, error)
	CreateBatch(ctx context.Context, images []*Image) error
	Update(ctx context.Context, img *Image, fields map[string]interface{}) error
	ReplaceEvents(ctx context.Context, img *Image, eventIDs []string) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) ListPaginated(ctx context.Context, page, limit int, sortBy, sortOrder string) ([]Image, int64, error) {
	var images []Image
	var total int64

	if err := r.db.WithContext(ctx).Model(&Image{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("Events").
		Order(sortBy + " " + sortOrder).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&images).Error
	return images, total, err
}

func (r *repository) ListRecent(ctx context.Context, limit int) ([]Image, error) {
	var images []Image
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&images).Error
	return images, err
}

func (r *repository) GetByID(ctx context.Context, id string) (*Image, error) {
	var img Image
	err := r.db.WithContext(ctx).Preload("Events").First(&img, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// CreateBatch inserts all rows atomically; one bad row rolls back the lot.
func (r *repository) CreateBatch(ctx context.Context, images []*Image) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, img := range images {
			if err := tx.Create(img).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) Update(ctx context.Context, img *Image, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(img).Updates(fields).Error
}

func (r *repository) ReplaceEvents(ctx context.Context, img *Image, eventIDs []string) error {
	refs := make([]EventSummary, 0, len(eventIDs))
	for _, id := range eventIDs {
		refs = append(refs, EventSummary{ID: id})
	}
	return r.db.WithContext(ctx).Model(img).Association("Events").Replace(&refs)
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Select("Events").Delete(&Image{ID: id}).Error
}
