package contact

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, c *Contact) error
	ListPaginated(ctx context.Context, page, limit int, status string) ([]Contact, int64, error)
	ListAll(ctx context.Context, status string) ([]Contact, error)
	GetByID(ctx context.Context, id string) (*Contact, error)
	Update(ctx context.Context, c *Contact, fields map[string]interface{}) error
	CountByStatus(ctx context.Context, status string) (int64, error)
	Count(ctx context.Context) (int64, error)
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, c *Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *gormRepository) ListPaginated(ctx context.Context, page, limit int, status string) ([]Contact, int64, error) {
	q := r.db.WithContext(ctx).Model(&Contact{})
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var contacts []Contact
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&contacts).Error
	return contacts, total, err
}

func (r *gormRepository) ListAll(ctx context.Context, status string) ([]Contact, error) {
	q := r.db.WithContext(ctx)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var contacts []Contact
	err := q.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

func (r *gormRepository) GetByID(ctx context.Context, id string) (*Contact, error) {
	var c Contact
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *gormRepository) Update(ctx context.Context, c *Contact, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(c).Updates(fields).Error
}

func (r *gormRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Contact{}).Where("status = ?", status).Count(&n).Error
	return n, err
}

func (r *gormRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Contact{}).Count(&n).Error
	return n, err
}
