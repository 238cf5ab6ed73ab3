package catalog

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// EventRef is the id/title pair the admin ordering UI shows per manifest entry.
type EventRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

func (EventRef) TableName() string { return "events" }

type Repository interface {
	ListAll(ctx context.Context) ([]Service, error)
	ListEventRefs(ctx context.Context, ids []string) ([]EventRef, error)
	GetByID(ctx context.Context, id string) (*Service, error)
	FindByName(ctx context.Context, name string) (*Service, error)
	Create(ctx context.Context, s *Service) error
	Update(ctx context.Context, s *Service, fields map[string]interface{}) error
	Delete(ctx context.Context, s *Service) error
	StripEventFromAll(ctx context.Context, eventID string) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) ListAll(ctx context.Context) ([]Service, error) {
	var services []Service
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&services).Error
	return services, err
}

func (r *gormRepository) ListEventRefs(ctx context.Context, ids []string) ([]EventRef, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var refs []EventRef
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&refs).Error
	return refs, err
}

func (r *gormRepository) GetByID(ctx context.Context, id string) (*Service, error) {
	var s Service
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *gormRepository) FindByName(ctx context.Context, name string) (*Service, error) {
	var s Service
	if err := r.db.WithContext(ctx).Where("LOWER(name) = LOWER(?)", name).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *gormRepository) Create(ctx context.Context, s *Service) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *gormRepository) Update(ctx context.Context, s *Service, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(s).Updates(fields).Error
}

func (r *gormRepository) Delete(ctx context.Context, s *Service) error {
	return r.db.WithContext(ctx).Delete(s).Error
}

// StripEventFromAll rewrites every service manifest that references eventID.
// Runs in a transaction so a half-stripped catalog is never visible.
func (r *gormRepository) StripEventFromAll(ctx context.Context, eventID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var services []Service
		if err := tx.Find(&services).Error; err != nil {
			return err
		}
		for i := range services {
			manifest := services[i].Manifest()
			if !manifest.Contains(eventID) {
				continue
			}
			stripped := manifest.Without(eventID)
			err := tx.Model(&services[i]).
				Update("event_order", datatypes.JSONSlice[string](stripped)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
