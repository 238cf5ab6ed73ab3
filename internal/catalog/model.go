package catalog

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Service is a category of work the studio offers ("Chụp Ảnh Sự Kiện",
// "Quay Phim Sự Kiện", ...). EventOrder is the landing-page order manifest
// for events in this category, stored as a jsonb array of event IDs.
type Service struct {
	ID          string                      `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string                      `gorm:"not null;uniqueIndex" json:"name"`
	Description *string                     `json:"description"`
	EventOrder  datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"eventOrder"`
	CreatedAt   time.Time                   `json:"createdAt"`
	UpdatedAt   time.Time                   `json:"updatedAt"`
}

func (Service) TableName() string { return "services" }

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// Manifest returns the service's event order as an OrderManifest.
func (s *Service) Manifest() OrderManifest {
	return OrderManifest(s.EventOrder).Normalize()
}

type CreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

type UpdateRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	EventOrder  *[]string `json:"eventOrder"`
}
