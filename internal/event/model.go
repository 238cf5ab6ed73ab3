package event

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fproduction/studio-backend/internal/image"
	"github.com/fproduction/studio-backend/internal/video"
)

// Event is a shoot or production job: a wedding, a corporate event, a
// commercial. It owns the images and videos captured for it through the
// event_images and event_videos join tables.
type Event struct {
	ID          string        `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string        `gorm:"not null" json:"title"`
	Client      *string       `json:"client"`
	Place       *string       `json:"place"`
	Description *string       `json:"description"`
	StartDate   *time.Time    `json:"startDate"`
	EndDate     *time.Time    `json:"endDate"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
	Images      []image.Image `gorm:"many2many:event_images;joinForeignKey:EventID;joinReferences:ImageID" json:"images,omitempty"`
	Videos      []video.Video `gorm:"many2many:event_videos;joinForeignKey:EventID;joinReferences:VideoID" json:"videos,omitempty"`
}

func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type CreateRequest struct {
	Title       string     `json:"title" binding:"required"`
	Client      *string    `json:"client"`
	Place       *string    `json:"place"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	ImageIDs    []string   `json:"imageIds"`
	VideoIDs    []string   `json:"videoIds"`
}

type UpdateRequest struct {
	Title       *string    `json:"title"`
	Client      *string    `json:"client"`
	Place       *string    `json:"place"`
	Description *string    `json:"description"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
	ImageIDs    *[]string  `json:"imageIds"`
	VideoIDs    *[]string  `json:"videoIds"`
}

// Response augments an event with media counts for the admin list view.
type Response struct {
	Event
	ImageCount int `json:"imageCount"`
	VideoCount int `json:"videoCount"`
}
