package image

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image is a photo stored in S3 and shown in admin galleries and,
// when ShowOnLanding is set, in the public landing feed.
type Image struct {
	ID            string    `gorm:"type:uuid;primaryKey" json:"id"`
	Title         *string   `gorm:"size:255" json:"title"`
	Format        *string   `gorm:"size:20" json:"format"`
	S3Key         string    `gorm:"size:512;uniqueIndex;not null" json:"s3Key"`
	FileSize      *int64    `json:"fileSize,omitempty"`
	Width         *int      `json:"width,omitempty"`
	Height        *int      `json:"height,omitempty"`
	ShowOnLanding bool      `gorm:"default:true;index" json:"showOnLanding"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	Events []EventSummary `gorm:"many2many:event_images;joinForeignKey:ImageID;joinReferences:EventID" json:"events,omitempty"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// EventSummary is a read-only slice of the events table used for the
// admin gallery's association display.
type EventSummary struct {
	ID     string  `gorm:"type:uuid;primaryKey" json:"id"`
	Title  string  `json:"title"`
	Client *string `json:"client,omitempty"`
}

func (EventSummary) TableName() string {
	return "events"
}

// BatchItem is one uploaded file the client reports after the direct
// S3 PUT has finished.
type BatchItem struct {
	S3Key    string `json:"s3Key" binding:"required"`
	Title    string `json:"title"`
	Format   string `json:"format"`
	FileSize int64  `json:"fileSize"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// UpdateRequest patches title, landing visibility and event links.
// Nil fields are left untouched.
type UpdateRequest struct {
	Title         *string   `json:"title"`
	ShowOnLanding *bool     `json:"showOnLanding"`
	EventIDs      *[]string `json:"eventIds"`
}

// Response is an Image plus its computed public URL.
type Response struct {
	Image
	URL string `json:"url"`
}
