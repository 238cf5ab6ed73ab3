package video

import (
	"regexp"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Video is a YouTube embed attached to zero or more events.
type Video struct {
	ID            string         `gorm:"type:uuid;primaryKey" json:"id"`
	Title         *string        `json:"title"`
	YoutubeURL    string         `gorm:"not null" json:"youtubeUrl"`
	ThumbnailURL  *string        `json:"thumbnailUrl"`
	ShowOnLanding bool           `gorm:"default:true;index" json:"showOnLanding"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	Events        []EventSummary `gorm:"many2many:event_videos;joinForeignKey:VideoID;joinReferences:EventID" json:"events,omitempty"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

// EventSummary is the slim event projection used on the video side of the
// event_videos join. Kept local to avoid an import cycle with the event package.
type EventSummary struct {
	ID     string  `gorm:"type:uuid;primaryKey" json:"id"`
	Title  string  `json:"title"`
	Client *string `json:"client,omitempty"`
}

func (EventSummary) TableName() string { return "events" }

var youtubeURLPattern = regexp.MustCompile(`^https?://(www\.)?(youtube\.com/(watch\?v=|embed/|shorts/)|youtu\.be/)[\w-]{6,}`)

// IsValidYoutubeURL accepts watch, embed, shorts and youtu.be short links.
func IsValidYoutubeURL(url string) bool {
	return youtubeURLPattern.MatchString(url)
}

type CreateRequest struct {
	Title        *string  `json:"title"`
	YoutubeURL   string   `json:"youtubeUrl" binding:"required"`
	ThumbnailURL *string  `json:"thumbnailUrl"`
	EventIDs     []string `json:"eventIds"`
}

type UpdateRequest struct {
	Title         *string   `json:"title"`
	YoutubeURL    *string   `json:"youtubeUrl"`
	ThumbnailURL  *string   `json:"thumbnailUrl"`
	ShowOnLanding *bool     `json:"showOnLanding"`
	EventIDs      *[]string `json:"eventIds"`
}
