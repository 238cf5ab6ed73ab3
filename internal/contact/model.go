package contact

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusNew       = "NEW"
	StatusContacted = "CONTACTED"
	StatusCompleted = "COMPLETED"
)

// Contact is an inquiry submitted through the public contact form.
// ReferenceID is the human-facing ticket number quoted in emails.
type Contact struct {
	ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
	ReferenceID string    `gorm:"uniqueIndex;not null" json:"referenceId"`
	FullName    string    `gorm:"not null" json:"fullName"`
	Phone       string    `gorm:"not null" json:"phone"`
	Address     *string   `json:"address"`
	Content     *string   `json:"content"`
	Status      string    `gorm:"default:NEW;index" json:"status"`
	Note        *string   `json:"note"`
	EmailSent   bool      `json:"emailSent"`
	EmailError  *string   `json:"emailError,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.ReferenceID == "" {
		c.ReferenceID = NewReferenceID(time.Now())
	}
	return nil
}

// NewReferenceID builds a ticket number from the submission time,
// e.g. "FP-KX2M9QH4" for a millisecond timestamp in base36.
func NewReferenceID(t time.Time) string {
	return "FP-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

func IsValidStatus(s string) bool {
	return s == StatusNew || s == StatusContacted || s == StatusCompleted
}

var phonePattern = regexp.MustCompile(`^(\+84|0)\d{9,10}$`)

// IsValidPhone accepts Vietnamese numbers in 0xxxxxxxxx or +84xxxxxxxxx form.
func IsValidPhone(phone string) bool {
	return phonePattern.MatchString(strings.ReplaceAll(phone, " ", ""))
}

type SubmitRequest struct {
	FullName string  `json:"fullName" binding:"required"`
	Phone    string  `json:"phone" binding:"required"`
	Address  *string `json:"address"`
	Content  *string `json:"content"`
}

type UpdateRequest struct {
	Status *string `json:"status"`
	Note   *string `json:"note"`
}
