package auditlog

import (
	"time"
)

// AdminActionLog records every admin mutation and login attempt.
type AdminActionLog struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Action     string    `gorm:"size:100;not null;index" json:"action"`
	TargetType string    `gorm:"size:50;index" json:"target_type"` // event, image, video, service, contact, session
	TargetID   string    `gorm:"size:64;index" json:"target_id"`
	Details    string    `gorm:"type:jsonb" json:"details"`
	IPAddress  string    `gorm:"size:45" json:"ip_address"`
	Status     string    `gorm:"size:20;not null;index" json:"status"` // success/failure
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (AdminActionLog) TableName() string {
	return "admin_action_logs"
}

// Filter narrows the admin listing.
type Filter struct {
	Action     string
	TargetType string
	Status     string
	FromDate   *time.Time
	ToDate     *time.Time
	Page       int
	Limit      int
}

// PaginatedLogs is the admin listing response.
type PaginatedLogs struct {
	Data       []AdminActionLog `json:"data"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"total_pages"`
}
