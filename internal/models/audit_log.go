package models

import "time"

// AuditLog is the only relationally persisted record; everything else lives
// in the in-memory store and its snapshot.
type AuditLog struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	UserID string `gorm:"size:32" json:"user_id"`
	Action string `gorm:"size:50;not null" json:"action"`

	Entity   string `gorm:"size:50" json:"entity"`
	EntityID string `gorm:"size:32" json:"entity_id"`
	Metadata string `gorm:"type:text" json:"metadata"`

	CreatedAt time.Time `json:"created_at"`
}
