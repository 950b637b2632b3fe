package models

import "time"

// StateSlot is a single string-keyed storage cell. The chat state and the
// MCP connection state each live in one row.
type StateSlot struct {
	Key       string    `json:"key" gorm:"primaryKey;type:varchar(255)"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
