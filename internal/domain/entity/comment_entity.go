package entity

import (
	"time"
)

// Comment belongs to exactly one hoagie and one author; both references are
// immutable for the lifetime of the comment.
type Comment struct {
	ID         string      `json:"id"`
	Text       string      `json:"text"`
	Author     UserSummary `json:"user"`
	HoagieID   string      `json:"hoagie_id"`
	HoagieName string      `json:"hoagie_name,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}
