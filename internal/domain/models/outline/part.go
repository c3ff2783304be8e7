package outline

import (
	"time"
)

// Part is an optional grouping layer between Novel and Chapter.
// OrderIndex is caller-supplied; duplicates and gaps are legal.
type Part struct {
	ID         string    `json:"id" db:"id"`
	NovelID    string    `json:"novel_id" db:"novel_id"`
	OrderIndex int       `json:"order_index" db:"order_index"`
	Title      *string   `json:"title,omitempty" db:"title"`
	Summary    *string   `json:"summary,omitempty" db:"summary"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
