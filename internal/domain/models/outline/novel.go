package outline

import (
	"time"
)

// Novel is the root of the outline hierarchy. Every Part, Chapter and Beat
// belongs to exactly one Novel, and ownership of the whole tree is derived
// from UserID here.
type Novel struct {
	ID             string    `json:"id" db:"id"`
	UserID         string    `json:"user_id" db:"user_id"`
	Title          string    `json:"title" db:"title"`
	Subtitle       *string   `json:"subtitle,omitempty" db:"subtitle"`
	Genre          *string   `json:"genre,omitempty" db:"genre"`
	TargetAudience *string   `json:"target_audience,omitempty" db:"target_audience"`
	Status         *string   `json:"status,omitempty" db:"status"` // free-form lifecycle label, not an enum
	Logline        *string   `json:"logline,omitempty" db:"logline"`
	Notes          *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}
