package outline

import (
	"time"
)

// Chapter may live directly under a Novel or inside one of its Parts.
// PartID may dangle after a part delete; readers treat it as advisory.
type Chapter struct {
	ID            string    `json:"id" db:"id"`
	NovelID       string    `json:"novel_id" db:"novel_id"`
	PartID        *string   `json:"part_id,omitempty" db:"part_id"` // NULL = outside any part
	OrderIndex    int       `json:"order_index" db:"order_index"`
	Title         *string   `json:"title,omitempty" db:"title"`
	POVCharacter  *string   `json:"pov_character,omitempty" db:"pov_character"`
	Summary       *string   `json:"summary,omitempty" db:"summary"`
	WordCountGoal *int      `json:"word_count_goal,omitempty" db:"word_count_goal"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
