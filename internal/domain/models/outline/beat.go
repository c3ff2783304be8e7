package outline

import (
	"time"
)

// Beat is a single story event, the smallest outline unit. Beats are always
// scoped to a novel and may additionally sit inside one of its chapters.
type Beat struct {
	ID          string    `json:"id" db:"id"`
	NovelID     string    `json:"novel_id" db:"novel_id"`
	ChapterID   *string   `json:"chapter_id,omitempty" db:"chapter_id"` // NULL = unattached
	OrderIndex  int       `json:"order_index" db:"order_index"`
	BeatType    *string   `json:"beat_type,omitempty" db:"beat_type"` // free-form tag, e.g. inciting-incident
	Description string    `json:"description" db:"description"`
	Viewpoint   *string   `json:"viewpoint,omitempty" db:"viewpoint"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
