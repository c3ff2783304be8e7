package catalog

// StatusSuggestion is a suggested drafting status for a novel. Statuses are
// advisory; the API stores whatever free-form status the client sends.
type StatusSuggestion struct {
	ID          string `yaml:"-" json:"id"`
	DisplayName string `yaml:"display_name" json:"display_name"`
	Description string `yaml:"description" json:"description"`
}

// BeatTypeSuggestion is a suggested structural role for a beat
type BeatTypeSuggestion struct {
	ID          string `yaml:"-" json:"id"`
	DisplayName string `yaml:"display_name" json:"display_name"`
	Description string `yaml:"description" json:"description"`
}

// OutlineCatalog holds the full suggestion set served to outline editors
type OutlineCatalog struct {
	Statuses  []StatusSuggestion   `json:"statuses"`
	BeatTypes []BeatTypeSuggestion `json:"beat_types"`
}
