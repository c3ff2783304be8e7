package catalog

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed config/*.yaml
var configFiles embed.FS

// outlineFile mirrors the YAML layout. Entries are keyed maps in the file;
// the custom unmarshaler below preserves their file order.
type outlineFile struct {
	Statuses  orderedEntries `yaml:"statuses"`
	BeatTypes orderedEntries `yaml:"beat_types"`
}

type orderedEntry struct {
	ID          string
	DisplayName string
	Description string
}

type orderedEntries []orderedEntry

// UnmarshalYAML decodes a keyed map while keeping the key order from the file
func (e *orderedEntries) UnmarshalYAML(node *yaml.Node) error {
	type body struct {
		DisplayName string `yaml:"display_name"`
		Description string `yaml:"description"`
	}

	// node.Content alternates: key, value, key, value...
	for i := 0; i+1 < len(node.Content); i += 2 {
		var b body
		if err := node.Content[i+1].Decode(&b); err != nil {
			return err
		}
		*e = append(*e, orderedEntry{
			ID:          node.Content[i].Value,
			DisplayName: b.DisplayName,
			Description: b.Description,
		})
	}
	return nil
}

// Registry serves the embedded outline suggestion catalog
type Registry struct {
	catalog *OutlineCatalog
	mu      sync.RWMutex
}

// NewRegistry creates a registry and loads the embedded YAML file
func NewRegistry() (*Registry, error) {
	r := &Registry{}
	if err := r.loadOutlineFile(); err != nil {
		return nil, fmt.Errorf("failed to load outline catalog: %w", err)
	}
	return r, nil
}

func (r *Registry) loadOutlineFile() error {
	data, err := configFiles.ReadFile("config/outline.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config/outline.yaml: %w", err)
	}

	var file outlineFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to unmarshal config/outline.yaml: %w", err)
	}

	catalog := &OutlineCatalog{
		Statuses:  make([]StatusSuggestion, 0, len(file.Statuses)),
		BeatTypes: make([]BeatTypeSuggestion, 0, len(file.BeatTypes)),
	}
	for _, e := range file.Statuses {
		catalog.Statuses = append(catalog.Statuses, StatusSuggestion(e))
	}
	for _, e := range file.BeatTypes {
		catalog.BeatTypes = append(catalog.BeatTypes, BeatTypeSuggestion(e))
	}

	r.mu.Lock()
	r.catalog = catalog
	r.mu.Unlock()

	return nil
}

// Outline returns the full suggestion catalog (ordered as defined in YAML)
func (r *Registry) Outline() *OutlineCatalog {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.catalog
}

// LookupBeatType returns a beat type suggestion by id
func (r *Registry) LookupBeatType(id string) (*BeatTypeSuggestion, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.catalog.BeatTypes {
		if r.catalog.BeatTypes[i].ID == id {
			return &r.catalog.BeatTypes[i], nil
		}
	}
	return nil, fmt.Errorf("unknown beat type: %s", id)
}
