package storage

import "horizon/internal/models"

// Provider abstracts the persisted key/value document store. Two
// independent JSON documents exist: the event list and the widget
// configuration. Loads never fail from the caller's point of view; a
// missing or malformed document yields the built-in default. Saves
// overwrite the whole document, no partial merges. The two documents
// carry no cross-document transaction; they are logically independent.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Events document
	LoadEvents() []models.Event
	SaveEvents([]models.Event) error

	// Widget configuration document
	LoadWidgetConfig() models.WidgetConfig
	SaveWidgetConfig(models.WidgetConfig) error

	// Utils
	GetPath() string
}

// NewProvider selects a backend by path extension, the same way the
// CLI does: .json files get the flat-file store, everything else the
// SQLite store.
func NewProvider(path string) Provider {
	if len(path) > 5 && path[len(path)-5:] == ".json" {
		return NewJSONStore(path)
	}
	return NewSQLiteStore(path)
}
