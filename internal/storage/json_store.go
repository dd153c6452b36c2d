package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"horizon/internal/constants"
	"horizon/internal/logger"
	"horizon/internal/models"
)

// fileStore is the on-disk layout of the JSON backend: a schema version
// tag plus one raw JSON document per key. Keeping documents raw means a
// corrupt event list cannot take the widget config down with it.
type fileStore struct {
	Version   int                        `json:"version"`
	Documents map[string]json.RawMessage `json:"documents"`
}

type JSONStore struct {
	path  string
	store *fileStore
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{
		path: path,
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.store = &fileStore{
		Version:   constants.SchemaVersion,
		Documents: make(map[string]json.RawMessage),
	}

	if err := s.setDocument(constants.EventsKey, models.SeedEvents()); err != nil {
		return err
	}
	if err := s.setDocument(constants.WidgetConfigKey, models.DefaultWidgetConfig()); err != nil {
		return err
	}

	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'horizon init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.store = &fileStore{}
	if err := json.Unmarshal(data, s.store); err != nil {
		// A mangled file is recoverable: every document read falls back
		// to its default. Start from an empty document set.
		logger.Warn("storage file is malformed, continuing with defaults", "path", s.path, "error", err)
		s.store = &fileStore{Version: constants.SchemaVersion}
	}

	if s.store.Version > constants.SchemaVersion {
		logger.Warn("storage schema is newer than this build, documents may fall back to defaults",
			"found", s.store.Version, "supported", constants.SchemaVersion)
	}

	if s.store.Documents == nil {
		s.store.Documents = make(map[string]json.RawMessage)
	}

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.store, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) setDocument(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize document %s: %w", key, err)
	}
	s.store.Documents[key] = raw
	return nil
}

// loadDocument unmarshals the named document into out and reports
// whether it succeeded. Failure is not an error condition for callers;
// they substitute the default value.
func (s *JSONStore) loadDocument(key string, out any) bool {
	if s.store == nil {
		return false
	}
	raw, ok := s.store.Documents[key]
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Warn("document is malformed, using default", "key", key, "error", err)
		return false
	}
	return true
}

func (s *JSONStore) LoadEvents() []models.Event {
	var events []models.Event
	if !s.loadDocument(constants.EventsKey, &events) {
		return models.SeedEvents()
	}
	if events == nil {
		events = []models.Event{}
	}
	return events
}

func (s *JSONStore) SaveEvents(events []models.Event) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if err := s.setDocument(constants.EventsKey, events); err != nil {
		return err
	}
	return s.save()
}

func (s *JSONStore) LoadWidgetConfig() models.WidgetConfig {
	var cfg models.WidgetConfig
	if !s.loadDocument(constants.WidgetConfigKey, &cfg) {
		return models.DefaultWidgetConfig()
	}
	return cfg
}

func (s *JSONStore) SaveWidgetConfig(cfg models.WidgetConfig) error {
	if s.store == nil {
		return fmt.Errorf("storage not loaded")
	}
	if err := s.setDocument(constants.WidgetConfigKey, cfg); err != nil {
		return err
	}
	return s.save()
}

func (s *JSONStore) GetPath() string {
	return s.path
}
