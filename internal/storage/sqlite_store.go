package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"horizon/internal/constants"
	"horizon/internal/logger"
	"horizon/internal/models"
)

// SQLiteStore keeps the same two JSON documents as the JSON backend in
// a single documents table. The database brings durable writes; the
// document granularity stays identical across backends.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: path,
	}
}

func (s *SQLiteStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	if err := s.SaveEvents(models.SeedEvents()); err != nil {
		return fmt.Errorf("failed to save seed events: %w", err)
	}
	if err := s.SaveWidgetConfig(models.DefaultWidgetConfig()); err != nil {
		return fmt.Errorf("failed to save default widget config: %w", err)
	}

	return nil
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'horizon init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.createSchema(); err != nil {
		return fmt.Errorf("failed to validate schema: %w", err)
	}

	var version int
	row := s.db.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err == nil && version > constants.SchemaVersion {
		logger.Warn("storage schema is newer than this build, documents may fall back to defaults",
			"found", version, "supported", constants.SchemaVersion)
	}

	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) createSchema() error {
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS documents (
		key  TEXT PRIMARY KEY,
		body TEXT NOT NULL
	)`); err != nil {
		return err
	}
	if _, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS schema_version (
		version INTEGER NOT NULL
	)`); err != nil {
		return err
	}

	var count int
	if err := s.db.QueryRow("SELECT count(*) FROM schema_version").Scan(&count); err != nil {
		return err
	}
	if count == 0 {
		if _, err := s.db.Exec("INSERT INTO schema_version (version) VALUES (?)", constants.SchemaVersion); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) saveDocument(key string, value any) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	body, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to serialize document %s: %w", key, err)
	}
	if _, err := s.db.Exec(
		"INSERT INTO documents (key, body) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET body = excluded.body",
		key, string(body),
	); err != nil {
		return fmt.Errorf("failed to write document %s: %w", key, err)
	}
	return nil
}

// loadDocument reads and unmarshals the named document, reporting
// whether the caller got a usable value. Missing rows and malformed
// bodies both mean "use the default".
func (s *SQLiteStore) loadDocument(key string, out any) bool {
	if s.db == nil {
		return false
	}
	var body string
	err := s.db.QueryRow("SELECT body FROM documents WHERE key = ?", key).Scan(&body)
	if err != nil {
		if err != sql.ErrNoRows {
			logger.Warn("failed to read document", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		logger.Warn("document is malformed, using default", "key", key, "error", err)
		return false
	}
	return true
}

func (s *SQLiteStore) LoadEvents() []models.Event {
	var events []models.Event
	if !s.loadDocument(constants.EventsKey, &events) {
		return models.SeedEvents()
	}
	if events == nil {
		events = []models.Event{}
	}
	return events
}

func (s *SQLiteStore) SaveEvents(events []models.Event) error {
	return s.saveDocument(constants.EventsKey, events)
}

func (s *SQLiteStore) LoadWidgetConfig() models.WidgetConfig {
	var cfg models.WidgetConfig
	if !s.loadDocument(constants.WidgetConfigKey, &cfg) {
		return models.DefaultWidgetConfig()
	}
	return cfg
}

func (s *SQLiteStore) SaveWidgetConfig(cfg models.WidgetConfig) error {
	return s.saveDocument(constants.WidgetConfigKey, cfg)
}

func (s *SQLiteStore) GetPath() string {
	return s.path
}

// GetDB exposes the raw handle for diagnostics and tests.
func (s *SQLiteStore) GetDB() *sql.DB {
	return s.db
}
