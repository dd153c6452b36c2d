// Package repository holds the in-memory event collection and its
// derived views. All mutation goes through here so every change lands
// in the persisted store immediately.
package repository

import (
	"sort"
	"time"

	"horizon/internal/constants"
	"horizon/internal/logger"
	"horizon/internal/models"
	"horizon/internal/storage"
)

// Repository is not safe for concurrent use; the TUI mutates it only
// from the single update loop, the CLI from a single goroutine.
type Repository struct {
	store  storage.Provider
	events []models.Event

	// imported tracks which global holiday suggestions were already
	// turned into events this session, keyed by name+rawDate. It is
	// deliberately not persisted; a restart clears it.
	imported map[string]bool
}

// New builds a repository over a loaded store.
func New(store storage.Provider) *Repository {
	return &Repository{
		store:    store,
		events:   store.LoadEvents(),
		imported: make(map[string]bool),
	}
}

// Len returns the number of events in the collection.
func (r *Repository) Len() int {
	return len(r.events)
}

// All returns the events in insertion order. The slice is a copy;
// callers cannot mutate repository state through it.
func (r *Repository) All() []models.Event {
	out := make([]models.Event, len(r.events))
	copy(out, r.events)
	return out
}

// Get looks an event up by id.
func (r *Repository) Get(id string) (models.Event, bool) {
	for _, e := range r.events {
		if e.ID == id {
			return e, true
		}
	}
	return models.Event{}, false
}

// Add appends the event and persists the collection. There is no
// duplicate check; two events may share a name and date.
func (r *Repository) Add(event models.Event) error {
	r.events = append(r.events, event)
	return r.persist()
}

// Remove deletes the event with the given id and persists. Removing an
// unknown id is a no-op.
func (r *Repository) Remove(id string) error {
	filtered := r.events[:0]
	for _, e := range r.events {
		if e.ID != id {
			filtered = append(filtered, e)
		}
	}
	if len(filtered) == len(r.events) {
		return nil
	}
	r.events = filtered
	return r.persist()
}

// SortedByDate returns a fresh slice ordered ascending by date. The
// sort is stable: events sharing a date keep their insertion order. It
// is recomputed on every call, never cached.
func (r *Repository) SortedByDate() []models.Event {
	out := r.All()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

// NextUpcoming returns the first event strictly after now. When every
// event is already past it wraps around to the chronologically earliest
// one, so a non-empty collection always has a "next" to show. Returns
// nil only when the collection is empty.
func (r *Repository) NextUpcoming(now time.Time) *models.Event {
	sorted := r.SortedByDate()
	if len(sorted) == 0 {
		return nil
	}
	for i := range sorted {
		if sorted[i].Date.After(now) {
			return &sorted[i]
		}
	}
	return &sorted[0]
}

// ImportSuggestion turns an AI-sourced global holiday into a stored
// event with a fresh id and a random palette color. A suggestion that
// was already imported this session is rejected; the second return
// value reports whether the import happened.
func (r *Repository) ImportSuggestion(g models.GlobalHoliday) (models.Event, bool) {
	key := g.ImportKey()
	if r.imported[key] {
		return models.Event{}, false
	}

	date, err := time.ParseInLocation(constants.DateFormat, g.Date, time.Local)
	if err != nil {
		logger.Warn("suggestion has unparseable date, skipping import", "name", g.Name, "date", g.Date)
		return models.Event{}, false
	}

	event := models.NewEvent(g.Name, date, g.Description, models.CategoryHoliday, models.RandomPaletteColor(), g.Emoji)
	if err := r.Add(event); err != nil {
		return models.Event{}, false
	}
	r.imported[key] = true
	return event, true
}

// Imported reports whether the suggestion was already added this
// session, for the "Added" affordance on the global screen.
func (r *Repository) Imported(g models.GlobalHoliday) bool {
	return r.imported[g.ImportKey()]
}

func (r *Repository) persist() error {
	if err := r.store.SaveEvents(r.events); err != nil {
		logger.Error("failed to persist events", "error", err)
		return err
	}
	return nil
}
