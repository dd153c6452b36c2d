package export

import (
	"bytes"
	"strings"
	"testing"
	"time"

	ical "github.com/arran4/golang-ical"

	"horizon/internal/models"
)

func TestWriteProducesParseableCalendar(t *testing.T) {
	events := []models.Event{
		models.NewEvent("Hawaii Vacation", time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), "Two weeks of sun.", models.CategoryTrip, "#0ea5e9", "🏝️"),
		models.NewEvent("Graduation", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), "", models.CategoryPersonal, "#6366f1", ""),
	}

	var buf bytes.Buffer
	if err := Write(&buf, events); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Fatal("output is not a VCALENDAR")
	}
	if !strings.Contains(out, "Hawaii Vacation") {
		t.Error("output is missing the event summary")
	}
	if !strings.Contains(out, "Two weeks of sun.") {
		t.Error("output is missing the event description")
	}

	parsed, err := ical.ParseCalendar(strings.NewReader(out))
	if err != nil {
		t.Fatalf("serialized calendar does not parse back: %v", err)
	}
	if got := len(parsed.Events()); got != 2 {
		t.Errorf("parsed %d events, want 2", got)
	}
}

func TestWriteEmptyCollection(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !strings.Contains(buf.String(), "BEGIN:VCALENDAR") {
		t.Error("empty collection should still produce a calendar envelope")
	}
}
