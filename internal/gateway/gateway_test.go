package gateway

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type fakeCompleter struct {
	response string
	err      error
	calls    int
}

func (f *fakeCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func TestCelebrationIdeasSuccess(t *testing.T) {
	fake := &fakeCompleter{
		response: `[{"title":"Pack Early","description":"Lay out everything a week before."},
			{"title":"Playlist","description":"Build a soundtrack for the trip."},
			{"title":"Countdown Dinner","description":"Cook a themed meal the night before."}]`,
	}
	g := New(fake, time.Second)

	ideas := g.CelebrationIdeas(context.Background(), "Hawaii Vacation")
	if len(ideas) != 3 {
		t.Fatalf("got %d ideas, want 3", len(ideas))
	}
	if ideas[0].Title != "Pack Early" {
		t.Errorf("ideas[0].Title = %q", ideas[0].Title)
	}
}

func TestCelebrationIdeasToleratesSurroundingProse(t *testing.T) {
	fake := &fakeCompleter{
		response: "Here you go:\n```json\n[{\"title\":\"A\",\"description\":\"B\"}]\n```",
	}
	g := New(fake, time.Second)

	ideas := g.CelebrationIdeas(context.Background(), "Birthday")
	if len(ideas) != 1 || ideas[0].Title != "A" {
		t.Fatalf("unexpected ideas: %+v", ideas)
	}
}

func TestCelebrationIdeasTransportFailureFallsBack(t *testing.T) {
	g := New(&fakeCompleter{err: errors.New("connection refused")}, time.Second)

	ideas := g.CelebrationIdeas(context.Background(), "Birthday")
	want := FallbackIdeas()
	if len(ideas) != len(want) {
		t.Fatalf("got %d fallback ideas, want %d", len(ideas), len(want))
	}
	for i := range want {
		if ideas[i] != want[i] {
			t.Errorf("fallback[%d] = %+v, want %+v", i, ideas[i], want[i])
		}
	}
}

func TestCelebrationIdeasMalformedResponseFallsBack(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"no array", "I cannot help with that."},
		{"broken json", `[{"title": "A"`},
		{"wrong shape", `[{"heading":"A","body":"B"}]`},
		{"empty array", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(&fakeCompleter{response: tt.response}, time.Second)
			ideas := g.CelebrationIdeas(context.Background(), "Birthday")
			want := FallbackIdeas()
			if len(ideas) != len(want) || ideas[0] != want[0] {
				t.Errorf("expected fallback ideas, got %+v", ideas)
			}
		})
	}
}

func TestCelebrationIdeasClampsToThree(t *testing.T) {
	var entries string
	for i := 0; i < 6; i++ {
		if i > 0 {
			entries += ","
		}
		entries += fmt.Sprintf(`{"title":"T%d","description":"D%d"}`, i, i)
	}
	g := New(&fakeCompleter{response: "[" + entries + "]"}, time.Second)

	ideas := g.CelebrationIdeas(context.Background(), "Birthday")
	if len(ideas) != 3 {
		t.Errorf("got %d ideas, want clamp to 3", len(ideas))
	}
}

func TestNilCompleterAlwaysFallsBack(t *testing.T) {
	g := New(nil, time.Second)

	if ideas := g.CelebrationIdeas(context.Background(), "Birthday"); len(ideas) != 3 {
		t.Errorf("nil completer should yield fallback ideas, got %+v", ideas)
	}
	if holidays := g.PublicHolidays(context.Background(), "Japan"); len(holidays) != 0 {
		t.Errorf("nil completer should yield empty holidays, got %+v", holidays)
	}
}

func TestPublicHolidaysSuccess(t *testing.T) {
	fake := &fakeCompleter{
		response: `[{"name":"New Year's Day","date":"2026-01-01","description":"Start of the year.","emoji":"🎍"},
			{"name":"Golden Week","date":"2026-04-29","description":"A run of national holidays.","emoji":"🎏"}]`,
	}
	g := New(fake, time.Second)

	holidays := g.PublicHolidays(context.Background(), "Japan")
	if len(holidays) != 2 {
		t.Fatalf("got %d holidays, want 2", len(holidays))
	}
	if holidays[0].Date != "2026-01-01" {
		t.Errorf("holidays[0].Date = %q", holidays[0].Date)
	}
}

func TestPublicHolidaysFailureReturnsEmpty(t *testing.T) {
	g := New(&fakeCompleter{err: errors.New("timeout")}, time.Second)

	holidays := g.PublicHolidays(context.Background(), "Japan")
	if len(holidays) != 0 {
		t.Errorf("transport failure should yield empty list, got %+v", holidays)
	}
	if holidays == nil {
		t.Error("should return an empty slice, not nil")
	}
}

func TestPublicHolidaysDropsInvalidDates(t *testing.T) {
	fake := &fakeCompleter{
		response: `[{"name":"Good","date":"2026-07-04","description":"ok","emoji":"🎆"},
			{"name":"Bad","date":"July 4th","description":"bad date","emoji":"🎆"},
			{"name":"Empty","date":"","description":"no date","emoji":"🎆"}]`,
	}
	g := New(fake, time.Second)

	holidays := g.PublicHolidays(context.Background(), "United States")
	if len(holidays) != 1 || holidays[0].Name != "Good" {
		t.Fatalf("expected only the valid entry, got %+v", holidays)
	}
}

func TestPublicHolidaysClampsToFive(t *testing.T) {
	var entries string
	for i := 0; i < 8; i++ {
		if i > 0 {
			entries += ","
		}
		entries += fmt.Sprintf(`{"name":"H%d","date":"2026-01-0%d","description":"d","emoji":"🎉"}`, i, i+1)
	}
	g := New(&fakeCompleter{response: "[" + entries + "]"}, time.Second)

	holidays := g.PublicHolidays(context.Background(), "Japan")
	if len(holidays) != 5 {
		t.Errorf("got %d holidays, want clamp to 5", len(holidays))
	}
}

func TestConcurrentCallsAreIndependent(t *testing.T) {
	fake := &fakeCompleter{response: `[{"title":"A","description":"B"}]`}
	g := New(fake, time.Second)

	g.CelebrationIdeas(context.Background(), "Birthday")
	g.CelebrationIdeas(context.Background(), "Birthday")

	// No request coalescing: the same input twice means two requests.
	if fake.calls != 2 {
		t.Errorf("calls = %d, want 2", fake.calls)
	}
}
