package countdown

import (
	"testing"
	"time"
)

func TestUntil(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		target    time.Time
		wantDays  int
		wantHours int
	}{
		{
			name:      "target equals now clamps to zero",
			target:    now,
			wantDays:  0,
			wantHours: 0,
		},
		{
			name:      "past target clamps to zero",
			target:    now.Add(-48 * time.Hour),
			wantDays:  0,
			wantHours: 0,
		},
		{
			name:      "one hour ahead",
			target:    now.Add(time.Hour),
			wantDays:  0,
			wantHours: 1,
		},
		{
			name:      "just under a day",
			target:    now.Add(24*time.Hour - time.Minute),
			wantDays:  0,
			wantHours: 23,
		},
		{
			name:      "exactly thirty days",
			target:    now.Add(30 * 24 * time.Hour),
			wantDays:  30,
			wantHours: 0,
		},
		{
			name:      "thirty days and change",
			target:    now.Add(30*24*time.Hour + 5*time.Hour + 30*time.Minute),
			wantDays:  30,
			wantHours: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Until(tt.target, now)
			if got.Days != tt.wantDays || got.Hours != tt.wantHours {
				t.Errorf("Until() = {%d, %d}, want {%d, %d}", got.Days, got.Hours, tt.wantDays, tt.wantHours)
			}
		})
	}
}

func TestUntilHoursAlwaysBelowTwentyFour(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for h := 0; h < 72; h++ {
		got := Until(now.Add(time.Duration(h)*time.Hour+17*time.Minute), now)
		if got.Hours < 0 || got.Hours >= 24 {
			t.Fatalf("hours out of range for offset %dh: %d", h, got.Hours)
		}
		if got.Days < 0 {
			t.Fatalf("negative days for offset %dh: %d", h, got.Days)
		}
	}
}

func TestProgress(t *testing.T) {
	added := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	target := added.Add(10 * 24 * time.Hour)

	tests := []struct {
		name string
		now  time.Time
		want float64
	}{
		{"before window", added.Add(-time.Hour), 0},
		{"at start", added, 0},
		{"halfway", added.Add(5 * 24 * time.Hour), 0.5},
		{"at target", target, 1},
		{"after target", target.Add(time.Hour), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Progress(added, target, tt.now)
			if got != tt.want {
				t.Errorf("Progress() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := Progress(added, added, added.Add(time.Hour)); got != 1 {
		t.Errorf("degenerate window should report 1, got %v", got)
	}
}
