package validation

import (
	"testing"
	"time"
)

func TestEventName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Hawaii Vacation", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"emoji name", "🎉 Party", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := EventName(tt.input); (err != nil) != tt.wantErr {
				t.Errorf("EventName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestEventDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"calendar date", "2026-03-15", false},
		{"rfc3339", "2026-03-15T10:30:00Z", false},
		{"empty", "", true},
		{"prose date", "March 15th", true},
		{"wrong order", "15-03-2026", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EventDate(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("EventDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got.IsZero() {
				t.Errorf("EventDate(%q) returned zero time without error", tt.input)
			}
		})
	}

	got, err := EventDate("2026-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("EventDate parsed %v, want %v", got, want)
	}
}

func TestCategory(t *testing.T) {
	for _, valid := range []string{"Trip", "Celebration", "Holiday", "Personal"} {
		if _, err := Category(valid); err != nil {
			t.Errorf("Category(%q) unexpected error: %v", valid, err)
		}
	}
	for _, invalid := range []string{"", "trip", "Vacation", "HOLIDAY"} {
		if _, err := Category(invalid); err == nil {
			t.Errorf("Category(%q) expected error", invalid)
		}
	}
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"#6366f1", false},
		{"#fff", false},
		{"#ABCDEF", false},
		{"6366f1", true},
		{"#6366g1", true},
		{"#66", true},
		{"", true},
	}

	for _, tt := range tests {
		if err := HexColor(tt.input); (err != nil) != tt.wantErr {
			t.Errorf("HexColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}
