package models

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"horizon/internal/constants"
)

// Category classifies an event for display purposes.
type Category string

const (
	CategoryTrip        Category = "Trip"
	CategoryCelebration Category = "Celebration"
	CategoryHoliday     Category = "Holiday"
	CategoryPersonal    Category = "Personal"
)

// Categories lists the closed set of valid categories, in form order.
var Categories = []Category{
	CategoryTrip,
	CategoryCelebration,
	CategoryHoliday,
	CategoryPersonal,
}

// Valid reports whether c is a member of the closed category set.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Event is a user-owned countdown target. IDs are assigned once at
// creation and never change; there is no edit operation, only add and
// delete. Dates in the past are allowed and display a zero countdown.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Color       string    `json:"color"`
	Emoji       string    `json:"emoji"`
	AddedAt     time.Time `json:"added_at"`
}

// NewEvent builds an event with a fresh id. An empty emoji falls back
// to the generic celebration glyph.
func NewEvent(name string, date time.Time, description string, category Category, color, emoji string) Event {
	if emoji == "" {
		emoji = constants.DefaultEmoji
	}
	return Event{
		ID:          uuid.New().String(),
		Name:        name,
		Date:        date,
		Description: description,
		Category:    category,
		Color:       color,
		Emoji:       emoji,
		AddedAt:     time.Now(),
	}
}

// RandomPaletteColor picks one of the suggested theme colors. Used when
// importing global holiday suggestions, which carry no color of their own.
func RandomPaletteColor() string {
	return constants.Palette[rand.Intn(len(constants.Palette))]
}

// SeedEvents is the starter collection written on first run so the list
// and widget screens have something to show.
func SeedEvents() []Event {
	year := time.Now().Year()
	return []Event{
		{
			ID:          uuid.New().String(),
			Name:        "Summer in Santorini",
			Date:        time.Date(year, time.August, 15, 0, 0, 0, 0, time.Local),
			Description: "A beautiful escape to the Greek islands.",
			Category:    CategoryTrip,
			Color:       "#0ea5e9",
			Emoji:       "🏝️",
			AddedAt:     time.Now(),
		},
		{
			ID:          uuid.New().String(),
			Name:        "Christmas Eve",
			Date:        time.Date(year, time.December, 24, 0, 0, 0, 0, time.Local),
			Description: "Warm cocoa and family gatherings.",
			Category:    CategoryHoliday,
			Color:       "#ef4444",
			Emoji:       "🎄",
			AddedAt:     time.Now(),
		},
	}
}
