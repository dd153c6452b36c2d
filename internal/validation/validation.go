// Package validation holds the input-boundary checks shared by the CLI
// commands and the TUI forms. Invalid input is rejected here; nothing
// downstream re-validates.
package validation

import (
	"fmt"
	"strings"
	"time"

	"horizon/internal/constants"
	"horizon/internal/models"
)

// EventName requires a non-empty display name.
func EventName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	return nil
}

// EventDate accepts a calendar date (2006-01-02) or a full RFC 3339
// timestamp, returning the parsed time in the local zone.
func EventDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("date cannot be empty")
	}
	if t, err := time.ParseInLocation(constants.DateFormat, s, time.Local); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
}

// EventDateString is the huh-friendly form of EventDate.
func EventDateString(s string) error {
	_, err := EventDate(s)
	return err
}

// Category requires membership in the closed category set.
func Category(s string) (models.Category, error) {
	c := models.Category(s)
	if !c.Valid() {
		return "", fmt.Errorf("invalid category %q (expected Trip, Celebration, Holiday, or Personal)", s)
	}
	return c, nil
}

// HexColor requires a #rgb or #rrggbb color value. Colors outside the
// suggested palette are fine; malformed ones are not.
func HexColor(s string) error {
	if len(s) != 4 && len(s) != 7 {
		return fmt.Errorf("invalid color %q (expected #rgb or #rrggbb)", s)
	}
	if s[0] != '#' {
		return fmt.Errorf("invalid color %q (must start with #)", s)
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		case r >= 'A' && r <= 'F':
		default:
			return fmt.Errorf("invalid color %q (non-hex digit %q)", s, r)
		}
	}
	return nil
}
