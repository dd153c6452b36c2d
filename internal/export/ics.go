// Package export serializes the event collection to iCalendar so other
// calendar apps can pick the countdown targets up.
package export

import (
	"fmt"
	"io"
	"time"

	ical "github.com/arran4/golang-ical"

	"horizon/internal/constants"
	"horizon/internal/models"
)

// Calendar builds a VCALENDAR with one VEVENT per event. Events are
// exported as single-day entries starting at their target date.
func Calendar(events []models.Event) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId("-//" + constants.AppName + "//EN")

	for _, e := range events {
		ve := cal.AddEvent(e.ID + "@" + constants.AppName)
		ve.SetCreatedTime(e.AddedAt)
		ve.SetDtStampTime(e.AddedAt)
		ve.SetStartAt(e.Date)
		ve.SetEndAt(e.Date.Add(24 * time.Hour))
		ve.SetSummary(fmt.Sprintf("%s %s", e.Emoji, e.Name))
		if e.Description != "" {
			ve.SetDescription(e.Description)
		}
	}

	return cal
}

// Write serializes the events to w in iCalendar form.
func Write(w io.Writer, events []models.Event) error {
	return Calendar(events).SerializeTo(w)
}
