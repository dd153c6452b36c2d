package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"horizon/internal/constants"
	"horizon/internal/gateway"
	"horizon/internal/models"
)

// tickMsg advances the countdown clock.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(constants.CountdownTickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// ideasMsg delivers a celebration-ideas response. seq and eventID let
// Update drop results that arrive after the user moved on.
type ideasMsg struct {
	seq     int
	eventID string
	ideas   []models.CelebrationIdea
}

func fetchIdeasCmd(gw *gateway.Gateway, seq int, event models.Event) tea.Cmd {
	return func() tea.Msg {
		ideas := gw.CelebrationIdeas(context.Background(), event.Name)
		return ideasMsg{seq: seq, eventID: event.ID, ideas: ideas}
	}
}

// holidaysMsg delivers a public-holidays response for one country.
type holidaysMsg struct {
	seq      int
	country  string
	holidays []models.GlobalHoliday
}

func fetchHolidaysCmd(gw *gateway.Gateway, seq int, country string) tea.Cmd {
	return func() tea.Msg {
		holidays := gw.PublicHolidays(context.Background(), country)
		return holidaysMsg{seq: seq, country: country, holidays: holidays}
	}
}
