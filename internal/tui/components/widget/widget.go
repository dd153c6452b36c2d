// Package widget renders the home-screen widget preview: a compact
// summary of the next upcoming event, themed by the widget config.
package widget

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"horizon/internal/countdown"
	"horizon/internal/models"
)

const previewWidth = 30

// Render draws the widget preview. A nil event produces the empty-state
// placeholder shown before any event exists.
func Render(event *models.Event, cfg models.WidgetConfig, now time.Time) string {
	if event == nil {
		return placeholderStyle().Render("Add a holiday to see\nthe widget preview")
	}

	remaining := countdown.Until(event.Date, now)

	header := lipgloss.JoinHorizontal(lipgloss.Top,
		event.Emoji,
		"  ",
		lipgloss.NewStyle().Faint(true).Render(strings.ToUpper(string(event.Category))),
	)

	name := lipgloss.NewStyle().Faint(true).Render(truncate(event.Name, previewWidth-4))
	count := renderCount(remaining.Days, cfg)

	rows := []string{header, "", name, count}
	if cfg.ShowSeconds {
		bar := progress.New(progress.WithSolidFill(cfg.AccentColor), progress.WithoutPercentage())
		bar.Width = previewWidth - 4
		rows = append(rows, bar.ViewAs(countdown.Progress(event.AddedAt, event.Date, now)))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return frameStyle(cfg).Render(body)
}

func renderCount(days int, cfg models.WidgetConfig) string {
	digits := fmt.Sprintf("%d", days)
	switch cfg.FontSize {
	case models.FontSizeSM:
		return digits + " days"
	case models.FontSizeLG:
		digits = spaced(digits)
	case models.FontSizeXL:
		digits = spaced(digits)
		digits = lipgloss.NewStyle().Underline(true).Render(digits)
	}
	count := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.AccentColor)).Render(digits)
	return count + lipgloss.NewStyle().Faint(true).Render(" DAYS")
}

func frameStyle(cfg models.WidgetConfig) lipgloss.Style {
	s := lipgloss.NewStyle().
		Width(previewWidth).
		Padding(1, 2).
		BorderForeground(lipgloss.Color(cfg.AccentColor))

	if cfg.CompactMode {
		s = s.Padding(0, 2)
	}

	switch cfg.Theme {
	case models.ThemeDark:
		s = s.Border(lipgloss.ThickBorder()).
			Background(lipgloss.Color("235")).
			Foreground(lipgloss.Color("252"))
	case models.ThemeLight:
		s = s.Border(lipgloss.NormalBorder()).
			Foreground(lipgloss.Color("236"))
	default: // glass
		s = s.Border(lipgloss.RoundedBorder())
	}
	return s
}

func placeholderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Width(previewWidth).
		Padding(1, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Foreground(lipgloss.Color("240")).
		Align(lipgloss.Center)
}

func spaced(s string) string {
	return strings.Join(strings.Split(s, ""), " ")
}

func truncate(s string, max int) string {
	if max <= 1 || len([]rune(s)) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}
