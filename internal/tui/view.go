package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"horizon/internal/constants"
	"horizon/internal/countdown"
	"horizon/internal/models"
	"horizon/internal/tui/components/widget"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.screen {
	case ScreenWelcome:
		body = m.viewWelcome()
	case ScreenList:
		body = m.viewList()
	case ScreenAdd:
		body = m.viewAdd()
	case ScreenDetail:
		body = m.viewDetail()
	case ScreenConfig:
		body = m.viewConfig()
	case ScreenGlobal:
		body = m.viewGlobal()
	}

	return docStyle.Render(body + "\n\n" + m.help.View(m.keys))
}

func (m Model) viewWelcome() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🎉 Holiday Horizon"))
	b.WriteString("\n\n")
	b.WriteString(taglineStyle.Render(m.tagline))
	b.WriteString("\n\n")
	b.WriteString(faintStyle.Render("enter: my holidays • g: global explorer • q: quit"))
	return b.String()
}

func (m Model) viewList() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("My Holidays"))
	b.WriteString("\n\n")

	events := m.repo.SortedByDate()
	if len(events) == 0 {
		b.WriteString(faintStyle.Render("No events yet. Press 'a' to add your first holiday."))
		return b.String()
	}

	for i, e := range events {
		remaining := countdown.Until(e.Date, m.now)
		line := fmt.Sprintf("%s %s  %s  %dd %dh",
			e.Emoji,
			e.Name,
			faintStyle.Render(e.Date.Format(constants.DisplayDateFormat)),
			remaining.Days,
			remaining.Hours,
		)
		if i == m.listCursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewAdd() string {
	return titleStyle.Render("Add Event") + "\n\n" + m.form.View()
}

func (m Model) viewDetail() string {
	event, ok := m.selectedEvent()
	if !ok {
		return faintStyle.Render("Event no longer exists.")
	}

	remaining := countdown.Until(event.Date, m.now)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s %s  %s\n",
		event.Emoji,
		titleStyle.Render(event.Name),
		categoryStyle(event.Color).Render(string(event.Category)),
	))
	b.WriteString(faintStyle.Render(event.Date.Format(constants.DisplayDateFormat)))
	b.WriteString("\n\n")

	count := fmt.Sprintf("%s %s   %s %s",
		bigCountStyle.Render(fmt.Sprintf("%d", remaining.Days)),
		faintStyle.Render("days"),
		bigCountStyle.Render(fmt.Sprintf("%d", remaining.Hours)),
		faintStyle.Render("hours"),
	)
	b.WriteString(cardStyle.BorderForeground(lipgloss.Color(event.Color)).Render(count))
	b.WriteString("\n")

	if event.Description != "" {
		b.WriteString("\n" + event.Description + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render("✨ Celebration Ideas") + "\n")
	switch {
	case m.loadingIdeas:
		b.WriteString(m.spinner.View() + " Thinking of ideas...\n")
	case len(m.ideas) == 0:
		b.WriteString(faintStyle.Render("Press 'i' for AI-powered celebration ideas.") + "\n")
	default:
		for _, idea := range m.ideas {
			b.WriteString("• " + selectedStyle.Render(idea.Title) + "\n")
			b.WriteString("  " + faintStyle.Render(idea.Description) + "\n")
		}
	}

	if m.confirmingDelete {
		b.WriteString("\n" + dangerStyle.Render("Delete this event? (y/n)"))
	}
	return b.String()
}

func (m Model) viewConfig() string {
	next := m.repo.NextUpcoming(m.now)
	preview := widget.Render(next, m.configPreview(), m.now)

	return titleStyle.Render("Widget Settings") + "\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Top, m.form.View(), "   ", preview)
}

func (m Model) viewGlobal() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("🌎 Global Explorer"))
	b.WriteString("\n\n")

	var strip []string
	for i, c := range constants.Countries {
		label := c.Flag + " " + c.Code
		if i == m.countryCursor {
			label = selectedStyle.Render("[" + label + "]")
		} else {
			label = faintStyle.Render(label)
		}
		strip = append(strip, label)
	}
	b.WriteString(strings.Join(strip, " "))
	b.WriteString("\n\n")

	switch {
	case m.loadingGlobal:
		b.WriteString(m.spinner.View() + " Fetching holidays for " + m.selectedCountry + "...\n")
	case m.selectedCountry == "":
		b.WriteString(faintStyle.Render("Pick a country and press enter to discover its holidays."))
	case len(m.holidays) == 0:
		b.WriteString(faintStyle.Render("No holidays found for " + m.selectedCountry + "."))
	default:
		b.WriteString(sectionStyle.Render(m.selectedCountry) + "\n")
		for i, h := range m.holidays {
			line := fmt.Sprintf("%s %s  %s", h.Emoji, h.Name, faintStyle.Render(h.Date))
			if m.repo.Imported(h) {
				line += "  " + addedStyle.Render("✓ Added")
			}
			if i == m.holidayCursor {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
			if i == m.holidayCursor && h.Description != "" {
				b.WriteString("    " + faintStyle.Render(h.Description) + "\n")
			}
		}
		b.WriteString("\n" + faintStyle.Render("a: add to my holidays"))
	}
	return b.String()
}

// configPreview reflects the form's in-progress values so the widget
// preview tracks edits live, before the form is submitted.
func (m Model) configPreview() models.WidgetConfig {
	if m.configForm == nil {
		return m.widgetConfig
	}
	return models.WidgetConfig{
		Theme:       m.configForm.Theme,
		AccentColor: m.configForm.AccentColor,
		ShowSeconds: m.configForm.ShowSeconds,
		CompactMode: m.configForm.CompactMode,
		FontSize:    m.configForm.FontSize,
	}
}
