package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"horizon/internal/constants"
	"horizon/internal/logger"
	"horizon/internal/models"
	"horizon/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		// The tick only reschedules itself while a countdown view is
		// active; leaving those screens lets the chain lapse.
		if !countsDown(m.screen) {
			m.ticking = false
			return m, nil
		}
		m.now = time.Time(msg)
		return m, tickCmd()

	case spinner.TickMsg:
		if !m.loadingIdeas && !m.loadingGlobal {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case ideasMsg:
		// Drop stale responses: a different request was issued since,
		// the user left the detail screen, or switched events.
		if msg.seq != m.ideasSeq || m.screen != ScreenDetail || msg.eventID != m.selectedID {
			return m, nil
		}
		m.loadingIdeas = false
		m.ideas = msg.ideas
		return m, nil

	case holidaysMsg:
		if msg.seq != m.globalSeq || m.screen != ScreenGlobal || msg.country != m.selectedCountry {
			return m, nil
		}
		m.loadingGlobal = false
		m.holidays = msg.holidays
		m.holidayCursor = 0
		return m, nil
	}

	if m.screen == ScreenAdd || m.screen == ScreenConfig {
		return m.updateForm(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	switch m.screen {
	case ScreenWelcome:
		return m.handleWelcomeKey(msg)
	case ScreenList:
		return m.handleListKey(msg)
	case ScreenDetail:
		return m.handleDetailKey(msg)
	case ScreenGlobal:
		return m.handleGlobalKey(msg)
	}
	return m, nil
}

func (m Model) handleWelcomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Enter):
		return m.goTo(ScreenList)
	case key.Matches(msg, m.keys.Global):
		return m.goToGlobal()
	}
	return m, nil
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	events := m.repo.SortedByDate()

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.listCursor > 0 {
			m.listCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.listCursor < len(events)-1 {
			m.listCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if len(events) == 0 {
			return m, nil
		}
		m.selectedID = events[m.listCursor].ID
		m.ideas = nil
		m.loadingIdeas = false
		m.confirmingDelete = false
		return m.goTo(ScreenDetail)
	case key.Matches(msg, m.keys.Add):
		return m.openAddForm()
	case key.Matches(msg, m.keys.Widget):
		return m.openConfigForm()
	case key.Matches(msg, m.keys.Global):
		return m.goToGlobal()
	case key.Matches(msg, m.keys.Back):
		return m.goTo(ScreenWelcome)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	event, ok := m.selectedEvent()
	if !ok {
		return m.goTo(ScreenList)
	}

	if m.confirmingDelete {
		switch {
		case key.Matches(msg, m.keys.Confirm):
			if err := m.repo.Remove(event.ID); err != nil {
				logger.Error("failed to delete event", "id", event.ID, "error", err)
			}
			m.confirmingDelete = false
			m.selectedID = ""
			m.listCursor = 0
			return m.goTo(ScreenList)
		case key.Matches(msg, m.keys.Cancel), key.Matches(msg, m.keys.Back):
			m.confirmingDelete = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Ideas):
		if m.loadingIdeas {
			return m, nil
		}
		m.loadingIdeas = true
		m.ideas = nil
		m.ideasSeq++
		return m, tea.Batch(m.spinner.Tick, fetchIdeasCmd(m.gateway, m.ideasSeq, event))
	case key.Matches(msg, m.keys.Delete):
		m.confirmingDelete = true
	case key.Matches(msg, m.keys.Back):
		m.selectedID = ""
		m.ideas = nil
		m.loadingIdeas = false
		return m.goTo(ScreenList)
	}
	return m, nil
}

func (m Model) handleGlobalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.countryCursor > 0 {
			m.countryCursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.countryCursor < len(constants.Countries)-1 {
			m.countryCursor++
		}
	case key.Matches(msg, m.keys.Enter):
		if m.loadingGlobal {
			return m, nil
		}
		country := constants.Countries[m.countryCursor].Name
		m.selectedCountry = country
		m.holidays = nil
		m.holidayCursor = 0
		m.loadingGlobal = true
		m.globalSeq++
		return m, tea.Batch(m.spinner.Tick, fetchHolidaysCmd(m.gateway, m.globalSeq, country))
	case key.Matches(msg, m.keys.Up):
		if m.holidayCursor > 0 {
			m.holidayCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.holidayCursor < len(m.holidays)-1 {
			m.holidayCursor++
		}
	case key.Matches(msg, m.keys.Add):
		if len(m.holidays) == 0 {
			return m, nil
		}
		suggestion := m.holidays[m.holidayCursor]
		if _, ok := m.repo.ImportSuggestion(suggestion); !ok {
			logger.Debug("suggestion not imported", "name", suggestion.Name)
		}
	case key.Matches(msg, m.keys.Back):
		return m.goTo(ScreenWelcome)
	}
	return m, nil
}

// updateForm drives the active huh form. Esc abandons it; a completed
// form commits and returns to the list.
func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		if keyMsg.String() == "esc" {
			return m.closeForm()
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		switch m.screen {
		case ScreenAdd:
			m.submitEventForm()
		case ScreenConfig:
			m.submitConfigForm()
		}
		return m.closeForm()
	}
	return m, cmd
}

func (m *Model) submitEventForm() {
	fm := m.eventForm
	date, err := validation.EventDate(fm.Date)
	if err != nil {
		// The form validator already rejected this; reaching here
		// means the field was never edited.
		logger.Warn("add form completed with invalid date", "date", fm.Date)
		return
	}
	event := models.NewEvent(fm.Name, date, fm.Description, fm.Category, fm.Color, fm.Emoji)
	if err := m.repo.Add(event); err != nil {
		logger.Error("failed to add event", "name", fm.Name, "error", err)
	}
}

func (m *Model) submitConfigForm() {
	fm := m.configForm
	m.widgetConfig = models.WidgetConfig{
		Theme:       fm.Theme,
		AccentColor: fm.AccentColor,
		ShowSeconds: fm.ShowSeconds,
		CompactMode: fm.CompactMode,
		FontSize:    fm.FontSize,
	}
	if err := m.store.SaveWidgetConfig(m.widgetConfig); err != nil {
		logger.Error("failed to save widget config", "error", err)
	}
}

func (m Model) openAddForm() (tea.Model, tea.Cmd) {
	m.eventForm = &EventFormModel{
		Category: models.CategoryTrip,
		Color:    constants.Palette[0],
	}
	m.form = newEventForm(m.eventForm)
	m.screen = ScreenAdd
	return m, m.form.Init()
}

func (m Model) openConfigForm() (tea.Model, tea.Cmd) {
	m.configForm = &ConfigFormModel{
		Theme:       m.widgetConfig.Theme,
		AccentColor: m.widgetConfig.AccentColor,
		ShowSeconds: m.widgetConfig.ShowSeconds,
		CompactMode: m.widgetConfig.CompactMode,
		FontSize:    m.widgetConfig.FontSize,
	}
	m.form = newConfigForm(m.configForm)
	m.screen = ScreenConfig
	if !m.ticking {
		m.ticking = true
		m.now = time.Now()
		return m, tea.Batch(m.form.Init(), tickCmd())
	}
	return m, m.form.Init()
}

func (m Model) closeForm() (tea.Model, tea.Cmd) {
	m.form = nil
	m.eventForm = nil
	m.configForm = nil
	return m.goTo(ScreenList)
}

// goTo switches screens and starts the minute tick when entering a
// countdown view without one running.
func (m Model) goTo(s Screen) (tea.Model, tea.Cmd) {
	m.screen = s
	if countsDown(s) && !m.ticking {
		m.ticking = true
		m.now = time.Now()
		return m, tickCmd()
	}
	return m, nil
}

func (m Model) goToGlobal() (tea.Model, tea.Cmd) {
	m.screen = ScreenGlobal
	return m, nil
}
