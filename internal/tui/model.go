package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"horizon/internal/constants"
	"horizon/internal/gateway"
	"horizon/internal/models"
	"horizon/internal/repository"
	"horizon/internal/storage"
)

// Screen identifies which view is active. Transitions happen only in
// Update; there is no history stack, each screen has a hardcoded back
// target.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenList
	ScreenAdd
	ScreenDetail
	ScreenConfig
	ScreenGlobal
)

type Model struct {
	repo    *repository.Repository
	store   storage.Provider
	gateway *gateway.Gateway

	screen Screen
	keys   KeyMap
	help   help.Model
	width  int
	height int

	// now is the clock countdowns render against; advanced by the
	// minute tick while a countdown view is active.
	now     time.Time
	ticking bool

	tagline string

	listCursor int

	selectedID       string
	confirmingDelete bool

	form       *huh.Form
	eventForm  *EventFormModel
	configForm *ConfigFormModel

	widgetConfig models.WidgetConfig

	ideas        []models.CelebrationIdea
	loadingIdeas bool
	ideasSeq     int

	countryCursor   int
	holidayCursor   int
	selectedCountry string
	holidays        []models.GlobalHoliday
	loadingGlobal   bool
	globalSeq       int

	spinner  spinner.Model
	quitting bool
}

func NewModel(repo *repository.Repository, store storage.Provider, gw *gateway.Gateway) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		repo:         repo,
		store:        store,
		gateway:      gw,
		screen:       ScreenWelcome,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		now:          time.Now(),
		tagline:      constants.Taglines[rand.Intn(len(constants.Taglines))],
		widgetConfig: store.LoadWidgetConfig(),
		spinner:      sp,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// countsDown reports whether the given screen shows a live countdown
// and therefore needs the minute tick.
func countsDown(s Screen) bool {
	switch s {
	case ScreenList, ScreenDetail, ScreenConfig:
		return true
	}
	return false
}

// selectedEvent resolves the current selection. A stale id (event
// deleted meanwhile) resolves to nothing, which Update treats as "no
// selection" and redirects to the list.
func (m Model) selectedEvent() (models.Event, bool) {
	if m.selectedID == "" {
		return models.Event{}, false
	}
	return m.repo.Get(m.selectedID)
}
