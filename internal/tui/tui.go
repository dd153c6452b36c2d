// Package tui implements the interactive countdown interface: a single
// bubbletea model dispatching over the active screen.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"horizon/internal/gateway"
	"horizon/internal/repository"
	"horizon/internal/storage"
)

// Run starts the full-screen program and blocks until the user quits.
func Run(repo *repository.Repository, store storage.Provider, gw *gateway.Gateway) error {
	p := tea.NewProgram(NewModel(repo, store, gw), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
