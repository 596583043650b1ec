// ABOUTME: TUI subcommand
// ABOUTME: Starts the full-screen terminal interface
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/suresphere/atlas/store"
	"github.com/suresphere/atlas/tui"
)

// TUICommand starts the interactive terminal interface.
func TUICommand(s *store.Store) error {
	program := tea.NewProgram(tui.NewModel(s), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI failed: %w", err)
	}
	return nil
}
