package teaui

import (
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/weighbridge/pkg/archive"
	"tableflip.dev/weighbridge/pkg/ledger"
)

// Run starts the full-screen UI over the given session.
func Run(led *ledger.Ledger, arc archive.Archive, station, currency string) error {
	p := tea.NewProgram(New(led, arc, station, currency), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
