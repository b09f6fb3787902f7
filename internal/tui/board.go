package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"fitfive/internal/engine"
)

// RunBoard opens the interactive day view for the given YYYY-MM-DD date.
func RunBoard(ctx context.Context, svc *engine.Service, date string, out io.Writer) error {
	m := newDayModel(ctx, svc, date)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
