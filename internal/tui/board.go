package tui

import (
	"context"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"blklauncher/internal/catalog"
	"blklauncher/internal/engine"
)

func RunBoard(ctx context.Context, svc *engine.Service, games []catalog.Game, out io.Writer) error {
	m := newBoardModel(ctx, svc, games)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
