package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/emberhq/ember/internal/cli"
	"github.com/emberhq/ember/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	p := tea.NewProgram(tui.NewModel(ctx.Store, ctx.Engine), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
