package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tifan9/termfolio/internal/terminal"
)

// Run starts the interactive program and blocks until the user quits or ctx
// is cancelled. Pending effects are abandoned with the context.
func Run(ctx context.Context, dispatcher *terminal.Dispatcher, session *terminal.Session, opts Options, progOpts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := NewModel(ctx, dispatcher, session, opts)
	progOpts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, progOpts...)
	if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}
