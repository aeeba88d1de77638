// Package shell runs the interactive console: a bubbletea program that
// feeds key events to the session dispatcher and redraws after each one.
package shell

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/foundry-code/console/internal/session"
)

// Run drives st until the session terminates. The terminal is switched to
// raw mode on the alternate screen for the duration and restored on every
// exit path, including a panic inside the program.
func Run(st *session.State, log *zap.Logger, opts ...tea.ProgramOption) error {
	log = log.With(zap.String("session", st.ID))
	log.Info("console started")

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(newModel(st, log), opts...)
	if _, err := p.Run(); err != nil {
		log.Error("console failed", zap.Error(err))
		return fmt.Errorf("run console: %w", err)
	}

	log.Info("console stopped", zap.Int("history", len(st.History())))
	return nil
}
