package shell

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/foundry-code/console/internal/commands"
	"github.com/foundry-code/console/internal/session"
	"github.com/foundry-code/console/internal/ui"
)

type model struct {
	state  *session.State
	keys   KeyMap
	help   help.Model
	output viewport.Model
	layout ui.Layout
	log    *zap.Logger
}

func newModel(st *session.State, log *zap.Logger) model {
	m := model{
		state:  st,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		output: viewport.New(0, 0),
		log:    log,
	}
	m.resize(ui.DefaultWidth, ui.DefaultHeight)
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	line := m.state.Input.Value()
	historyLen := len(m.state.History())

	effect := m.keys.Handle(m.state, msg)

	if len(m.state.History()) != historyLen {
		m.log.Debug("line submitted",
			zap.String("line", line),
			zap.Bool("system", commands.IsSystem(line)),
			zap.Stringer("effect", effect))
		m.refreshOutput()
	}

	if effect == EffectNone {
		// Keys the session ignores may still scroll the output.
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	}

	if m.state.Terminated() {
		m.log.Info("console quit",
			zap.String("key", msg.String()),
			zap.Stringer("effect", effect))
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) resize(width, height int) {
	m.layout = ui.NewLayout(width, height)
	m.output.Width = m.layout.InnerWidth()
	m.output.Height = m.layout.OutputInnerHeight()
	m.help.Width = m.layout.Width - 1
	m.refreshOutput()
}

// refreshOutput rewraps the history and scrolls to the newest entry.
func (m *model) refreshOutput() {
	m.output.SetContent(ui.RenderHistory(m.state.History(), m.output.Width))
	m.output.GotoBottom()
}

func (m model) View() string {
	if m.state.Terminated() {
		return ""
	}

	text, cursor := m.state.InputLine()
	return ui.Compose(
		m.layout.RenderStatus(m.state.Status()),
		m.layout.RenderOutput(m.output.View()),
		m.layout.RenderInput(text, cursor),
		m.layout.RenderFooter(m.help.View(m.keys)),
	)
}
