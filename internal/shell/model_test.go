package shell

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/foundry-code/console/internal/session"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func TestViewRendersAllRegions(t *testing.T) {
	m := newModel(newState(), zaptest.NewLogger(t))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	m, _ = update(t, m, runes("draft"))

	view := ansi.Strip(m.View())

	assert.Contains(t, view, "Welcome")
	assert.Contains(t, view, "Ready for commands.")
	assert.Contains(t, view, "> draft")
	assert.Contains(t, view, "execute command")
	assert.Equal(t, 20, lipgloss.Height(view))
}

func TestPastedLinesKeepFrameHeight(t *testing.T) {
	m := newModel(newState(), zaptest.NewLogger(t))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 20})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("one\ntwo\nthree"), Paste: true})

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "> one two three")
	assert.Equal(t, 20, lipgloss.Height(view))
}

func TestQuitLogsEffect(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := newModel(newState(), zap.New(core))
	m, _ = update(t, m, runes("/exit"))
	_, cmd := update(t, m, keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)

	submitted := logs.FilterMessage("line submitted").All()
	require.Len(t, submitted, 1)
	assert.Equal(t, "quit", submitted[0].ContextMap()["effect"])

	quit := logs.FilterMessage("console quit").All()
	require.Len(t, quit, 1)
	assert.Equal(t, "quit", quit[0].ContextMap()["effect"])
	assert.Equal(t, "enter", quit[0].ContextMap()["key"])
}

func TestViewShowsSubmittedLines(t *testing.T) {
	m := newModel(newState(), zaptest.NewLogger(t))
	m, _ = update(t, m, runes("hello"))
	m, cmd := update(t, m, keyOf(tea.KeyEnter))
	assert.Nil(t, cmd)

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "> hello")
	assert.Contains(t, view, "You said: hello")
}

func TestOutputFollowsNewestEntry(t *testing.T) {
	m := newModel(newState(), zaptest.NewLogger(t))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 12})

	for i := 0; i < 20; i++ {
		m, _ = update(t, m, runes("line"))
		m, _ = update(t, m, keyOf(tea.KeyEnter))
	}
	m, _ = update(t, m, runes("last"))
	m, _ = update(t, m, keyOf(tea.KeyEnter))

	assert.True(t, m.output.AtBottom())
	assert.Contains(t, ansi.Strip(m.View()), "You said: last")
}

func TestExitReturnsQuit(t *testing.T) {
	m := newModel(newState(), zaptest.NewLogger(t))
	m, _ = update(t, m, runes("/exit"))
	m, cmd := update(t, m, keyOf(tea.KeyEnter))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.state.Terminated())
	assert.Equal(t, "", m.View())
}

func TestEscReturnsQuit(t *testing.T) {
	m := newModel(newState(), zaptest.NewLogger(t))
	_, cmd := update(t, m, keyOf(tea.KeyEsc))

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestResizeTracksLayout(t *testing.T) {
	m := newModel(newState(), zaptest.NewLogger(t))
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.Equal(t, 100, m.layout.Width)
	assert.Equal(t, m.layout.InnerWidth(), m.output.Width)
	assert.Equal(t, m.layout.OutputInnerHeight(), m.output.Height)
}

func TestRunScriptedSession(t *testing.T) {
	st := session.New("Welcome", nil)
	input := strings.NewReader("hi\r/exit\r")

	err := Run(st, zaptest.NewLogger(t),
		tea.WithInput(input),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
		tea.WithoutRenderer(),
	)
	require.NoError(t, err)

	assert.True(t, st.Terminated())
	want := []string{"> hi", "You said: hi", "> /exit", "Goodbye!"}
	if diff := cmp.Diff(want, st.History()); diff != "" {
		t.Errorf("history mismatch (-want +got):\n%s", diff)
	}
}
