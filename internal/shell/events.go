package shell

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/foundry-code/console/internal/commands"
	"github.com/foundry-code/console/internal/session"
	"github.com/foundry-code/console/internal/ui"
)

// Effect reports what a key event did to the session.
type Effect int

const (
	EffectNone Effect = iota
	EffectEdit
	EffectSubmit
	EffectQuit
)

func (e Effect) String() string {
	switch e {
	case EffectEdit:
		return "edit"
	case EffectSubmit:
		return "submit"
	case EffectQuit:
		return "quit"
	}
	return "none"
}

// HandleKey applies one key event to st using the default bindings.
func HandleKey(st *session.State, msg tea.KeyMsg) Effect {
	return DefaultKeyMap().Handle(st, msg)
}

// Handle applies one key event to st. Escape and ctrl+c terminate the
// session, enter submits a non-empty line, and the editing keys and
// printable characters act on the input buffer. Everything else is ignored.
func (k KeyMap) Handle(st *session.State, msg tea.KeyMsg) Effect {
	switch {
	case key.Matches(msg, k.Quit), key.Matches(msg, k.Interrupt):
		st.Quit()
		return EffectQuit
	case key.Matches(msg, k.Submit):
		return submit(st)
	case key.Matches(msg, k.Backspace):
		st.Input.Backspace()
		return EffectEdit
	case key.Matches(msg, k.Left):
		st.Input.Left()
		return EffectEdit
	case key.Matches(msg, k.Right):
		st.Input.Right()
		return EffectEdit
	}

	switch msg.Type {
	case tea.KeyRunes:
		runes := printable(msg.Runes)
		if len(runes) == 0 {
			return EffectNone
		}
		st.Input.Append(runes)
		return EffectEdit
	case tea.KeySpace:
		st.Input.Insert(' ')
		return EffectEdit
	}
	return EffectNone
}

// printable keeps the input on one line: line breaks and tabs from a paste
// become spaces and other control runes are dropped.
func printable(runes []rune) []rune {
	out := make([]rune, 0, len(runes))
	for _, r := range runes {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			out = append(out, ' ')
		case unicode.IsPrint(r):
			out = append(out, r)
		}
	}
	return out
}

// submit records the line and its result in history and clears the input.
// An empty line is ignored.
func submit(st *session.State) Effect {
	if st.Input.IsEmpty() {
		return EffectNone
	}

	line := st.Input.Value()
	st.AddOutput(ui.EchoMarker + line)
	st.AddOutput(commands.Execute(line))
	if commands.IsExit(line) {
		st.Quit()
	}
	st.Input.Clear()

	if st.Terminated() {
		return EffectQuit
	}
	return EffectSubmit
}
