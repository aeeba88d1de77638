package shell

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the console's key bindings. Printable characters are not
// bound; any rune key not matched here is inserted into the input line.
type KeyMap struct {
	Quit      key.Binding
	Interrupt key.Binding
	Submit    key.Binding
	Backspace key.Binding
	Left      key.Binding
	Right     key.Binding
}

// DefaultKeyMap returns the bindings used by the console.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "execute command"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←→", "move cursor"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
		),
	}
}

// ShortHelp implements help.KeyMap for the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Left, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
