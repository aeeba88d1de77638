// Package commands routes a submitted console line either to one of the
// built-in system commands or to the free-form input handler.
//
// Routing never fails: an unknown command is answered with an ordinary
// result string, the same as a known one.
package commands

import (
	"fmt"
	"strings"
)

// Prefix marks a line as a system command.
const Prefix = "/"

// Built-in command names.
const (
	Help   = "help"
	Clear  = "clear"
	Exit   = "exit"
	Login  = "login"
	Logout = "logout"
)

// Fixed responses.
const (
	ClearMessage  = "Screen cleared (simulated)"
	ExitMessage   = "Goodbye!"
	LoginMessage  = "Login functionality not yet implemented."
	LogoutMessage = "Logout functionality not yet implemented."
	EchoPrefix    = "You said: "
)

// Builtin describes a system command for the help listing.
type Builtin struct {
	Name    string
	Summary string
}

var builtins = []Builtin{
	{Name: Help, Summary: "Show this help message"},
	{Name: Clear, Summary: "Clear the screen"},
	{Name: Exit, Summary: "Exit the application"},
	{Name: Login, Summary: "Login to system (coming soon)"},
	{Name: Logout, Summary: "Logout from system (coming soon)"},
}

// Builtins returns the built-in commands in listing order.
func Builtins() []Builtin {
	out := make([]Builtin, len(builtins))
	copy(out, builtins)
	return out
}

// HelpLines returns the help message, one entry per line.
func HelpLines() []string {
	lines := []string{"Available System Commands (prefix with " + Prefix + "):"}
	for _, b := range builtins {
		lines = append(lines, fmt.Sprintf("  %-10s- %s", Prefix+b.Name, b.Summary))
	}
	return append(lines,
		"",
		"💡 Tips:",
		"  • Use arrow keys (←→) to move cursor",
		"  • Press Enter to execute commands",
		"  • Press Esc to exit anytime",
		"",
		"Type any message or use system commands above to get started!",
	)
}

// HelpText returns the help message as a single string.
func HelpText() string {
	return strings.Join(HelpLines(), "\n")
}

// Execute classifies line and returns the text to display for it. A blank
// line yields "".
func Execute(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return ""
	}
	if name, ok := systemCommand(trimmed); ok {
		return executeSystem(name)
	}
	return handleUserInput(trimmed)
}

// IsSystem reports whether line is addressed to the system command table.
func IsSystem(line string) bool {
	_, ok := systemCommand(strings.TrimSpace(line))
	return ok
}

// IsExit reports whether line is the exit command.
func IsExit(line string) bool {
	return strings.TrimSpace(line) == Prefix+Exit
}

func systemCommand(trimmed string) (string, bool) {
	if !strings.HasPrefix(trimmed, Prefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(trimmed, Prefix)), true
}

func executeSystem(name string) string {
	switch name {
	case Help:
		return HelpText()
	case Clear:
		return ClearMessage
	case Exit:
		return ExitMessage
	case Login:
		return LoginMessage
	case Logout:
		return LogoutMessage
	}
	return fmt.Sprintf("Unknown system command: %s%s\nType %s%s for available commands.", Prefix, name, Prefix, Help)
}

// handleUserInput answers free-form input. It only echoes for now.
func handleUserInput(input string) string {
	return EchoPrefix + input
}
