package session

import "github.com/google/uuid"

// State is the mutable console session: the line being edited, the output
// history, the status banner and the termination flag. A single State is
// owned by the run loop and handed to every handler by pointer.
type State struct {
	ID    string
	Input InputBuffer

	history    []string
	status     string
	terminated bool
}

// New creates a session with an empty input line, the given status and
// history seeded with banner.
func New(status string, banner []string) *State {
	history := make([]string, len(banner))
	copy(history, banner)
	return &State{
		ID:      uuid.NewString(),
		history: history,
		status:  status,
	}
}

// History returns the output log in chronological order. History grows
// without bound for the lifetime of the session.
func (s *State) History() []string {
	return s.history
}

// AddOutput appends a line to the history.
func (s *State) AddOutput(line string) {
	s.history = append(s.history, line)
}

// Status returns the current status message.
func (s *State) Status() string {
	return s.status
}

// SetStatus replaces the status message.
func (s *State) SetStatus(status string) {
	s.status = status
}

// Quit marks the session as terminated. It cannot be undone.
func (s *State) Quit() {
	s.terminated = true
}

// Terminated reports whether the session has ended.
func (s *State) Terminated() bool {
	return s.terminated
}

// InputLine returns the input text and the cursor offset in runes.
func (s *State) InputLine() (string, int) {
	return s.Input.Value(), s.Input.Cursor()
}
