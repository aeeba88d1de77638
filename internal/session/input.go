package session

// InputBuffer manages the line being composed in the console. Text is held
// as runes so the cursor always sits on a codepoint boundary.
type InputBuffer struct {
	runes  []rune
	cursor int
}

// Value returns the buffer contents.
func (b *InputBuffer) Value() string {
	return string(b.runes)
}

// Runes returns a copy of the buffer contents.
func (b *InputBuffer) Runes() []rune {
	out := make([]rune, len(b.runes))
	copy(out, b.runes)
	return out
}

// Cursor returns the cursor offset in runes.
func (b *InputBuffer) Cursor() int {
	return b.cursor
}

// Len returns the number of runes in the buffer.
func (b *InputBuffer) Len() int {
	return len(b.runes)
}

// IsEmpty reports whether the buffer holds no text.
func (b *InputBuffer) IsEmpty() bool {
	return len(b.runes) == 0
}

// Insert adds r at the cursor and advances the cursor past it.
func (b *InputBuffer) Insert(r rune) {
	b.runes = append(b.runes, 0)
	copy(b.runes[b.cursor+1:], b.runes[b.cursor:])
	b.runes[b.cursor] = r
	b.cursor++
}

// Append inserts runes at the cursor in order.
func (b *InputBuffer) Append(runes []rune) {
	for _, r := range runes {
		b.Insert(r)
	}
}

// Backspace removes the character before the cursor.
func (b *InputBuffer) Backspace() {
	if b.cursor == 0 {
		return
	}
	b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
	b.cursor--
}

// Left moves the cursor one character left.
func (b *InputBuffer) Left() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// Right moves the cursor one character right.
func (b *InputBuffer) Right() {
	if b.cursor < len(b.runes) {
		b.cursor++
	}
}

// SetValue replaces the contents and puts the cursor at the end.
func (b *InputBuffer) SetValue(s string) {
	b.runes = []rune(s)
	b.cursor = len(b.runes)
}

// Clear resets the buffer.
func (b *InputBuffer) Clear() {
	b.runes = nil
	b.cursor = 0
}
