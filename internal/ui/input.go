package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Prompt is drawn ahead of the input text.
const Prompt = "> "

// RenderInput draws the input region with the cursor shown in reverse
// video. When the text is wider than the panel only the slice around the
// cursor is drawn.
func (l Layout) RenderInput(text string, cursor int) string {
	runes := []rune(text)
	cursor = min(max(cursor, 0), len(runes))

	avail := l.InnerWidth() - runewidth.StringWidth(Prompt)
	start, end := inputWindow(runes, cursor, avail)

	var b strings.Builder
	b.WriteString(DimStyle.Render(Prompt))
	b.WriteString(string(runes[start:cursor]))
	if cursor < len(runes) {
		b.WriteString(CursorStyle.Render(string(runes[cursor])))
		b.WriteString(string(runes[cursor+1 : end]))
	} else {
		b.WriteString(CursorStyle.Render(" "))
	}

	return l.panel().Render(b.String())
}

// inputWindow returns the rune range [start, end) that fits in width cells
// while keeping the cursor cell visible. When the cursor sits on a rune,
// end is always past it.
func inputWindow(runes []rune, cursor, width int) (int, int) {
	used := cursorWidth(runes, cursor)

	start := 0
	for i := cursor - 1; i >= 0; i-- {
		w := runewidth.RuneWidth(runes[i])
		if used+w > width {
			start = i + 1
			break
		}
		used += w
	}

	end := cursor
	if cursor < len(runes) {
		end++
	}
	for end < len(runes) {
		w := runewidth.RuneWidth(runes[end])
		if used+w > width {
			break
		}
		used += w
		end++
	}
	return start, end
}

func cursorWidth(runes []rune, cursor int) int {
	if cursor >= len(runes) {
		return 1
	}
	return max(runewidth.RuneWidth(runes[cursor]), 1)
}
