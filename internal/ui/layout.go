package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// Fixed region heights, borders included. The output region takes
// whatever is left.
const (
	StatusHeight = 3
	InputHeight  = 3
	FooterHeight = 1

	// minOutputHeight keeps the output border drawable on tiny terminals.
	minOutputHeight = 2
)

// Frame size used until the terminal reports its real size.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// EchoMarker prefixes history lines that repeat submitted input.
const EchoMarker = "> "

// Layout partitions a terminal of Width x Height cells into the status,
// output, input and footer regions.
type Layout struct {
	Width  int
	Height int
}

// NewLayout returns a layout for the given size, falling back to the
// default frame for unknown dimensions.
func NewLayout(width, height int) Layout {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return Layout{Width: width, Height: height}
}

// InnerWidth is the number of content cells inside a bordered panel.
func (l Layout) InnerWidth() int {
	return max(l.Width-PanelStyle.GetHorizontalFrameSize(), 1)
}

// OutputHeight is the height of the output region, borders included.
func (l Layout) OutputHeight() int {
	return max(l.Height-StatusHeight-InputHeight-FooterHeight, minOutputHeight)
}

// OutputInnerHeight is the number of history rows visible at once.
func (l Layout) OutputInnerHeight() int {
	return l.OutputHeight() - PanelStyle.GetVerticalFrameSize()
}

func (l Layout) panel() lipgloss.Style {
	return PanelStyle.Width(max(l.Width-PanelStyle.GetHorizontalBorderSize(), 1))
}

// RenderStatus draws the status region. Long messages are truncated.
func (l Layout) RenderStatus(status string) string {
	text := runewidth.Truncate(status, l.InnerWidth(), "…")
	return l.panel().Height(StatusHeight - 2).Render(StatusStyle.Render(text))
}

// RenderOutput draws the output region around already-sized content.
func (l Layout) RenderOutput(content string) string {
	return l.panel().Height(l.OutputInnerHeight()).Render(content)
}

// RenderFooter draws the single instruction line.
func (l Layout) RenderFooter(instructions string) string {
	return lipgloss.NewStyle().
		MaxWidth(l.Width).
		MaxHeight(FooterHeight).
		Render(" " + instructions)
}

// Compose stacks the four regions into a frame.
func Compose(status, output, input, footer string) string {
	return lipgloss.JoinVertical(lipgloss.Left, status, output, input, footer)
}

// RenderHistory wraps every history entry to width cells and joins them
// into viewport content. Echoed input lines are highlighted.
func RenderHistory(lines []string, width int) string {
	width = max(width, 1)

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		wrapped := wrap.String(wordwrap.String(line, width), width)
		if strings.HasPrefix(line, EchoMarker) {
			wrapped = EchoStyle.Render(wrapped)
		}
		out = append(out, wrapped)
	}
	return strings.Join(out, "\n")
}
