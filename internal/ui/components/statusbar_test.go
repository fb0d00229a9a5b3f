package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHintIncludesKeyAndDesc(t *testing.T) {
	out := Hint(testStyles, "↑/↓", "Scroll")
	assert.Contains(t, out, "Scroll")
	assert.Contains(t, out, "↑/↓")
}

func TestStatusBarRendersHints(t *testing.T) {
	out := StatusBar([]string{Hint(testStyles, "q", "Quit")}, 0)
	assert.Contains(t, out, "Quit")
	assert.Contains(t, out, "q")
}

func TestStatusBarWrapsToWidth(t *testing.T) {
	hints := []string{
		Hint(testStyles, "1-7", "Tabs"),
		Hint(testStyles, "?", "Help"),
		Hint(testStyles, "q", "Quit"),
	}
	out := StatusBar(hints, 30)
	assert.Contains(t, SanitizeText(out), "Help")
}

func TestWrapSegmentsWrapsWhenNarrow(t *testing.T) {
	rows := wrapSegments([]string{"123456", "abcdef", "ghijkl"}, 10)
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.LessOrEqual(t, lipgloss.Width(row), 10)
	}
}
