package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/skyline/internal/theme"
)

var testStyles = theme.New(theme.Default())

func TestBoxWidthBounds(t *testing.T) {
	assert.Equal(t, 40, boxWidth(10))
	assert.Equal(t, 80, boxWidth(200))
	assert.Equal(t, 70, boxWidth(100))
	assert.Equal(t, 0, boxWidth(0))
}

func TestBoxContentWidth(t *testing.T) {
	assert.Equal(t, 64, BoxContentWidth(100))
	assert.Equal(t, 0, BoxContentWidth(0))
}

func TestBoxNarrowTerminalClampsWidth(t *testing.T) {
	out := TitledBox(testStyles, "Projects", "line", 20)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 20)
	}
}

func TestTitledBoxIncludesTitle(t *testing.T) {
	out := TitledBox(testStyles, "My Title", "Content", 80)
	assert.Contains(t, out, "My Title")
	assert.Contains(t, out, "Content")
}

func TestTitledBoxEmptyTitleFallsBack(t *testing.T) {
	out := TitledBox(testStyles, "", "Content", 80)
	assert.Contains(t, out, "Content")
	assert.NotContains(t, out, "[ ")
}

func TestCardFocusKeepsWidth(t *testing.T) {
	focused := Card(testStyles, "hello\nworld", 60, true)
	plain := Card(testStyles, "hello\nworld", 60, false)
	assert.Equal(t, lipgloss.Width(plain), lipgloss.Width(focused))
	assert.Contains(t, SanitizeText(focused), "hello")
}

func TestErrorBoxSanitizesMessage(t *testing.T) {
	out := ErrorBox("Error", "Something\x1b[2J broke", 80)
	assert.Contains(t, out, "Something broke")
	assert.NotContains(t, out, "\x1b[2J")
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", truncateRunes("hello", 0))
	assert.Equal(t, "he", truncateRunes("hello", 2))
	assert.Equal(t, "你", truncateRunes("你好", 1))
}

func TestClampTextWidthAddsEllipsis(t *testing.T) {
	assert.Equal(t, "hello", ClampTextWidth("hello", 10))
	assert.Equal(t, "hell…", ClampTextWidth("hello world", 5))
	assert.Equal(t, "a b", ClampTextWidth("a\nb", 0))
}

func TestTableClampsLongValues(t *testing.T) {
	rows := []TableRow{
		{Label: strings.Repeat("Label", 8), Value: strings.Repeat("value", 40)},
	}
	out := Table(testStyles, "Table", rows, 60)
	maxWidth := lipgloss.Width(strings.Split(Box("x", 60), "\n")[0])
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), maxWidth)
	}
}

func TestTableSkipsEmptyValues(t *testing.T) {
	out := SanitizeText(Table(testStyles, "Project", []TableRow{
		{Label: "Status", Value: "ongoing"},
		{Label: "Price", Value: ""},
	}, 80))
	assert.Contains(t, out, "Status")
	assert.NotContains(t, out, "Price")

	assert.Equal(t, "", Table(testStyles, "Empty", []TableRow{{Label: "x"}}, 80))
}

func TestInfoRowSanitizesLabelAndValue(t *testing.T) {
	out := InfoRow(testStyles, "na\u202Eme\x1b]0;evil\x07", "va\x1b[2Jlu\u202Ee")
	assert.NotContains(t, out, "\u202E")
	assert.NotContains(t, out, "\x1b]")
	assert.NotContains(t, out, "\x1b[2J")

	clean := SanitizeText(out)
	assert.Contains(t, clean, "name: value")
}

func TestIndentPreservesLineCountAndAddsPadding(t *testing.T) {
	out := Indent("a\nb\nc", 2)
	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 3)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "  "))
	}
}

func TestCenterLineAddsLeftPadding(t *testing.T) {
	out := CenterLine("hi", 80)
	pad := (safeBoxWidth(80) - lipgloss.Width("hi")) / 2
	assert.True(t, strings.HasPrefix(out, strings.Repeat(" ", pad)))
}

func TestBoxWidthNeverExceedsTerminal(t *testing.T) {
	assert.Equal(t, 30, BoxWidth(30))
	assert.Equal(t, 56, BoxWidth(80))
}
