package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/skyline/internal/theme"
)

// TableColumn defines a single column for TableGrid.
//
// Width is the visual width of the column content (excluding separators).
// Align controls how cell text is aligned within the column.
type TableColumn struct {
	Header string
	Width  int
	Align  lipgloss.Position
}

const tableGridLeftOffset = 2

var (
	gridLineStyle = lipgloss.NewStyle().
			Foreground(theme.ColorBorder)
	gridActiveBackground = lipgloss.Color("#1f2530")
)

// TableGrid renders rows under a header using the rounded border glyphs of the
// box components. activeRow is a 0-based index into rows; pass -1 to disable
// highlighting.
//
// The returned string has a visual width equal to tableWidth.
// Callers should pass a tableWidth that fits inside a box content area
// (typically components.BoxContentWidth(termWidth)).
func TableGrid(st theme.Styles, columns []TableColumn, rows [][]string, tableWidth int, activeRow int) string {
	if tableWidth <= 0 {
		return ""
	}
	if len(columns) == 0 {
		return padRight("", tableWidth)
	}

	border := lipgloss.RoundedBorder()
	cols := fitGridColumns(columns, tableWidth)

	out := make([]string, 0, len(rows)+2)
	out = append(out, renderGridRow(st, cols, headerCells(cols), border.Left, tableWidth, true, false))
	out = append(out, renderGridRule(cols, border.Middle, border.Top, tableWidth))
	for i, row := range rows {
		out = append(out, renderGridRow(st, cols, row, border.Left, tableWidth, false, i == activeRow))
	}
	return strings.Join(out, "\n")
}

func headerCells(columns []TableColumn) []string {
	hdr := make([]string, len(columns))
	for i, c := range columns {
		hdr[i] = SanitizeOneLine(c.Header)
	}
	return hdr
}

// fitGridColumns gives the last column whatever width is left over so the
// table fills tableWidth exactly.
func fitGridColumns(columns []TableColumn, tableWidth int) []TableColumn {
	fitted := make([]TableColumn, len(columns))
	copy(fitted, columns)

	contentWidth := max(tableWidth-tableGridLeftOffset, len(fitted))
	sum := 0
	for i := range fitted {
		fitted[i].Width = max(fitted[i].Width, 1)
		sum += fitted[i].Width
	}
	// n columns => n-1 single-width separators.
	expected := sum + len(fitted) - 1
	last := &fitted[len(fitted)-1]
	last.Width = max(last.Width+contentWidth-expected, 1)
	return fitted
}

func renderGridRow(st theme.Styles, columns []TableColumn, cells []string, sep string, tableWidth int, header bool, active bool) string {
	sepStyle := gridLineStyle
	cellStyle := st.Body
	switch {
	case header:
		cellStyle = st.Label(false)
	case active:
		sepStyle = sepStyle.Background(gridActiveBackground)
		cellStyle = st.Selected.Background(gridActiveBackground)
	}
	sepStyled := sepStyle.Inline(true).Render(sep)

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", tableGridLeftOffset))
	for i, col := range columns {
		if i > 0 {
			b.WriteString(sepStyled)
		}
		text := ""
		if i < len(cells) {
			text = cells[i]
		}
		// Inline keeps this cell as exactly one rendered line.
		b.WriteString(cellStyle.Inline(true).Render(renderGridCell(text, col.Width, col.Align)))
	}
	return padRight(b.String(), tableWidth)
}

func renderGridRule(columns []TableColumn, cross, horiz string, tableWidth int) string {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", tableGridLeftOffset))
	for i, col := range columns {
		b.WriteString(strings.Repeat(horiz, col.Width))
		if i < len(columns)-1 {
			b.WriteString(cross)
		}
	}
	return gridLineStyle.Inline(true).Render(padRight(b.String(), tableWidth))
}

func renderGridCell(text string, width int, align lipgloss.Position) string {
	clamped := ClampTextWidth(text, width)
	pad := width - lipgloss.Width(clamped)
	if pad <= 0 {
		return clamped
	}
	switch align {
	case lipgloss.Right:
		return strings.Repeat(" ", pad) + clamped
	case lipgloss.Center:
		left := pad / 2
		return strings.Repeat(" ", left) + clamped + strings.Repeat(" ", pad-left)
	default:
		return clamped + strings.Repeat(" ", pad)
	}
}
