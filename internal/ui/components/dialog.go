package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/skyline/internal/theme"
)

var dialogStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(theme.ColorBorder).
	Padding(1, 2).
	Width(44)

// ConfirmDialog renders a yes/no confirmation.
func ConfirmDialog(st theme.Styles, title, message string) string {
	header := st.Title.Foreground(st.Primary).Render(title)
	body := st.Body.Render(message)
	hint := st.Muted.Render("\ny: confirm | n: cancel")
	return dialogStyle.Render(header + "\n\n" + body + hint)
}
