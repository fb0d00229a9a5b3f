package theme

import "github.com/charmbracelet/lipgloss"

// Fixed colors that are not part of the theme tokens.
var (
	ColorBackground = lipgloss.Color("#16161d")
	ColorMuted      = lipgloss.Color("#9ba0bf")
	ColorBorder     = lipgloss.Color("#273540")
	ColorSuccess    = lipgloss.Color("#3f866b")
	ColorError      = lipgloss.Color("#e06c75")
	ColorWarning    = lipgloss.Color("#c78854")
)

// Styles are the lipgloss styles derived from a Theme. Rebuild them with New
// whenever the theme changes.
type Styles struct {
	Theme Theme

	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Text      lipgloss.Color
	Heading   lipgloss.Color

	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Body        lipgloss.Style
	Muted       lipgloss.Style
	Accented    lipgloss.Style
	Selected    lipgloss.Style
	Normal      lipgloss.Style
	TabActive   lipgloss.Style
	TabInactive lipgloss.Style
	Badge       lipgloss.Style
	Button      lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
	Warning     lipgloss.Style
}

// New derives styles from t. t should already be normalized.
func New(t Theme) Styles {
	primary := lipgloss.Color(t.Primary)
	secondary := lipgloss.Color(t.Secondary)
	accent := lipgloss.Color(t.Accent)
	text := lipgloss.Color(t.Text)
	heading := lipgloss.Color(t.Heading)

	return Styles{
		Theme:     t,
		Primary:   primary,
		Secondary: secondary,
		Accent:    accent,
		Text:      text,
		Heading:   heading,

		Title: lipgloss.NewStyle().
			Foreground(heading).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(primary).
			Italic(true),
		Body: lipgloss.NewStyle().
			Foreground(text),
		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted),
		Accented: lipgloss.NewStyle().
			Foreground(accent),
		Selected: lipgloss.NewStyle().
			Foreground(primary).
			Bold(true),
		Normal: lipgloss.NewStyle().
			Foreground(text),
		TabActive: lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(primary).
			Bold(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1),
		Badge: lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(secondary).
			Bold(true).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(ColorBackground).
			Background(accent).
			Bold(true).
			Padding(0, 2),
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
	}
}

// Field returns the style for a form field given its focus state.
func (s Styles) Field(focused bool) lipgloss.Style {
	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if focused {
		return base.BorderForeground(s.Primary).Foreground(s.Heading)
	}
	return base.BorderForeground(ColorBorder).Foreground(s.Text)
}

// Card returns the style for a project or post card given its focus state.
func (s Styles) Card(focused bool) lipgloss.Style {
	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if focused {
		return base.BorderForeground(s.Accent)
	}
	return base.BorderForeground(ColorBorder)
}

// Label returns the style for a field label given its focus state.
func (s Styles) Label(focused bool) lipgloss.Style {
	if focused {
		return lipgloss.NewStyle().Foreground(s.Primary).Bold(true)
	}
	return lipgloss.NewStyle().Foreground(s.Secondary).Bold(true)
}
