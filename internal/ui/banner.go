package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/skyline/internal/catalog"
	"github.com/gravitrone/skyline/internal/theme"
	"github.com/gravitrone/skyline/internal/ui/components"
)

// RenderBanner returns the letter-spaced company name over its tagline.
func RenderBanner(st theme.Styles, s catalog.Settings) string {
	name := strings.ToUpper(components.SanitizeOneLine(s.Company))
	title := st.Title.Foreground(st.Primary).Render(strings.Join(strings.Split(name, ""), " "))

	subtitleText := components.SanitizeOneLine(s.Tagline)
	blockWidth := max(lipgloss.Width(title), lipgloss.Width(subtitleText))

	center := lipgloss.NewStyle().Width(blockWidth).Align(lipgloss.Center)
	lines := []string{center.Render(title)}
	if subtitleText != "" {
		lines = append(lines, center.Inherit(st.Muted).Render(subtitleText))
	}
	underline := center.Foreground(theme.ColorBorder).Render(strings.Repeat("─", blockWidth))
	lines = append(lines, underline)

	return "\n" + strings.Join(lines, "\n") + "\n"
}

// renderFooter returns the contact line and footer links from settings.
func renderFooter(st theme.Styles, s catalog.Settings, width int) string {
	var contact []string
	for _, part := range []string{s.Company, s.Phone, s.Email, s.Address} {
		if part = components.SanitizeOneLine(part); part != "" {
			contact = append(contact, part)
		}
	}
	lines := []string{st.Muted.Render(strings.Join(contact, " · "))}

	if len(s.FooterLinks) > 0 {
		links := make([]string, 0, len(s.FooterLinks))
		for _, l := range s.FooterLinks {
			links = append(links, st.Accented.Render(components.SanitizeOneLine(l.Label))+" "+
				st.Muted.Render(components.SanitizeOneLine(l.URL)))
		}
		lines = append(lines, strings.Join(links, "   "))
	}
	return centerBlockUniform(strings.Join(lines, "\n"), width)
}
