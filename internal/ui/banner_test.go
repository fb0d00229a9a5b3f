package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gravitrone/skyline/internal/catalog"
	"github.com/gravitrone/skyline/internal/theme"
	"github.com/gravitrone/skyline/internal/ui/components"
)

func TestRenderBannerIncludesCompanyAndTagline(t *testing.T) {
	st := theme.New(theme.Default())
	out := RenderBanner(st, catalog.Settings{Company: "Sky\x1b]0;x\x07line", Tagline: "Homes built around you"})
	assert.NotContains(t, out, "\x1b]")

	clean := components.SanitizeText(out)
	assert.Contains(t, clean, "S K Y L I N E")
	assert.Contains(t, clean, "Homes built around you")
	assert.Contains(t, clean, "─")
}

func TestRenderFooterListsContactAndLinks(t *testing.T) {
	st := theme.New(theme.Default())
	out := components.SanitizeText(renderFooter(st, catalog.Settings{
		Company:     "Skyline Developers",
		Phone:       "+91 80 4000 1200",
		FooterLinks: []catalog.Link{{Label: "Careers", URL: "https://skyline.example/careers"}},
	}, 120))

	assert.Contains(t, out, "Skyline Developers · +91 80 4000 1200")
	assert.Contains(t, out, "Careers https://skyline.example/careers")
}
