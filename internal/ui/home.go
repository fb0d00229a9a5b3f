package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/skyline/internal/carousel"
	"github.com/gravitrone/skyline/internal/catalog"
	"github.com/gravitrone/skyline/internal/ui/components"
)

type homeLoadedMsg struct {
	banners  []catalog.Banner
	featured []catalog.Project
}

const featuredCount = 3

// HomeModel shows the hero carousel and featured projects.
type HomeModel struct {
	env
	banners  []catalog.Banner
	featured []catalog.Project

	// slides is live only while mounted.
	slides  carousel.Model
	mounted bool
}

// NewHomeModel creates the home tab.
func NewHomeModel(e env) HomeModel {
	return HomeModel{env: e}
}

func (m HomeModel) Init() tea.Cmd {
	return m.load
}

func (m HomeModel) load() tea.Msg {
	ctx := context.Background()
	banners, err := m.repo.Banners(ctx)
	if err != nil {
		return errMsg{fmt.Errorf("load banners: %w", err)}
	}
	projects, err := m.repo.Projects(ctx)
	if err != nil {
		return errMsg{fmt.Errorf("load projects: %w", err)}
	}
	return homeLoadedMsg{banners: banners, featured: catalog.Featured(projects, featuredCount)}
}

func (m HomeModel) Update(msg tea.Msg) (HomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case homeLoadedMsg:
		m = m.Unmount()
		m.banners = msg.banners
		m.featured = msg.featured
		m.slides = m.newCarousel(len(msg.banners))
		m.mounted = true
		return m, m.slides.Init()
	case carousel.TickMsg, carousel.SettledMsg, tea.KeyMsg:
		if !m.mounted {
			return m, nil
		}
		var cmd tea.Cmd
		m.slides, cmd = m.slides.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Unmount disposes the carousel.
func (m HomeModel) Unmount() HomeModel {
	if m.mounted {
		m.slides = m.slides.Dispose()
		m.mounted = false
	}
	return m
}

// wantsDigits reports whether digit keys jump slides instead of switching tabs.
func (m HomeModel) wantsDigits() bool {
	return m.mounted && m.slides.Controls()
}

func (m HomeModel) View() string {
	if !m.mounted {
		return components.Indent(components.CenterLine(m.styles.Muted.Render("Loading..."), m.width), 1)
	}

	var sections []string
	if len(m.banners) == 0 {
		sections = append(sections, components.TitledBox(m.styles, "Home", m.styles.Muted.Render("No banners yet. Run `skyline seed` to load the sample site."), m.width))
	} else {
		slides := make([]carousel.Slide, len(m.banners))
		for i, b := range m.banners {
			slides[i] = carousel.Slide{
				Title:       components.SanitizeOneLine(b.Title),
				Subtitle:    components.SanitizeOneLine(b.Subtitle),
				Description: components.SanitizeText(b.Description),
				Image:       components.SanitizeOneLine(b.Image),
				CTA:         components.SanitizeOneLine(b.CTA.Label),
			}
		}
		sections = append(sections, carousel.NewBanner(slides, m.styles).View(m.slides, components.BoxWidth(m.width)))
	}

	if len(m.featured) > 0 {
		rows := make([]string, 0, len(m.featured))
		for _, p := range m.featured {
			rows = append(rows, m.styles.Selected.Render("▸ "+components.SanitizeOneLine(p.Name))+"  "+
				m.styles.Muted.Render(strings.Join(nonEmpty(p.Location, p.Status, p.Price), " · ")))
		}
		sections = append(sections, components.TitledBox(m.styles, "Featured", strings.Join(rows, "\n"), m.width))
	}
	return components.Indent(strings.Join(sections, "\n\n"), 1)
}

func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = components.SanitizeOneLine(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
