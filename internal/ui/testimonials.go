package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/skyline/internal/catalog"
	"github.com/gravitrone/skyline/internal/ui/components"
)

type testimonialsLoadedMsg struct{ items []catalog.Testimonial }

// TestimonialsModel shows customer quotes a page at a time.
type TestimonialsModel struct {
	env
	loaded bool
	items  []catalog.Testimonial
	pages  paginator.Model
}

// NewTestimonialsModel creates the testimonials tab with perPage quotes per page.
func NewTestimonialsModel(e env, perPage int) TestimonialsModel {
	p := paginator.New()
	p.Type = paginator.Dots
	p.PerPage = max(perPage, 1)
	return TestimonialsModel{env: e, pages: p}
}

func (m TestimonialsModel) Init() tea.Cmd {
	return m.load
}

func (m TestimonialsModel) load() tea.Msg {
	items, err := m.repo.Testimonials(context.Background())
	if err != nil {
		return errMsg{fmt.Errorf("load testimonials: %w", err)}
	}
	return testimonialsLoadedMsg{items: items}
}

func (m TestimonialsModel) Update(msg tea.Msg) (TestimonialsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case testimonialsLoadedMsg:
		m.loaded = true
		m.items = msg.items
		m.pages.SetTotalPages(len(msg.items))
		if m.pages.Page >= m.pages.TotalPages {
			m.pages.Page = max(m.pages.TotalPages-1, 0)
		}
		return m, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		m.pages, cmd = m.pages.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Page returns the zero-based page shown.
func (m TestimonialsModel) Page() int {
	return m.pages.Page
}

func (m TestimonialsModel) View() string {
	if !m.loaded {
		return components.Indent(components.CenterLine(m.styles.Muted.Render("Loading testimonials..."), m.width), 1)
	}
	if len(m.items) == 0 {
		return components.Indent(components.TitledBox(m.styles, "Testimonials", m.styles.Muted.Render("No testimonials yet."), m.width), 1)
	}

	start, end := m.pages.GetSliceBounds(len(m.items))
	quotes := make([]string, 0, end-start)
	for _, t := range m.items[start:end] {
		lines := []string{
			m.styles.Body.Italic(true).Render("“" + components.SanitizeOneLine(t.Quote) + "”"),
			m.styles.Selected.Render("— "+components.SanitizeOneLine(t.Name)) + "  " + m.styles.Muted.Render(components.SanitizeOneLine(t.Project)),
		}
		if t.Rating > 0 {
			lines = append(lines, m.styles.Accented.Render(stars(t.Rating)))
		}
		quotes = append(quotes, strings.Join(lines, "\n"))
	}

	content := strings.Join(quotes, "\n\n")
	if m.pages.TotalPages > 1 {
		dots := m.pages
		dots.ActiveDot = m.styles.Selected.Render("●")
		dots.InactiveDot = m.styles.Muted.Render("○")
		content += "\n\n" + dots.View()
	}
	return components.Indent(components.TitledBox(m.styles, "Testimonials", content, m.width), 1)
}

func stars(rating int) string {
	rating = min(max(rating, 0), 5)
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}
