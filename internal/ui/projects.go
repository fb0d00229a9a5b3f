package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/skyline/internal/carousel"
	"github.com/gravitrone/skyline/internal/catalog"
	"github.com/gravitrone/skyline/internal/ui/components"
)

type projectsLoadedMsg struct{ items []catalog.Project }

type projectsView int

const (
	projectsViewList projectsView = iota
	projectsViewDetail
)

var projectStatuses = []string{"", catalog.StatusOngoing, catalog.StatusCompleted, catalog.StatusUpcoming}

// ProjectsModel lists projects with filters and a detail view.
type ProjectsModel struct {
	env
	loaded   bool
	items    []catalog.Project
	filtered []catalog.Project
	filter   catalog.ProjectFilter
	list     *components.List

	querying bool
	query    textinput.Model

	view   projectsView
	detail *catalog.Project
	images carousel.Model
}

// NewProjectsModel creates the projects tab.
func NewProjectsModel(e env) ProjectsModel {
	q := textinput.New()
	q.Prompt = "/ "
	q.Placeholder = "name or location"
	q.CharLimit = 64
	return ProjectsModel{
		env:   e,
		list:  components.NewList(10),
		query: q,
	}
}

func (m ProjectsModel) Init() tea.Cmd {
	return m.load
}

func (m ProjectsModel) load() tea.Msg {
	items, err := m.repo.Projects(context.Background())
	if err != nil {
		return errMsg{fmt.Errorf("load projects: %w", err)}
	}
	return projectsLoadedMsg{items: items}
}

func (m ProjectsModel) Update(msg tea.Msg) (ProjectsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case projectsLoadedMsg:
		m.loaded = true
		m.items = msg.items
		m.applyFilter()
		return m, nil
	case carousel.TickMsg, carousel.SettledMsg:
		if m.view != projectsViewDetail {
			return m, nil
		}
		var cmd tea.Cmd
		m.images, cmd = m.images.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if m.view == projectsViewDetail {
			return m.handleDetailKeys(msg)
		}
		if m.querying {
			return m.handleQueryKeys(msg)
		}
		return m.handleListKeys(msg)
	}
	return m, nil
}

func (m ProjectsModel) handleListKeys(msg tea.KeyMsg) (ProjectsModel, tea.Cmd) {
	switch {
	case m.nav.isDown(msg):
		m.list.Down()
	case m.nav.isUp(msg):
		m.list.Up()
	case isKey(msg, "s"):
		m.filter.Status = cycle(projectStatuses, m.filter.Status)
		m.applyFilter()
	case isKey(msg, "t"):
		m.filter.Kind = cycle(append([]string{""}, catalog.Kinds(m.items)...), m.filter.Kind)
		m.applyFilter()
	case isKey(msg, "x"):
		m.filter = catalog.ProjectFilter{}
		m.query.SetValue("")
		m.applyFilter()
	case isKey(msg, "/"):
		m.querying = true
		cmd := m.query.Focus()
		return m, cmd
	case isEnter(msg):
		return m.openDetail()
	}
	return m, nil
}

func (m ProjectsModel) handleQueryKeys(msg tea.KeyMsg) (ProjectsModel, tea.Cmd) {
	switch {
	case isBack(msg):
		m.querying = false
		m.query.Blur()
		m.query.SetValue("")
		m.filter.Query = ""
		m.applyFilter()
		return m, nil
	case isEnter(msg):
		m.querying = false
		m.query.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.query, cmd = m.query.Update(msg)
	m.filter.Query = m.query.Value()
	m.applyFilter()
	return m, cmd
}

func (m ProjectsModel) openDetail() (ProjectsModel, tea.Cmd) {
	idx := m.list.Selected()
	if idx < 0 || idx >= len(m.filtered) {
		return m, nil
	}
	p := m.filtered[idx]
	m.detail = &p
	m.view = projectsViewDetail
	m.images = m.newCarousel(len(p.Images))
	return m, m.images.Init()
}

func (m ProjectsModel) handleDetailKeys(msg tea.KeyMsg) (ProjectsModel, tea.Cmd) {
	if isBack(msg) {
		return m.Unmount(), nil
	}
	var cmd tea.Cmd
	m.images, cmd = m.images.Update(msg)
	return m, cmd
}

// Unmount closes the detail view and disposes its carousel.
func (m ProjectsModel) Unmount() ProjectsModel {
	if m.view == projectsViewDetail {
		m.images = m.images.Dispose()
		m.view = projectsViewList
		m.detail = nil
	}
	return m
}

func (m *ProjectsModel) applyFilter() {
	m.filtered = catalog.FilterProjects(m.items, m.filter)
	m.list.SetLen(len(m.filtered))
}

func (m ProjectsModel) capturing() bool {
	return m.querying
}

func (m ProjectsModel) wantsArrows() bool {
	return m.view == projectsViewDetail
}

func (m ProjectsModel) wantsDigits() bool {
	return m.view == projectsViewDetail && m.images.Controls()
}

func (m ProjectsModel) atTop() bool {
	return m.view == projectsViewList && !m.querying && m.list.Selected() <= 0
}

func (m ProjectsModel) View() string {
	if m.view == projectsViewDetail && m.detail != nil {
		return m.renderDetail()
	}
	if !m.loaded {
		return components.Indent(components.CenterLine(m.styles.Muted.Render("Loading projects..."), m.width), 1)
	}

	var b strings.Builder
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n")
	if m.querying {
		b.WriteString(m.query.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		if len(m.items) == 0 {
			b.WriteString(m.styles.Muted.Render("No projects yet."))
		} else {
			b.WriteString(m.styles.Muted.Render("No projects match the current filters."))
		}
	} else {
		start, end := m.list.Window()
		rows := make([][]string, 0, end-start)
		for _, p := range m.filtered[start:end] {
			rows = append(rows, []string{p.Name, p.Location, p.Status, p.Kind, p.Price})
		}
		cols := []components.TableColumn{
			{Header: "Name", Width: 20},
			{Header: "Location", Width: 18},
			{Header: "Status", Width: 10},
			{Header: "Type", Width: 11},
			{Header: "Price", Width: 10},
		}
		width := components.BoxContentWidth(m.width)
		if width <= 0 {
			width = 76
		}
		b.WriteString(components.TableGrid(m.styles, cols, rows, width, m.list.Selected()-start))
	}

	title := fmt.Sprintf("Projects (%d)", len(m.filtered))
	return components.Indent(components.TitledBox(m.styles, title, b.String(), m.width), 1)
}

func (m ProjectsModel) renderFilterLine() string {
	label := func(key, value string) string {
		if value == "" {
			value = "all"
		}
		return m.styles.Muted.Render(key+": ") + m.styles.Accented.Render(value)
	}
	parts := []string{label("status", m.filter.Status), label("type", m.filter.Kind)}
	if q := strings.TrimSpace(m.filter.Query); q != "" && !m.querying {
		parts = append(parts, label("search", q))
	}
	return strings.Join(parts, m.styles.Muted.Render("  ·  "))
}

func (m ProjectsModel) renderDetail() string {
	p := m.detail
	rows := []components.TableRow{
		{Label: "Location", Value: p.Location},
		{Label: "Status", Value: p.Status},
		{Label: "Type", Value: p.Kind},
		{Label: "Price", Value: p.Price},
		{Label: "Amenities", Value: strings.Join(p.Amenities, ", ")},
	}
	if p.Units > 0 {
		rows = append(rows, components.TableRow{Label: "Units", Value: strconv.Itoa(p.Units)})
	}
	sections := []string{components.Table(m.styles, components.SanitizeOneLine(p.Name), rows, m.width)}

	if desc := components.SanitizeText(p.Description); desc != "" {
		sections = append(sections, m.styles.Body.Width(components.BoxWidth(m.width)).Render(desc))
	}

	if len(p.Images) > 0 {
		frames := make([]carousel.Frame, len(p.Images))
		for i, img := range p.Images {
			frames[i] = carousel.Frame{Image: components.SanitizeOneLine(img)}
		}
		name := components.SanitizeOneLine(p.Name)
		total := len(frames)
		strip := carousel.NewStrip(frames, m.styles, carousel.WithRenderer(func(i int, f carousel.Frame, width int) string {
			header := m.styles.Title.Render(name) + m.styles.Muted.Render(fmt.Sprintf("  %d/%d", i+1, total))
			image := m.styles.Card(false).
				Width(width-2).
				Height(3).
				Align(lipgloss.Center, lipgloss.Center).
				Render(m.styles.Muted.Render("▣ " + f.Image))
			return header + "\n" + image
		}))
		sections = append(sections, strip.View(m.images, components.BoxWidth(m.width)))
	}
	return components.Indent(strings.Join(sections, "\n\n"), 1)
}

// cycle returns the value after current in values, wrapping around.
func cycle(values []string, current string) string {
	for i, v := range values {
		if v == current {
			return values[(i+1)%len(values)]
		}
	}
	return values[0]
}
