package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/skyline/internal/catalog"
	"github.com/gravitrone/skyline/internal/ui/components"
)

const trackDateLayout = "2 Jan 2006 15:04"

type leadsTrackedMsg struct {
	query string
	leads []catalog.Lead
	err   error
}

// TrackModel looks up enquiries by phone, email or lead id.
type TrackModel struct {
	env
	input    textinput.Model
	searched string
	leads    []catalog.Lead
	notice   string
	failed   bool
}

// NewTrackModel creates the track tab.
func NewTrackModel(e env) TrackModel {
	in := textinput.New()
	in.Prompt = "› "
	in.Placeholder = "phone, email or lead id"
	in.CharLimit = 120
	return TrackModel{env: e, input: in}
}

func (m TrackModel) Init() tea.Cmd {
	return nil
}

func (m TrackModel) Update(msg tea.Msg) (TrackModel, tea.Cmd) {
	switch msg := msg.(type) {
	case leadsTrackedMsg:
		if msg.query != strings.TrimSpace(m.input.Value()) {
			return m, nil
		}
		m.searched = msg.query
		m.leads = msg.leads
		m.notice = ""
		m.failed = false
		var verr *catalog.ValidationError
		switch {
		case errors.Is(msg.err, catalog.ErrNotFound):
			m.notice = "No enquiry found for " + components.SanitizeOneLine(msg.query) + "."
		case errors.As(msg.err, &verr):
			m.notice = "Enter a phone number, email or lead id."
		case msg.err != nil:
			m.notice = msg.err.Error()
			m.failed = true
		}
		return m, nil
	case tea.KeyMsg:
		if isEnter(msg) {
			return m, m.track(strings.TrimSpace(m.input.Value()))
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m TrackModel) track(query string) tea.Cmd {
	repo := m.repo
	return func() tea.Msg {
		leads, err := repo.TrackLeads(context.Background(), query)
		return leadsTrackedMsg{query: query, leads: leads, err: err}
	}
}

// Focus gives the input the keyboard.
func (m *TrackModel) Focus() tea.Cmd {
	return m.input.Focus()
}

// Blur releases the keyboard.
func (m *TrackModel) Blur() {
	m.input.Blur()
}

func (m TrackModel) capturing() bool {
	return m.input.Focused()
}

func (m TrackModel) View() string {
	width := components.BoxContentWidth(m.width)
	if width <= 0 {
		width = 76
	}

	var b strings.Builder
	b.WriteString(m.styles.Field(m.input.Focused()).Width(max(width-4, 20)).Render(m.input.View()))
	b.WriteString("\n\n")

	switch {
	case m.notice != "" && m.failed:
		b.WriteString(m.styles.Error.Render(components.SanitizeOneLine(m.notice)))
	case m.notice != "":
		b.WriteString(m.styles.Warning.Render(m.notice))
	case len(m.leads) > 0:
		cols := []components.TableColumn{
			{Header: "Lead", Width: 10},
			{Header: "Name", Width: 18},
			{Header: "Project", Width: 16},
			{Header: "Status", Width: 10},
			{Header: "Updated", Width: 17},
		}
		rows := make([][]string, 0, len(m.leads))
		for _, l := range m.leads {
			project := l.ProjectID
			if project == "" {
				project = "general"
			}
			rows = append(rows, []string{shortID(l.ID), l.Name, project, l.Status, l.UpdatedAt.Local().Format(trackDateLayout)})
		}
		b.WriteString(components.TableGrid(m.styles, cols, rows, width, -1))
	case m.searched == "":
		b.WriteString(m.styles.Muted.Render("Press enter to look up your enquiry."))
	}
	return components.Indent(components.TitledBox(m.styles, "Track enquiry", b.String(), m.width), 1)
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
