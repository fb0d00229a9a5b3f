package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gravitrone/skyline/internal/catalog"
	"github.com/gravitrone/skyline/internal/ui/components"
)

type contactProjectsMsg struct{ projects []catalog.Project }
type enquirySubmittedMsg struct{ id string }
type enquiryInvalidMsg struct{ errs catalog.ValidationErrors }
type enquiryFailedMsg struct{ err error }

const (
	contactName = iota
	contactEmail
	contactPhone
	contactProject
	contactMessage
	contactFieldCount
)

var contactLabels = [contactFieldCount]string{"Name", "Email", "Phone", "Project", "Message"}

// fieldKeys maps form fields to the validation field names.
var fieldKeys = [contactFieldCount]string{"name", "email", "phone", "projectId", "message"}

// ContactModel is the enquiry form.
type ContactModel struct {
	env
	inputs   [contactProject]textinput.Model
	message  textarea.Model
	projects []catalog.Project
	project  int // 0 is a general enquiry
	focus    int
	focused  bool
	errs     catalog.ValidationErrors
	sending  bool
}

// NewContactModel creates the contact tab.
func NewContactModel(e env) ContactModel {
	m := ContactModel{env: e}
	placeholders := [contactProject]string{"Your full name", "you@example.com", "+91 98765 43210"}
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[i]
		in.CharLimit = 120
		m.inputs[i] = in
	}
	m.message = textarea.New()
	m.message.Placeholder = "Tell us what you are looking for"
	m.message.ShowLineNumbers = false
	m.message.CharLimit = 1000
	m.message.SetHeight(4)
	return m
}

func (m ContactModel) Init() tea.Cmd {
	return m.load
}

func (m ContactModel) load() tea.Msg {
	projects, err := m.repo.Projects(context.Background())
	if err != nil {
		return errMsg{fmt.Errorf("load projects: %w", err)}
	}
	return contactProjectsMsg{projects: projects}
}

func (m ContactModel) Update(msg tea.Msg) (ContactModel, tea.Cmd) {
	switch msg := msg.(type) {
	case contactProjectsMsg:
		selected := m.projectID()
		m.projects = msg.projects
		m.project = 0
		for i, p := range m.projects {
			if p.ID == selected {
				m.project = i + 1
			}
		}
		return m, nil
	case enquirySubmittedMsg:
		m.sending = false
		m.errs = nil
		return m.reset()
	case enquiryInvalidMsg:
		m.sending = false
		m.errs = msg.errs
		return m, nil
	case enquiryFailedMsg:
		m.sending = false
		return m, nil
	case tea.KeyMsg:
		return m.handleKeys(msg)
	}
	return m, nil
}

func (m ContactModel) handleKeys(msg tea.KeyMsg) (ContactModel, tea.Cmd) {
	switch {
	case isKey(msg, "ctrl+s"):
		return m.submit()
	case isKey(msg, "tab"):
		return m.moveFocus(1)
	case isKey(msg, "shift+tab"):
		return m.moveFocus(-1)
	case isEnter(msg) && m.focus != contactMessage:
		return m.moveFocus(1)
	}

	var cmd tea.Cmd
	switch {
	case m.focus == contactProject:
		n := len(m.projects) + 1
		switch {
		case isKey(msg, "left", "h"):
			m.project = (m.project - 1 + n) % n
		case isKey(msg, "right", "l", " "):
			m.project = (m.project + 1) % n
		}
	case m.focus == contactMessage:
		m.message, cmd = m.message.Update(msg)
	default:
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	}
	return m, cmd
}

func (m ContactModel) moveFocus(delta int) (ContactModel, tea.Cmd) {
	m.focus = (m.focus + delta + contactFieldCount) % contactFieldCount
	cmd := m.Focus()
	return m, cmd
}

// Focus focuses the current field. Call it when the tab takes the keyboard.
func (m *ContactModel) Focus() tea.Cmd {
	m.focused = true
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()
	switch {
	case m.focus == contactMessage:
		return m.message.Focus()
	case m.focus < contactProject:
		return m.inputs[m.focus].Focus()
	}
	return nil
}

// Blur releases the keyboard.
func (m *ContactModel) Blur() {
	m.focused = false
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.message.Blur()
}

func (m ContactModel) submit() (ContactModel, tea.Cmd) {
	if m.sending {
		return m, nil
	}
	m.sending = true
	enquiry := m.enquiry()
	repo := m.repo
	return m, func() tea.Msg {
		id, err := repo.SubmitEnquiry(context.Background(), enquiry)
		if err != nil {
			var verrs catalog.ValidationErrors
			if errors.As(err, &verrs) {
				return enquiryInvalidMsg{errs: verrs}
			}
			return enquiryFailedMsg{fmt.Errorf("submit enquiry: %w", err)}
		}
		return enquirySubmittedMsg{id: id}
	}
}

func (m ContactModel) enquiry() catalog.Enquiry {
	return catalog.Enquiry{
		Name:      m.inputs[contactName].Value(),
		Email:     m.inputs[contactEmail].Value(),
		Phone:     m.inputs[contactPhone].Value(),
		ProjectID: m.projectID(),
		Message:   m.message.Value(),
	}
}

func (m ContactModel) projectID() string {
	if m.project <= 0 || m.project > len(m.projects) {
		return ""
	}
	return m.projects[m.project-1].ID
}

func (m ContactModel) projectLabel() string {
	if m.project <= 0 || m.project > len(m.projects) {
		return "General enquiry"
	}
	return components.SanitizeOneLine(m.projects[m.project-1].Name)
}

func (m ContactModel) reset() (ContactModel, tea.Cmd) {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	m.message.Reset()
	m.project = 0
	m.focus = contactName
	if !m.focused {
		return m, nil
	}
	cmd := m.Focus()
	return m, cmd
}

func (m ContactModel) hasInput() bool {
	for _, in := range m.inputs {
		if strings.TrimSpace(in.Value()) != "" {
			return true
		}
	}
	return strings.TrimSpace(m.message.Value()) != ""
}

func (m ContactModel) capturing() bool {
	return m.focused
}

func (m ContactModel) View() string {
	width := components.BoxContentWidth(m.width)
	if width <= 0 {
		width = 60
	}
	fieldWidth := max(width-4, 10)

	var b strings.Builder
	for i := range contactFieldCount {
		focused := m.focused && i == m.focus
		b.WriteString(m.styles.Label(focused).Render(contactLabels[i]))
		if reason := m.errs.Field(fieldKeys[i]); reason != "" {
			b.WriteString("  " + m.styles.Error.Render(contactLabels[i]+" "+reason))
		}
		b.WriteString("\n")

		var value string
		switch i {
		case contactProject:
			value = "‹ " + m.projectLabel() + " ›"
		case contactMessage:
			m.message.SetWidth(fieldWidth - 2)
			value = m.message.View()
		default:
			in := m.inputs[i]
			in.Width = fieldWidth - 3
			value = in.View()
		}
		b.WriteString(m.styles.Field(focused).Width(fieldWidth).Render(value))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.sending {
		b.WriteString(m.styles.Muted.Render("Sending..."))
	} else {
		b.WriteString(m.styles.Button.Render("Send enquiry") + "  " + m.styles.Muted.Render("ctrl+s"))
	}
	return components.Indent(components.TitledBox(m.styles, "Enquire", b.String(), m.width), 1)
}
