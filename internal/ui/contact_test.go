package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/skyline/internal/catalog"
)

func focusedContact(t *testing.T, repo Catalog) ContactModel {
	t.Helper()
	m := NewContactModel(testEnv(repo))
	m, _ = m.Update(m.load())
	m.Focus()
	return m
}

func typeInto(m ContactModel, s string) ContactModel {
	for _, k := range typed(s) {
		m, _ = m.Update(k)
	}
	return m
}

func TestContactFocusCycles(t *testing.T) {
	m := focusedContact(t, seededCatalog(t))
	assert.True(t, m.capturing())
	assert.Equal(t, contactName, m.focus)

	m, _ = m.Update(keyOf(tea.KeyTab))
	assert.Equal(t, contactEmail, m.focus)
	m, _ = m.Update(keyOf(tea.KeyEnter))
	assert.Equal(t, contactPhone, m.focus)
	m, _ = m.Update(keyOf(tea.KeyShiftTab))
	m, _ = m.Update(keyOf(tea.KeyShiftTab))
	m, _ = m.Update(keyOf(tea.KeyShiftTab))
	assert.Equal(t, contactMessage, m.focus)

	m.Blur()
	assert.False(t, m.capturing())
}

func TestContactInvalidSubmitShowsFieldErrors(t *testing.T) {
	repo := seededCatalog(t)
	m := focusedContact(t, repo)
	m = typeInto(m, "Asha")

	m, cmd := m.Update(keyOf(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	assert.True(t, m.sending)

	msg := cmd()
	invalid, ok := msg.(enquiryInvalidMsg)
	require.True(t, ok)
	assert.Len(t, invalid.errs, 3)

	m, _ = m.Update(msg)
	assert.False(t, m.sending)
	out := plain(m.View())
	assert.Contains(t, out, "Email is required")
	assert.Contains(t, out, "Phone is required")
	assert.Contains(t, out, "Message must be at least 10 characters")
	assert.NotContains(t, out, "Name is required")
	assert.True(t, m.hasInput())
}

func TestContactSubmitStoresLeadAndResets(t *testing.T) {
	repo := seededCatalog(t)
	m := focusedContact(t, repo)

	m = typeInto(m, "Asha Rao")
	m, _ = m.Update(keyOf(tea.KeyTab))
	m = typeInto(m, "asha@example.com")
	m, _ = m.Update(keyOf(tea.KeyTab))
	m = typeInto(m, "98765 43210")
	m, _ = m.Update(keyOf(tea.KeyTab))
	m, _ = m.Update(keyOf(tea.KeyRight))
	assert.Contains(t, plain(m.View()), "‹ Skyline Heights ›")
	m, _ = m.Update(keyOf(tea.KeyTab))
	m = typeInto(m, "Looking for a 3 BHK on a high floor")

	m, cmd := m.Update(keyOf(tea.KeyCtrlS))
	require.NotNil(t, cmd)
	_, again := m.Update(keyOf(tea.KeyCtrlS))
	assert.Nil(t, again)

	msg := cmd()
	submitted, ok := msg.(enquirySubmittedMsg)
	require.True(t, ok, "got %T", msg)
	require.NotEmpty(t, submitted.id)

	m, _ = m.Update(msg)
	assert.False(t, m.hasInput())
	assert.Equal(t, contactName, m.focus)
	assert.Equal(t, "General enquiry", m.projectLabel())

	leads, err := repo.TrackLeads(context.Background(), "9876543210")
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, submitted.id, leads[0].ID)
	assert.Equal(t, "heights", leads[0].ProjectID)
	assert.Equal(t, "new", leads[0].Status)
}

func TestContactProjectSelectorWraps(t *testing.T) {
	m := focusedContact(t, seededCatalog(t))
	m.focus = contactProject

	m, _ = m.Update(keyOf(tea.KeyLeft))
	assert.Equal(t, "Orchard Residences", m.projectLabel())
	m, _ = m.Update(keyOf(tea.KeyRight))
	assert.Equal(t, "General enquiry", m.projectLabel())
	assert.Empty(t, m.enquiry().ProjectID)
}

func TestContactKeepsProjectAcrossReload(t *testing.T) {
	m := focusedContact(t, seededCatalog(t))
	m.focus = contactProject
	m, _ = m.Update(keyOf(tea.KeyRight))
	m, _ = m.Update(keyOf(tea.KeyRight))
	require.Equal(t, "lakeview", m.projectID())

	m, _ = m.Update(contactProjectsMsg{projects: []catalog.Project{{ID: "lakeview", Name: "Lakeview Commons"}}})
	assert.Equal(t, 1, m.project)
	assert.Equal(t, "lakeview", m.projectID())
}

func TestContactFailedSubmitClearsSending(t *testing.T) {
	m := focusedContact(t, seededCatalog(t))
	m.sending = true

	m, _ = m.Update(enquiryFailedMsg{err: assert.AnError})
	assert.False(t, m.sending)
}
