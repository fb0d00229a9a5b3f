package ui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gravitrone/skyline/internal/catalog"
)

func trackWithLead(t *testing.T) (TrackModel, string) {
	t.Helper()
	repo := seededCatalog(t)
	id, err := repo.SubmitEnquiry(context.Background(), catalog.Enquiry{
		Name:      "Asha Rao",
		Email:     "asha@example.com",
		Phone:     "+91 98765 43210",
		ProjectID: "meadow",
		Message:   "Please share plot layouts.",
	})
	require.NoError(t, err)

	m := NewTrackModel(testEnv(repo))
	m.Focus()
	return m, id
}

func lookUp(t *testing.T, m TrackModel, query string) TrackModel {
	t.Helper()
	for _, k := range typed(query) {
		m, _ = m.Update(k)
	}
	m, cmd := m.Update(keyOf(tea.KeyEnter))
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	return m
}

func TestTrackFindsLeadByPhone(t *testing.T) {
	m, id := trackWithLead(t)
	assert.True(t, m.capturing())
	assert.Contains(t, plain(m.View()), "Press enter to look up")

	m = lookUp(t, m, "9876543210")
	require.Len(t, m.leads, 1)
	assert.Equal(t, id, m.leads[0].ID)

	out := plain(m.View())
	assert.Contains(t, out, shortID(id))
	assert.Contains(t, out, "Asha Rao")
	assert.Contains(t, out, "meadow")
	assert.Contains(t, out, "new")
}

func TestTrackFindsLeadByEmail(t *testing.T) {
	m, _ := trackWithLead(t)

	m = lookUp(t, m, "ASHA@example.com")
	assert.Len(t, m.leads, 1)
}

func TestTrackNotFound(t *testing.T) {
	m, _ := trackWithLead(t)

	m = lookUp(t, m, "nobody@example.com")
	assert.Empty(t, m.leads)
	assert.Contains(t, plain(m.View()), "No enquiry found for nobody@example.com.")
}

func TestTrackEmptyQuery(t *testing.T) {
	m, _ := trackWithLead(t)

	m = lookUp(t, m, "")
	assert.Contains(t, plain(m.View()), "Enter a phone number, email or lead id.")
}

func TestTrackIgnoresStaleResults(t *testing.T) {
	m, _ := trackWithLead(t)
	for _, k := range typed("asha@example.com") {
		m, _ = m.Update(k)
	}

	m, _ = m.Update(leadsTrackedMsg{query: "someone-else", leads: []catalog.Lead{{ID: "x"}}})
	assert.Empty(t, m.leads)

	m.Blur()
	assert.False(t, m.capturing())
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abc", shortID("abc"))
	assert.Equal(t, "12345678", shortID("123456789abc"))
}
