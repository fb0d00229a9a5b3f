package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEnquiry() Enquiry {
	return Enquiry{
		Name:      "Asha Rao",
		Email:     "asha@example.com",
		Phone:     "+91 98450 12345",
		ProjectID: "heights",
		Message:   "Please share the 3 BHK floor plans.",
	}
}

func TestEnquiryValidateAcceptsValid(t *testing.T) {
	assert.NoError(t, validEnquiry().Validate())
}

func TestEnquiryValidateCollectsAllErrors(t *testing.T) {
	err := Enquiry{Email: "not-an-email", Phone: "123", Message: "hi"}.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 4)
	assert.Equal(t, "is required", verrs.Field("name"))
	assert.Equal(t, "is not a valid address", verrs.Field("email"))
	assert.Equal(t, "must have 10 to 15 digits", verrs.Field("phone"))
	assert.Contains(t, verrs.Field("message"), "at least")
	assert.Equal(t, "", verrs.Field("project"))
	assert.ErrorIs(t, err, ErrInvalidRecord)
}

func TestEnquiryValidateRejectsDisplayNameEmail(t *testing.T) {
	e := validEnquiry()
	e.Email = "Asha <asha@example.com>"
	assert.Error(t, e.Validate())
}

func TestSubmitEnquiryStoresEnquiryAndLead(t *testing.T) {
	repo, st := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.SubmitEnquiry(ctx, validEnquiry())
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	enquiries, err := st.List(ctx, CollectionEnquiries)
	require.NoError(t, err)
	assert.Len(t, enquiries, 1)

	leads, err := repo.Leads(ctx)
	require.NoError(t, err)
	require.Len(t, leads, 1)
	assert.Equal(t, id, leads[0].ID)
	assert.Equal(t, enquiries[0].ID, leads[0].EnquiryID)
	assert.Equal(t, LeadNew, leads[0].Status)
	assert.Equal(t, "heights", leads[0].ProjectID)
}

func TestSubmitEnquiryRejectsInvalid(t *testing.T) {
	repo, st := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.SubmitEnquiry(ctx, Enquiry{Name: "x"})
	require.Error(t, err)

	items, err := st.List(ctx, CollectionEnquiries)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestTrackLeadsByPhoneEmailAndID(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()
	id, err := repo.SubmitEnquiry(ctx, validEnquiry())
	require.NoError(t, err)

	for _, q := range []string{"9845012345", "098450-12345", "ASHA@example.com", id} {
		leads, err := repo.TrackLeads(ctx, q)
		require.NoError(t, err, q)
		assert.Len(t, leads, 1, q)
	}

	_, err = repo.TrackLeads(ctx, "someone@example.com")
	assert.True(t, errors.Is(err, ErrNotFound))

	_, err = repo.TrackLeads(ctx, "  ")
	assert.Error(t, err)
}

func TestMatchLeadRequiresTenDigits(t *testing.T) {
	l := Lead{Phone: "98450 12345"}
	assert.False(t, MatchLead(l, "12345"))
	assert.True(t, MatchLead(l, "+91 98450 12345"))
	assert.False(t, MatchLead(Lead{Phone: "123"}, "0000000123"))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "919845012345", DigitsOnly("+91 (98450) 12-345"))
	assert.Equal(t, "", DigitsOnly("abc"))
}
