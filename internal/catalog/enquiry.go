package catalog

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"

	"go.uber.org/zap"
)

const minMessageLen = 10

// Normalize trims every field.
func (e Enquiry) Normalize() Enquiry {
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.TrimSpace(e.Email)
	e.Phone = strings.TrimSpace(e.Phone)
	e.ProjectID = strings.TrimSpace(e.ProjectID)
	e.Message = strings.TrimSpace(e.Message)
	return e
}

// Validate returns every problem with the form, or nil.
func (e Enquiry) Validate() error {
	e = e.Normalize()
	var errs ValidationErrors
	if e.Name == "" {
		errs = append(errs, &ValidationError{Field: "name", Reason: "is required"})
	}
	if e.Email == "" {
		errs = append(errs, &ValidationError{Field: "email", Reason: "is required"})
	} else if addr, err := mail.ParseAddress(e.Email); err != nil || addr.Address != e.Email {
		errs = append(errs, &ValidationError{Field: "email", Reason: "is not a valid address"})
	}
	digits := DigitsOnly(e.Phone)
	if e.Phone == "" {
		errs = append(errs, &ValidationError{Field: "phone", Reason: "is required"})
	} else if len(digits) < 10 || len(digits) > 15 {
		errs = append(errs, &ValidationError{Field: "phone", Reason: "must have 10 to 15 digits"})
	}
	if len([]rune(e.Message)) < minMessageLen {
		errs = append(errs, &ValidationError{Field: "message", Reason: fmt.Sprintf("must be at least %d characters", minMessageLen)})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SubmitEnquiry validates e, stores it and opens a lead for it. It returns the
// lead id, which is what a customer uses to track the enquiry.
func (r *Repository) SubmitEnquiry(ctx context.Context, e Enquiry) (string, error) {
	e = e.Normalize()
	if err := e.Validate(); err != nil {
		return "", err
	}
	now := time.Now().UTC()
	e.CreatedAt = now

	enquiryID, err := r.backend.Add(ctx, CollectionEnquiries, e)
	if err != nil {
		return "", fmt.Errorf("store enquiry: %w", err)
	}
	lead := Lead{
		EnquiryID: enquiryID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		ProjectID: e.ProjectID,
		Status:    LeadNew,
		UpdatedAt: now,
	}
	leadID, err := r.backend.Add(ctx, CollectionLeads, lead)
	if err != nil {
		return "", fmt.Errorf("store lead: %w", err)
	}
	r.logger.Info("enquiry submitted", zap.String("enquiry", enquiryID), zap.String("lead", leadID))
	return leadID, nil
}

// TrackLeads returns the leads matching query, which is an email address, a
// phone number, or a lead id.
func (r *Repository) TrackLeads(ctx context.Context, query string) ([]Lead, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &ValidationError{Field: "query", Reason: "is required"}
	}
	leads, err := r.Leads(ctx)
	if err != nil {
		return nil, err
	}
	var out []Lead
	for _, l := range leads {
		if MatchLead(l, query) {
			out = append(out, l)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no enquiry for %q: %w", query, ErrNotFound)
	}
	return out, nil
}

// MatchLead reports whether query identifies l. Emails match case-insensitively;
// phone numbers match on their last ten digits so country codes and
// punctuation do not matter.
func MatchLead(l Lead, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return false
	}
	if l.ID != "" && query == l.ID {
		return true
	}
	if strings.Contains(query, "@") {
		return strings.EqualFold(strings.TrimSpace(l.Email), query)
	}
	q := DigitsOnly(query)
	p := DigitsOnly(l.Phone)
	if len(q) < 10 || len(p) < 10 {
		return false
	}
	return q[len(q)-10:] == p[len(p)-10:]
}

// DigitsOnly strips everything but ASCII digits.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < unicode.MaxASCII && unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
