package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfirmDialogIncludesTitleMessageAndHints(t *testing.T) {
	out := ConfirmDialog(testStyles, "Quit", "Discard the enquiry?")
	clean := SanitizeText(out)

	assert.Contains(t, clean, "Quit")
	assert.Contains(t, clean, "Discard the enquiry?")
	assert.Contains(t, clean, "y: confirm | n: cancel")
}
