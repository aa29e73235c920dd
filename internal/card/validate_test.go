package card

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateTitle(t *testing.T) {
	assert.NoError(t, validateTitle("a"))
	assert.NoError(t, validateTitle(strings.Repeat("x", 120)))

	assert.ErrorIs(t, validateTitle(""), ErrInvalid)
	assert.ErrorIs(t, validateTitle(strings.Repeat("x", 121)), ErrInvalid)
}

func TestValidateTitle_CountsRunes(t *testing.T) {
	// 120 multibyte characters is still 120 characters
	assert.NoError(t, validateTitle(strings.Repeat("ä", 120)))
	assert.ErrorIs(t, validateTitle(strings.Repeat("ä", 121)), ErrInvalid)
}

func TestValidateNotes(t *testing.T) {
	assert.NoError(t, validateNotes(nil))
	assert.NoError(t, validateNotes(strPtr("")))
	assert.NoError(t, validateNotes(strPtr(strings.Repeat("x", 2000))))

	assert.ErrorIs(t, validateNotes(strPtr(strings.Repeat("x", 2001))), ErrInvalid)
}

func TestValidateTag(t *testing.T) {
	assert.NoError(t, validateTag(nil))
	assert.NoError(t, validateTag(strPtr(strings.Repeat("x", 40))))

	assert.ErrorIs(t, validateTag(strPtr(strings.Repeat("x", 41))), ErrInvalid)
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"INBOX", "TODAY", "WAITING", "DONE"} {
		st, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, Status(s), st)
	}

	for _, s := range []string{"", "inbox", "ARCHIVED", "IN BOX"} {
		_, err := ParseStatus(s)
		assert.ErrorIs(t, err, ErrInvalid, "status %q", s)
	}
}
