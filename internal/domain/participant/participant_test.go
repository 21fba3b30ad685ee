package participant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParticipant(t *testing.T) {
	p, err := NewParticipant(" Ana ", "Ana Souza <ana@example.com>")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p.ID(), "usr_"))
	assert.Equal(t, "Ana", p.Name())
	assert.Equal(t, "ana@example.com", p.Email())
}

func TestNewParticipant_Invalid(t *testing.T) {
	_, err := NewParticipant("", "ana@example.com")
	assert.Error(t, err)

	_, err = NewParticipant("Ana", "not-an-email")
	assert.Error(t, err)
}
