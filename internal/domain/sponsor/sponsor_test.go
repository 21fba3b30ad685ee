package sponsor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSponsor(t *testing.T) {
	s, err := NewSponsor("Skin Club", "skin-club", "https://cdn.example.com/logo.png", " skinclub10 ")
	require.NoError(t, err)

	assert.Equal(t, "SKINCLUB10", s.CouponCode())
	assert.True(t, s.IsActive())
	assert.NoError(t, s.EnsureActive())

	s.Deactivate()
	assert.ErrorIs(t, s.EnsureActive(), ErrSponsorInactive)
}

func TestNewSponsor_InvalidSlug(t *testing.T) {
	for _, slug := range []string{"", "Skin Club", "skin--club", "-skin"} {
		_, err := NewSponsor("Skin Club", slug, "", "")
		assert.Error(t, err, slug)
	}
}
