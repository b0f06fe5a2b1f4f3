package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	m := NewManager("rahasia", time.Hour)
	raw, err := m.Sign(Claims{UserID: 7, NIP: "196501011990031001", Role: "Verifikator", UnitKerjaID: 2})
	require.NoError(t, err)

	c, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, uint(7), c.UserID)
	assert.Equal(t, "Verifikator", c.Role)
	assert.Equal(t, uint(2), c.UnitKerjaID)
	assert.Zero(t, c.ImpersonatorID)
	assert.Equal(t, "7", c.Subject)
}

func TestParseRejectsWrongSecretAndExpired(t *testing.T) {
	m := NewManager("rahasia", time.Hour)
	raw, err := m.Sign(Claims{UserID: 1})
	require.NoError(t, err)

	_, err = NewManager("lain", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalid)

	expired := NewManager("rahasia", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = expired.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = m.Parse("bukan.token.jwt")
	assert.ErrorIs(t, err, ErrInvalid)
}
