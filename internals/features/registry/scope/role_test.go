package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoleSuperuser(t *testing.T) {
	for _, s := range []string{"admin", "superadmin"} {
		r, err := ParseRole(s)
		require.NoError(t, err, s)
		assert.True(t, r.IsSuperuser(), s)
	}
}

func TestParseRoleRW(t *testing.T) {
	cases := map[string]string{
		"1":  "01",
		"01": "01",
		"9":  "09",
		"10": "10",
		"12": "12",
	}
	for in, want := range cases {
		r, err := ParseRole(in)
		require.NoError(t, err, in)
		assert.False(t, r.IsSuperuser(), in)
		assert.Equal(t, want, r.Code(), in)
	}
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, s := range []string{"", "0", "00", "13", "99", "RW01", "Admin ", "kelurahan"} {
		_, err := ParseRole(s)
		assert.ErrorIs(t, err, ErrInvalidRole, "input %q", s)
	}
}

func TestRWConstructorBounds(t *testing.T) {
	_, err := RW(0)
	assert.ErrorIs(t, err, ErrInvalidRole)
	_, err = RW(13)
	assert.ErrorIs(t, err, ErrInvalidRole)

	r, err := RW(7)
	require.NoError(t, err)
	assert.Equal(t, "07", r.Code())
}

func TestRWCode(t *testing.T) {
	assert.Equal(t, "01", RWCode(1))
	assert.Equal(t, "12", RWCode(12))
}
