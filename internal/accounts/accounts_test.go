package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	r, err := NewRegistry("")
	require.NoError(t, err)
	return r
}

func TestRegisterAndAuthenticate(t *testing.T) {
	r := newRegistry(t)

	require.NoError(t, r.Register("ana", "s3cret"))
	assert.Equal(t, []string{"ana"}, r.Usernames())
	assert.NoError(t, r.Authenticate("ana", "s3cret"))
	assert.NoError(t, r.Authenticate("  ana ", "s3cret"))
}

func TestRegisterValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
	}{
		{"empty username", "", "pw"},
		{"blank username", "   ", "pw"},
		{"empty password", "ana", ""},
		{"blank password", "ana", "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRegistry(t)
			assert.ErrorIs(t, r.Register(tt.username, tt.password), ErrEmptyField)
			assert.Empty(t, r.Usernames())
		})
	}
}

func TestRegisterDuplicate(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, r.Register("ana", "one"))
	assert.ErrorIs(t, r.Register("ana", "two"), ErrUserExists)
	// Original password still works
	assert.NoError(t, r.Authenticate("ana", "one"))
}

func TestAuthenticateFailures(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, r.Register("ana", "right"))

	assert.ErrorIs(t, r.Authenticate("ana", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, r.Authenticate("bob", "right"), ErrInvalidCredentials)
	assert.ErrorIs(t, r.Authenticate("", "right"), ErrEmptyField)
}

func TestPasswordsAreNotStoredInPlaintext(t *testing.T) {
	r, err := NewRegistry("fixed-salt")
	require.NoError(t, err)
	require.NoError(t, r.Register("ana", "hunter2"))

	assert.NotContains(t, string(r.users["ana"]), "hunter2")
	assert.Len(t, r.Fingerprint("ana"), 8)
	assert.Empty(t, r.Fingerprint("nobody"))
}

func TestSaltChangesDigest(t *testing.T) {
	a, err := NewRegistry("salt-a")
	require.NoError(t, err)
	b, err := NewRegistry("salt-b")
	require.NoError(t, err)
	assert.NotEqual(t, a.digest("ana", "pw"), b.digest("ana", "pw"))
}

func TestUsernamesKeepOrder(t *testing.T) {
	r := newRegistry(t)
	for _, u := range []string{"cy", "ana", "ben"} {
		require.NoError(t, r.Register(u, "pw"))
	}
	assert.Equal(t, []string{"cy", "ana", "ben"}, r.Usernames())
}
