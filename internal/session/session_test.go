package session_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy-inventory-console/internal/session"
)

func TestSessionLifecycle(t *testing.T) {
	s := session.New("")

	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())

	require.NoError(t, s.Set("tok-123", "pharmacist@example.com"))
	assert.True(t, s.IsAuthenticated())
	assert.Equal(t, "tok-123", s.Token())
	assert.Equal(t, "pharmacist@example.com", s.Email())

	require.NoError(t, s.Clear())
	assert.False(t, s.IsAuthenticated())
	assert.Empty(t, s.Token())
}

func TestSessionPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")

	s := session.New(path)
	require.NoError(t, s.Set("tok-456", "staff@example.com"))

	// A fresh Session over the same file picks the token back up.
	s2 := session.New(path)
	assert.True(t, s2.IsAuthenticated())
	assert.Equal(t, "tok-456", s2.Token())
	assert.Equal(t, "staff@example.com", s2.Email())

	require.NoError(t, s2.Clear())

	s3 := session.New(path)
	assert.False(t, s3.IsAuthenticated())
}

func TestSessionMissingFile(t *testing.T) {
	s := session.New(filepath.Join(t.TempDir(), "does-not-exist.json"))
	assert.False(t, s.IsAuthenticated())

	// Clearing an already-absent file is not an error.
	require.NoError(t, s.Clear())
}
