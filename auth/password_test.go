package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasswordHashing(t *testing.T) {
	password := "testpassword"

	hash, err := HashPassword(password)
	require.NoError(t, err)
	assert.NotEqual(t, password, hash)

	assert.True(t, CheckPasswordHash(password, hash))
	assert.False(t, CheckPasswordHash("wrongpassword", hash))
}

func TestDummyHashNeverMatches(t *testing.T) {
	assert.False(t, CheckPasswordHash("testpassword", DummyHash()))
	assert.False(t, CheckPasswordHash("", DummyHash()))
}
