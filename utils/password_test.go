package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "hunter2secret", hash)

	ok, err := VerifyPassword(hash, "hunter2secret")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyPasswordRejectsWrong(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	require.NoError(t, err)

	ok, _ := VerifyPassword(hash, "hunter2wrong")
	assert.False(t, ok)
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same-password")
	require.NoError(t, err)
	h2, err := HashPassword("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
}
