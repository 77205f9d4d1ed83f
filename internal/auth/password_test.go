package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordRoundTrip(t *testing.T) {
	digest, err := HashPassword("hunter2hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.NotContains(t, digest, "hunter2")

	assert.True(t, VerifyPassword("hunter2hunter2", digest))
	assert.False(t, VerifyPassword("wrong-password", digest))
}

func TestHashPasswordFreshSalt(t *testing.T) {
	first, err := HashPassword("parola-secreta")
	require.NoError(t, err)
	second, err := HashPassword("parola-secreta")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, VerifyPassword("parola-secreta", first))
	assert.True(t, VerifyPassword("parola-secreta", second))
}

func TestVerifyPasswordMalformedDigest(t *testing.T) {
	for _, digest := range []string{"", "not-a-bcrypt-digest", "$2a$xx$garbage"} {
		assert.False(t, VerifyPassword("whatever", digest), "digest %q", digest)
	}
}
