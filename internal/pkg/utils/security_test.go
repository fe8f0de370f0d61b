package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPasswordHashing(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		hash, err := HashPassword("s3cret-password")

		assert.NoError(t, err)
		assert.NotEqual(t, "s3cret-password", hash)
		assert.True(t, CheckPasswordHash("s3cret-password", hash))
	})

	t.Run("Wrong Password", func(t *testing.T) {
		hash, err := HashPassword("s3cret-password")

		assert.NoError(t, err)
		assert.False(t, CheckPasswordHash("other-password", hash))
	})
}

func TestJWT(t *testing.T) {
	secret := "jwt-test-secret"

	t.Run("Round Trip", func(t *testing.T) {
		token, err := GenerateJWT("session-123", secret, time.Hour)
		assert.NoError(t, err)

		sessionID, err := ParseJWT(token, secret)
		assert.NoError(t, err)
		assert.Equal(t, "session-123", sessionID)
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := GenerateJWT("session-123", secret, time.Hour)
		assert.NoError(t, err)

		_, err = ParseJWT(token, "different-secret")
		assert.Error(t, err)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := GenerateJWT("session-123", secret, -time.Minute)
		assert.NoError(t, err)

		_, err = ParseJWT(token, secret)
		assert.Error(t, err)
	})

	t.Run("Garbage Token", func(t *testing.T) {
		_, err := ParseJWT("not-a-token", secret)
		assert.Error(t, err)
	})
}

func TestResetToken(t *testing.T) {
	raw, hashed, err := GenerateResetToken()

	assert.NoError(t, err)
	assert.Len(t, raw, 40, "raw token is 20 random bytes hex encoded")
	assert.Equal(t, hashed, HashResetToken(raw), "digest must be reproducible from the raw token")
	assert.NotEqual(t, raw, hashed)
}
