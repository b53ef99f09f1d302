package token

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestUserID(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"user_id": "user-42", "role": "user"})

	id, ok := UserID(raw)
	assert.True(t, ok)
	assert.Equal(t, "user-42", id)
}

func TestUserID_MissingClaim(t *testing.T) {
	raw := signedToken(t, jwt.MapClaims{"role": "admin"})

	id, ok := UserID(raw)
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestUserID_Malformed(t *testing.T) {
	for _, raw := range []string{"", "not-a-jwt", "a.b", "a.!!!.c"} {
		id, ok := UserID(raw)
		assert.False(t, ok, "input %q", raw)
		assert.Empty(t, id, "input %q", raw)
	}
}
