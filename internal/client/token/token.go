// Package token extracts informational claims from the opaque auth
// token. Nothing here verifies a signature: the output is display-only
// and never feeds an authorization decision, which belongs to the
// server's 401 responses alone.
package token

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserID decodes the unverified JWT claims and returns the user_id
// claim. It returns ("", false) on any malformed input.
func UserID(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return "", false
	}

	id, ok := claims["user_id"].(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
