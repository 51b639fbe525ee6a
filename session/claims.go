package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the display-relevant claims carried by the backend's JWT.
type TokenClaims struct {
	Subject   string
	Role      string
	ExpiresAt time.Time
}

// parseClaims decodes token claims without signature verification. The client
// has no signing secret; these values are advisory (showing expiry, gating
// admin navigation) and the backend re-checks the token on every request.
func parseClaims(tokenString string) (*TokenClaims, error) {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("malformed token: %w", err)
	}

	out := &TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if role, ok := claims["role"].(string); ok {
		out.Role = role
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

// Claims returns the decoded claims of the stored token, or an error when
// signed out or when the token is not a well-formed JWT.
func (s *Session) Claims() (*TokenClaims, error) {
	token := s.Token()
	if token == "" {
		return nil, fmt.Errorf("no session token")
	}
	return parseClaims(token)
}
