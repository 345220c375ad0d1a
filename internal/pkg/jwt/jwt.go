package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrNotJWT = errors.New("credential is not a JWT")

// Claims is the subset of the access token claims the client cares about.
// The signature is never checked here: the client only holds the token, the
// remote API is the one that validates it.
type Claims struct {
	Subject   string
	Roles     []string
	ExpiresAt *time.Time
}

type rawClaims struct {
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

func Peek(token string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &rawClaims{})
	if err != nil {
		return nil, ErrNotJWT
	}

	rc, ok := parsed.Claims.(*rawClaims)
	if !ok {
		return nil, ErrNotJWT
	}

	claims := &Claims{
		Subject: rc.Subject,
		Roles:   rc.Roles,
	}
	if rc.ExpiresAt != nil {
		exp := rc.ExpiresAt.Time
		claims.ExpiresAt = &exp
	}
	return claims, nil
}

func (c *Claims) ExpiredAt(now time.Time) bool {
	if c.ExpiresAt == nil {
		return false
	}
	return !now.Before(*c.ExpiresAt)
}
