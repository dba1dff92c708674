package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skillnest/skillnest/internal/api"
)

// ErrDecodeToken is returned when an access token is malformed.
var ErrDecodeToken = errors.New("malformed access token")

// Claims are the fields the platform encodes in an access token. Decoding is
// advisory only: the signature is never verified client-side, so claims gate
// UI behaviour but never authorize data access — the server enforces that on
// every request.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64    `json:"user_id"`
	Role      api.Role `json:"role"`
	Email     string   `json:"email,omitempty"`
	FirstName string   `json:"first_name,omitempty"`
	LastName  string   `json:"last_name,omitempty"`
}

// Expired reports whether the token's expiry has passed. Zero expiry counts
// as not expired.
func (c *Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}

// MergeUser combines decoded claims with a cached profile. Claims take
// precedence for identity and role; the cached profile supplies display
// fields the token does not carry.
func (c *Claims) MergeUser(cached *api.User) *api.User {
	user := &api.User{}
	if cached != nil {
		*user = *cached
	}

	if c.UserID != 0 {
		user.ID = c.UserID
	}
	if c.Role != "" {
		user.Role = c.Role
	}
	if user.Email == "" {
		user.Email = c.Email
	}
	if user.FirstName == "" {
		user.FirstName = c.FirstName
	}
	if user.LastName == "" {
		user.LastName = c.LastName
	}

	return user
}

// DecodeAccessToken extracts claims from a signed access token without
// verifying the signature. Returns an error wrapping ErrDecodeToken when the
// token is not three base64url segments or the payload is not valid JSON.
func DecodeAccessToken(token string) (*Claims, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, &Claims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecodeToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrDecodeToken
	}

	return claims, nil
}
