// Package token issues and verifies the signed session tokens that carry an
// authenticated identity (user id + role) between requests. Tokens are HS256
// JWTs signed with a single process-wide secret; rotating the secret
// invalidates everything outstanding, which is acceptable at a 24h lifetime.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Aqil0709/store-rating-fullstack/internal/core/domain"
)

// DefaultTTL is the session token lifetime when none is configured.
const DefaultTTL = 24 * time.Hour

// ErrInvalidToken covers every verification failure: structural corruption,
// signature mismatch, wrong algorithm, expiry, or a role claim outside the
// known set. Callers never learn which.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the session token payload.
type Claims struct {
	UserID int64       `json:"uid"`
	Role   domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issuer mints and verifies session tokens with a shared static secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

func NewIssuer(secret string, ttl time.Duration) *Issuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token for the given identity. The role claim reflects the
// identity's role at issuance time; later role changes do not propagate to
// tokens already in the wild.
func (i *Issuer) Issue(userID int64, role domain.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify parses and validates a raw token string, returning the decoded
// claims or ErrInvalidToken.
func (i *Issuer) Verify(raw string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, ErrInvalidToken
	}
	if !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
