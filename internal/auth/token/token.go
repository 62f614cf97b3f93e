// Package token signs and verifies the self-contained identity tokens
// handed to the client after a successful login.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the fixed lifetime of every issued token. Expiration is the only
// termination event; there is no revocation store.
const TTL = 5 * time.Hour

// Verification failures. Callers must treat all of them identically
// (reject); the split exists for logging and tests.
var (
	ErrMalformed    = errors.New("token: malformed token")
	ErrBadSignature = errors.New("token: signature mismatch")
	ErrExpired      = errors.New("token: token expired")
)

// Claims is the identity payload embedded in a signed token. Immutable
// once issued.
type Claims struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

type jwtClaims struct {
	jwt.RegisteredClaims
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Codec issues and verifies HS256-signed tokens. It holds no mutable
// state and is safe for concurrent use.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a Codec signing with the given shared secret. Tokens
// expire ttl after issuance.
func NewCodec(secret []byte, ttl time.Duration) *Codec {
	return &Codec{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue serializes the claims with an expiration of now + ttl and signs
// the payload.
func (c *Codec) Issue(claims Claims) (string, error) {
	now := c.now()
	tk, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwtClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		Email:   claims.Email,
		Name:    claims.Name,
		Picture: claims.Picture,
	}).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return tk, nil
}

// Verify validates the signature and expiration and returns the embedded
// claims. Failures map to ErrMalformed, ErrBadSignature or ErrExpired.
func (c *Codec) Verify(tok string) (Claims, error) {
	var parsed jwtClaims
	_, err := jwt.ParseWithClaims(tok, &parsed,
		func(t *jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return c.now() }),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return Claims{}, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return Claims{}, ErrBadSignature
		default:
			return Claims{}, ErrMalformed
		}
	}

	return Claims{
		Email:   parsed.Email,
		Name:    parsed.Name,
		Picture: parsed.Picture,
	}, nil
}
