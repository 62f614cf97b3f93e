package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), TTL)
	claims := Claims{
		Email:   "owner@example.com",
		Name:    "Owner",
		Picture: "http://x/p.png",
	}

	tok, err := codec.Issue(claims)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	got, err := codec.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, claims, got)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewCodec([]byte("secret-one"), TTL)
	verifier := NewCodec([]byte("secret-two"), TTL)

	tok, err := issuer.Issue(Claims{Email: "owner@example.com"})
	require.NoError(t, err)

	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrBadSignature)
}

func TestVerifyExpired(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), TTL)
	codec.now = func() time.Time { return time.Now().Add(-6 * time.Hour) }

	// Issued six hours ago with a five hour TTL.
	tok, err := codec.Issue(Claims{Email: "owner@example.com"})
	require.NoError(t, err)

	verifier := NewCodec([]byte("test-secret"), TTL)
	_, err = verifier.Verify(tok)
	assert.ErrorIs(t, err, ErrExpired)
}

func TestVerifyMalformed(t *testing.T) {
	codec := NewCodec([]byte("test-secret"), TTL)

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c"} {
		_, err := codec.Verify(tok)
		assert.ErrorIs(t, err, ErrMalformed, "token %q", tok)
	}
}

func TestVerifyRejectsUnsignedAlg(t *testing.T) {
	// Header {"alg":"none","typ":"JWT"} with an arbitrary payload.
	tok := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJlbWFpbCI6Im93bmVyQGV4YW1wbGUuY29tIn0."

	codec := NewCodec([]byte("test-secret"), TTL)
	_, err := codec.Verify(tok)
	assert.Error(t, err)
}

func TestExpirationIsTTLFromIssuance(t *testing.T) {
	issued := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	codec := NewCodec([]byte("test-secret"), TTL)
	codec.now = func() time.Time { return issued }

	tok, err := codec.Issue(Claims{Email: "owner@example.com"})
	require.NoError(t, err)

	// Valid just before expiry, rejected just after.
	codec.now = func() time.Time { return issued.Add(TTL - time.Second) }
	_, err = codec.Verify(tok)
	assert.NoError(t, err)

	codec.now = func() time.Time { return issued.Add(TTL + time.Second) }
	_, err = codec.Verify(tok)
	assert.ErrorIs(t, err, ErrExpired)
}
