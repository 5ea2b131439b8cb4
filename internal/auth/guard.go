// Package auth verifies admin credentials. Tokens are issued, expired and
// revoked by the external identity provider; this package only checks the
// bearer header shape and hands the token to a verifier collaborator.
package auth

import (
	"context"
	"errors"
	"log"
	"strings"
)

// ErrUnauthorized is the only failure Authenticate returns. Missing header,
// malformed scheme and failed verification are deliberately
// indistinguishable to callers.
var ErrUnauthorized = errors.New("unauthorized")

const bearerScheme = "Bearer "

// Identity is a verified admin identity claim.
type Identity struct {
	UID   string
	Email string
}

// RejectReason is the closed set of verification failure causes. It decouples
// the guard from any specific identity vendor's error vocabulary and is used
// for internal logging only; it never reaches a response body.
type RejectReason int

const (
	ReasonUnknown RejectReason = iota
	ReasonInvalidToken
	ReasonExpired
	ReasonUserDisabled
	ReasonTooManyAttempts
)

func (r RejectReason) String() string {
	switch r {
	case ReasonInvalidToken:
		return "invalid_token"
	case ReasonExpired:
		return "expired"
	case ReasonUserDisabled:
		return "user_disabled"
	case ReasonTooManyAttempts:
		return "too_many_attempts"
	default:
		return "unknown"
	}
}

// TokenVerifier is the identity-verification collaborator.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*Identity, RejectReason, error)
}

type Guard struct {
	verifier TokenVerifier
}

func NewGuard(verifier TokenVerifier) *Guard {
	return &Guard{verifier: verifier}
}

// Authenticate checks the Authorization header value and returns the verified
// identity. Identities are never cached; every call hits the verifier.
func (g *Guard) Authenticate(ctx context.Context, header string) (*Identity, error) {
	if !strings.HasPrefix(header, bearerScheme) {
		return nil, ErrUnauthorized
	}

	token := header[len(bearerScheme):]
	if token == "" {
		return nil, ErrUnauthorized
	}

	identity, reason, err := g.verifier.Verify(ctx, token)
	if err != nil {
		log.Printf("[auth] token rejected: reason=%s err=%v", reason, err)
		return nil, ErrUnauthorized
	}

	return identity, nil
}
