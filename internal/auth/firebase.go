package auth

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"
)

// FirebaseVerifier verifies ID tokens against Firebase Auth and maps the
// SDK's error surface onto the closed RejectReason set.
type FirebaseVerifier struct {
	client *auth.Client
}

func NewFirebaseVerifier(client *auth.Client) *FirebaseVerifier {
	return &FirebaseVerifier{client: client}
}

func (v *FirebaseVerifier) Verify(ctx context.Context, token string) (*Identity, RejectReason, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, classify(err), fmt.Errorf("verify id token: %w", err)
	}

	identity := &Identity{UID: decoded.UID}
	if email, ok := decoded.Claims["email"].(string); ok {
		identity.Email = email
	}

	return identity, ReasonUnknown, nil
}

func classify(err error) RejectReason {
	switch {
	case auth.IsIDTokenExpired(err):
		return ReasonExpired
	case auth.IsIDTokenRevoked(err):
		return ReasonInvalidToken
	case auth.IsUserDisabled(err):
		return ReasonUserDisabled
	default:
		return ReasonUnknown
	}
}
