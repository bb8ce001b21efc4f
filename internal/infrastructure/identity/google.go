// Package identity verifies third-party identity assertions and maps them to
// the neutral GoogleIdentity the authentication gate consumes.
package identity

import (
	"context"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"

	"github.com/jobmaroc/backend/internal/core/ports"
)

const googleIssuer = "https://accounts.google.com"

// GoogleVerifier validates Google ID tokens against Google's published keys
// and the configured OAuth client ID.
type GoogleVerifier struct {
	verifier *oidc.IDTokenVerifier
}

var _ ports.IdentityVerifier = (*GoogleVerifier)(nil)

// NewGoogleVerifier discovers Google's OIDC configuration. The clientID must
// be the OAuth client the frontend obtained the ID token for.
func NewGoogleVerifier(ctx context.Context, clientID string) (*GoogleVerifier, error) {
	provider, err := oidc.NewProvider(ctx, googleIssuer)
	if err != nil {
		return nil, fmt.Errorf("google verifier: discover provider: %w", err)
	}
	return &GoogleVerifier{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
	}, nil
}

// Verify checks the raw ID token's signature, issuer, audience and expiry,
// then extracts the profile claims.
func (v *GoogleVerifier) Verify(ctx context.Context, rawIDToken string) (*ports.GoogleIdentity, error) {
	idToken, err := v.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, fmt.Errorf("google verifier: %w", err)
	}

	var claims struct {
		Email      string `json:"email"`
		GivenName  string `json:"given_name"`
		FamilyName string `json:"family_name"`
		Picture    string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return nil, fmt.Errorf("google verifier: decode claims: %w", err)
	}
	if claims.Email == "" {
		return nil, fmt.Errorf("google verifier: token carries no email claim")
	}

	return &ports.GoogleIdentity{
		Email:      claims.Email,
		FirstName:  claims.GivenName,
		LastName:   claims.FamilyName,
		PictureURL: claims.Picture,
	}, nil
}
