package ports

import (
	"context"

	"github.com/jobmaroc/backend/internal/core/domain"
)

// LoginResult is the bundle returned by a successful local sign-in.
type LoginResult struct {
	Username   string                  `json:"username"`
	Role       string                  `json:"role"`
	IsAccepted domain.AcceptanceStatus `json:"is_accepted"`
	Token      string                  `json:"token"`
}

// GoogleLoginResult is the bundle returned by a successful federated sign-in.
type GoogleLoginResult struct {
	Token      string                  `json:"token"`
	Email      string                  `json:"email"`
	FirstName  string                  `json:"firstName"`
	LastName   string                  `json:"lastName"`
	PictureURL string                  `json:"pictureUrl,omitempty"`
	Role       string                  `json:"role"`
	Roles      []string                `json:"roles"`
	IsAccepted domain.AcceptanceStatus `json:"is_accepted"`
	Type       string                  `json:"type"`
}

// AuthService orchestrates credential verification, the acceptance-status
// gate, and token issuance.
type AuthService interface {
	SignIn(ctx context.Context, email, password string) (*LoginResult, error)
	GoogleSignIn(ctx context.Context, rawIDToken string) (*GoogleLoginResult, error)
}

// GoogleIdentity is the identity asserted by a verified Google ID token.
type GoogleIdentity struct {
	Email      string
	FirstName  string
	LastName   string
	PictureURL string
}

// IdentityVerifier verifies a third-party identity assertion and returns the
// identity it asserts.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (*GoogleIdentity, error)
}
