package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

// AuthService implements the sign-in flows: local credentials and Google
// identity federation. Both apply the same acceptance-status gate before a
// token is issued.
type AuthService struct {
	users    ports.UserRepository
	roles    ports.RoleRepository
	talents  ports.TalentRepository
	tokens   ports.TokenService
	verifier ports.IdentityVerifier
	log      zerolog.Logger
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(
	users ports.UserRepository,
	roles ports.RoleRepository,
	talents ports.TalentRepository,
	tokens ports.TokenService,
	verifier ports.IdentityVerifier,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		roles:    roles,
		talents:  talents,
		tokens:   tokens,
		verifier: verifier,
		log:      log,
	}
}

// SignIn verifies the email/password pair and issues a token. An unknown
// email and a wrong password fail with the same error so callers cannot
// enumerate accounts.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.log.Warn().Str("email", email).Msg("sign-in for unknown account")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.log.Warn().Str("email", email).Msg("sign-in with wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	if !user.Enabled() {
		return nil, &domain.NotActiveError{Status: user.AcceptanceStatus}
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("sign in: issue token: %w", err)
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		s.log.Warn().Err(err).Str("email", email).Msg("failed to record last login")
	}

	s.log.Info().Str("email", user.Email).Str("role", user.Role.Name).Msg("user signed in")

	return &ports.LoginResult{
		Username:   user.Email,
		Role:       user.Role.Name,
		IsAccepted: user.AcceptanceStatus,
		Token:      token,
	}, nil
}

// GoogleSignIn verifies a Google ID token, provisioning a local WAITING
// talent account on first contact, then applies the same acceptance gate as
// the local flow.
func (s *AuthService) GoogleSignIn(ctx context.Context, rawIDToken string) (*ports.GoogleLoginResult, error) {
	if strings.TrimSpace(rawIDToken) == "" {
		return nil, domain.ErrGoogleTokenMissing
	}
	if s.verifier == nil {
		// Federated login is disabled when no client ID is configured.
		return nil, domain.ErrGoogleTokenInvalid
	}

	ident, err := s.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		s.log.Warn().Err(err).Msg("google id token verification failed")
		return nil, domain.ErrGoogleTokenInvalid
	}

	user, err := s.users.FindByEmail(ctx, ident.Email)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		if user, err = s.registerGoogleUser(ctx, ident); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	if !user.Enabled() {
		return nil, &domain.NotActiveError{Status: user.AcceptanceStatus}
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return nil, fmt.Errorf("google sign in: issue token: %w", err)
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		s.log.Warn().Err(err).Str("email", user.Email).Msg("failed to record last login")
	}

	s.log.Info().Str("email", user.Email).Msg("user signed in via google")

	return &ports.GoogleLoginResult{
		Token:      token,
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		PictureURL: user.ImagePath,
		Role:       user.Role.Name,
		Roles:      user.Authorities(),
		IsAccepted: user.AcceptanceStatus,
		Type:       "Bearer",
	}, nil
}

// registerGoogleUser creates a WAITING account with the default talent role
// and an empty talent profile. The placeholder password is random and hashed;
// the account can only ever authenticate through Google until it is changed.
func (s *AuthService) registerGoogleUser(ctx context.Context, ident *ports.GoogleIdentity) (*domain.User, error) {
	role, err := s.roles.FindByName(ctx, domain.RoleTalent)
	if err != nil {
		if errors.Is(err, domain.ErrRoleNotFound) {
			// Missing default role is a deployment fault, not a user error.
			s.log.Error().Str("role", domain.RoleTalent).Msg("default role row is absent")
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(placeholderPassword()), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register google user: %w", err)
	}

	user := &domain.User{
		Email:            ident.Email,
		PasswordHash:     string(hash),
		FirstName:        ident.FirstName,
		LastName:         ident.LastName,
		RoleID:           role.ID,
		Role:             *role,
		AcceptanceStatus: domain.StatusWaiting,
		RegistrationDate: time.Now().UTC(),
		ImagePath:        ident.PictureURL,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	if _, err := s.talents.Create(ctx, &domain.TalentProfile{UserID: created.ID}); err != nil {
		return nil, fmt.Errorf("register google user: create talent profile: %w", err)
	}

	s.log.Info().Str("email", created.Email).Msg("google user registered")
	return created, nil
}

func placeholderPassword() string {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("google-auth-%d", time.Now().UnixNano())
	}
	return "google-auth-" + hex.EncodeToString(b)
}
