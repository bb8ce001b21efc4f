package service

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/jobmaroc/backend/internal/core/ports"
)

const bearerPrefix = "Bearer "

// TokenService issues and validates HS512-signed bearer tokens. The signing
// key is a shared secret supplied base64-encoded; issuance and validation are
// pure computations over the token itself, nothing is persisted.
type TokenService struct {
	key []byte
	ttl time.Duration
	log zerolog.Logger
}

var _ ports.TokenService = (*TokenService)(nil)

// NewTokenService decodes the base64 secret and returns a TokenService with
// the given token lifetime. A ttl <= 0 defaults to 24h.
func NewTokenService(base64Secret string, ttl time.Duration, log zerolog.Logger) (*TokenService, error) {
	key, err := base64.StdEncoding.DecodeString(base64Secret)
	if err != nil {
		return nil, fmt.Errorf("token service: decode secret: %w", err)
	}
	if len(key) == 0 {
		return nil, errors.New("token service: empty signing secret")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{key: key, ttl: ttl, log: log}, nil
}

// Issue returns a signed token with the subject, issued-at and expiry claims.
func (s *TokenService) Issue(subject string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(s.key)
}

// Validate reports whether the token verifies against the key, is structurally
// well-formed and has not expired. Failure categories are logged individually
// but collapse to a single boolean outward.
func (s *TokenService) Validate(token string) bool {
	if token == "" {
		s.log.Debug().Msg("empty token")
		return false
	}
	_, err := s.parse(token)
	if err == nil {
		return true
	}
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		s.log.Debug().Msg("token expired")
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		s.log.Warn().Msg("invalid token signature")
	case errors.Is(err, jwt.ErrTokenMalformed):
		s.log.Debug().Msg("malformed token")
	default:
		s.log.Warn().Err(err).Msg("token validation failed")
	}
	return false
}

// Subject returns the subject claim. The token is assumed already validated.
func (s *TokenService) Subject(token string) (string, error) {
	claims, err := s.parse(token)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// ExtractFromHeader returns the token carried by an Authorization header
// value. Only the literal "Bearer " prefix is recognised.
func (s *TokenService) ExtractFromHeader(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	token := header[len(bearerPrefix):]
	if token == "" {
		return "", false
	}
	return token, true
}

func (s *TokenService) parse(token string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS512.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.key, nil
	})
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return claims, nil
}
