package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobmaroc/backend/internal/core/ports"
)

// identityKey is the echo context key the authenticated identity is stored
// under. Request-scoped only; nothing outlives the request.
const identityKey = "auth.identity"

// Identity describes the authenticated caller for the duration of a request.
type Identity struct {
	UserID uint
	Email  string
	Role   string
}

// IdentityFrom returns the caller identity attached by Authenticate, if any.
func IdentityFrom(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}

// Authenticate resolves the bearer token into a caller identity and attaches
// it to the request context. It never rejects: any failure (missing header,
// invalid token, unknown subject, store error) is logged and the request
// proceeds unauthenticated, leaving access decisions to the route guards.
func Authenticate(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok := tokens.ExtractFromHeader(c.Request().Header.Get(echo.HeaderAuthorization))
			if !ok {
				return next(c)
			}

			if !tokens.Validate(raw) {
				log.Debug().Str("path", c.Path()).Msg("bearer token rejected")
				return next(c)
			}

			subject, err := tokens.Subject(raw)
			if err != nil {
				log.Debug().Err(err).Msg("cannot read token subject")
				return next(c)
			}

			user, err := users.FindByEmail(c.Request().Context(), subject)
			if err != nil {
				log.Warn().Err(err).Str("subject", subject).Msg("token subject not resolvable")
				return next(c)
			}

			c.Set(identityKey, Identity{
				UserID: user.ID,
				Email:  user.Email,
				Role:   user.Role.Authority(),
			})
			return next(c)
		}
	}
}
