package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jobmaroc/backend/internal/api/metrics"
	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// The username field carries the account email.
type signInRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleSignInRequest struct {
	GoogleIDToken string `json:"googleIdToken"`
}

// SignIn authenticates a user by email and password.
//
// @Summary      Sign in with email and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signInRequest  true  "Credentials"
// @Success      200   {object}  ports.LoginResult
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      423   {object}  map[string]any
// @Router       /signin [post]
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req signInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.SignIn(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, result)
}

// GoogleSignIn authenticates a user with a Google ID token, registering a
// new talent account on first sight.
//
// @Summary      Sign in with a Google ID token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      googleSignInRequest  true  "Google ID token"
// @Success      200   {object}  ports.GoogleLoginResult
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]any
// @Failure      423   {object}  map[string]any
// @Router       /google-signin [post]
func (h *AuthHandler) GoogleSignIn(c echo.Context) error {
	var req googleSignInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.GoogleSignIn(c.Request().Context(), req.GoogleIDToken)
	if err != nil {
		metrics.GoogleLoginsTotal.WithLabelValues(googleLoginResult(err)).Inc()
		return err
	}

	metrics.GoogleLoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, result)
}

func loginResult(err error) string {
	var notActive *domain.NotActiveError
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.As(err, &notActive):
		return "not_active"
	default:
		return "error"
	}
}

func googleLoginResult(err error) string {
	var notActive *domain.NotActiveError
	switch {
	case errors.Is(err, domain.ErrGoogleTokenMissing), errors.Is(err, domain.ErrGoogleTokenInvalid):
		return "invalid_token"
	case errors.As(err, &notActive):
		return "not_active"
	default:
		return "error"
	}
}
