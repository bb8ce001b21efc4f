package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/jobmaroc/backend/internal/core/domain"
	"github.com/jobmaroc/backend/internal/core/ports"
)

type stubAuthService struct {
	signInFn       func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	googleSignInFn func(ctx context.Context, rawIDToken string) (*ports.GoogleLoginResult, error)
}

func (s *stubAuthService) SignIn(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.signInFn(ctx, email, password)
}

func (s *stubAuthService) GoogleSignIn(ctx context.Context, rawIDToken string) (*ports.GoogleLoginResult, error) {
	return s.googleSignInFn(ctx, rawIDToken)
}

func newSignInContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/signin", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_SignIn_Success(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			if email != "alice@example.com" || password != "secret-pw" {
				t.Fatalf("unexpected args: %s", email)
			}
			return &ports.LoginResult{
				Username:   email,
				Role:       domain.RoleTalent,
				IsAccepted: domain.StatusAccepted,
				Token:      "signed-token",
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newSignInContext(t, `{"username":"alice@example.com","password":"secret-pw"}`)
	if err := h.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "signed-token" || resp["username"] != "alice@example.com" {
		t.Fatalf("unexpected payload: %v", resp)
	}
	if resp["is_accepted"] != string(domain.StatusAccepted) {
		t.Fatalf("expected is_accepted ACCEPTED, got %v", resp["is_accepted"])
	}
}

func TestAuthHandler_SignIn_PropagatesDomainErrors(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return nil, domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newSignInContext(t, `{"username":"a@b.com","password":"bad-password"}`)
	err := h.SignIn(c)
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_SignIn_NotActivePropagates(t *testing.T) {
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return nil, &domain.NotActiveError{Status: domain.StatusWaiting}
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newSignInContext(t, `{"username":"a@b.com","password":"good-password"}`)
	err := h.SignIn(c)

	var notActive *domain.NotActiveError
	if !errors.As(err, &notActive) || notActive.Status != domain.StatusWaiting {
		t.Fatalf("expected NotActiveError{WAITING}, got %v", err)
	}
}

func TestAuthHandler_SignIn_RejectsInvalidBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})

	for _, body := range []string{`{"username":"not-an-email","password":"x"}`, `{"password":"x"}`, `{}`} {
		c, _ := newSignInContext(t, body)
		err := h.SignIn(c)
		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %v", body, err)
		}
	}
}

// The sign-in body carries the email under "username"; an "email" key must
// not bind.
func TestAuthHandler_SignIn_BindsUsernameField(t *testing.T) {
	called := false
	stub := &stubAuthService{
		signInFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			called = true
			if email != "alice@example.com" {
				t.Fatalf("expected username to bind as email, got %q", email)
			}
			return &ports.LoginResult{Username: email, Token: "tok"}, nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newSignInContext(t, `{"username":"alice@example.com","password":"pw"}`)
	if err := h.SignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatal("service was not called")
	}

	c, _ = newSignInContext(t, `{"email":"alice@example.com","password":"pw"}`)
	err := h.SignIn(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf(`expected 400 for "email" key, got %v`, err)
	}
}

func TestAuthHandler_GoogleSignIn_Success(t *testing.T) {
	stub := &stubAuthService{
		googleSignInFn: func(ctx context.Context, rawIDToken string) (*ports.GoogleLoginResult, error) {
			if rawIDToken != "raw" {
				t.Fatalf("expected raw token forwarded, got %q", rawIDToken)
			}
			return &ports.GoogleLoginResult{
				Token:      "signed-token",
				Email:      "g@example.com",
				Role:       domain.RoleTalent,
				Roles:      []string{domain.RoleTalent},
				IsAccepted: domain.StatusAccepted,
				Type:       "Bearer",
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/google-signin", strings.NewReader(`{"googleIdToken":"raw"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.GoogleSignIn(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["type"] != "Bearer" || resp["email"] != "g@example.com" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}
