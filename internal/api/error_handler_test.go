package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/jobmaroc/backend/internal/core/domain"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrGoogleTokenMissing, http.StatusBadRequest},
		{domain.ErrGoogleTokenInvalid, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrOfferNotFound, http.StatusNotFound},
		{domain.ErrEmailTaken, http.StatusConflict},
		{domain.ErrDuplicateApplication, http.StatusConflict},
		{domain.ErrOfferClosed, http.StatusUnprocessableEntity},
		{domain.ErrStatusDecided, http.StatusConflict},
		{domain.ErrInvalidStatus, http.StatusBadRequest},
		{domain.ErrRoleNotFound, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec, body := renderError(t, tc.err)
		if rec.Code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
		if body["status"] != float64(tc.code) {
			t.Fatalf("%v: body status %v does not echo the code", tc.err, body["status"])
		}
		if body["message"] == "" {
			t.Fatalf("%v: empty message", tc.err)
		}
	}
}

func TestHTTPErrorHandler_NotActiveIsLocked(t *testing.T) {
	for _, status := range []domain.AcceptanceStatus{domain.StatusWaiting, domain.StatusRefused} {
		rec, body := renderError(t, &domain.NotActiveError{Status: status})
		if rec.Code != http.StatusLocked {
			t.Fatalf("expected 423, got %d", rec.Code)
		}
		if body["is_accepted"] != string(status) {
			t.Fatalf("expected echoed status %s, got %v", status, body["is_accepted"])
		}
	}
}

func TestHTTPErrorHandler_WrappedErrorsStillMap(t *testing.T) {
	wrapped := errors.Join(errors.New("update offer 7"), domain.ErrForbidden)
	rec, _ := renderError(t, wrapped)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("wrapped ErrForbidden must map to 403, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_ConfigurationErrorIsOpaque(t *testing.T) {
	_, body := renderError(t, domain.ErrRoleNotFound)
	if body["message"] != "internal server error" {
		t.Fatalf("configuration faults must not leak, got %v", body["message"])
	}
}

func TestHTTPErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	rec, body := renderError(t, errors.New("pq: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body["message"] != "internal server error" {
		t.Fatalf("internal details must not leak, got %v", body["message"])
	}
}

func TestHTTPErrorHandler_EchoErrorsPassThrough(t *testing.T) {
	rec, body := renderError(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	if body["message"] != "short and stout" {
		t.Fatalf("unexpected message %v", body["message"])
	}
}
