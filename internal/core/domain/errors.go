package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")
var ErrUserNotFound = errors.New("user not found")
var ErrEmailTaken = errors.New("email already registered")
var ErrRoleNotFound = errors.New("default role not found")
var ErrGoogleTokenMissing = errors.New("google id token is missing")
var ErrGoogleTokenInvalid = errors.New("google id token is invalid")
var ErrOfferNotFound = errors.New("offer not found")
var ErrOfferClosed = errors.New("offer is no longer accepting applications")
var ErrInvalidTransition = errors.New("invalid status transition")
var ErrApplicationNotFound = errors.New("application not found")
var ErrDuplicateApplication = errors.New("application already submitted for this offer")
var ErrCompanyNotFound = errors.New("company not found")
var ErrStatusDecided = errors.New("acceptance status already decided")
var ErrInvalidStatus = errors.New("unknown acceptance status")
var ErrForbidden = errors.New("access forbidden")

// NotActiveError is returned when credentials verify but the account has not
// been accepted by an administrator. It carries the actual status so callers
// can render WAITING and REFUSED differently.
type NotActiveError struct {
	Status AcceptanceStatus
}

func (e *NotActiveError) Error() string {
	return fmt.Sprintf("account is not active: %s", e.Status)
}
