package ports

// TokenService issues and validates the bearer tokens that authenticate every
// request after sign-in.
type TokenService interface {
	// Issue returns a signed token asserting the given subject until the
	// configured lifetime elapses.
	Issue(subject string) (string, error)
	// Validate reports whether the token is well-formed, correctly signed and
	// not expired. It never panics on malformed input.
	Validate(token string) bool
	// Subject returns the subject claim of a token. Callers must Validate
	// first; the result for an invalid token is unspecified.
	Subject(token string) (string, error)
	// ExtractFromHeader returns the token carried by an Authorization header
	// value, or false when the header is absent or not a Bearer credential.
	ExtractFromHeader(header string) (string, bool)
}
