package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated indicates a request without a valid session.
	ErrUnauthenticated = errors.New("authentication required")
	// ErrForbidden indicates a valid session with insufficient role.
	ErrForbidden = errors.New("forbidden")
	// ErrBadInput indicates a malformed request body or missing field.
	ErrBadInput = errors.New("bad input")
	// ErrUpstream indicates the spreadsheet export or write relay could not be reached.
	ErrUpstream = errors.New("upstream unavailable")
	// ErrConfigMissing indicates a required server secret or URL is absent.
	ErrConfigMissing = errors.New("missing configuration")
)
