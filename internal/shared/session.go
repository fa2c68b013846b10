package shared

import "time"

// Session is the verified identity attached to a request. The zero value is
// not meaningful; use Anonymous for the unauthenticated case.
type Session struct {
	LoggedIn           bool
	Role               Role
	Username           string
	MustChangePassword bool
	IssuedAt           time.Time
	ExpiresAt          time.Time
}

// Anonymous is the sentinel every verification failure collapses into.
var Anonymous = Session{Role: RoleGuest}
