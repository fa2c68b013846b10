package shared

import "fmt"

// Role is the sole unit of authorization granularity.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleTeacher Role = "teacher"
	RoleMember  Role = "member"
	RoleGuest   Role = "guest"
)

// ParseRole maps a string onto the closed role set. An unrecognized value
// is an error, never a silent fall-through to guest.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleOwner, RoleTeacher, RoleMember, RoleGuest:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: unknown role %q", ErrBadInput, s)
}
