// Package authz decides what each role may touch. The decision is a pure
// function of (role, resource class), recomputed per request.
package authz

import "github.com/arabesque-studio/arabesque/internal/shared"

// Capability names a category of gated operation.
type Capability string

const (
	CapMemberDataRead       Capability = "member-data-read"
	CapOwnProfile           Capability = "own-profile"
	CapLessonFinancialsRead Capability = "lesson-financials-read"
	CapTeacherRosterRead    Capability = "teacher-roster-read"
	CapChangeRequestCreate  Capability = "change-request-create"
	CapChangeRequestResolve Capability = "change-request-resolve"
	CapAdminHashIssue       Capability = "admin-hash-issue"
	CapPushSubscribe        Capability = "push-subscribe"
)

// grants is the fixed authorization table. Teacher lesson scoping is applied
// post-fetch by the lessons service, not here.
var grants = map[shared.Role]map[Capability]bool{
	shared.RoleOwner: {
		CapMemberDataRead:       true,
		CapLessonFinancialsRead: true,
		CapTeacherRosterRead:    true,
		CapChangeRequestResolve: true,
		CapAdminHashIssue:       true,
		CapPushSubscribe:        true,
	},
	shared.RoleTeacher: {
		CapMemberDataRead:       true,
		CapLessonFinancialsRead: true,
		CapTeacherRosterRead:    true,
	},
	shared.RoleMember: {
		CapChangeRequestCreate: true,
		CapOwnProfile:          true,
	},
	shared.RoleGuest: {},
}

// Can reports whether the role holds the capability.
func Can(role shared.Role, cap Capability) bool {
	return grants[role][cap]
}

// Decision is the outcome of an authorization check.
type Decision int

const (
	Allow Decision = iota
	DenyUnauthenticated
	DenyForbidden
)

// Decide applies the decision precedence: a missing session always yields
// DenyUnauthenticated before any role check.
func Decide(sess shared.Session, cap Capability) Decision {
	if !sess.LoggedIn {
		return DenyUnauthenticated
	}
	if Can(sess.Role, cap) {
		return Allow
	}
	return DenyForbidden
}
