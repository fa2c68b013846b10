package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arabesque-studio/arabesque/internal/shared"
)

var allCapabilities = []Capability{
	CapMemberDataRead,
	CapOwnProfile,
	CapLessonFinancialsRead,
	CapTeacherRosterRead,
	CapChangeRequestCreate,
	CapChangeRequestResolve,
	CapAdminHashIssue,
	CapPushSubscribe,
}

func TestCanMatchesAuthorizationTable(t *testing.T) {
	expected := map[shared.Role]map[Capability]bool{
		shared.RoleOwner: {
			CapMemberDataRead:       true,
			CapOwnProfile:           false,
			CapLessonFinancialsRead: true,
			CapTeacherRosterRead:    true,
			CapChangeRequestCreate:  false,
			CapChangeRequestResolve: true,
			CapAdminHashIssue:       true,
			CapPushSubscribe:        true,
		},
		shared.RoleTeacher: {
			CapMemberDataRead:       true,
			CapOwnProfile:           false,
			CapLessonFinancialsRead: true,
			CapTeacherRosterRead:    true,
			CapChangeRequestCreate:  false,
			CapChangeRequestResolve: false,
			CapAdminHashIssue:       false,
			CapPushSubscribe:        false,
		},
		shared.RoleMember: {
			CapMemberDataRead:       false,
			CapOwnProfile:           true,
			CapLessonFinancialsRead: false,
			CapTeacherRosterRead:    false,
			CapChangeRequestCreate:  true,
			CapChangeRequestResolve: false,
			CapAdminHashIssue:       false,
			CapPushSubscribe:        false,
		},
		shared.RoleGuest: {},
	}

	for role, caps := range expected {
		for _, cap := range allCapabilities {
			assert.Equal(t, caps[cap], Can(role, cap), "role=%s capability=%s", role, cap)
		}
	}
}

func TestDecidePrecedence(t *testing.T) {
	// Unauthenticated wins before any role check, even for a role that would
	// hold the capability.
	anon := shared.Anonymous
	assert.Equal(t, DenyUnauthenticated, Decide(anon, CapMemberDataRead))

	owner := shared.Session{LoggedIn: true, Role: shared.RoleOwner}
	assert.Equal(t, Allow, Decide(owner, CapMemberDataRead))
	assert.Equal(t, DenyForbidden, Decide(owner, CapChangeRequestCreate))

	member := shared.Session{LoggedIn: true, Role: shared.RoleMember, Username: "anna"}
	assert.Equal(t, Allow, Decide(member, CapChangeRequestCreate))
	assert.Equal(t, DenyForbidden, Decide(member, CapMemberDataRead))
}

func TestParseRoleRejectsUnknown(t *testing.T) {
	for _, valid := range []string{"owner", "teacher", "member", "guest"} {
		role, err := shared.ParseRole(valid)
		assert.NoError(t, err)
		assert.Equal(t, shared.Role(valid), role)
	}
	_, err := shared.ParseRole("admin")
	assert.Error(t, err)
	_, err = shared.ParseRole("")
	assert.Error(t, err)
}
