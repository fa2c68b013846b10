package lessons

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arabesque-studio/arabesque/internal/members"
	"github.com/arabesque-studio/arabesque/internal/shared"
)

type stubSource struct {
	rows [][]string
	err  error
}

func (s *stubSource) Rows(ctx context.Context, url string) ([][]string, error) {
	return s.rows, s.err
}

type stubAttendance struct {
	members []members.Member
	err     error
}

func (s *stubAttendance) List(ctx context.Context) ([]members.Member, error) {
	return s.members, s.err
}

func lessonRows() [][]string {
	return [][]string{
		{"name", "teacher", "schedule", "fee"},
		{"Ballett I", "karin", "Mo 17:00", "35.50"},
		{"Jazz", "karin", "Di 18:30", "30"},
		{"Hip-Hop", "tom", "Fr 16:00", "30"},
	}
}

func attendance() *stubAttendance {
	return &stubAttendance{members: []members.Member{
		{Name: "Anna Müller", Username: "anna", Lessons: []string{"Jazz"}},
		{Name: "Änne Otto", Username: "aenne", Lessons: []string{"Ballett I", "Jazz"}},
		{Name: "Zoe Abel", Username: "zoe", Lessons: []string{"Ballett I"}},
	}}
}

func TestOverviewAggregatesFinancials(t *testing.T) {
	svc := NewService(NewRepository(&stubSource{rows: lessonRows()}, "lessons"), attendance())
	owner := shared.Session{LoggedIn: true, Role: shared.RoleOwner}

	lessons, err := svc.List(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, lessons, 3)

	ballett := lessons[0]
	assert.Equal(t, "Ballett I", ballett.Name)
	assert.Equal(t, 2, ballett.MemberCount)
	assert.InDelta(t, 71.0, ballett.MonthlyRevenue, 0.001)
	assert.Equal(t, "71,00 €", ballett.RevenueDisplay)

	hiphop := lessons[2]
	assert.Equal(t, 0, hiphop.MemberCount)
	assert.InDelta(t, 0, hiphop.MonthlyRevenue, 0.001)
}

func TestTeacherSeesOwnLessonsOnly(t *testing.T) {
	svc := NewService(NewRepository(&stubSource{rows: lessonRows()}, "lessons"), attendance())
	karin := shared.Session{LoggedIn: true, Role: shared.RoleTeacher, Username: "karin"}

	lessons, err := svc.List(context.Background(), karin)
	require.NoError(t, err)
	require.Len(t, lessons, 2)
	for _, l := range lessons {
		assert.Equal(t, "karin", l.Teacher)
	}
}

func TestRosterScoping(t *testing.T) {
	svc := NewService(NewRepository(&stubSource{rows: lessonRows()}, "lessons"), attendance())
	karin := shared.Session{LoggedIn: true, Role: shared.RoleTeacher, Username: "karin"}
	owner := shared.Session{LoggedIn: true, Role: shared.RoleOwner}

	roster, err := svc.Roster(context.Background(), karin, "Jazz")
	require.NoError(t, err)
	assert.Len(t, roster, 2)

	// Another teacher's lesson is forbidden for karin but fine for the owner.
	_, err = svc.Roster(context.Background(), karin, "Hip-Hop")
	assert.ErrorIs(t, err, shared.ErrForbidden)
	_, err = svc.Roster(context.Background(), owner, "Hip-Hop")
	assert.NoError(t, err)

	_, err = svc.Roster(context.Background(), owner, "Stepptanz")
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestOverviewPropagatesUpstreamFailure(t *testing.T) {
	svc := NewService(NewRepository(&stubSource{err: shared.ErrUpstream}, "lessons"), attendance())
	owner := shared.Session{LoggedIn: true, Role: shared.RoleOwner}
	_, err := svc.List(context.Background(), owner)
	assert.ErrorIs(t, err, shared.ErrUpstream)
}
