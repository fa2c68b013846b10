package lessons

import (
	"context"
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/arabesque-studio/arabesque/internal/members"
	"github.com/arabesque-studio/arabesque/internal/shared"
)

// Attendance resolves which lessons each member attends.
type Attendance interface {
	List(ctx context.Context) ([]members.Member, error)
}

// Service joins the lesson sheet with member attendance into the financial
// overview. Teacher scoping is applied here, after the fetch, never as a
// storage-level query.
type Service struct {
	repo       *Repository
	attendance Attendance
	printer    *message.Printer
}

// NewService constructs a Service.
func NewService(repo *Repository, attendance Attendance) *Service {
	return &Service{
		repo:       repo,
		attendance: attendance,
		printer:    message.NewPrinter(language.German),
	}
}

// List returns the lesson overview visible to the session. Owners see every
// lesson; a teacher's visible set is exactly the lessons bound to their
// username.
func (s *Service) List(ctx context.Context, sess shared.Session) ([]Lesson, error) {
	lessons, err := s.overview(ctx)
	if err != nil {
		return nil, err
	}
	if sess.Role != shared.RoleTeacher {
		return lessons, nil
	}
	own := make([]Lesson, 0, len(lessons))
	for _, l := range lessons {
		if l.Teacher == sess.Username {
			own = append(own, l)
		}
	}
	return own, nil
}

// Roster returns the members attending one lesson. A teacher may only read
// rosters of their own lessons.
func (s *Service) Roster(ctx context.Context, sess shared.Session, lessonName string) ([]members.Member, error) {
	lessons, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var match *Lesson
	for i := range lessons {
		if lessons[i].Name == lessonName {
			match = &lessons[i]
			break
		}
	}
	if match == nil {
		return nil, fmt.Errorf("%w: lesson %s", shared.ErrNotFound, lessonName)
	}
	if sess.Role == shared.RoleTeacher && match.Teacher != sess.Username {
		return nil, shared.ErrForbidden
	}

	all, err := s.attendance.List(ctx)
	if err != nil {
		return nil, err
	}
	roster := make([]members.Member, 0)
	for _, m := range all {
		for _, name := range m.Lessons {
			if name == lessonName {
				roster = append(roster, m)
				break
			}
		}
	}
	return roster, nil
}

func (s *Service) overview(ctx context.Context) ([]Lesson, error) {
	lessons, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	all, err := s.attendance.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, m := range all {
		for _, name := range m.Lessons {
			counts[name]++
		}
	}

	for i := range lessons {
		lessons[i].MemberCount = counts[lessons[i].Name]
		lessons[i].MonthlyRevenue = float64(lessons[i].MemberCount) * lessons[i].MonthlyFee
		lessons[i].RevenueDisplay = s.printer.Sprintf("%.2f €", lessons[i].MonthlyRevenue)
	}
	return lessons, nil
}
