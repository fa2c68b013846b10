package members

import (
	"context"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Service wraps roster reads with presentation ordering.
type Service struct {
	repo     *Repository
	collator *collate.Collator
}

// NewService constructs a Service. Names are ordered with German collation
// so umlauts sort where members expect them.
func NewService(repo *Repository) *Service {
	return &Service{
		repo:     repo,
		collator: collate.New(language.German),
	}
}

// List returns the roster sorted by name.
func (s *Service) List(ctx context.Context) ([]Member, error) {
	members, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(members, func(i, j int) bool {
		return s.collator.CompareString(members[i].Name, members[j].Name) < 0
	})
	return members, nil
}

// Profile returns a single member's own record.
func (s *Service) Profile(ctx context.Context, username string) (Member, error) {
	return s.repo.Find(ctx, username)
}
