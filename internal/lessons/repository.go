package lessons

import (
	"context"
	"strconv"
	"strings"
)

// RowSource reads a published CSV export.
type RowSource interface {
	Rows(ctx context.Context, url string) ([][]string, error)
}

// Export columns, fixed order: lesson name, teacher username, schedule,
// monthly fee per member.
const (
	colName = iota
	colTeacher
	colSchedule
	colFee
	lessonColumns
)

// Repository reads the lesson sheet.
type Repository struct {
	source RowSource
	url    string
}

// NewRepository constructs a Repository bound to the lessons export URL.
func NewRepository(source RowSource, url string) *Repository {
	return &Repository{source: source, url: url}
}

// List returns the raw lesson rows without financial aggregation.
func (r *Repository) List(ctx context.Context) ([]Lesson, error) {
	rows, err := r.source.Rows(ctx, r.url)
	if err != nil {
		return nil, err
	}
	lessons := make([]Lesson, 0, len(rows))
	for i, row := range rows {
		if i == 0 || len(row) < lessonColumns {
			continue
		}
		fee, err := strconv.ParseFloat(strings.TrimSpace(row[colFee]), 64)
		if err != nil {
			fee = 0
		}
		lessons = append(lessons, Lesson{
			Name:       strings.TrimSpace(row[colName]),
			Teacher:    strings.TrimSpace(row[colTeacher]),
			Schedule:   strings.TrimSpace(row[colSchedule]),
			MonthlyFee: fee,
		})
	}
	return lessons, nil
}
