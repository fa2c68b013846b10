// Package members exposes the member roster kept in the spreadsheet.
package members

// Member is one roster row.
type Member struct {
	Name      string   `json:"name"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	BirthDate string   `json:"birthDate"`
	Lessons   []string `json:"lessons"`
}
