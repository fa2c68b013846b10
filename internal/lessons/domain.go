// Package lessons computes the lesson and financial overview from the
// spreadsheet exports.
package lessons

// Lesson is one row of the overview. MonthlyRevenue is the member count
// multiplied by the lesson's monthly fee; the fee itself arrives precomputed
// from the sheet.
type Lesson struct {
	Name           string  `json:"name"`
	Teacher        string  `json:"teacher"`
	Schedule       string  `json:"schedule"`
	MonthlyFee     float64 `json:"monthlyFee"`
	MemberCount    int     `json:"memberCount"`
	MonthlyRevenue float64 `json:"monthlyRevenue"`
	RevenueDisplay string  `json:"revenueDisplay"`
}
