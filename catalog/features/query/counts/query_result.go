package counts

// Keys of the summary as a map.
const (
	KeyTotalTitles  = "total_titles"
	KeyTotalCopies  = "total_copies"
	KeyTotalUsers   = "total_users"
	KeyActiveLoans  = "active_loans"
	KeyReservations = "reservations"
	KeyOverdueCount = "overdue_count"
)

// Counts is the dashboard summary.
type Counts struct {
	TotalTitles  int
	TotalCopies  int
	TotalUsers   int
	ActiveLoans  int
	Reservations int
	OverdueCount int
}

// AsMap returns the summary keyed by the six statistic names.
func (c Counts) AsMap() map[string]int {
	return map[string]int{
		KeyTotalTitles:  c.TotalTitles,
		KeyTotalCopies:  c.TotalCopies,
		KeyTotalUsers:   c.TotalUsers,
		KeyActiveLoans:  c.ActiveLoans,
		KeyReservations: c.Reservations,
		KeyOverdueCount: c.OverdueCount,
	}
}
