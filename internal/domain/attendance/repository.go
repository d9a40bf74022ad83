package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines read access to punch events, pre-collapsed to
// one summary per employee per day.
type AttendanceRepository interface {
	// DaySummaries collapses the punch events of the given employees on date
	// to first-in/last-out summaries. Employees without events that day are
	// simply absent from the result.
	DaySummaries(ctx context.Context, date time.Time, employeeIDs []int64) ([]DaySummary, error)

	// LatestDate returns the most recent date holding any punch event.
	// Returns ErrNoAttendanceData on an empty store.
	LatestDate(ctx context.Context) (time.Time, error)

	// HistoryByEmployee returns one summary per recorded day for the
	// employee, newest first.
	HistoryByEmployee(ctx context.Context, employeeID int64) ([]DaySummary, error)
}
