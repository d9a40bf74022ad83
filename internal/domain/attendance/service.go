package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance reporting
type AttendanceService interface {
	// DailyReport resolves per-employee statuses for the filter's date,
	// producing the paginated report with aggregate counts. Identical
	// queries within the cache TTL return the cached result verbatim.
	DailyReport(ctx context.Context, filter DailyReportFilter) (DailyReportResponse, error)

	// Records returns the flat, name-sorted status records for a date
	// (latest date with data when the filter's date is empty), without
	// pagination.
	Records(ctx context.Context, filter GridFilter) ([]StatusRecord, error)

	// History returns one employee's attendance history, newest day first.
	History(ctx context.Context, employeeID int64) ([]HistoryRecord, error)
}
