package stats

import (
	"context"
	"time"
)

// StatsRepository defines the aggregate queries behind the stats endpoints.
type StatsRepository interface {
	// StatusCounts aggregates per-status record counts over [start, end].
	StatusCounts(ctx context.Context, start, end time.Time) (StatusCounts, error)

	// DepartmentEmployeeCounts returns the employee count per department,
	// ordered by department name.
	DepartmentEmployeeCounts(ctx context.Context) ([]DepartmentStats, error)

	// MonthlyStatusCounts buckets record counts by month over [start, end],
	// oldest month first. Months without records are omitted.
	MonthlyStatusCounts(ctx context.Context, start, end time.Time) ([]MonthBucket, error)
}
