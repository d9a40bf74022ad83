package stats

import (
	"context"
)

// StatsService defines business logic for aggregate statistics
type StatsService interface {
	// LateStats reports late counts and percentage over the last 30 days.
	LateStats(ctx context.Context) (LateStatsResponse, error)

	// OnTimeStats reports on-time counts and percentage over the last 30 days.
	OnTimeStats(ctx context.Context) (OnTimeStatsResponse, error)

	// DepartmentStats reports the employee count per department.
	DepartmentStats(ctx context.Context) ([]DepartmentStats, error)

	// Trends reports monthly present/late/absent percentages over the last
	// twelve months.
	Trends(ctx context.Context) ([]AttendanceTrend, error)
}
