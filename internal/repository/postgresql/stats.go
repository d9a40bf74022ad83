package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/worklens/attendance-backend-go/internal/domain/stats"
	"github.com/worklens/attendance-backend-go/internal/pkg/database"
)

type statsRepository struct {
	db database.Pool
}

func NewStatsRepository(db database.Pool) stats.StatsRepository {
	return &statsRepository{db: db}
}

// StatusCounts implements stats.StatsRepository. Present counts every
// non-absent record.
func (r *statsRepository) StatusCounts(ctx context.Context, start, end time.Time) (stats.StatusCounts, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN LOWER(attendance_status) IN ('present', 'late', 'half day', 'ontime') THEN 1 ELSE 0 END), 0) AS present,
			COALESCE(SUM(CASE WHEN LOWER(attendance_status) = 'ontime' THEN 1 ELSE 0 END), 0) AS on_time,
			COALESCE(SUM(CASE WHEN LOWER(attendance_status) = 'late' THEN 1 ELSE 0 END), 0) AS late
		FROM attendance
		WHERE attendance_date >= $1 AND attendance_date <= $2
	`

	var counts stats.StatusCounts
	err := q.QueryRow(ctx, query, start, end).Scan(&counts.Present, &counts.OnTime, &counts.Late)
	if err != nil {
		return stats.StatusCounts{}, fmt.Errorf("failed to get status counts: %w", err)
	}

	return counts, nil
}

// DepartmentEmployeeCounts implements stats.StatsRepository.
func (r *statsRepository) DepartmentEmployeeCounts(ctx context.Context) ([]stats.DepartmentStats, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT d.dept_name, COUNT(e.emp_id) AS total_employees
		FROM dept d
		JOIN employees e ON e.dept_id = d.dept_id
		GROUP BY d.dept_name
		ORDER BY d.dept_name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get department employee counts: %w", err)
	}
	defer rows.Close()

	var results []stats.DepartmentStats
	for rows.Next() {
		var d stats.DepartmentStats
		if err := rows.Scan(&d.DepartmentName, &d.TotalEmployees); err != nil {
			return nil, fmt.Errorf("failed to scan department stats: %w", err)
		}
		results = append(results, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get department employee counts: %w", err)
	}

	return results, nil
}

// MonthlyStatusCounts implements stats.StatsRepository.
func (r *statsRepository) MonthlyStatusCounts(ctx context.Context, start, end time.Time) ([]stats.MonthBucket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT TO_CHAR(attendance_date, 'YYYY-MM') AS month,
			   COALESCE(SUM(CASE WHEN LOWER(attendance_status) IN ('present', 'half day', 'ontime') THEN 1 ELSE 0 END), 0) AS present,
			   COALESCE(SUM(CASE WHEN LOWER(attendance_status) = 'late' THEN 1 ELSE 0 END), 0) AS late,
			   COALESCE(SUM(CASE WHEN LOWER(attendance_status) = 'absent' THEN 1 ELSE 0 END), 0) AS absent,
			   COUNT(*) AS total
		FROM attendance
		WHERE attendance_date >= $1 AND attendance_date <= $2
		GROUP BY TO_CHAR(attendance_date, 'YYYY-MM')
		ORDER BY month ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly status counts: %w", err)
	}
	defer rows.Close()

	var buckets []stats.MonthBucket
	for rows.Next() {
		var b stats.MonthBucket
		if err := rows.Scan(&b.Month, &b.Present, &b.Late, &b.Absent, &b.Total); err != nil {
			return nil, fmt.Errorf("failed to scan month bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get monthly status counts: %w", err)
	}

	return buckets, nil
}
