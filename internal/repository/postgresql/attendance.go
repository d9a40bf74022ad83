package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/worklens/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens/attendance-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db database.Pool
}

func NewAttendanceRepository(db database.Pool) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// DaySummaries implements attendance.AttendanceRepository. Punch events are
// collapsed in SQL: earliest punch-in, latest punch-out, and whether the
// stored status marks the day as Half Day. Times come back as text so the
// HH:MM:SS clock strings survive the trip unchanged.
func (r *attendanceRepository) DaySummaries(ctx context.Context, date time.Time, employeeIDs []int64) ([]attendance.DaySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.emp_id,
			   CAST(MIN(a.time) FILTER (WHERE a.punch_type = 'punch_in') AS TEXT) AS punch_in,
			   CAST(MAX(a.time) FILTER (WHERE a.punch_type = 'punch_out') AS TEXT) AS punch_out,
			   COALESCE(BOOL_OR(a.attendance_status = 'Half Day'), FALSE) AS half_day
		FROM attendance a
		WHERE a.attendance_date = $1
		  AND a.emp_id = ANY($2)
		GROUP BY a.emp_id
	`

	rows, err := q.Query(ctx, query, date, employeeIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get day summaries: %w", err)
	}
	defer rows.Close()

	var summaries []attendance.DaySummary
	for rows.Next() {
		s := attendance.DaySummary{Date: date}
		if err := rows.Scan(&s.EmployeeID, &s.PunchIn, &s.PunchOut, &s.HalfDay); err != nil {
			return nil, fmt.Errorf("failed to scan day summary: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get day summaries: %w", err)
	}

	return summaries, nil
}

// LatestDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) LatestDate(ctx context.Context) (time.Time, error) {
	q := GetQuerier(ctx, r.db)

	var latest *time.Time
	err := q.QueryRow(ctx, `SELECT MAX(attendance_date) FROM attendance`).Scan(&latest)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get latest attendance date: %w", err)
	}
	if latest == nil {
		return time.Time{}, attendance.ErrNoAttendanceData
	}

	return *latest, nil
}

// HistoryByEmployee implements attendance.AttendanceRepository.
func (r *attendanceRepository) HistoryByEmployee(ctx context.Context, employeeID int64) ([]attendance.DaySummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.attendance_date,
			   CAST(MIN(a.time) FILTER (WHERE a.punch_type = 'punch_in') AS TEXT) AS punch_in,
			   CAST(MAX(a.time) FILTER (WHERE a.punch_type = 'punch_out') AS TEXT) AS punch_out,
			   COALESCE(BOOL_OR(a.attendance_status = 'Half Day'), FALSE) AS half_day
		FROM attendance a
		WHERE a.emp_id = $1
		GROUP BY a.attendance_date
		ORDER BY a.attendance_date DESC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance history: %w", err)
	}
	defer rows.Close()

	var summaries []attendance.DaySummary
	for rows.Next() {
		s := attendance.DaySummary{EmployeeID: employeeID}
		if err := rows.Scan(&s.Date, &s.PunchIn, &s.PunchOut, &s.HalfDay); err != nil {
			return nil, fmt.Errorf("failed to scan attendance history: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to get attendance history: %w", err)
	}

	return summaries, nil
}
