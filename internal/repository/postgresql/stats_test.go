package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_StatusCounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStatsRepository(mock)
	start := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"present", "on_time", "late"}).
		AddRow(int64(300), int64(250), int64(50))

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE attendance_date >= $1 AND attendance_date <= $2`)).
		WithArgs(start, end).
		WillReturnRows(rows)

	counts, err := repo.StatusCounts(context.Background(), start, end)
	require.NoError(t, err)

	assert.Equal(t, int64(300), counts.Present)
	assert.Equal(t, int64(250), counts.OnTime)
	assert.Equal(t, int64(50), counts.Late)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_MonthlyStatusCounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStatsRepository(mock)
	start := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"month", "present", "late", "absent", "total"}).
		AddRow("2024-02", int64(70), int64(20), int64(10), int64(100)).
		AddRow("2024-03", int64(30), int64(5), int64(5), int64(40))

	mock.ExpectQuery(regexp.QuoteMeta(`TO_CHAR(attendance_date, 'YYYY-MM')`)).
		WithArgs(start, end).
		WillReturnRows(rows)

	buckets, err := repo.MonthlyStatusCounts(context.Background(), start, end)
	require.NoError(t, err)

	require.Len(t, buckets, 2)
	assert.Equal(t, "2024-02", buckets[0].Month)
	assert.Equal(t, int64(100), buckets[0].Total)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsRepository_DepartmentEmployeeCounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewStatsRepository(mock)

	rows := pgxmock.NewRows([]string{"dept_name", "total_employees"}).
		AddRow("Engineering", int64(12)).
		AddRow("Sales", int64(7))

	mock.ExpectQuery(regexp.QuoteMeta(`GROUP BY d.dept_name`)).
		WillReturnRows(rows)

	results, err := repo.DepartmentEmployeeCounts(context.Background())
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "Engineering", results[0].DepartmentName)
	assert.Equal(t, int64(12), results[0].TotalEmployees)

	assert.NoError(t, mock.ExpectationsWereMet())
}
