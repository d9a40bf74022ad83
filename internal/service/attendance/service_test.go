package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	attendanceDomain "github.com/worklens/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens/attendance-backend-go/internal/domain/employee"
	"github.com/worklens/attendance-backend-go/internal/pkg/cache"
)

type fakeAttendanceRepo struct {
	summaries       []attendanceDomain.DaySummary
	latestDate      time.Time
	latestErr       error
	history         []attendanceDomain.DaySummary
	daySummaryCalls int
	latestDateCalls int
}

func (f *fakeAttendanceRepo) DaySummaries(_ context.Context, date time.Time, _ []int64) ([]attendanceDomain.DaySummary, error) {
	f.daySummaryCalls++
	return f.summaries, nil
}

func (f *fakeAttendanceRepo) LatestDate(_ context.Context) (time.Time, error) {
	f.latestDateCalls++
	if f.latestErr != nil {
		return time.Time{}, f.latestErr
	}
	return f.latestDate, nil
}

func (f *fakeAttendanceRepo) HistoryByEmployee(_ context.Context, _ int64) ([]attendanceDomain.DaySummary, error) {
	return f.history, nil
}

type fakeEmployeeRepo struct {
	attendees []employee.Attendee
	byID      map[int64]employee.Employee
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ employee.Filter) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id int64) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) ListAttendees(_ context.Context, _ employee.AttendeeFilter) ([]employee.Attendee, error) {
	return f.attendees, nil
}

func testPolicy(t *testing.T) attendanceDomain.Policy {
	t.Helper()
	workStart, err := time.Parse("15:04:05", "08:30:00")
	require.NoError(t, err)
	return attendanceDomain.Policy{WorkStart: workStart, Grace: 15 * time.Minute}
}

func newTestService(t *testing.T, attRepo *fakeAttendanceRepo, empRepo *fakeEmployeeRepo) attendanceDomain.AttendanceService {
	t.Helper()
	reportCache := cache.New[attendanceDomain.DailyReportResponse](5 * time.Minute)
	return NewAttendanceService(attRepo, empRepo, testPolicy(t), reportCache, 10)
}

func strPtr(s string) *string {
	return &s
}

func attendees(n int) []employee.Attendee {
	result := make([]employee.Attendee, 0, n)
	for i := 1; i <= n; i++ {
		result = append(result, employee.Attendee{
			ID:       int64(i),
			FullName: fmt.Sprintf("Employee %02d", i),
			DeptName: "Engineering",
			Gender:   "Female",
		})
	}
	return result
}

func TestDailyReport_CountsCoverFullFilteredSet(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{
		summaries: []attendanceDomain.DaySummary{
			{EmployeeID: 1, Date: date, PunchIn: strPtr("08:40:00")},
			{EmployeeID: 2, Date: date, PunchIn: strPtr("08:50:00")},
			{EmployeeID: 3, Date: date, PunchIn: strPtr("09:00:00"), HalfDay: true},
		},
	}
	empRepo := &fakeEmployeeRepo{attendees: attendees(5)}
	svc := newTestService(t, attRepo, empRepo)

	report, err := svc.DailyReport(context.Background(), attendanceDomain.DailyReportFilter{Date: "2024-03-01"})
	require.NoError(t, err)

	assert.Equal(t, 1, report.OnTimeCount)
	assert.Equal(t, 1, report.LateCount)
	assert.Equal(t, 1, report.HalfDayCount)
	assert.Equal(t, 2, report.AbsentCount)
	assert.Equal(t, 3, report.TotalPresent)

	total := report.OnTimeCount + report.LateCount + report.HalfDayCount + report.AbsentCount
	assert.Equal(t, len(empRepo.attendees), total)
	assert.Empty(t, report.Message)
}

func TestDailyReport_StatusFilterDoesNotAffectCounts(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{
		summaries: []attendanceDomain.DaySummary{
			{EmployeeID: 1, Date: date, PunchIn: strPtr("08:40:00")},
			{EmployeeID: 2, Date: date, PunchIn: strPtr("08:50:00")},
		},
	}
	empRepo := &fakeEmployeeRepo{attendees: attendees(3)}
	svc := newTestService(t, attRepo, empRepo)

	report, err := svc.DailyReport(context.Background(), attendanceDomain.DailyReportFilter{
		Date:   "2024-03-01",
		Status: "late",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.OnTimeCount)
	assert.Equal(t, 1, report.LateCount)
	assert.Equal(t, 1, report.AbsentCount)

	assert.Len(t, report.LateEmployees, 1)
	assert.Empty(t, report.OnTimeEmployees)
	assert.Empty(t, report.AbsentEmployees)
}

func TestDailyReport_Pagination(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	empRepo := &fakeEmployeeRepo{attendees: attendees(15)}
	svc := newTestService(t, attRepo, empRepo)

	report, err := svc.DailyReport(context.Background(), attendanceDomain.DailyReportFilter{
		Date:     "2024-03-01",
		Page:     2,
		PageSize: 10,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.Page)
	assert.Equal(t, 2, report.TotalPages)
	assert.Equal(t, 15, report.AbsentCount)

	// Page 2 of 15 records at size 10 holds records 11 through 15.
	require.Len(t, report.AbsentEmployees, 5)
	assert.Equal(t, "Employee 11", report.AbsentEmployees[0].EmployeeName)
	assert.Equal(t, "Employee 15", report.AbsentEmployees[4].EmployeeName)
}

func TestDailyReport_SortedByNameThenID(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	empRepo := &fakeEmployeeRepo{attendees: []employee.Attendee{
		{ID: 3, FullName: "Bob"},
		{ID: 2, FullName: "Alice"},
		{ID: 1, FullName: "Bob"},
	}}
	svc := newTestService(t, attRepo, empRepo)

	report, err := svc.DailyReport(context.Background(), attendanceDomain.DailyReportFilter{Date: "2024-03-01"})
	require.NoError(t, err)

	require.Len(t, report.AbsentEmployees, 3)
	assert.Equal(t, int64(2), report.AbsentEmployees[0].EmployeeID)
	assert.Equal(t, int64(1), report.AbsentEmployees[1].EmployeeID)
	assert.Equal(t, int64(3), report.AbsentEmployees[2].EmployeeID)
}

func TestDailyReport_EmptyEmployeeMatch(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	empRepo := &fakeEmployeeRepo{}
	svc := newTestService(t, attRepo, empRepo)

	report, err := svc.DailyReport(context.Background(), attendanceDomain.DailyReportFilter{
		Date:         "2024-03-01",
		EmployeeName: "nobody",
	})
	require.NoError(t, err)

	assert.Equal(t, "No employee data or attendance records available for these filters.", report.Message)
	assert.Zero(t, report.TotalPresent)
	assert.Equal(t, 1, report.Page)
	assert.Equal(t, 1, report.TotalPages)
	assert.NotNil(t, report.OnTimeEmployees)
	assert.NotNil(t, report.AbsentEmployees)
}

func TestDailyReport_EmptyDateDefaultsToToday(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	empRepo := &fakeEmployeeRepo{attendees: attendees(1)}
	svc := newTestService(t, attRepo, empRepo)

	report, err := svc.DailyReport(context.Background(), attendanceDomain.DailyReportFilter{})
	require.NoError(t, err)

	assert.Equal(t, time.Now().Format("2006-01-02"), report.Date)
	assert.Equal(t, 1, report.AbsentCount)
}

func TestDailyReport_MalformedDate(t *testing.T) {
	svc := newTestService(t, &fakeAttendanceRepo{}, &fakeEmployeeRepo{})

	_, err := svc.DailyReport(context.Background(), attendanceDomain.DailyReportFilter{Date: "03/01/2024"})
	assert.Error(t, err)
}

func TestDailyReport_CacheSkipsRecomputation(t *testing.T) {
	attRepo := &fakeAttendanceRepo{}
	empRepo := &fakeEmployeeRepo{attendees: attendees(3)}
	svc := newTestService(t, attRepo, empRepo)

	filter := attendanceDomain.DailyReportFilter{Date: "2024-03-01"}

	first, err := svc.DailyReport(context.Background(), filter)
	require.NoError(t, err)
	require.Equal(t, 1, attRepo.daySummaryCalls)

	second, err := svc.DailyReport(context.Background(), attendanceDomain.DailyReportFilter{Date: "2024-03-01"})
	require.NoError(t, err)
	assert.Equal(t, 1, attRepo.daySummaryCalls)
	assert.Equal(t, first, second)

	// A different filter misses the cache.
	_, err = svc.DailyReport(context.Background(), attendanceDomain.DailyReportFilter{Date: "2024-03-01", Gender: "female"})
	require.NoError(t, err)
	assert.Equal(t, 2, attRepo.daySummaryCalls)
}

func TestRecords_DefaultsToLatestDate(t *testing.T) {
	date := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{
		latestDate: date,
		summaries: []attendanceDomain.DaySummary{
			{EmployeeID: 1, Date: date, PunchIn: strPtr("08:40:00"), PunchOut: strPtr("17:00:00")},
		},
	}
	empRepo := &fakeEmployeeRepo{attendees: attendees(1)}
	svc := newTestService(t, attRepo, empRepo)

	records, err := svc.Records(context.Background(), attendanceDomain.GridFilter{})
	require.NoError(t, err)
	require.Equal(t, 1, attRepo.latestDateCalls)

	require.Len(t, records, 1)
	assert.Equal(t, "2024-03-05", records[0].Date)
	assert.Equal(t, attendanceDomain.StatusOnTime, records[0].Status)
}

func TestRecords_EmptyStore(t *testing.T) {
	attRepo := &fakeAttendanceRepo{latestErr: attendanceDomain.ErrNoAttendanceData}
	svc := newTestService(t, attRepo, &fakeEmployeeRepo{})

	records, err := svc.Records(context.Background(), attendanceDomain.GridFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestHistory_UnknownEmployee(t *testing.T) {
	svc := newTestService(t, &fakeAttendanceRepo{}, &fakeEmployeeRepo{})

	_, err := svc.History(context.Background(), 42)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestHistory_DerivesStatusAndDuration(t *testing.T) {
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	attRepo := &fakeAttendanceRepo{
		history: []attendanceDomain.DaySummary{
			{EmployeeID: 7, Date: date, PunchIn: strPtr("08:50:00"), PunchOut: strPtr("17:50:00")},
		},
	}
	empRepo := &fakeEmployeeRepo{byID: map[int64]employee.Employee{
		7: {ID: 7, FullName: "Alice"},
	}}
	svc := newTestService(t, attRepo, empRepo)

	history, err := svc.History(context.Background(), 7)
	require.NoError(t, err)

	require.Len(t, history, 1)
	assert.Equal(t, attendanceDomain.StatusLate, history[0].Status)
	require.NotNil(t, history[0].LateBy)
	assert.Equal(t, "00:05:00", *history[0].LateBy)
	require.NotNil(t, history[0].Duration)
	assert.Equal(t, "09:00:00", *history[0].Duration)
}
