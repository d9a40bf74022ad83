package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/worklens/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens/attendance-backend-go/internal/domain/employee"
	"github.com/worklens/attendance-backend-go/internal/pkg/cache"
)

const dateLayout = "2006-01-02"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	policy          attendance.Policy
	reportCache     *cache.Cache[attendance.DailyReportResponse]
	defaultPageSize int
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	policy attendance.Policy,
	reportCache *cache.Cache[attendance.DailyReportResponse],
	defaultPageSize int,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		policy:               policy,
		reportCache:          reportCache,
		defaultPageSize:      defaultPageSize,
	}
}

// DailyReport implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) DailyReport(ctx context.Context, filter attendance.DailyReportFilter) (attendance.DailyReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.DailyReportResponse{}, err
	}
	if filter.PageSize == 0 {
		filter.PageSize = a.defaultPageSize
	}

	key := reportFingerprint(filter)
	if cached, ok := a.reportCache.Get(key); ok {
		return cached, nil
	}

	date, _ := time.Parse(dateLayout, filter.Date)

	resp := emptyReport(filter.Date, filter.Page)

	records, err := a.resolve(ctx, date, employee.AttendeeFilter{
		Name:       filter.EmployeeName,
		Department: filter.Department,
		Gender:     filter.Gender,
	})
	if err != nil {
		return attendance.DailyReportResponse{}, err
	}

	if records == nil {
		resp.Page = 1
		resp.Message = "No employee data or attendance records available for these filters."
		a.reportCache.Put(key, resp)
		return resp, nil
	}

	// Aggregate counts cover the full filtered employee set, before the
	// status filter and pagination.
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusOnTime:
			resp.OnTimeCount++
		case attendance.StatusLate:
			resp.LateCount++
		case attendance.StatusHalfDay:
			resp.HalfDayCount++
		case attendance.StatusAbsent:
			resp.AbsentCount++
		}
	}
	resp.TotalPresent = resp.OnTimeCount + resp.LateCount + resp.HalfDayCount

	filtered := filterByStatus(records, filter.Status)

	totalPages := (len(filtered) + filter.PageSize - 1) / filter.PageSize
	if totalPages < 1 {
		totalPages = 1
	}
	resp.TotalPages = totalPages

	start := (filter.Page - 1) * filter.PageSize
	end := start + filter.PageSize
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	for _, rec := range filtered[start:end] {
		switch rec.Status {
		case attendance.StatusOnTime:
			resp.OnTimeEmployees = append(resp.OnTimeEmployees, rec)
		case attendance.StatusLate:
			resp.LateEmployees = append(resp.LateEmployees, rec)
		case attendance.StatusHalfDay:
			resp.HalfDayEmployees = append(resp.HalfDayEmployees, rec)
		case attendance.StatusAbsent:
			resp.AbsentEmployees = append(resp.AbsentEmployees, rec)
		}
	}

	noFilters := filter.EmployeeName == "" && filter.Department == "" && filter.Gender == ""
	if resp.OnTimeCount+resp.LateCount+resp.HalfDayCount+resp.AbsentCount == 0 && noFilters {
		resp.Message = "No attendance data available for this date."
	}

	a.reportCache.Put(key, resp)
	return resp, nil
}

// Records implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Records(ctx context.Context, filter attendance.GridFilter) ([]attendance.StatusRecord, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	var date time.Time
	if filter.Date == "" {
		latest, err := a.AttendanceRepository.LatestDate(ctx)
		if err != nil {
			if errors.Is(err, attendance.ErrNoAttendanceData) {
				return []attendance.StatusRecord{}, nil
			}
			return nil, err
		}
		date = latest
	} else {
		date, _ = time.Parse(dateLayout, filter.Date)
	}

	records, err := a.resolve(ctx, date, employee.AttendeeFilter{
		Name:       filter.EmployeeName,
		Department: filter.Department,
		Gender:     filter.Gender,
	})
	if err != nil {
		return nil, err
	}
	if records == nil {
		return []attendance.StatusRecord{}, nil
	}

	return filterByStatus(records, filter.Status), nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, employeeID int64) ([]attendance.HistoryRecord, error) {
	if _, err := a.EmployeeRepository.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	summaries, err := a.AttendanceRepository.HistoryByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	history := make([]attendance.HistoryRecord, 0, len(summaries))
	for _, s := range summaries {
		status, lateBy, err := attendance.Classify(s.PunchIn, s.HalfDay, a.policy)
		if err != nil {
			return nil, fmt.Errorf("failed to classify attendance for employee %d on %s: %w",
				employeeID, s.Date.Format(dateLayout), err)
		}

		rec := attendance.HistoryRecord{
			Date:         s.Date.Format(dateLayout),
			PunchInTime:  s.PunchIn,
			PunchOutTime: s.PunchOut,
			Status:       status,
		}
		if lateBy != "" {
			rec.LateBy = &lateBy
		}
		if duration := attendance.WorkDuration(s.PunchIn, s.PunchOut); duration != "" {
			rec.Duration = &duration
		}
		history = append(history, rec)
	}

	return history, nil
}

// resolve produces one status record per employee matching the attendee
// filter, sorted by name then id. A nil result means no employees matched.
func (a *AttendanceServiceImpl) resolve(ctx context.Context, date time.Time, filter employee.AttendeeFilter) ([]attendance.StatusRecord, error) {
	attendees, err := a.EmployeeRepository.ListAttendees(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve employee set: %w", err)
	}
	if len(attendees) == 0 {
		return nil, nil
	}

	ids := make([]int64, len(attendees))
	for i, att := range attendees {
		ids[i] = att.ID
	}

	summaries, err := a.AttendanceRepository.DaySummaries(ctx, date, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch punch summaries: %w", err)
	}

	byEmployee := make(map[int64]attendance.DaySummary, len(summaries))
	for _, s := range summaries {
		byEmployee[s.EmployeeID] = s
	}

	dateStr := date.Format(dateLayout)
	records := make([]attendance.StatusRecord, 0, len(attendees))
	for _, att := range attendees {
		summary := byEmployee[att.ID]

		status, lateBy, err := attendance.Classify(summary.PunchIn, summary.HalfDay, a.policy)
		if err != nil {
			return nil, fmt.Errorf("failed to classify employee %d: %w", att.ID, err)
		}

		rec := attendance.StatusRecord{
			ID:           att.ID,
			EmployeeID:   att.ID,
			EmployeeName: att.FullName,
			Department:   att.DeptName,
			Gender:       att.Gender,
			Status:       status,
			CheckInTime:  summary.PunchIn,
			CheckOutTime: summary.PunchOut,
			Date:         dateStr,
		}
		if lateBy != "" {
			rec.LateBy = &lateBy
		}
		records = append(records, rec)
	}

	sort.Slice(records, func(i, j int) bool {
		if records[i].EmployeeName != records[j].EmployeeName {
			return records[i].EmployeeName < records[j].EmployeeName
		}
		return records[i].EmployeeID < records[j].EmployeeID
	})

	return records, nil
}

func filterByStatus(records []attendance.StatusRecord, normalized string) []attendance.StatusRecord {
	if normalized == "" {
		return records
	}
	filtered := make([]attendance.StatusRecord, 0, len(records))
	for _, rec := range records {
		if rec.Status.Normalized() == normalized {
			filtered = append(filtered, rec)
		}
	}
	return filtered
}

func emptyReport(date string, page int) attendance.DailyReportResponse {
	return attendance.DailyReportResponse{
		Date:             date,
		OnTimeEmployees:  []attendance.StatusRecord{},
		LateEmployees:    []attendance.StatusRecord{},
		HalfDayEmployees: []attendance.StatusRecord{},
		AbsentEmployees:  []attendance.StatusRecord{},
		Page:             page,
		TotalPages:       1,
	}
}

func reportFingerprint(filter attendance.DailyReportFilter) string {
	return cache.Fingerprint(map[string]string{
		"date":       filter.Date,
		"name":       filter.EmployeeName,
		"department": filter.Department,
		"gender":     filter.Gender,
		"status":     filter.Status,
		"page":       strconv.Itoa(filter.Page),
		"page_size":  strconv.Itoa(filter.PageSize),
	})
}
