package attendance

import (
	"strings"
	"time"

	"github.com/worklens/attendance-backend-go/internal/pkg/validator"
)

// StatusRecord is one employee's derived attendance on the report date.
// Ephemeral: constructed per request, never persisted.
type StatusRecord struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employeeId"`
	EmployeeName string  `json:"employeeName"`
	Department   string  `json:"department"`
	Gender       string  `json:"gender"`
	Status       Status  `json:"status"`
	CheckInTime  *string `json:"checkInTime"`
	CheckOutTime *string `json:"checkOutTime"`
	LateBy       *string `json:"late_by"`
	Date         string  `json:"date"`
}

// DailyReportFilter carries the query parameters of the daily report.
type DailyReportFilter struct {
	Date         string
	EmployeeName string
	Department   string
	Gender       string
	Status       string
	Page         int
	PageSize     int
}

func (f *DailyReportFilter) Validate() error {
	var errs validator.ValidationErrors

	f.EmployeeName = strings.ToLower(strings.TrimSpace(f.EmployeeName))
	f.Department = strings.TrimSpace(f.Department)
	f.Gender = strings.ToLower(strings.TrimSpace(f.Gender))
	f.Status = NormalizeStatus(f.Status)

	if validator.IsEmpty(f.Date) {
		f.Date = time.Now().Format("2006-01-02") // missing date selects today
	} else if _, valid := validator.IsValidDate(f.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if f.Page < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "page",
			Message: "page must be a positive number",
		})
	}
	if f.Page == 0 {
		f.Page = 1 // Default page
	}

	if f.PageSize < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "pageSize",
			Message: "pageSize must be a positive number",
		})
	}
	if f.PageSize > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "pageSize",
			Message: "pageSize must not exceed 100",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DailyReportResponse is the daily report wire object. Field set is fixed:
// the four per-status arrays hold the records of the returned page, the
// counts cover the full filtered employee set.
type DailyReportResponse struct {
	Date             string         `json:"date"`
	TotalPresent     int            `json:"total_present"`
	OnTimeCount      int            `json:"on_time_count"`
	LateCount        int            `json:"late_count"`
	HalfDayCount     int            `json:"half_day_count"`
	AbsentCount      int            `json:"absent_count"`
	OnTimeEmployees  []StatusRecord `json:"on_time_employees"`
	LateEmployees    []StatusRecord `json:"late_employees"`
	HalfDayEmployees []StatusRecord `json:"half_day_employees"`
	AbsentEmployees  []StatusRecord `json:"absent_employees"`
	Page             int            `json:"page"`
	TotalPages       int            `json:"total_pages"`
	Message          string         `json:"message"`
}

// GridFilter narrows the flat records listing. An empty Date selects the
// latest date that has punch data.
type GridFilter struct {
	Date         string
	EmployeeName string
	Department   string
	Gender       string
	Status       string
}

func (f *GridFilter) Validate() error {
	var errs validator.ValidationErrors

	f.EmployeeName = strings.ToLower(strings.TrimSpace(f.EmployeeName))
	f.Department = strings.TrimSpace(f.Department)
	f.Gender = strings.ToLower(strings.TrimSpace(f.Gender))
	f.Status = NormalizeStatus(f.Status)

	if !validator.IsEmpty(f.Date) {
		if _, valid := validator.IsValidDate(f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HistoryRecord is one day of a single employee's attendance history.
type HistoryRecord struct {
	Date         string  `json:"date"`
	PunchInTime  *string `json:"punchInTime"`
	PunchOutTime *string `json:"punchOutTime"`
	Status       Status  `json:"status"`
	LateBy       *string `json:"lateBy"`
	Duration     *string `json:"duration"`
}
