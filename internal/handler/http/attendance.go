package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/worklens/attendance-backend-go/internal/domain/attendance"
	"github.com/worklens/attendance-backend-go/internal/handler/http/response"
	"github.com/worklens/attendance-backend-go/internal/pkg/validator"
)

type AttendanceHandler struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return AttendanceHandler{attendanceService: attendanceService}
}

// DailyReport handles GET /api/v1/attendance. The report object is the
// response body itself, without the envelope.
func (h AttendanceHandler) DailyReport(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := attendance.DailyReportFilter{
		Date:         query.Get("date"),
		EmployeeName: query.Get("employeeName"),
		Department:   query.Get("department"),
		Gender:       query.Get("gender"),
		Status:       query.Get("status"),
	}

	var errs validator.ValidationErrors
	filter.Page = parseIntParam(query.Get("page"), "page", &errs)
	filter.PageSize = parseIntParam(query.Get("pageSize"), "pageSize", &errs)
	if len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	report, err := h.attendanceService.DailyReport(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Raw(w, http.StatusOK, report)
}

// Records handles GET /api/v1/attendance/records.
func (h AttendanceHandler) Records(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := attendance.GridFilter{
		Date:         query.Get("date"),
		EmployeeName: query.Get("employeeName"),
		Department:   query.Get("department"),
		Gender:       query.Get("gender"),
		Status:       query.Get("status"),
	}

	records, err := h.attendanceService.Records(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}

// History handles GET /api/v1/employees/{id}/attendance.
func (h AttendanceHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		response.ValidationError(w, map[string]string{
			"id": "id must be a number",
		})
		return
	}

	history, err := h.attendanceService.History(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, history)
}

func parseIntParam(raw, field string, errs *validator.ValidationErrors) int {
	if raw == "" {
		return 0
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be a number",
		})
		return 0
	}
	return value
}
