package http

import (
	"net/http"
	"strconv"

	"github.com/worklens/attendance-backend-go/internal/domain/employee"
	"github.com/worklens/attendance-backend-go/internal/handler/http/response"
	"github.com/worklens/attendance-backend-go/internal/pkg/validator"
)

type EmployeeHandler struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return EmployeeHandler{employeeService: employeeService}
}

// List handles GET /api/v1/employees.
func (h EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter employee.Filter
	if gender := query.Get("gender"); gender != "" {
		filter.Gender = &gender
	}
	if department := query.Get("department"); department != "" {
		filter.Department = &department
	}

	var errs validator.ValidationErrors
	filter.TravelDistanceMin = parseFloatParam(query.Get("travelDistanceMin"), "travelDistanceMin", &errs)
	filter.TravelDistanceMax = parseFloatParam(query.Get("travelDistanceMax"), "travelDistanceMax", &errs)
	filter.ExperienceMin = parseFloatParam(query.Get("totalExperienceMin"), "totalExperienceMin", &errs)
	filter.ExperienceMax = parseFloatParam(query.Get("totalExperienceMax"), "totalExperienceMax", &errs)
	if len(errs) > 0 {
		response.ValidationError(w, errs.ToMap())
		return
	}

	employees, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, employees)
}

func parseFloatParam(raw, field string, errs *validator.ValidationErrors) *float64 {
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		*errs = append(*errs, validator.ValidationError{
			Field:   field,
			Message: field + " must be a number",
		})
		return nil
	}
	return &value
}
