package employee

import (
	"strings"

	"github.com/worklens/attendance-backend-go/internal/pkg/validator"
)

// Filter narrows the employee listing. Department accepts a numeric id or a
// name fragment; the literal "all" disables a filter.
type Filter struct {
	Gender            *string  `json:"gender,omitempty"`
	Department        *string  `json:"department,omitempty"`
	TravelDistanceMin *float64 `json:"travel_distance_min,omitempty"`
	TravelDistanceMax *float64 `json:"travel_distance_max,omitempty"`
	ExperienceMin     *float64 `json:"experience_min,omitempty"`
	ExperienceMax     *float64 `json:"experience_max,omitempty"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Gender != nil && strings.EqualFold(*f.Gender, "all") {
		f.Gender = nil
	}
	if f.Department != nil && strings.EqualFold(*f.Department, "all") {
		f.Department = nil
	}

	if f.TravelDistanceMin != nil && *f.TravelDistanceMin < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "travelDistanceMin",
			Message: "travelDistanceMin must not be negative",
		})
	}
	if f.TravelDistanceMax != nil && *f.TravelDistanceMax < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "travelDistanceMax",
			Message: "travelDistanceMax must not be negative",
		})
	}
	if f.TravelDistanceMin != nil && f.TravelDistanceMax != nil && *f.TravelDistanceMin > *f.TravelDistanceMax {
		errs = append(errs, validator.ValidationError{
			Field:   "travelDistanceMin",
			Message: "travelDistanceMin must not exceed travelDistanceMax",
		})
	}
	if f.ExperienceMin != nil && f.ExperienceMax != nil && *f.ExperienceMin > *f.ExperienceMax {
		errs = append(errs, validator.ValidationError{
			Field:   "totalExperienceMin",
			Message: "totalExperienceMin must not exceed totalExperienceMax",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AttendeeFilter narrows the employee set the attendance resolver reports on.
// Empty fields match everything. Name matching is a case-insensitive
// substring; gender is an exact case-insensitive match; department accepts a
// numeric id or a name fragment.
type AttendeeFilter struct {
	Name       string
	Department string
	Gender     string
}

type EmployeeResponse struct {
	ID                 int64    `json:"id"`
	Name               string   `json:"name"`
	Gender             string   `json:"gender"`
	Department         string   `json:"department"`
	Designation        *string  `json:"designation,omitempty"`
	Email              *string  `json:"email,omitempty"`
	ContactName        *string  `json:"contactName,omitempty"`
	HireDate           *string  `json:"hireDate,omitempty"`
	DateOfBirth        *string  `json:"dateOfBirth,omitempty"`
	CurrentAddress     *string  `json:"currentAddress,omitempty"`
	DistanceFromOffice *float64 `json:"distanceFromOffice,omitempty"`
	TotalExperience    *float64 `json:"totalExperience,omitempty"`
	TravelKm           *float64 `json:"travelKm,omitempty"`
}
