package employee

import (
	"time"
)

type Employee struct {
	ID                 int64
	FullName           string
	Gender             string
	Email              *string
	ContactName        *string
	HireDate           *time.Time
	DateOfBirth        *time.Time
	CurrentAddress     *string
	DistanceFromOffice *float64
	TotalExperience    *float64
	DeptID             int64
	DesignationID      *int64

	// Joined from dept/designation
	DeptName        *string
	DesignationName *string
}

// Attendee is the slim employee projection the attendance resolver works on.
type Attendee struct {
	ID       int64
	FullName string
	DeptName string
	Gender   string
}
