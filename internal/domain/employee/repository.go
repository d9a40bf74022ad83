package employee

import (
	"context"
)

// EmployeeRepository defines read access to employee records.
type EmployeeRepository interface {
	// List retrieves employees with department and designation names joined,
	// narrowed by the given filter.
	List(ctx context.Context, filter Filter) ([]Employee, error)

	// GetByID retrieves a single employee.
	GetByID(ctx context.Context, id int64) (Employee, error)

	// ListAttendees resolves the employee set a daily attendance report
	// covers. Returns the slim projection the resolver needs.
	ListAttendees(ctx context.Context, filter AttendeeFilter) ([]Attendee, error)
}
