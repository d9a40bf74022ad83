package employee

import (
	"context"
)

// EmployeeService defines business logic for employee queries.
type EmployeeService interface {
	// List retrieves employees matching the filter, shaped for the API.
	List(ctx context.Context, filter Filter) ([]EmployeeResponse, error)
}
