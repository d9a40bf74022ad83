package department

import (
	"context"
)

// DepartmentService defines business logic for department queries.
type DepartmentService interface {
	// List retrieves every department ordered by name.
	List(ctx context.Context) ([]Department, error)
}
