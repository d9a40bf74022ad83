package department

import (
	"context"
)

// DepartmentRepository defines read access to departments.
type DepartmentRepository interface {
	// ListAll retrieves every department ordered by name.
	ListAll(ctx context.Context) ([]Department, error)
}
