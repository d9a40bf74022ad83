package postgresql

import (
	"context"
	"fmt"

	"github.com/worklens/attendance-backend-go/internal/domain/department"
	"github.com/worklens/attendance-backend-go/internal/pkg/database"
)

type departmentRepository struct {
	db database.Pool
}

func NewDepartmentRepository(db database.Pool) department.DepartmentRepository {
	return &departmentRepository{db: db}
}

// ListAll implements department.DepartmentRepository.
func (r *departmentRepository) ListAll(ctx context.Context) ([]department.Department, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT dept_id, dept_name FROM dept ORDER BY dept_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []department.Department
	for rows.Next() {
		var d department.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("failed to scan department: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	return departments, nil
}
