package department

import (
	"context"

	"github.com/worklens/attendance-backend-go/internal/domain/department"
)

type DepartmentServiceImpl struct {
	department.DepartmentRepository
}

func NewDepartmentService(departmentRepo department.DepartmentRepository) department.DepartmentService {
	return &DepartmentServiceImpl{
		DepartmentRepository: departmentRepo,
	}
}

// List implements department.DepartmentService.
func (d *DepartmentServiceImpl) List(ctx context.Context) ([]department.Department, error) {
	departments, err := d.DepartmentRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if departments == nil {
		departments = []department.Department{}
	}

	return departments, nil
}
