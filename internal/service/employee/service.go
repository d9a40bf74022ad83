package employee

import (
	"context"

	"github.com/worklens/attendance-backend-go/internal/domain/employee"
)

const dateLayout = "2006-01-02"

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
	}
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, filter employee.Filter) ([]employee.EmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employees, err := e.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, toResponse(emp))
	}

	return responses, nil
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	resp := employee.EmployeeResponse{
		ID:                 emp.ID,
		Name:               emp.FullName,
		Gender:             emp.Gender,
		Designation:        emp.DesignationName,
		Email:              emp.Email,
		ContactName:        emp.ContactName,
		CurrentAddress:     emp.CurrentAddress,
		DistanceFromOffice: emp.DistanceFromOffice,
		TotalExperience:    emp.TotalExperience,
		TravelKm:           emp.DistanceFromOffice,
	}

	if emp.DeptName != nil {
		resp.Department = *emp.DeptName
	}
	if emp.HireDate != nil {
		hired := emp.HireDate.Format(dateLayout)
		resp.HireDate = &hired
	}
	if emp.DateOfBirth != nil {
		born := emp.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &born
	}

	return resp
}
