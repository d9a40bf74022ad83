package postgresql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/worklens/attendance-backend-go/internal/domain/employee"
	"github.com/worklens/attendance-backend-go/internal/pkg/database"
	"github.com/worklens/attendance-backend-go/internal/pkg/validator"
)

type employeeRepository struct {
	db database.Pool
}

func NewEmployeeRepository(db database.Pool) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	e.emp_id, e.full_name, e.gender, e.email, e.contact_name,
	e.hire_date, e.date_of_birth, e.current_address,
	e.distance_from_office, e.total_exp,
	e.dept_id, e.designation_id,
	d.dept_name, g.designation_name
`

// List implements employee.EmployeeRepository.
func (r *employeeRepository) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Gender != nil && *filter.Gender != "" {
		baseWhere += fmt.Sprintf(" AND LOWER(e.gender) = LOWER($%d)", argIdx)
		args = append(args, *filter.Gender)
		argIdx++
	}

	if filter.Department != nil && *filter.Department != "" {
		// Numeric input matches the department id, anything else matches
		// the department name as a case-insensitive fragment.
		if validator.IsNumeric(*filter.Department) {
			deptID, _ := strconv.ParseInt(*filter.Department, 10, 64)
			baseWhere += fmt.Sprintf(" AND e.dept_id = $%d", argIdx)
			args = append(args, deptID)
		} else {
			baseWhere += fmt.Sprintf(" AND d.dept_name ILIKE '%%' || $%d || '%%'", argIdx)
			args = append(args, *filter.Department)
		}
		argIdx++
	}

	if filter.TravelDistanceMin != nil {
		baseWhere += fmt.Sprintf(" AND e.distance_from_office >= $%d", argIdx)
		args = append(args, *filter.TravelDistanceMin)
		argIdx++
	}
	if filter.TravelDistanceMax != nil {
		baseWhere += fmt.Sprintf(" AND e.distance_from_office <= $%d", argIdx)
		args = append(args, *filter.TravelDistanceMax)
		argIdx++
	}
	if filter.ExperienceMin != nil {
		baseWhere += fmt.Sprintf(" AND e.total_exp >= $%d", argIdx)
		args = append(args, *filter.ExperienceMin)
		argIdx++
	}
	if filter.ExperienceMax != nil {
		baseWhere += fmt.Sprintf(" AND e.total_exp <= $%d", argIdx)
		args = append(args, *filter.ExperienceMax)
		argIdx++
	}

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN dept d ON d.dept_id = e.dept_id
		LEFT JOIN designation g ON g.designation_id = e.designation_id
		WHERE ` + baseWhere + `
		ORDER BY e.full_name ASC, e.emp_id ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + employeeColumns + `
		FROM employees e
		LEFT JOIN dept d ON d.dept_id = e.dept_id
		LEFT JOIN designation g ON g.designation_id = e.designation_id
		WHERE e.emp_id = $1
		LIMIT 1
	`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// ListAttendees implements employee.EmployeeRepository.
func (r *employeeRepository) ListAttendees(ctx context.Context, filter employee.AttendeeFilter) ([]employee.Attendee, error) {
	q := GetQuerier(ctx, r.db)

	baseWhere := "TRUE"
	args := []interface{}{}
	argIdx := 1

	if filter.Name != "" {
		baseWhere += fmt.Sprintf(" AND e.full_name ILIKE '%%' || $%d || '%%'", argIdx)
		args = append(args, filter.Name)
		argIdx++
	}

	if filter.Department != "" {
		if validator.IsNumeric(filter.Department) {
			deptID, _ := strconv.ParseInt(filter.Department, 10, 64)
			baseWhere += fmt.Sprintf(" AND e.dept_id = $%d", argIdx)
			args = append(args, deptID)
		} else {
			baseWhere += fmt.Sprintf(" AND d.dept_name ILIKE '%%' || $%d || '%%'", argIdx)
			args = append(args, filter.Department)
		}
		argIdx++
	}

	if filter.Gender != "" {
		baseWhere += fmt.Sprintf(" AND LOWER(e.gender) = LOWER($%d)", argIdx)
		args = append(args, filter.Gender)
		argIdx++
	}

	query := `
		SELECT e.emp_id, e.full_name, COALESCE(d.dept_name, ''), e.gender
		FROM employees e
		LEFT JOIN dept d ON d.dept_id = e.dept_id
		WHERE ` + baseWhere + `
		ORDER BY e.full_name ASC, e.emp_id ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendees: %w", err)
	}
	defer rows.Close()

	var attendees []employee.Attendee
	for rows.Next() {
		var a employee.Attendee
		if err := rows.Scan(&a.ID, &a.FullName, &a.DeptName, &a.Gender); err != nil {
			return nil, fmt.Errorf("failed to scan attendee: %w", err)
		}
		attendees = append(attendees, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list attendees: %w", err)
	}

	return attendees, nil
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.FullName, &emp.Gender, &emp.Email, &emp.ContactName,
		&emp.HireDate, &emp.DateOfBirth, &emp.CurrentAddress,
		&emp.DistanceFromOffice, &emp.TotalExperience,
		&emp.DeptID, &emp.DesignationID,
		&emp.DeptName, &emp.DesignationName,
	)
	return emp, err
}
