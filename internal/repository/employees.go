package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

func (r *Repository) CreateEmployee(employee *domain.Employee) error {
	query := `
		INSERT INTO employees (group_id, name, position, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{employee.GroupID, employee.Name, employee.Position, employee.Email}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&employee.ID, &employee.CreatedAt, &employee.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEmployeeByID(id int64) (*domain.Employee, error) {
	query := `
		SELECT group_id, name, position, email, created_at, version
		FROM employees
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	employee := &domain.Employee{
		ID: id,
	}

	dst := []any{
		&employee.GroupID,
		&employee.Name,
		&employee.Position,
		&employee.Email,
		&employee.CreatedAt,
		&employee.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return employee, nil
}

func (r *Repository) GetEmployeesByGroupID(groupID int64) ([]*domain.Employee, error) {
	query := `
		SELECT id, name, position, email, created_at, version
		FROM employees
		WHERE group_id = $1
		ORDER BY id
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	employees := []*domain.Employee{}
	for rows.Next() {
		employee := domain.Employee{
			GroupID: groupID,
		}

		dst := []any{
			&employee.ID,
			&employee.Name,
			&employee.Position,
			&employee.Email,
			&employee.CreatedAt,
			&employee.Version,
		}

		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		employees = append(employees, &employee)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

func (r *Repository) CreateEmployeeTimeOff(timeOff *domain.EmployeeTimeOff) error {
	query := `
		INSERT INTO employee_time_offs (employee_id, start_date, end_date, type)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{timeOff.EmployeeID, timeOff.StartDate, timeOff.EndDate, timeOff.Type}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&timeOff.ID, &timeOff.CreatedAt, &timeOff.Version); err != nil {
		return err
	}

	return nil
}

// GetTimeOffsByGroupID 获取该组所有员工的已批准请假记录
func (r *Repository) GetTimeOffsByGroupID(groupID int64) ([]*domain.EmployeeTimeOff, error) {
	query := `
		SELECT t.id, t.employee_id, to_char(t.start_date, 'YYYY-MM-DD'), to_char(t.end_date, 'YYYY-MM-DD'), t.type, t.created_at, t.version
		FROM employee_time_offs t
		JOIN employees e ON e.id = t.employee_id
		WHERE e.group_id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query, groupID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timeOffs := []*domain.EmployeeTimeOff{}
	for rows.Next() {
		var timeOff domain.EmployeeTimeOff

		dst := []any{
			&timeOff.ID,
			&timeOff.EmployeeID,
			&timeOff.StartDate,
			&timeOff.EndDate,
			&timeOff.Type,
			&timeOff.CreatedAt,
			&timeOff.Version,
		}

		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		timeOffs = append(timeOffs, &timeOff)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return timeOffs, nil
}
