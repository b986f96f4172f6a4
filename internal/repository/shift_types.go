package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

func (r *Repository) CreateShiftType(shiftType *domain.ShiftType) error {
	query := `
		INSERT INTO shift_types (name, color, start_time, end_time, min_employees, max_employees)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{
		shiftType.Name,
		shiftType.Color,
		shiftType.StartTime,
		shiftType.EndTime,
		shiftType.MinEmployees,
		shiftType.MaxEmployees,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&shiftType.ID, &shiftType.CreatedAt, &shiftType.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllShiftTypes() ([]*domain.ShiftType, error) {
	query := `
		SELECT id, name, color, start_time, end_time, min_employees, max_employees, created_at, version
		FROM shift_types
		ORDER BY start_time
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shiftTypes := []*domain.ShiftType{}
	for rows.Next() {
		var shiftType domain.ShiftType

		dst := []any{
			&shiftType.ID,
			&shiftType.Name,
			&shiftType.Color,
			&shiftType.StartTime,
			&shiftType.EndTime,
			&shiftType.MinEmployees,
			&shiftType.MaxEmployees,
			&shiftType.CreatedAt,
			&shiftType.Version,
		}

		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		shiftTypes = append(shiftTypes, &shiftType)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shiftTypes, nil
}

func (r *Repository) GetShiftTypeByID(id int64) (*domain.ShiftType, error) {
	query := `
		SELECT name, color, start_time, end_time, min_employees, max_employees, created_at, version
		FROM shift_types
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	shiftType := &domain.ShiftType{
		ID: id,
	}

	dst := []any{
		&shiftType.Name,
		&shiftType.Color,
		&shiftType.StartTime,
		&shiftType.EndTime,
		&shiftType.MinEmployees,
		&shiftType.MaxEmployees,
		&shiftType.CreatedAt,
		&shiftType.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return shiftType, nil
}
