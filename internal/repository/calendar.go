package repository

import (
	"context"
	"time"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

func (r *Repository) CreateHoliday(holiday *domain.Holiday) error {
	query := `
		INSERT INTO holidays (month, day, name)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, holiday.Month, holiday.Day, holiday.Name).Scan(&holiday.ID, &holiday.CreatedAt, &holiday.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllHolidays() ([]*domain.Holiday, error) {
	query := `
		SELECT id, month, day, name, created_at, version
		FROM holidays
		ORDER BY month, day
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := []*domain.Holiday{}
	for rows.Next() {
		var holiday domain.Holiday
		if err := rows.Scan(&holiday.ID, &holiday.Month, &holiday.Day, &holiday.Name, &holiday.CreatedAt, &holiday.Version); err != nil {
			return nil, err
		}
		holidays = append(holidays, &holiday)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}

func (r *Repository) CreateWorkDay(workDay *domain.WorkDay) error {
	query := `
		INSERT INTO work_days (day_of_week, start_time, end_time)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, workDay.DayOfWeek, workDay.StartTime, workDay.EndTime).Scan(&workDay.ID, &workDay.CreatedAt, &workDay.Version); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetAllWorkDays() ([]*domain.WorkDay, error) {
	query := `
		SELECT id, day_of_week, start_time, end_time, created_at, version
		FROM work_days
		ORDER BY day_of_week
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	rows, err := r.dbpool.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	workDays := []*domain.WorkDay{}
	for rows.Next() {
		var workDay domain.WorkDay
		if err := rows.Scan(&workDay.ID, &workDay.DayOfWeek, &workDay.StartTime, &workDay.EndTime, &workDay.CreatedAt, &workDay.Version); err != nil {
			return nil, err
		}
		workDays = append(workDays, &workDay)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return workDays, nil
}
