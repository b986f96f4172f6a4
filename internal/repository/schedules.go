package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

func (r *Repository) CreateSchedule(sched *domain.Schedule) error {
	query := `
		INSERT INTO schedules (group_id, start_date, end_date, is_confirmed, autorenewal)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	params := []any{sched.GroupID, sched.StartDate, sched.EndDate, sched.IsConfirmed, sched.Autorenewal}
	if err := r.dbpool.QueryRowContext(ctx, query, params...).Scan(&sched.ID, &sched.CreatedAt, &sched.Version); err != nil {
		return err
	}

	sched.Shifts = []domain.Shift{}
	return nil
}

func (r *Repository) GetScheduleByID(id int64) (*domain.Schedule, error) {
	query := `
		SELECT group_id, to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'), is_confirmed, autorenewal, created_at, version
		FROM schedules
		WHERE id = $1
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	sched := &domain.Schedule{
		ID: id,
	}

	dst := []any{
		&sched.GroupID,
		&sched.StartDate,
		&sched.EndDate,
		&sched.IsConfirmed,
		&sched.Autorenewal,
		&sched.CreatedAt,
		&sched.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	if err := r.loadShifts(ctx, sched); err != nil {
		return nil, err
	}

	return sched, nil
}

func (r *Repository) GetScheduleByGroupAndRange(groupID int64, startDate, endDate string) (*domain.Schedule, error) {
	query := `
		SELECT id, is_confirmed, autorenewal, created_at, version
		FROM schedules
		WHERE group_id = $1 AND start_date = $2 AND end_date = $3
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	sched := &domain.Schedule{
		GroupID:   groupID,
		StartDate: startDate,
		EndDate:   endDate,
	}

	dst := []any{
		&sched.ID,
		&sched.IsConfirmed,
		&sched.Autorenewal,
		&sched.CreatedAt,
		&sched.Version,
	}

	if err := r.dbpool.QueryRowContext(ctx, query, groupID, startDate, endDate).Scan(dst...); err != nil {
		return nil, err
	}

	if err := r.loadShifts(ctx, sched); err != nil {
		return nil, err
	}

	return sched, nil
}

// loadShifts 将排班表的班次和排班一次性联表读出再组装，
// 没有任何排班的班次在业务上不应该存在，但读取时仍然兼容处理
func (r *Repository) loadShifts(ctx context.Context, sched *domain.Schedule) error {
	query := `
		SELECT
			ss.id,
			to_char(ss.date, 'YYYY-MM-DD'),
			ss.shift_type_id,
			st.name,
			st.color,
			st.start_time,
			st.end_time,
			st.min_employees,
			ssa.employee_id,
			e.name,
			ssa.note
		FROM schedule_shifts ss
		JOIN shift_types st ON st.id = ss.shift_type_id
		LEFT JOIN schedule_shift_assignments ssa ON ssa.shift_id = ss.id
		LEFT JOIN employees e ON e.id = ssa.employee_id
		WHERE ss.schedule_id = $1
		ORDER BY ss.date, ss.shift_type_id, ssa.id
	`

	rows, err := r.dbpool.QueryContext(ctx, query, sched.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	shiftsMap := make(map[int64]*domain.Shift)
	order := []int64{}

	for rows.Next() {
		var row struct {
			shiftID      int64
			date         string
			shiftTypeID  int64
			typeName     string
			color        string
			startTime    string
			endTime      string
			minEmployees int32
			employeeID   sql.NullInt64
			employeeName sql.NullString
			note         sql.NullString
		}

		dst := []any{
			&row.shiftID,
			&row.date,
			&row.shiftTypeID,
			&row.typeName,
			&row.color,
			&row.startTime,
			&row.endTime,
			&row.minEmployees,
			&row.employeeID,
			&row.employeeName,
			&row.note,
		}

		if err := rows.Scan(dst...); err != nil {
			return err
		}

		if _, exists := shiftsMap[row.shiftID]; !exists {
			shiftsMap[row.shiftID] = &domain.Shift{
				ID:             row.shiftID,
				Date:           row.date,
				ShiftTypeID:    row.shiftTypeID,
				ShiftTypeName:  row.typeName,
				Color:          row.color,
				StartTime:      row.startTime,
				EndTime:        row.endTime,
				EmployeeNeeded: row.minEmployees,
				Employees:      []domain.Assignment{},
			}
			order = append(order, row.shiftID)
		}

		if !row.employeeID.Valid {
			continue
		}

		shiftsMap[row.shiftID].Employees = append(shiftsMap[row.shiftID].Employees, domain.Assignment{
			EmployeeID:   row.employeeID.Int64,
			EmployeeName: row.employeeName.String,
			Note:         row.note.String,
		})
	}

	if err := rows.Err(); err != nil {
		return err
	}

	sched.Shifts = make([]domain.Shift, 0, len(order))
	for _, shiftID := range order {
		sched.Shifts = append(sched.Shifts, *shiftsMap[shiftID])
	}

	return nil
}

// SaveSchedule 在一个事务中整体替换排班表的班次并更新确认状态。
// 先对排班表行加锁，保证并发的保存和生成在数据库层串行执行，后提交者覆盖前者
func (r *Repository) SaveSchedule(sched *domain.Schedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `SELECT version FROM schedules WHERE id = $1 FOR UPDATE`
	var currentVersion int32
	if err := tx.QueryRowContext(ctx, query, sched.ID).Scan(&currentVersion); err != nil {
		return err
	}

	query = `
		UPDATE schedules
		SET is_confirmed = $1, autorenewal = $2, version = version + 1
		WHERE id = $3
		RETURNING version
	`
	if err := tx.QueryRowContext(ctx, query, sched.IsConfirmed, sched.Autorenewal, sched.ID).Scan(&sched.Version); err != nil {
		return err
	}

	// 先删除原有班次，排班记录由外键级联删除
	query = `DELETE FROM schedule_shifts WHERE schedule_id = $1`
	if _, err := tx.ExecContext(ctx, query, sched.ID); err != nil {
		return err
	}

	for i, shift := range sched.Shifts {
		query = `
			INSERT INTO schedule_shifts (schedule_id, shift_type_id, date)
			VALUES ($1, $2, $3)
			RETURNING id
		`

		if err := tx.QueryRowContext(ctx, query, sched.ID, shift.ShiftTypeID, shift.Date).Scan(&sched.Shifts[i].ID); err != nil {
			return err
		}

		for _, assignment := range shift.Employees {
			query = `
				INSERT INTO schedule_shift_assignments (shift_id, employee_id, note)
				VALUES ($1, $2, $3)
			`

			if _, err := tx.ExecContext(ctx, query, sched.Shifts[i].ID, assignment.EmployeeID, assignment.Note); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

// UpdateScheduleConfirmation 只更新确认状态，不触碰班次
func (r *Repository) UpdateScheduleConfirmation(sched *domain.Schedule) error {
	query := `
		UPDATE schedules
		SET is_confirmed = $1, version = version + 1
		WHERE id = $2 AND version = $3
		RETURNING version
	`

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	if err := r.dbpool.QueryRowContext(ctx, query, sched.IsConfirmed, sched.ID, sched.Version).Scan(&sched.Version); err != nil {
		return err
	}

	return nil
}
