package handler

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

type fakeConfirmer struct {
	err   error
	calls int
}

func (f *fakeConfirmer) UpdateScheduleConfirmation(sched *domain.Schedule) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	sched.Version++
	return nil
}

func draftSchedule() *domain.Schedule {
	return &domain.Schedule{
		ID: 7, GroupID: 5,
		StartDate: "2024-10-01", EndDate: "2024-10-31",
		Shifts: []domain.Shift{
			{ID: 11, Date: "2024-10-07", ShiftTypeID: 1, Employees: []domain.Assignment{{EmployeeID: 1, EmployeeName: "张三"}}},
		},
		Version: 1,
	}
}

func TestSetConfirmation(t *testing.T) {
	t.Run("confirm then unconfirm round trip", func(t *testing.T) {
		store := &fakeConfirmer{}
		sched := draftSchedule()

		require.NoError(t, setConfirmation(store, sched, true))
		assert.True(t, sched.IsConfirmed)

		require.NoError(t, setConfirmation(store, sched, false))
		assert.False(t, sched.IsConfirmed)

		// 两次切换都不触碰班次列表
		assert.Equal(t, draftSchedule().Shifts, sched.Shifts)
		assert.Equal(t, 2, store.calls)
	})

	t.Run("failed confirm keeps draft state", func(t *testing.T) {
		store := &fakeConfirmer{err: sql.ErrNoRows}
		sched := draftSchedule()

		err := setConfirmation(store, sched, true)
		require.ErrorIs(t, err, sql.ErrNoRows)
		assert.False(t, sched.IsConfirmed)
		assert.Equal(t, draftSchedule().Shifts, sched.Shifts)
	})

	t.Run("failed unconfirm keeps confirmed state", func(t *testing.T) {
		sched := draftSchedule()
		sched.IsConfirmed = true

		store := &fakeConfirmer{err: errors.New("连接中断")}
		err := setConfirmation(store, sched, false)
		require.Error(t, err)
		assert.True(t, sched.IsConfirmed)
	})
}
