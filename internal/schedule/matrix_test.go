package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

func testEmployees() []domain.Employee {
	return []domain.Employee{
		{ID: 1, Name: "张三", Position: "店员"},
		{ID: 2, Name: "李四", Position: "店长"},
	}
}

func testShifts() []domain.Shift {
	return []domain.Shift{
		{
			ID: 11, Date: "2024-10-07", ShiftTypeID: 1, ShiftTypeName: "早班",
			Color: "#4CAF50", StartTime: "09:00", EndTime: "17:00", EmployeeNeeded: 1,
			Employees: []domain.Assignment{
				{EmployeeID: 1, EmployeeName: "张三", Note: "交接库存"},
				{EmployeeID: 2, EmployeeName: "李四"},
			},
		},
		{
			ID: 12, Date: "2024-10-08", ShiftTypeID: 4, ShiftTypeName: "夜班",
			Color: "#3F51B5", StartTime: "22:00", EndTime: "06:00", EmployeeNeeded: 1,
			Employees: []domain.Assignment{
				{EmployeeID: 1, EmployeeName: "张三"},
			},
		},
	}
}

func TestToMatrix(t *testing.T) {
	rows := ToMatrix(testEmployees(), testShifts())
	require.Len(t, rows, 2)

	t.Run("rows follow employee order", func(t *testing.T) {
		assert.Equal(t, int64(1), rows[0].EmployeeID)
		assert.Equal(t, int64(2), rows[1].EmployeeID)
	})

	t.Run("cells carry shift summary and note", func(t *testing.T) {
		cell, ok := rows[0].Days["2024-10-07"]
		require.True(t, ok)
		assert.Equal(t, int64(11), cell.ShiftID)
		assert.Equal(t, "早班", cell.ShiftTypeName)
		assert.Equal(t, "交接库存", cell.Note)
		assert.False(t, cell.Overnight)

		night, ok := rows[0].Days["2024-10-08"]
		require.True(t, ok)
		assert.True(t, night.Overnight)
	})

	t.Run("total hours include overnight shift", func(t *testing.T) {
		// 8 小时早班 + 8 小时夜班
		assert.Equal(t, 16.0, rows[0].TotalHours)
		assert.Equal(t, 8.0, rows[1].TotalHours)
	})

	t.Run("unassigned employee gets empty row", func(t *testing.T) {
		rows := ToMatrix([]domain.Employee{{ID: 9, Name: "王五"}}, testShifts())
		require.Len(t, rows, 1)
		assert.Empty(t, rows[0].Days)
		assert.Equal(t, 0.0, rows[0].TotalHours)
	})
}

func TestFromMatrix(t *testing.T) {
	t.Run("round trip preserves shifts and identities", func(t *testing.T) {
		original := testShifts()
		rows := ToMatrix(testEmployees(), original)

		restored := FromMatrix(rows, original)
		require.Len(t, restored, 2)

		assert.Equal(t, int64(11), restored[0].ID)
		assert.Equal(t, "2024-10-07", restored[0].Date)
		require.Len(t, restored[0].Employees, 2)
		assert.Equal(t, "交接库存", restored[0].Employees[0].Note)

		assert.Equal(t, int64(12), restored[1].ID)
		require.Len(t, restored[1].Employees, 1)
	})

	t.Run("new cell produces fresh shift", func(t *testing.T) {
		original := testShifts()
		rows := ToMatrix(testEmployees(), original)

		rows[1].Days["2024-10-09"] = DayCell{
			ShiftTypeID: 1, ShiftTypeName: "早班", Color: "#4CAF50",
			StartTime: "09:00", EndTime: "17:00",
		}

		restored := FromMatrix(rows, original)
		require.Len(t, restored, 3)

		fresh := restored[2]
		assert.Equal(t, int64(0), fresh.ID)
		assert.Equal(t, "2024-10-09", fresh.Date)
		require.Len(t, fresh.Employees, 1)
		assert.Equal(t, int64(2), fresh.Employees[0].EmployeeID)
	})

	t.Run("emptied shift is dropped", func(t *testing.T) {
		original := testShifts()
		rows := ToMatrix(testEmployees(), original)

		// 两名员工都从 10-07 的早班上撤下
		delete(rows[0].Days, "2024-10-07")
		delete(rows[1].Days, "2024-10-07")

		restored := FromMatrix(rows, original)
		require.Len(t, restored, 1)
		assert.Equal(t, int64(12), restored[0].ID)
	})

	t.Run("duplicate rows for one employee do not double assign", func(t *testing.T) {
		original := testShifts()
		rows := ToMatrix(testEmployees(), original)
		rows = append(rows, rows[0])

		restored := FromMatrix(rows, original)
		require.Len(t, restored, 2)
		assert.Len(t, restored[0].Employees, 2)
		assert.Len(t, restored[1].Employees, 1)
	})

	t.Run("output is sorted by date then shift type", func(t *testing.T) {
		rows := []EmployeeRow{
			{
				EmployeeID: 1, EmployeeName: "张三",
				Days: map[string]DayCell{
					"2024-10-03": {ShiftTypeID: 2},
					"2024-10-01": {ShiftTypeID: 1},
				},
			},
			{
				EmployeeID: 2, EmployeeName: "李四",
				Days: map[string]DayCell{
					"2024-10-01": {ShiftTypeID: 3},
				},
			},
		}

		restored := FromMatrix(rows, nil)
		require.Len(t, restored, 3)
		assert.Equal(t, "2024-10-01", restored[0].Date)
		assert.Equal(t, int64(1), restored[0].ShiftTypeID)
		assert.Equal(t, "2024-10-01", restored[1].Date)
		assert.Equal(t, int64(3), restored[1].ShiftTypeID)
		assert.Equal(t, "2024-10-03", restored[2].Date)
	})

	t.Run("input shifts are not mutated", func(t *testing.T) {
		original := testShifts()
		rows := ToMatrix(testEmployees(), original)
		delete(rows[0].Days, "2024-10-08")

		_ = FromMatrix(rows, original)
		assert.Len(t, original[1].Employees, 1)
	})
}
