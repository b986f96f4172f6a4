package schedule

import (
	"fmt"
	"sort"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

// DayCell 是员工视图中某一天的排班摘要
type DayCell struct {
	ShiftID       int64  `json:"shiftID"`
	ShiftTypeID   int64  `json:"shiftTypeID"`
	ShiftTypeName string `json:"shiftTypeName"`
	Color         string `json:"color"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Overnight     bool   `json:"overnight"`
	Note          string `json:"note"`
}

// EmployeeRow 是员工视图中的一行：该员工在各个日期上的排班以及当月总时长
type EmployeeRow struct {
	EmployeeID   int64              `json:"employeeID"`
	EmployeeName string             `json:"employeeName"`
	Position     string             `json:"position"`
	Days         map[string]DayCell `json:"days"` // 日期 -> 摘要
	TotalHours   float64            `json:"totalHours"`
}

func shiftKey(date string, shiftTypeID int64) string {
	return fmt.Sprintf("%s|%d", date, shiftTypeID)
}

// ToMatrix 将平铺的班次列表投影成按员工分行的视图，行顺序和传入的员工顺序一致
func ToMatrix(employees []domain.Employee, shifts []domain.Shift) []EmployeeRow {
	rows := make([]EmployeeRow, 0, len(employees))

	for _, employee := range employees {
		row := EmployeeRow{
			EmployeeID:   employee.ID,
			EmployeeName: employee.Name,
			Position:     employee.Position,
			Days:         make(map[string]DayCell),
		}

		for _, shift := range shifts {
			for _, assignment := range shift.Employees {
				if assignment.EmployeeID != employee.ID {
					continue
				}

				row.Days[shift.Date] = DayCell{
					ShiftID:       shift.ID,
					ShiftTypeID:   shift.ShiftTypeID,
					ShiftTypeName: shift.ShiftTypeName,
					Color:         shift.Color,
					StartTime:     shift.StartTime,
					EndTime:       shift.EndTime,
					Overnight:     IsOvernight(shift.StartTime, shift.EndTime),
					Note:          assignment.Note,
				}
				row.TotalHours += DurationHours(shift.StartTime, shift.EndTime)
			}
		}

		rows = append(rows, row)
	}

	return rows
}

// FromMatrix 从员工视图还原平铺的班次列表。
// 约定：只要某个班次在 (date, shiftTypeID) 上仍然有至少一个原有的排班存活，
// 它的 ID 就被保留；新出现的单元格产生 ID 为 0 的新班次；没有任何排班的班次被丢弃
func FromMatrix(rows []EmployeeRow, original []domain.Shift) []domain.Shift {
	keyed := make(map[string]*domain.Shift)
	for _, shift := range original {
		seeded := shift
		seeded.Employees = nil
		keyed[shiftKey(shift.Date, shift.ShiftTypeID)] = &seeded
	}

	for _, row := range rows {
		dates := make([]string, 0, len(row.Days))
		for date := range row.Days {
			dates = append(dates, date)
		}
		sort.Strings(dates)

		for _, date := range dates {
			cell := row.Days[date]
			key := shiftKey(date, cell.ShiftTypeID)

			shift, exists := keyed[key]
			if !exists {
				shift = &domain.Shift{
					Date:          date,
					ShiftTypeID:   cell.ShiftTypeID,
					ShiftTypeName: cell.ShiftTypeName,
					Color:         cell.Color,
					StartTime:     cell.StartTime,
					EndTime:       cell.EndTime,
				}
				keyed[key] = shift
			}

			duplicate := false
			for _, assignment := range shift.Employees {
				if assignment.EmployeeID == row.EmployeeID {
					duplicate = true
					break
				}
			}
			if duplicate {
				continue
			}

			shift.Employees = append(shift.Employees, domain.Assignment{
				EmployeeID:   row.EmployeeID,
				EmployeeName: row.EmployeeName,
				Note:         cell.Note,
			})
		}
	}

	shifts := make([]domain.Shift, 0, len(keyed))
	for _, shift := range keyed {
		if len(shift.Employees) == 0 {
			continue
		}
		shifts = append(shifts, *shift)
	}

	sort.Slice(shifts, func(i, j int) bool {
		if shifts[i].Date != shifts[j].Date {
			return shifts[i].Date < shifts[j].Date
		}
		return shifts[i].ShiftTypeID < shifts[j].ShiftTypeID
	})

	return shifts
}
