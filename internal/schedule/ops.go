package schedule

import (
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

// cloneShifts 深拷贝班次列表，所有操作都在副本上进行，入参永远不被修改
func cloneShifts(shifts []domain.Shift) []domain.Shift {
	cloned := make([]domain.Shift, len(shifts))
	for i, shift := range shifts {
		cloned[i] = shift
		cloned[i].Employees = make([]domain.Assignment, len(shift.Employees))
		copy(cloned[i].Employees, shift.Employees)
	}
	return cloned
}

// Assign 将员工排到 (date, shiftType) 对应的班次上，班次不存在时创建。
// 员工已经在该班次上时不做任何修改。这里不检查班种的人数上限，
// 超员与否由调用方对照 MaxEmployees 自行提示
func Assign(shifts []domain.Shift, employee domain.Employee, date string, shiftType domain.ShiftType) ([]domain.Shift, bool) {
	result := cloneShifts(shifts)

	for i, shift := range result {
		if shift.Date != date || shift.ShiftTypeID != shiftType.ID {
			continue
		}

		for _, assignment := range shift.Employees {
			if assignment.EmployeeID == employee.ID {
				return result, false
			}
		}

		result[i].Employees = append(result[i].Employees, domain.Assignment{
			EmployeeID:   employee.ID,
			EmployeeName: employee.Name,
		})
		return result, true
	}

	result = append(result, domain.Shift{
		Date:           date,
		ShiftTypeID:    shiftType.ID,
		ShiftTypeName:  shiftType.Name,
		Color:          shiftType.Color,
		StartTime:      shiftType.StartTime,
		EndTime:        shiftType.EndTime,
		EmployeeNeeded: shiftType.MinEmployees,
		Employees: []domain.Assignment{
			{EmployeeID: employee.ID, EmployeeName: employee.Name},
		},
	})

	return result, true
}

// Remove 将员工从其当天所在的班次上移除，移除后没有任何排班的班次一并删除
func Remove(shifts []domain.Shift, employeeID int64, date string) ([]domain.Shift, bool) {
	result := cloneShifts(shifts)

	for i, shift := range result {
		if shift.Date != date {
			continue
		}

		for j, assignment := range shift.Employees {
			if assignment.EmployeeID != employeeID {
				continue
			}

			result[i].Employees = append(result[i].Employees[:j], result[i].Employees[j+1:]...)
			if len(result[i].Employees) == 0 {
				result = append(result[:i], result[i+1:]...)
			}
			return result, true
		}
	}

	return result, false
}

// SetNote 替换员工当天排班上的备注，此层不限制备注长度
func SetNote(shifts []domain.Shift, employeeID int64, date string, note string) ([]domain.Shift, bool) {
	result := cloneShifts(shifts)

	for i, shift := range result {
		if shift.Date != date {
			continue
		}

		for j, assignment := range shift.Employees {
			if assignment.EmployeeID == employeeID {
				result[i].Employees[j].Note = note
				return result, true
			}
		}
	}

	return result, false
}

// BuildSavePayload 将班次列表序列化为持久化接口要求的保存格式
func BuildSavePayload(shifts []domain.Shift, groupID int64, startDate, endDate string, autorenewal, isConfirmed bool) domain.SavePayload {
	payload := domain.SavePayload{
		GroupID:     groupID,
		StartDate:   startDate,
		EndDate:     endDate,
		Autorenewal: autorenewal,
		IsConfirmed: isConfirmed,
		Shifts:      make([]domain.SavePayloadShift, 0, len(shifts)),
	}

	for _, shift := range shifts {
		payloadShift := domain.SavePayloadShift{
			ShiftTypeID: shift.ShiftTypeID,
			Date:        shift.Date,
			Employees:   make([]domain.SavePayloadEmployee, 0, len(shift.Employees)),
		}
		for _, assignment := range shift.Employees {
			payloadShift.Employees = append(payloadShift.Employees, domain.SavePayloadEmployee{
				ID:   assignment.EmployeeID,
				Note: assignment.Note,
			})
		}
		payload.Shifts = append(payload.Shifts, payloadShift)
	}

	return payload
}
