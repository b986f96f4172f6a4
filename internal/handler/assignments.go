package handler

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/schedule"
)

// AssignEmployee 是拖放编辑的落点：UI 适配层把拖拽手势翻译成这里的一次调用
func (h *Handler) AssignEmployee(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.Group)
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	var req struct {
		EmployeeID  int64  `json:"employeeId" validate:"required"`
		Date        string `json:"date" validate:"required,datetime=2006-01-02"`
		ShiftTypeID int64  `json:"shiftTypeId" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employee, err := h.repository.GetEmployeeByID(req.EmployeeID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "员工不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}
	if employee.GroupID != group.ID {
		h.errorResponse(w, r, "员工不属于该组")
		return
	}

	shiftType, err := h.repository.GetShiftTypeByID(req.ShiftTypeID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "班种不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	cal, err := h.loadCalendar(group.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 不可排班的单元格直接拒绝，原因随响应返回给用户
	status := schedule.Evaluate(req.Date, employee.ID, *cal)
	if status.Verdict != schedule.VerdictOpen {
		h.businessErrorResponse(w, r, status.Reason, status)
		return
	}

	shifts, changed := schedule.Assign(sched.Shifts, *employee, req.Date, *shiftType)
	if !changed {
		h.errorResponse(w, r, "该员工已经在这个班次上")
		return
	}

	sched.Shifts = shifts
	if err := h.repository.SaveSchedule(sched); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	// 人数上限是软约束：超员不阻止排班，只随成功响应一并提醒
	warning := ""
	if shiftType.MaxEmployees > 0 {
		for _, shift := range sched.Shifts {
			if shift.Date == req.Date && shift.ShiftTypeID == shiftType.ID && int32(len(shift.Employees)) > shiftType.MaxEmployees {
				warning = fmt.Sprintf("班种 %s 的人数已超过上限 %d", shiftType.Name, shiftType.MaxEmployees)
			}
		}
	}

	h.successResponse(w, r, "排班成功", struct {
		Schedule *domain.Schedule `json:"schedule"`
		Warning  string           `json:"warning,omitempty"`
	}{Schedule: sched, Warning: warning})
}

func (h *Handler) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	var req struct {
		EmployeeID int64  `json:"employeeId" validate:"required"`
		Date       string `json:"date" validate:"required,datetime=2006-01-02"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shifts, changed := schedule.Remove(sched.Shifts, req.EmployeeID, req.Date)
	if !changed {
		h.errorResponse(w, r, "该员工当天没有排班")
		return
	}

	sched.Shifts = shifts
	if err := h.repository.SaveSchedule(sched); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "移除排班成功", sched)
}

func (h *Handler) SetAssignmentNote(w http.ResponseWriter, r *http.Request) {
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	var req struct {
		EmployeeID int64  `json:"employeeId" validate:"required"`
		Date       string `json:"date" validate:"required,datetime=2006-01-02"`
		Note       string `json:"note"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shifts, changed := schedule.SetNote(sched.Shifts, req.EmployeeID, req.Date, req.Note)
	if !changed {
		h.errorResponse(w, r, "该员工当天没有排班")
		return
	}

	sched.Shifts = shifts
	if err := h.repository.SaveSchedule(sched); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "备注保存成功", sched)
}
