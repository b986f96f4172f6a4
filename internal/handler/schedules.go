package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/schedule"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/utils"
)

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	h.successResponse(w, r, "获取排班表成功", sched)
}

func (h *Handler) SaveSchedule(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.Group)
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	var req struct {
		Autorenewal bool `json:"autorenewal"`
		IsConfirmed bool `json:"isConfirmed"`
		Shifts      []struct {
			ShiftTypeID int64  `json:"shiftTypeId" validate:"required"`
			Date        string `json:"date" validate:"required,datetime=2006-01-02"`
			Employees   []struct {
				ID   int64  `json:"id" validate:"required"`
				Note string `json:"note"`
			} `json:"employees" validate:"required,dive"`
		} `json:"shifts" validate:"dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shiftTypes, err := h.repository.GetAllShiftTypes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	shiftTypesByID := make(map[int64]*domain.ShiftType, len(shiftTypes))
	for _, shiftType := range shiftTypes {
		shiftTypesByID[shiftType.ID] = shiftType
	}

	employees, err := h.repository.GetEmployeesByGroupID(group.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	employeesByID := make(map[int64]*domain.Employee, len(employees))
	for _, employee := range employees {
		employeesByID[employee.ID] = employee
	}

	// 逐个重建班次，同时校验 (date, shiftTypeId) 的唯一性和员工归属
	seen := make(map[string]bool)
	shifts := make([]domain.Shift, 0, len(req.Shifts))

	for _, reqShift := range req.Shifts {
		shiftType, exists := shiftTypesByID[reqShift.ShiftTypeID]
		if !exists {
			h.errorResponse(w, r, fmt.Sprintf("班种 %d 不存在", reqShift.ShiftTypeID))
			return
		}

		key := fmt.Sprintf("%s|%d", reqShift.Date, reqShift.ShiftTypeID)
		if seen[key] {
			h.errorResponse(w, r, fmt.Sprintf("%s 的班种 %s 出现了多次", reqShift.Date, shiftType.Name))
			return
		}
		seen[key] = true

		shift := domain.Shift{
			Date:           reqShift.Date,
			ShiftTypeID:    shiftType.ID,
			ShiftTypeName:  shiftType.Name,
			Color:          shiftType.Color,
			StartTime:      shiftType.StartTime,
			EndTime:        shiftType.EndTime,
			EmployeeNeeded: shiftType.MinEmployees,
			Employees:      make([]domain.Assignment, 0, len(reqShift.Employees)),
		}

		assigned := make(map[int64]bool)
		for _, reqEmployee := range reqShift.Employees {
			employee, exists := employeesByID[reqEmployee.ID]
			if !exists {
				h.errorResponse(w, r, fmt.Sprintf("员工 %d 不属于该组", reqEmployee.ID))
				return
			}
			if assigned[reqEmployee.ID] {
				h.errorResponse(w, r, fmt.Sprintf("员工 %s 在同一个班次中出现了多次", employee.Name))
				return
			}
			assigned[reqEmployee.ID] = true

			shift.Employees = append(shift.Employees, domain.Assignment{
				EmployeeID:   employee.ID,
				EmployeeName: employee.Name,
				Note:         reqEmployee.Note,
			})
		}

		shifts = append(shifts, shift)
	}

	wasConfirmed := sched.IsConfirmed
	sched.Shifts = shifts
	sched.Autorenewal = req.Autorenewal
	sched.IsConfirmed = req.IsConfirmed

	if err := h.repository.SaveSchedule(sched); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if !wasConfirmed && sched.IsConfirmed {
		h.notifySchedule(group, sched, "schedule_confirmed")
	}

	h.successResponse(w, r, "保存排班表成功", sched)
}

// SaveScheduleMatrix 接受员工视图的整表编辑，还原成平铺的班次列表后整体保存。
// 原有班次只要在 (date, shiftTypeId) 上仍有排班存活就保留其 ID
func (h *Handler) SaveScheduleMatrix(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.Group)
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	var req struct {
		Rows []schedule.EmployeeRow `json:"rows" validate:"required"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	employees, err := h.repository.GetEmployeesByGroupID(group.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	employeesByID := make(map[int64]*domain.Employee, len(employees))
	for _, employee := range employees {
		employeesByID[employee.ID] = employee
	}

	shifts, err := shiftsFromMatrix(req.Rows, sched.Shifts, employeesByID)
	if err != nil {
		h.errorResponse(w, r, err.Error())
		return
	}

	sched.Shifts = shifts
	if err := h.repository.SaveSchedule(sched); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "保存排班表成功", sched)
}

// shiftsFromMatrix 校验行中的员工归属之后还原平铺班次，
// 员工姓名以数据库记录为准，不信任请求中携带的姓名
func shiftsFromMatrix(rows []schedule.EmployeeRow, original []domain.Shift, employeesByID map[int64]*domain.Employee) ([]domain.Shift, error) {
	for i, row := range rows {
		employee, exists := employeesByID[row.EmployeeID]
		if !exists {
			return nil, fmt.Errorf("员工 %d 不属于该组", row.EmployeeID)
		}
		rows[i].EmployeeName = employee.Name
	}

	return schedule.FromMatrix(rows, original), nil
}

func (h *Handler) GetScheduleMatrix(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.Group)
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	employees, err := h.repository.GetEmployeesByGroupID(group.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	rows := schedule.ToMatrix(derefEmployees(employees), sched.Shifts)

	h.successResponse(w, r, "获取员工视图成功", rows)
}

type eligibilityRow struct {
	EmployeeID   int64                          `json:"employeeID"`
	EmployeeName string                         `json:"employeeName"`
	Days         map[string]schedule.CellStatus `json:"days"`
}

func (h *Handler) GetScheduleEligibility(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.Group)
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	cal, err := h.loadCalendar(group.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	employees, err := h.repository.GetEmployeesByGroupID(group.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	dates, err := utils.DatesInRange(sched.StartDate, sched.EndDate)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	rows := make([]eligibilityRow, 0, len(employees))
	for _, employee := range employees {
		row := eligibilityRow{
			EmployeeID:   employee.ID,
			EmployeeName: employee.Name,
			Days:         make(map[string]schedule.CellStatus, len(dates)),
		}
		for _, date := range dates {
			row.Days[date] = schedule.Evaluate(date, employee.ID, *cal)
		}
		rows = append(rows, row)
	}

	h.successResponse(w, r, "获取单元格状态成功", rows)
}

func (h *Handler) ConfirmSchedule(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.Group)
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	if sched.IsConfirmed {
		h.errorResponse(w, r, "排班表已经确认过了")
		return
	}

	if err := setConfirmation(h.repository, sched, true); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "确认失败，排班表已被其他人修改，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifySchedule(group, sched, "schedule_confirmed")

	h.successResponse(w, r, "确认排班表成功", sched)
}

func (h *Handler) UnconfirmSchedule(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.Group)
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	if !sched.IsConfirmed {
		h.errorResponse(w, r, "排班表尚未确认")
		return
	}

	if err := setConfirmation(h.repository, sched, false); err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "撤销确认失败，排班表已被其他人修改，请刷新后重试")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.notifySchedule(group, sched, "schedule_unconfirmed")

	h.successResponse(w, r, "撤销确认成功", sched)
}

func (h *Handler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	scheduleIDParam := chi.URLParam(r, "scheduleID")
	scheduleID, err := strconv.ParseInt(scheduleIDParam, 10, 64)
	if err != nil {
		h.errorResponse(w, r, "排班表ID无效")
		return
	}

	sched, err := h.repository.GetScheduleByID(scheduleID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "排班表不存在")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	payload := schedule.BuildSavePayload(sched.Shifts, sched.GroupID, sched.StartDate, sched.EndDate, sched.Autorenewal, sched.IsConfirmed)

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Solver.ExportTimeout)*time.Second)
	defer cancel()

	data, err := h.solverClient.Export(ctx, sched.ID, payload)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="schedule_%d.xlsx"`, sched.ID))
	if _, err := w.Write(data); err != nil {
		h.logInternalServerError(r, err)
	}
}

func (h *Handler) loadCalendar(groupID int64) (*schedule.Calendar, error) {
	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		return nil, err
	}

	workDays, err := h.repository.GetAllWorkDays()
	if err != nil {
		return nil, err
	}

	timeOffs, err := h.repository.GetTimeOffsByGroupID(groupID)
	if err != nil {
		return nil, err
	}

	cal := &schedule.Calendar{}
	for _, holiday := range holidays {
		cal.Holidays = append(cal.Holidays, *holiday)
	}
	for _, workDay := range workDays {
		cal.WorkDays = append(cal.WorkDays, *workDay)
	}
	for _, timeOff := range timeOffs {
		cal.TimeOffs = append(cal.TimeOffs, *timeOff)
	}

	return cal, nil
}

// notifySchedule 向组内所有员工发送排班表状态变更的通知邮件。
// 通知失败只记录日志，不影响已经提交成功的状态变更
func (h *Handler) notifySchedule(group *domain.Group, sched *domain.Schedule, mailType string) {
	employees, err := h.repository.GetEmployeesByGroupID(group.ID)
	if err != nil {
		slog.Error("无法获取组内员工，通知邮件未发送", "groupID", group.ID, "error", err)
		return
	}

	for _, employee := range employees {
		if employee.Email == "" {
			continue
		}

		mailMessage := domain.MailMessage{
			Type: mailType,
			To:   employee.Email,
			Data: domain.ScheduleConfirmedMailData{
				EmployeeName: employee.Name,
				GroupName:    group.Name,
				StartDate:    sched.StartDate,
				EndDate:      sched.EndDate,
			},
		}

		mailData, err := json.Marshal(mailMessage)
		if err != nil {
			slog.Error("通知邮件序列化失败", "error", err)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
		err = h.notifyChannel.PublishWithContext(
			ctx,
			"",
			"notify_queue",
			true,
			false,
			amqp.Publishing{
				ContentType: "application/json",
				Body:        mailData,
			},
		)
		cancel()
		if err != nil {
			slog.Error("通知邮件入队失败", "to", employee.Email, "error", err)
		}
	}
}

func derefEmployees(employees []*domain.Employee) []domain.Employee {
	result := make([]domain.Employee, 0, len(employees))
	for _, employee := range employees {
		result = append(result, *employee)
	}
	return result
}
