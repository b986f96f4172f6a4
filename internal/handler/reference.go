package handler

import (
	"net/http"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

func (h *Handler) GetAllShiftTypes(w http.ResponseWriter, r *http.Request) {
	shiftTypes, err := h.repository.GetAllShiftTypes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取所有班种成功", shiftTypes)
}

func (h *Handler) GetAllHolidays(w http.ResponseWriter, r *http.Request) {
	holidays, err := h.repository.GetAllHolidays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取所有节假日成功", holidays)
}

func (h *Handler) GetAllWorkDays(w http.ResponseWriter, r *http.Request) {
	workDays, err := h.repository.GetAllWorkDays()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取工作日配置成功", workDays)
}

func (h *Handler) GetAllGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.repository.GetAllGroups()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取所有组成功", groups)
}

func (h *Handler) GetGroupEmployees(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.Group)

	employees, err := h.repository.GetEmployeesByGroupID(group.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取组内员工成功", employees)
}

func (h *Handler) GetGroupTimeOffs(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.Group)

	timeOffs, err := h.repository.GetTimeOffsByGroupID(group.ID)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取组内请假记录成功", timeOffs)
}
