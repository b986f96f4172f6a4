package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/generator"
)

func (h *Handler) GetGenerationPreset(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.Group)

	shiftTypes, err := h.repository.GetAllShiftTypes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	preset, err := h.orchestrator.LoadPreset(r.Context(), group.ID, derefShiftTypes(shiftTypes))
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "获取生成预设成功", preset)
}

func (h *Handler) SaveGenerationPreset(w http.ResponseWriter, r *http.Request) {
	group := r.Context().Value(GroupCtx).(*domain.Group)

	var req struct {
		AllowedShiftTypeIDs  []int64 `json:"allowedShiftTypeIds" validate:"required,min=1"`
		MaxConsecutiveShifts int32   `json:"maxConsecutiveShifts" validate:"required,min=1"`
		SchedulePattern      int32   `json:"schedulePattern" validate:"min=0,max=4"`
		MinDaysOffPerWeek    int32   `json:"minDaysOffPerWeek" validate:"min=0,max=7"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	preset := &domain.GenerationPreset{
		AllowedShiftTypeIDs:  req.AllowedShiftTypeIDs,
		MaxConsecutiveShifts: req.MaxConsecutiveShifts,
		SchedulePattern:      domain.SchedulePattern(req.SchedulePattern),
		MinDaysOffPerWeek:    req.MinDaysOffPerWeek,
	}

	if err := h.orchestrator.SavePreset(r.Context(), group.ID, preset); err != nil {
		var presetErr *generator.InvalidPresetError
		switch {
		case errors.As(err, &presetErr):
			h.errorResponse(w, r, presetErr.Reason)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "保存生成预设成功", preset)
}

type generationWarning struct {
	Code    domain.GenerationWarningCode `json:"code"`
	Message string                       `json:"message"`
}

func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	sched := r.Context().Value(ScheduleCtx).(*domain.Schedule)

	shiftTypes, err := h.repository.GetAllShiftTypes()
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Solver.GenerateTimeout)*time.Second)
	defer cancel()

	result, err := h.orchestrator.Run(ctx, sched, derefShiftTypes(shiftTypes))
	if err != nil {
		var presetErr *generator.InvalidPresetError
		switch {
		case errors.As(err, &presetErr):
			h.errorResponse(w, r, presetErr.Reason)
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	// 业务错误是终止性的：本地排班表保持原样，错误码的文案原样呈现给用户
	if result.Schedule == nil {
		h.businessErrorResponse(w, r, result.ErrorCode.Message(), struct {
			ErrorCode domain.GenerationErrorCode `json:"errorCode"`
		}{ErrorCode: result.ErrorCode})
		return
	}

	if err := h.repository.SaveSchedule(result.Schedule); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	warnings := make([]generationWarning, 0, len(result.Warnings))
	for _, code := range result.Warnings {
		warnings = append(warnings, generationWarning{Code: code, Message: code.Message()})
	}

	h.successResponse(w, r, "自动排班成功", struct {
		Schedule *domain.Schedule    `json:"schedule"`
		Warnings []generationWarning `json:"warnings"`
	}{Schedule: result.Schedule, Warnings: warnings})
}

func derefShiftTypes(shiftTypes []*domain.ShiftType) []domain.ShiftType {
	result := make([]domain.ShiftType, 0, len(shiftTypes))
	for _, shiftType := range shiftTypes {
		result = append(result, *shiftType)
	}
	return result
}
