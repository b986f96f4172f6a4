package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/utils"
)

type ResponseWriter struct {
	http.ResponseWriter
	StatusCode int
}

func (rw *ResponseWriter) WriteHeader(statusCode int) {
	rw.StatusCode = statusCode
	rw.ResponseWriter.WriteHeader(statusCode)
}

func (h *Handler) logger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &ResponseWriter{ResponseWriter: w}
		next.ServeHTTP(rw, r)
		duration := time.Since(start)
		slog.Info("已处理请求", "status", rw.StatusCode, "ip", r.RemoteAddr, "method", r.Method, "path", r.URL.Path, "duration", duration)
	})
}

func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				h.internalServerError(w, r, fmt.Errorf("panic: %v", err))
				stackTrace := string(debug.Stack())
				fmt.Print(stackTrace) // 这里如果用 slog 的话会很乱
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) group(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		groupIDParam := chi.URLParam(r, "groupID")
		groupID, err := strconv.ParseInt(groupIDParam, 10, 64)
		if err != nil {
			h.errorResponse(w, r, "组ID无效")
			return
		}

		group, err := h.repository.GetGroupByID(groupID)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				h.errorResponse(w, r, "组不存在")
			default:
				h.internalServerError(w, r, err)
			}
			return
		}

		ctx := context.WithValue(r.Context(), GroupCtx, group)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// schedule 按 (组, 月份) 加载排班表，不存在时惰性创建一份草稿
func (h *Handler) schedule(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		group := r.Context().Value(GroupCtx).(*domain.Group)

		month := chi.URLParam(r, "month")
		startDate, endDate, err := utils.MonthRange(month)
		if err != nil {
			h.errorResponse(w, r, "月份格式无效")
			return
		}

		sched, err := h.repository.GetScheduleByGroupAndRange(group.ID, startDate, endDate)
		if err != nil {
			switch {
			case errors.Is(err, sql.ErrNoRows):
				sched = &domain.Schedule{
					GroupID:   group.ID,
					StartDate: startDate,
					EndDate:   endDate,
				}
				if err := h.repository.CreateSchedule(sched); err != nil {
					h.internalServerError(w, r, err)
					return
				}
			default:
				h.internalServerError(w, r, err)
				return
			}
		}

		ctx := context.WithValue(r.Context(), ScheduleCtx, sched)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
