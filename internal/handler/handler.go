package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/config"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/generator"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/repository"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/solver"
)

type Handler struct {
	validate      *validator.Validate
	config        *config.Config
	repository    *repository.Repository
	translator    ut.Translator
	notifyChannel *amqp.Channel
	orchestrator  *generator.Orchestrator
	solverClient  *solver.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, notifyCh *amqp.Channel, orchestrator *generator.Orchestrator, solverClient *solver.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	zh := zh.New()
	uni := ut.New(zh, zh)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:      validate,
		config:        cfg,
		repository:    repo,
		translator:    trans,
		notifyChannel: notifyCh,
		orchestrator:  orchestrator,
		solverClient:  solverClient,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// 机构级参照数据
	h.Mux.Get("/shift-types", h.GetAllShiftTypes)
	h.Mux.Get("/holidays", h.GetAllHolidays)
	h.Mux.Get("/work-days", h.GetAllWorkDays)
	h.Mux.Get("/groups", h.GetAllGroups)

	h.Mux.Route("/groups/{groupID}", func(r chi.Router) {
		r.Use(h.group)
		r.Get("/employees", h.GetGroupEmployees)
		r.Get("/time-offs", h.GetGroupTimeOffs)

		r.Route("/generation-preset", func(r chi.Router) {
			r.Get("/", h.GetGenerationPreset)
			r.Put("/", h.SaveGenerationPreset)
		})

		// month 的格式为 2006-01，对应的排班表在首次访问时惰性创建
		r.Route("/schedules/{month}", func(r chi.Router) {
			r.Use(h.schedule)
			r.Get("/", h.GetSchedule)
			r.Put("/", h.SaveSchedule)
			r.Get("/matrix", h.GetScheduleMatrix)
			r.Put("/matrix", h.SaveScheduleMatrix)
			r.Get("/eligibility", h.GetScheduleEligibility)
			r.Post("/assignments", h.AssignEmployee)
			r.Delete("/assignments", h.RemoveEmployee)
			r.Patch("/assignments/note", h.SetAssignmentNote)
			r.Post("/confirm", h.ConfirmSchedule)
			r.Post("/unconfirm", h.UnconfirmSchedule)
			r.Post("/generate", h.GenerateSchedule)
		})
	})

	h.Mux.Get("/schedules/{scheduleID}/export", h.ExportSchedule)
}
