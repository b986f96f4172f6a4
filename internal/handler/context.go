package handler

type ContextKey string

var (
	GroupCtx    ContextKey = "group"
	ScheduleCtx ContextKey = "schedule"
)
