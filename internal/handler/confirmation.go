package handler

import (
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

// scheduleConfirmer 是确认状态持久化所需的最小接口，repository 实现它
type scheduleConfirmer interface {
	UpdateScheduleConfirmation(sched *domain.Schedule) error
}

// setConfirmation 切换排班表的确认状态。只有持久化成功之后本地状态才会改变，
// 失败时回滚本地标记并原样返回错误，班次列表在任何情况下都不被触碰
func setConfirmation(store scheduleConfirmer, sched *domain.Schedule, confirmed bool) error {
	previous := sched.IsConfirmed
	sched.IsConfirmed = confirmed

	if err := store.UpdateScheduleConfirmation(sched); err != nil {
		sched.IsConfirmed = previous
		return err
	}

	return nil
}
