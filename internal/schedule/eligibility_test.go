package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

// 2024 年 10 月：10-14 为周一，机构周一到周五营业，员工 3 在 10-10 到 10-15 请年假
func octoberCalendar() Calendar {
	return Calendar{
		Holidays: []domain.Holiday{
			{ID: 1, Month: 10, Day: 14, Name: "机构庆典"},
		},
		WorkDays: []domain.WorkDay{
			{DayOfWeek: 1}, {DayOfWeek: 2}, {DayOfWeek: 3}, {DayOfWeek: 4}, {DayOfWeek: 5},
		},
		TimeOffs: []domain.EmployeeTimeOff{
			{ID: 1, EmployeeID: 3, StartDate: "2024-10-10", EndDate: "2024-10-15", Type: domain.TimeOffVacation},
		},
	}
}

func TestEvaluate(t *testing.T) {
	cal := octoberCalendar()

	t.Run("open working day", func(t *testing.T) {
		status := Evaluate("2024-10-09", 1, cal)
		assert.Equal(t, VerdictOpen, status.Verdict)
		assert.Empty(t, status.Reason)
	})

	t.Run("weekend is closed", func(t *testing.T) {
		// 2024-10-12 是周六
		status := Evaluate("2024-10-12", 1, cal)
		assert.Equal(t, VerdictClosed, status.Verdict)
		assert.Equal(t, "非工作日", status.Reason)
	})

	t.Run("holiday is closed with name", func(t *testing.T) {
		status := Evaluate("2024-10-14", 1, cal)
		assert.Equal(t, VerdictClosed, status.Verdict)
		assert.Equal(t, "节假日：机构庆典", status.Reason)
	})

	t.Run("holiday wins over time off", func(t *testing.T) {
		// 员工 3 在 10-14 既处于请假区间又赶上节假日，Closed 优先
		status := Evaluate("2024-10-14", 3, cal)
		assert.Equal(t, VerdictClosed, status.Verdict)
	})

	t.Run("approved time off blocks the employee", func(t *testing.T) {
		status := Evaluate("2024-10-10", 3, cal)
		assert.Equal(t, VerdictBlocked, status.Verdict)
		assert.Equal(t, "已批准的年假", status.Reason)

		// 区间为闭区间，边界日同样命中
		status = Evaluate("2024-10-15", 3, cal)
		assert.Equal(t, VerdictBlocked, status.Verdict)
	})

	t.Run("time off only blocks its own employee", func(t *testing.T) {
		status := Evaluate("2024-10-10", 1, cal)
		assert.Equal(t, VerdictOpen, status.Verdict)
	})

	t.Run("unknown employee never hits time off", func(t *testing.T) {
		status := Evaluate("2024-10-10", 999, cal)
		assert.Equal(t, VerdictOpen, status.Verdict)
	})

	t.Run("day after time off is open again", func(t *testing.T) {
		status := Evaluate("2024-10-16", 3, cal)
		assert.Equal(t, VerdictOpen, status.Verdict)
	})

	t.Run("time off type drives the reason", func(t *testing.T) {
		cal := octoberCalendar()
		cal.TimeOffs = append(cal.TimeOffs,
			domain.EmployeeTimeOff{EmployeeID: 4, StartDate: "2024-10-09", EndDate: "2024-10-09", Type: domain.TimeOffSickLeave},
			domain.EmployeeTimeOff{EmployeeID: 5, StartDate: "2024-10-09", EndDate: "2024-10-09", Type: domain.TimeOffPersonalDay},
		)

		assert.Equal(t, "已批准的病假", Evaluate("2024-10-09", 4, cal).Reason)
		assert.Equal(t, "已批准的事假", Evaluate("2024-10-09", 5, cal).Reason)
	})

	t.Run("sunday maps to day seven", func(t *testing.T) {
		cal := Calendar{WorkDays: []domain.WorkDay{{DayOfWeek: 7}}}
		// 2024-10-13 是周日
		assert.Equal(t, VerdictOpen, Evaluate("2024-10-13", 1, cal).Verdict)
		assert.Equal(t, VerdictClosed, Evaluate("2024-10-14", 1, cal).Verdict)
	})

	t.Run("unparsable date is open", func(t *testing.T) {
		status := Evaluate("not-a-date", 1, cal)
		assert.Equal(t, VerdictOpen, status.Verdict)
	})
}
