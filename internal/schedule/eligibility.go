package schedule

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

type Verdict string

const (
	VerdictOpen    Verdict = "Open"    // 可以排班
	VerdictClosed  Verdict = "Closed"  // 节假日或休息日，机构不营业
	VerdictBlocked Verdict = "Blocked" // 该员工当天有已批准的请假
)

type CellStatus struct {
	Verdict Verdict `json:"verdict"`
	Reason  string  `json:"reason"`
}

// Calendar 是评估单元格状态所需的机构上下文
type Calendar struct {
	Holidays []domain.Holiday
	WorkDays []domain.WorkDay
	TimeOffs []domain.EmployeeTimeOff
}

var timeOffReasons = map[domain.TimeOffType]string{
	domain.TimeOffVacation:    "已批准的年假",
	domain.TimeOffSickLeave:   "已批准的病假",
	domain.TimeOffPersonalDay: "已批准的事假",
}

// Evaluate 判定 (员工, 日期) 单元格的状态。Closed 是机构级属性，和员工无关，
// 因此当节假日和请假同时命中时优先返回 Closed。未知的员工 ID 不会命中任何请假。
// 这是纯函数，不做 I/O，无法解析的日期一律视为 Open
func Evaluate(date string, employeeID int64, cal Calendar) CellStatus {
	day, err := time.Parse(DateLayout, date)
	if err != nil {
		return CellStatus{Verdict: VerdictOpen}
	}

	for _, holiday := range cal.Holidays {
		if int32(day.Month()) == holiday.Month && int32(day.Day()) == holiday.Day {
			return CellStatus{
				Verdict: VerdictClosed,
				Reason:  fmt.Sprintf("节假日：%s", holiday.Name),
			}
		}
	}

	// 将 Go 的星期表示转换为 1-7（周一为 1）
	weekday := int32(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}

	working := false
	for _, workDay := range cal.WorkDays {
		if workDay.DayOfWeek == weekday {
			working = true
			break
		}
	}
	if !working {
		return CellStatus{Verdict: VerdictClosed, Reason: "非工作日"}
	}

	for _, timeOff := range cal.TimeOffs {
		if timeOff.EmployeeID != employeeID {
			continue
		}
		// ISO 日期可以直接按字典序比较，区间为闭区间
		if timeOff.StartDate <= date && date <= timeOff.EndDate {
			reason, ok := timeOffReasons[timeOff.Type]
			if !ok {
				reason = "已批准的请假"
			}
			return CellStatus{Verdict: VerdictBlocked, Reason: reason}
		}
	}

	return CellStatus{Verdict: VerdictOpen}
}
