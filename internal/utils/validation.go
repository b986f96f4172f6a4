package utils

import (
	"fmt"
	"time"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/schedule"
)

// ValidateShiftTypeTime 只检查时刻格式，开始时刻晚于结束时刻表示跨天班次，是允许的
func ValidateShiftTypeTime(shiftType *domain.ShiftType) error {
	if _, err := schedule.ParseClockMinutes(shiftType.StartTime); err != nil {
		return fmt.Errorf("班种 %s 的开始时间格式错误", shiftType.Name)
	}
	if _, err := schedule.ParseClockMinutes(shiftType.EndTime); err != nil {
		return fmt.Errorf("班种 %s 的结束时间格式错误", shiftType.Name)
	}
	return nil
}

// MonthRange 将 2006-01 格式的月份展开为当月第一天和最后一天
func MonthRange(month string) (string, string, error) {
	first, err := time.Parse("2006-01", month)
	if err != nil {
		return "", "", fmt.Errorf("月份 %q 的格式错误", month)
	}

	last := first.AddDate(0, 1, -1)
	return first.Format(schedule.DateLayout), last.Format(schedule.DateLayout), nil
}

// DatesInRange 按顺序展开闭区间内的所有日期
func DatesInRange(startDate, endDate string) ([]string, error) {
	start, err := time.Parse(schedule.DateLayout, startDate)
	if err != nil {
		return nil, fmt.Errorf("开始日期 %q 的格式错误", startDate)
	}
	end, err := time.Parse(schedule.DateLayout, endDate)
	if err != nil {
		return nil, fmt.Errorf("结束日期 %q 的格式错误", endDate)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("结束日期不能早于开始日期")
	}

	dates := []string{}
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		dates = append(dates, day.Format(schedule.DateLayout))
	}

	return dates, nil
}
