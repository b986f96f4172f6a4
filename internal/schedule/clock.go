package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

const DateLayout = "2006-01-02"

// ParseClockMinutes 将 15:04 格式的时刻解析为当天的分钟数
func ParseClockMinutes(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("时刻 %q 的格式错误", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("时刻 %q 的小时无效", s)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("时刻 %q 的分钟无效", s)
	}

	return hour*60 + minute, nil
}

// DurationHours 计算班次时长（小时），结束时刻不晚于开始时刻时按跨天处理，
// 因此相同的开始和结束时刻会得到整整 24 小时。无法解析的时刻按 0 计
func DurationHours(startTime, endTime string) float64 {
	start, err := ParseClockMinutes(startTime)
	if err != nil {
		return 0
	}
	end, err := ParseClockMinutes(endTime)
	if err != nil {
		return 0
	}

	minutes := end - start
	if minutes <= 0 {
		minutes += 24 * 60
	}

	return float64(minutes) / 60
}

// IsOvernight 判断班次是否跨天，结束时刻等于开始时刻时同样视为跨天
func IsOvernight(startTime, endTime string) bool {
	start, err := ParseClockMinutes(startTime)
	if err != nil {
		return false
	}
	end, err := ParseClockMinutes(endTime)
	if err != nil {
		return false
	}

	return end <= start
}
