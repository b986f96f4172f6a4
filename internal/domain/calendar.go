package domain

import "time"

// Holiday 是全机构生效的节假日，按月和日匹配，与年份无关
type Holiday struct {
	ID        int64     `json:"id"`
	Month     int32     `json:"month"` // 1-12
	Day       int32     `json:"day"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

// WorkDay 定义机构某个星期几的默认营业时间，未配置的星期几视为休息日
type WorkDay struct {
	ID        int64     `json:"id"`
	DayOfWeek int32     `json:"dayOfWeek"` // 1-7，1 为周一
	StartTime string    `json:"startTime"` // 格式为 15:04
	EndTime   string    `json:"endTime"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}
