package domain

import "time"

// ShiftType 是编辑会话中的只读参照数据，开始和结束时间允许跨天
type ShiftType struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Color        string    `json:"color"`
	StartTime    string    `json:"startTime"` // 格式为 15:04
	EndTime      string    `json:"endTime"`
	MinEmployees int32     `json:"minEmployees"`
	MaxEmployees int32     `json:"maxEmployees"`
	CreatedAt    time.Time `json:"createdAt"`
	Version      int32     `json:"-"`
}
