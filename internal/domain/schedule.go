package domain

import "time"

// Schedule 是某个组某个月份的完整排班表，首次打开时由后端惰性创建，初始为草稿状态
type Schedule struct {
	ID          int64     `json:"id"`
	GroupID     int64     `json:"groupID"`
	StartDate   string    `json:"startDate"` // 格式为 2006-01-02
	EndDate     string    `json:"endDate"`
	IsConfirmed bool      `json:"isConfirmed"`
	Autorenewal bool      `json:"autorenewal"`
	Shifts      []Shift   `json:"shifts"`
	CreatedAt   time.Time `json:"createdAt"`
	Version     int32     `json:"-"`
}

// SavePayload 是持久化接口所要求的保存格式
type SavePayload struct {
	GroupID     int64              `json:"groupId"`
	StartDate   string             `json:"startDate"`
	EndDate     string             `json:"endDate"`
	Autorenewal bool               `json:"autorenewal"`
	IsConfirmed bool               `json:"isConfirmed"`
	Shifts      []SavePayloadShift `json:"shifts"`
}

type SavePayloadShift struct {
	ShiftTypeID int64                 `json:"shiftTypeId"`
	Date        string                `json:"date"`
	Employees   []SavePayloadEmployee `json:"employees"`
}

type SavePayloadEmployee struct {
	ID   int64  `json:"id"`
	Note string `json:"note"`
}
