package domain

import "time"

type Employee struct {
	ID        int64     `json:"id"`
	GroupID   int64     `json:"groupID"`
	Name      string    `json:"name"`
	Position  string    `json:"position"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	Version   int32     `json:"-"`
}

type TimeOffType string

const (
	TimeOffVacation    TimeOffType = "Vacation"
	TimeOffSickLeave   TimeOffType = "SickLeave"
	TimeOffPersonalDay TimeOffType = "PersonalDay"
)

// EmployeeTimeOff 仅包含已批准的请假，日期区间为闭区间
type EmployeeTimeOff struct {
	ID         int64       `json:"id"`
	EmployeeID int64       `json:"employeeID"`
	StartDate  string      `json:"startDate"` // 格式为 2006-01-02
	EndDate    string      `json:"endDate"`
	Type       TimeOffType `json:"type"`
	CreatedAt  time.Time   `json:"createdAt"`
	Version    int32       `json:"-"`
}
