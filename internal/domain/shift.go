package domain

// Assignment 归属于其所在的 Shift，员工被移除或班次被删除时一并销毁
type Assignment struct {
	EmployeeID   int64  `json:"employeeID"`
	EmployeeName string `json:"employeeName"`
	Note         string `json:"note"`
}

// Shift 表示某一天的某个班种，同一个排班表中 (date, shiftTypeID) 至多出现一次，
// 且同一个班次中每个员工至多出现一次
type Shift struct {
	ID             int64        `json:"id"`
	Date           string       `json:"date"` // 格式为 2006-01-02
	ShiftTypeID    int64        `json:"shiftTypeID"`
	ShiftTypeName  string       `json:"shiftTypeName"`
	Color          string       `json:"color"`
	StartTime      string       `json:"startTime"`
	EndTime        string       `json:"endTime"`
	EmployeeNeeded int32        `json:"employeeNeeded"`
	Employees      []Assignment `json:"employees"`
}
