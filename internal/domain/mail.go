package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ScheduleConfirmedMailData struct {
	EmployeeName string `json:"employeeName"`
	GroupName    string `json:"groupName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}

type ScheduleUnconfirmedMailData struct {
	EmployeeName string `json:"employeeName"`
	GroupName    string `json:"groupName"`
	StartDate    string `json:"startDate"`
	EndDate      string `json:"endDate"`
}
