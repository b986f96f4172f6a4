package seed

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/repository"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/schedule"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/utils"
)

var groupNames = []string{"门店一组", "门店二组", "仓储组", "客服组", "夜班组"}

// SeedGroupsWithEmployees 插入随机组，每个组随机插入 n 个员工
func SeedGroupsWithEmployees(r *repository.Repository, n int, emailDomainName string) {
	for _, name := range groupNames {
		group := &domain.Group{Name: name}
		if err := r.CreateGroup(group); err != nil {
			slog.Error("插入组失败", "name", name, "error", err)
			continue
		}

		for i := 0; i < n; i++ {
			employee := utils.GenerateRandomEmployee(group.ID, emailDomainName)
			if err := r.CreateEmployee(employee); err != nil {
				slog.Error("插入员工失败", "name", employee.Name, "error", err)
			}
		}

		slog.Info("插入组成功", "name", name, "employees", n)
	}
}

var shiftTypes = []domain.ShiftType{
	{Name: "早班", Color: "#4CAF50", StartTime: "09:00", EndTime: "13:00", MinEmployees: 2, MaxEmployees: 4},
	{Name: "午班", Color: "#2196F3", StartTime: "13:00", EndTime: "18:00", MinEmployees: 2, MaxEmployees: 5},
	{Name: "晚班", Color: "#FF9800", StartTime: "18:00", EndTime: "22:00", MinEmployees: 1, MaxEmployees: 3},
	{Name: "夜班", Color: "#9C27B0", StartTime: "22:00", EndTime: "06:00", MinEmployees: 1, MaxEmployees: 2},
}

func SeedShiftTypes(r *repository.Repository) {
	for _, shiftType := range shiftTypes {
		st := shiftType
		if err := utils.ValidateShiftTypeTime(&st); err != nil {
			slog.Error("班种时间配置无效", "name", st.Name, "error", err)
			continue
		}
		if err := r.CreateShiftType(&st); err != nil {
			slog.Error("插入班种失败", "name", st.Name, "error", err)
			continue
		}
		slog.Info("插入班种成功", "name", st.Name)
	}
}

var holidays = []domain.Holiday{
	{Month: 1, Day: 1, Name: "元旦"},
	{Month: 5, Day: 1, Name: "劳动节"},
	{Month: 10, Day: 1, Name: "国庆节"},
	{Month: 10, Day: 2, Name: "国庆节"},
	{Month: 10, Day: 3, Name: "国庆节"},
}

// SeedCalendar 插入节假日和周一到周六的营业时间
func SeedCalendar(r *repository.Repository) {
	for _, holiday := range holidays {
		hd := holiday
		if err := r.CreateHoliday(&hd); err != nil {
			slog.Error("插入节假日失败", "name", hd.Name, "error", err)
			continue
		}
		slog.Info("插入节假日成功", "name", hd.Name, "month", hd.Month, "day", hd.Day)
	}

	for dayOfWeek := int32(1); dayOfWeek <= 6; dayOfWeek++ {
		workDay := &domain.WorkDay{DayOfWeek: dayOfWeek, StartTime: "09:00", EndTime: "22:00"}
		if err := r.CreateWorkDay(workDay); err != nil {
			slog.Error("插入工作日失败", "dayOfWeek", dayOfWeek, "error", err)
			continue
		}
		slog.Info("插入工作日成功", "dayOfWeek", dayOfWeek)
	}
}

// SeedTimeOffs 为指定组的员工插入 n 条随机的已批准请假记录
func SeedTimeOffs(r *repository.Repository, groupID int64, n int) {
	employees, err := r.GetEmployeesByGroupID(groupID)
	if err != nil {
		slog.Error("获取组内员工失败", "groupID", groupID, "error", err)
		return
	}
	if len(employees) == 0 {
		slog.Error(fmt.Sprintf("组 %d 内没有任何员工", groupID))
		return
	}

	for i := 0; i < n; i++ {
		employee := employees[rand.Intn(len(employees))]
		start := time.Now().AddDate(0, 0, rand.Intn(30))
		end := start.AddDate(0, 0, rand.Intn(5))

		timeOff := &domain.EmployeeTimeOff{
			EmployeeID: employee.ID,
			StartDate:  start.Format(schedule.DateLayout),
			EndDate:    end.Format(schedule.DateLayout),
			Type:       utils.GenerateRandomTimeOffType(),
		}

		if err := r.CreateEmployeeTimeOff(timeOff); err != nil {
			slog.Error("插入请假记录失败", "employee", employee.Name, "error", err)
			continue
		}
		slog.Info("插入请假记录成功", "employee", employee.Name, "start", timeOff.StartDate, "end", timeOff.EndDate)
	}
}
