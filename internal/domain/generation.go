package domain

// SchedulePattern 是远程求解服务约定的排班模式枚举
type SchedulePattern int32

const (
	PatternCustom          SchedulePattern = 0
	PatternTwoOnTwoOff     SchedulePattern = 1
	PatternFiveOnTwoOff    SchedulePattern = 2
	PatternThreeOnThreeOff SchedulePattern = 3
	PatternFourOnFourOff   SchedulePattern = 4
)

// GenerationPreset 按组保存的生成约束，和具体月份的排班表无关
type GenerationPreset struct {
	AllowedShiftTypeIDs  []int64         `json:"allowedShiftTypeIds"`
	MaxConsecutiveShifts int32           `json:"maxConsecutiveShifts"`
	SchedulePattern      SchedulePattern `json:"schedulePattern"`
	MinDaysOffPerWeek    int32           `json:"minDaysOffPerWeek"`
}

// GenerationRequest 的字段大小写必须和求解服务的接口保持一致
type GenerationRequest struct {
	GroupID              int64           `json:"groupId"`
	StartDate            string          `json:"startDate"`
	EndDate              string          `json:"endDate"`
	AllowedShiftTypeIDs  []int64         `json:"AllowedShiftTypeIds"`
	MaxConsecutiveShifts int32           `json:"MaxConsecutiveShifts"`
	SchedulePattern      SchedulePattern `json:"SchedulePattern"`
	MinDaysOffPerWeek    int32           `json:"MinDaysOffPerWeek"`
}

type GenerationStatus string

const (
	GenerationSuccess GenerationStatus = "Success"
	GenerationWarning GenerationStatus = "Warning"
	GenerationFailure GenerationStatus = "Error"
)

// GenerationErrorCode 表示终止性的业务错误，此时求解服务不会产生任何班次
type GenerationErrorCode string

const (
	ErrGroupNotFound              GenerationErrorCode = "GroupNotFound"
	ErrOrganizationNotFound       GenerationErrorCode = "OrganizationNotFound"
	ErrNoEmployeesInGroup         GenerationErrorCode = "NoEmployeesInGroup"
	ErrNoShiftTypes               GenerationErrorCode = "NoShiftTypes"
	ErrSelectedShiftTypesNotFound GenerationErrorCode = "SelectedShiftTypesNotFound"
	ErrNoWorkDaysConfigured       GenerationErrorCode = "NoWorkDaysConfigured"
	ErrInvalidDateRange           GenerationErrorCode = "InvalidDateRange"
	ErrAllDaysAreHolidays         GenerationErrorCode = "AllDaysAreHolidays"
	ErrAllDaysAreNonWorking       GenerationErrorCode = "AllDaysAreNonWorking"
	ErrShiftTypesDontFitSchedule  GenerationErrorCode = "ShiftTypesDontFitSchedule"
)

// GenerationWarningCode 表示非终止性的提醒，班次仍然会产生，但必须逐条展示给用户
type GenerationWarningCode string

const (
	WarnNoSuitableShiftTypes                      GenerationWarningCode = "NoSuitableShiftTypes"
	WarnNotEnoughEmployeesForMinimum              GenerationWarningCode = "NotEnoughEmployeesForMinimum"
	WarnEmployeesAssignedWithConstraintViolations GenerationWarningCode = "EmployeesAssignedWithConstraintViolations"
	WarnAllEmployeesOnTimeOff                     GenerationWarningCode = "AllEmployeesOnTimeOff"
	WarnHighWorkloadDetected                      GenerationWarningCode = "HighWorkloadDetected"
	WarnSomeDaysWithoutShifts                     GenerationWarningCode = "SomeDaysWithoutShifts"
)

var warningMessages = map[GenerationWarningCode]string{
	WarnNoSuitableShiftTypes:                      "部分日期没有合适的班种",
	WarnNotEnoughEmployeesForMinimum:              "员工人数不足以满足班种的最低人数要求",
	WarnEmployeesAssignedWithConstraintViolations: "部分员工的排班违反了约束条件",
	WarnAllEmployeesOnTimeOff:                     "部分日期所有员工都在休假",
	WarnHighWorkloadDetected:                      "检测到部分员工工作负荷过高",
	WarnSomeDaysWithoutShifts:                     "部分日期没有安排任何班次",
}

var errorMessages = map[GenerationErrorCode]string{
	ErrGroupNotFound:              "组不存在",
	ErrOrganizationNotFound:       "机构不存在",
	ErrNoEmployeesInGroup:         "组内没有任何员工",
	ErrNoShiftTypes:               "机构没有配置任何班种",
	ErrSelectedShiftTypesNotFound: "所选的班种不存在",
	ErrNoWorkDaysConfigured:       "机构没有配置工作日",
	ErrInvalidDateRange:           "日期范围无效",
	ErrAllDaysAreHolidays:         "日期范围内全部是节假日",
	ErrAllDaysAreNonWorking:       "日期范围内全部是休息日",
	ErrShiftTypesDontFitSchedule:  "所选班种无法满足排班模式",
}

// Message 返回警告码对应的展示文案，未知的警告码原样返回
func (c GenerationWarningCode) Message() string {
	if msg, ok := warningMessages[c]; ok {
		return msg
	}
	return string(c)
}

// Message 返回错误码对应的展示文案，未知的错误码原样返回
func (c GenerationErrorCode) Message() string {
	if msg, ok := errorMessages[c]; ok {
		return msg
	}
	return string(c)
}
