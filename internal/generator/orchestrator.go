package generator

import (
	"context"
	"errors"
	"fmt"

	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/solver"
)

// SolverClient 抽象远程求解服务，方便在测试中替换
type SolverClient interface {
	Generate(ctx context.Context, request *domain.GenerationRequest) (solver.Outcome, error)
}

type Orchestrator struct {
	presets PresetStore
	solver  SolverClient
}

func NewOrchestrator(presets PresetStore, solverClient SolverClient) *Orchestrator {
	return &Orchestrator{
		presets: presets,
		solver:  solverClient,
	}
}

// DefaultPreset 用当前可用的全部班种合成默认预设
func DefaultPreset(shiftTypes []domain.ShiftType) *domain.GenerationPreset {
	ids := make([]int64, 0, len(shiftTypes))
	for _, shiftType := range shiftTypes {
		ids = append(ids, shiftType.ID)
	}

	return &domain.GenerationPreset{
		AllowedShiftTypeIDs:  ids,
		MaxConsecutiveShifts: 5,
		SchedulePattern:      domain.PatternCustom,
		MinDaysOffPerWeek:    2,
	}
}

// InvalidPresetError 表示预设未通过本地校验，此时不会发起任何远程请求
type InvalidPresetError struct {
	Reason string
}

func (e *InvalidPresetError) Error() string {
	return e.Reason
}

// ValidatePreset 在发起任何请求之前对预设做本地校验
func ValidatePreset(preset *domain.GenerationPreset) error {
	if len(preset.AllowedShiftTypeIDs) == 0 {
		return &InvalidPresetError{Reason: "预设必须至少包含一个班种"}
	}
	if preset.MaxConsecutiveShifts < 1 {
		return &InvalidPresetError{Reason: "最大连续上班天数必须不小于 1"}
	}
	if preset.MinDaysOffPerWeek < 0 || preset.MinDaysOffPerWeek > 7 {
		return &InvalidPresetError{Reason: "每周最少休息天数必须在 0 到 7 之间"}
	}
	if preset.SchedulePattern < domain.PatternCustom || preset.SchedulePattern > domain.PatternFourOnFourOff {
		return &InvalidPresetError{Reason: "未知的排班模式"}
	}
	return nil
}

// LoadPreset 读取该组保存的预设，没有保存过时返回合成的默认预设
func (o *Orchestrator) LoadPreset(ctx context.Context, groupID int64, shiftTypes []domain.ShiftType) (*domain.GenerationPreset, error) {
	preset, err := o.presets.Get(ctx, groupID)
	if err != nil {
		if errors.Is(err, ErrPresetNotFound) {
			return DefaultPreset(shiftTypes), nil
		}
		return nil, err
	}

	return preset, nil
}

// SavePreset 校验并保存预设，保存和生成相互独立
func (o *Orchestrator) SavePreset(ctx context.Context, groupID int64, preset *domain.GenerationPreset) error {
	if err := ValidatePreset(preset); err != nil {
		return err
	}

	return o.presets.Put(ctx, groupID, preset)
}

// RunResult 中 Schedule 为 nil 表示排班表没有被改动（求解服务返回了业务错误）
type RunResult struct {
	Schedule  *domain.Schedule
	Warnings  []domain.GenerationWarningCode
	ErrorCode domain.GenerationErrorCode
}

// Run 按预设发起一次生成并解释结果。
// Success 和 Warning 会整体替换班次并强制回到草稿状态；
// Error 不改动任何本地状态，原有班次仍然有效
func (o *Orchestrator) Run(ctx context.Context, sched *domain.Schedule, shiftTypes []domain.ShiftType) (*RunResult, error) {
	preset, err := o.LoadPreset(ctx, sched.GroupID, shiftTypes)
	if err != nil {
		return nil, err
	}
	if err := ValidatePreset(preset); err != nil {
		return nil, err
	}

	request := &domain.GenerationRequest{
		GroupID:              sched.GroupID,
		StartDate:            sched.StartDate,
		EndDate:              sched.EndDate,
		AllowedShiftTypeIDs:  preset.AllowedShiftTypeIDs,
		MaxConsecutiveShifts: preset.MaxConsecutiveShifts,
		SchedulePattern:      preset.SchedulePattern,
		MinDaysOffPerWeek:    preset.MinDaysOffPerWeek,
	}

	outcome, err := o.solver.Generate(ctx, request)
	if err != nil {
		return nil, err
	}

	switch result := outcome.(type) {
	case solver.Success:
		return &RunResult{Schedule: Apply(sched, result.Shifts)}, nil
	case solver.Warning:
		return &RunResult{Schedule: Apply(sched, result.Shifts), Warnings: result.Warnings}, nil
	case solver.Failure:
		return &RunResult{ErrorCode: result.Code}, nil
	default:
		return nil, fmt.Errorf("未知的生成结果类型 %T", outcome)
	}
}

// Apply 把生成出的班次落到排班表上：整体替换原有班次、丢弃没有任何排班的班次，
// 并强制回到草稿状态（生成结果必须经过人工复核才能确认）。传入的排班表不会被修改
func Apply(sched *domain.Schedule, shifts []domain.Shift) *domain.Schedule {
	applied := *sched
	applied.IsConfirmed = false
	applied.Shifts = make([]domain.Shift, 0, len(shifts))

	for _, shift := range shifts {
		if len(shift.Employees) == 0 {
			continue
		}
		applied.Shifts = append(applied.Shifts, shift)
	}

	return &applied
}
