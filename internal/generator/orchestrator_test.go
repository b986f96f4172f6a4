package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/solver"
)

type memoryPresetStore struct {
	presets map[int64]*domain.GenerationPreset
}

func newMemoryPresetStore() *memoryPresetStore {
	return &memoryPresetStore{presets: make(map[int64]*domain.GenerationPreset)}
}

func (s *memoryPresetStore) Get(_ context.Context, groupID int64) (*domain.GenerationPreset, error) {
	preset, ok := s.presets[groupID]
	if !ok {
		return nil, ErrPresetNotFound
	}
	return preset, nil
}

func (s *memoryPresetStore) Put(_ context.Context, groupID int64, preset *domain.GenerationPreset) error {
	s.presets[groupID] = preset
	return nil
}

type fakeSolver struct {
	outcome     solver.Outcome
	err         error
	lastRequest *domain.GenerationRequest
	calls       int
}

func (f *fakeSolver) Generate(_ context.Context, request *domain.GenerationRequest) (solver.Outcome, error) {
	f.calls++
	f.lastRequest = request
	return f.outcome, f.err
}

func testShiftTypes() []domain.ShiftType {
	return []domain.ShiftType{
		{ID: 1, Name: "早班", StartTime: "09:00", EndTime: "17:00"},
		{ID: 2, Name: "晚班", StartTime: "14:00", EndTime: "22:00"},
	}
}

func testSchedule() *domain.Schedule {
	return &domain.Schedule{
		ID: 7, GroupID: 5,
		StartDate: "2024-10-01", EndDate: "2024-10-31",
		IsConfirmed: true,
		Shifts: []domain.Shift{
			{ID: 11, Date: "2024-10-07", ShiftTypeID: 1, Employees: []domain.Assignment{{EmployeeID: 1, EmployeeName: "张三"}}},
		},
	}
}

func generatedShifts() []domain.Shift {
	return []domain.Shift{
		{Date: "2024-10-08", ShiftTypeID: 2, Employees: []domain.Assignment{{EmployeeID: 2, EmployeeName: "李四"}}},
		{Date: "2024-10-09", ShiftTypeID: 1, Employees: nil},
	}
}

func TestDefaultPreset(t *testing.T) {
	preset := DefaultPreset(testShiftTypes())

	assert.Equal(t, []int64{1, 2}, preset.AllowedShiftTypeIDs)
	assert.Equal(t, int32(5), preset.MaxConsecutiveShifts)
	assert.Equal(t, domain.PatternCustom, preset.SchedulePattern)
	assert.Equal(t, int32(2), preset.MinDaysOffPerWeek)
}

func TestValidatePreset(t *testing.T) {
	valid := func() *domain.GenerationPreset {
		return &domain.GenerationPreset{
			AllowedShiftTypeIDs:  []int64{1},
			MaxConsecutiveShifts: 5,
			SchedulePattern:      domain.PatternFiveOnTwoOff,
			MinDaysOffPerWeek:    2,
		}
	}

	assert.NoError(t, ValidatePreset(valid()))

	t.Run("rejects empty shift type list", func(t *testing.T) {
		preset := valid()
		preset.AllowedShiftTypeIDs = nil

		err := ValidatePreset(preset)
		var presetErr *InvalidPresetError
		require.ErrorAs(t, err, &presetErr)
	})

	t.Run("rejects out of range fields", func(t *testing.T) {
		preset := valid()
		preset.MaxConsecutiveShifts = 0
		assert.Error(t, ValidatePreset(preset))

		preset = valid()
		preset.MinDaysOffPerWeek = 8
		assert.Error(t, ValidatePreset(preset))

		preset = valid()
		preset.SchedulePattern = 99
		assert.Error(t, ValidatePreset(preset))
	})
}

func TestLoadPreset(t *testing.T) {
	t.Run("missing preset falls back to default", func(t *testing.T) {
		orchestrator := NewOrchestrator(newMemoryPresetStore(), &fakeSolver{})

		preset, err := orchestrator.LoadPreset(context.Background(), 5, testShiftTypes())
		require.NoError(t, err)
		assert.Equal(t, DefaultPreset(testShiftTypes()), preset)
	})

	t.Run("saved preset is returned as is", func(t *testing.T) {
		store := newMemoryPresetStore()
		saved := &domain.GenerationPreset{
			AllowedShiftTypeIDs:  []int64{2},
			MaxConsecutiveShifts: 3,
			SchedulePattern:      domain.PatternTwoOnTwoOff,
			MinDaysOffPerWeek:    1,
		}
		store.presets[5] = saved

		orchestrator := NewOrchestrator(store, &fakeSolver{})
		preset, err := orchestrator.LoadPreset(context.Background(), 5, testShiftTypes())
		require.NoError(t, err)
		assert.Equal(t, saved, preset)
	})
}

func TestSavePreset(t *testing.T) {
	t.Run("valid preset is stored", func(t *testing.T) {
		store := newMemoryPresetStore()
		orchestrator := NewOrchestrator(store, &fakeSolver{})

		preset := &domain.GenerationPreset{
			AllowedShiftTypeIDs:  []int64{1},
			MaxConsecutiveShifts: 4,
			SchedulePattern:      domain.PatternCustom,
			MinDaysOffPerWeek:    2,
		}
		require.NoError(t, orchestrator.SavePreset(context.Background(), 5, preset))
		assert.Equal(t, preset, store.presets[5])
	})

	t.Run("invalid preset is not stored", func(t *testing.T) {
		store := newMemoryPresetStore()
		orchestrator := NewOrchestrator(store, &fakeSolver{})

		err := orchestrator.SavePreset(context.Background(), 5, &domain.GenerationPreset{})
		var presetErr *InvalidPresetError
		require.ErrorAs(t, err, &presetErr)
		assert.Empty(t, store.presets)
	})
}

func TestRun(t *testing.T) {
	t.Run("success replaces shifts and forces draft", func(t *testing.T) {
		fake := &fakeSolver{outcome: solver.Success{Shifts: generatedShifts()}}
		orchestrator := NewOrchestrator(newMemoryPresetStore(), fake)

		sched := testSchedule()
		result, err := orchestrator.Run(context.Background(), sched, testShiftTypes())
		require.NoError(t, err)
		require.NotNil(t, result.Schedule)

		assert.False(t, result.Schedule.IsConfirmed)
		require.Len(t, result.Schedule.Shifts, 1)
		assert.Equal(t, "2024-10-08", result.Schedule.Shifts[0].Date)
		assert.Empty(t, result.Warnings)
		assert.Empty(t, result.ErrorCode)
	})

	t.Run("request reflects the saved preset", func(t *testing.T) {
		store := newMemoryPresetStore()
		store.presets[5] = &domain.GenerationPreset{
			AllowedShiftTypeIDs:  []int64{2},
			MaxConsecutiveShifts: 3,
			SchedulePattern:      domain.PatternTwoOnTwoOff,
			MinDaysOffPerWeek:    1,
		}

		fake := &fakeSolver{outcome: solver.Success{}}
		orchestrator := NewOrchestrator(store, fake)

		_, err := orchestrator.Run(context.Background(), testSchedule(), testShiftTypes())
		require.NoError(t, err)

		require.NotNil(t, fake.lastRequest)
		assert.Equal(t, int64(5), fake.lastRequest.GroupID)
		assert.Equal(t, "2024-10-01", fake.lastRequest.StartDate)
		assert.Equal(t, "2024-10-31", fake.lastRequest.EndDate)
		assert.Equal(t, []int64{2}, fake.lastRequest.AllowedShiftTypeIDs)
		assert.Equal(t, int32(3), fake.lastRequest.MaxConsecutiveShifts)
		assert.Equal(t, domain.PatternTwoOnTwoOff, fake.lastRequest.SchedulePattern)
	})

	t.Run("warning keeps shifts and surfaces codes", func(t *testing.T) {
		fake := &fakeSolver{outcome: solver.Warning{
			Shifts:   generatedShifts(),
			Warnings: []domain.GenerationWarningCode{domain.WarnHighWorkloadDetected},
		}}
		orchestrator := NewOrchestrator(newMemoryPresetStore(), fake)

		result, err := orchestrator.Run(context.Background(), testSchedule(), testShiftTypes())
		require.NoError(t, err)
		require.NotNil(t, result.Schedule)
		assert.Len(t, result.Schedule.Shifts, 1)
		assert.Equal(t, []domain.GenerationWarningCode{domain.WarnHighWorkloadDetected}, result.Warnings)
	})

	t.Run("error leaves the schedule untouched", func(t *testing.T) {
		fake := &fakeSolver{outcome: solver.Failure{Code: domain.ErrNoEmployeesInGroup}}
		orchestrator := NewOrchestrator(newMemoryPresetStore(), fake)

		sched := testSchedule()
		result, err := orchestrator.Run(context.Background(), sched, testShiftTypes())
		require.NoError(t, err)

		assert.Nil(t, result.Schedule)
		assert.Equal(t, domain.ErrNoEmployeesInGroup, result.ErrorCode)

		// 原排班表不受任何影响
		assert.True(t, sched.IsConfirmed)
		require.Len(t, sched.Shifts, 1)
		assert.Equal(t, int64(11), sched.Shifts[0].ID)
	})

	t.Run("invalid stored preset fails before calling the solver", func(t *testing.T) {
		store := newMemoryPresetStore()
		store.presets[5] = &domain.GenerationPreset{}

		fake := &fakeSolver{outcome: solver.Success{}}
		orchestrator := NewOrchestrator(store, fake)

		_, err := orchestrator.Run(context.Background(), testSchedule(), testShiftTypes())
		var presetErr *InvalidPresetError
		require.ErrorAs(t, err, &presetErr)
		assert.Zero(t, fake.calls)
	})

	t.Run("solver transport error is returned", func(t *testing.T) {
		fake := &fakeSolver{err: errors.New("连接被拒绝")}
		orchestrator := NewOrchestrator(newMemoryPresetStore(), fake)

		result, err := orchestrator.Run(context.Background(), testSchedule(), testShiftTypes())
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestApply(t *testing.T) {
	t.Run("drops shifts without assignments", func(t *testing.T) {
		sched := testSchedule()
		applied := Apply(sched, generatedShifts())

		require.Len(t, applied.Shifts, 1)
		assert.Equal(t, "2024-10-08", applied.Shifts[0].Date)
	})

	t.Run("forces draft and keeps the original intact", func(t *testing.T) {
		sched := testSchedule()
		applied := Apply(sched, generatedShifts())

		assert.False(t, applied.IsConfirmed)
		assert.True(t, sched.IsConfirmed)
		assert.Len(t, sched.Shifts, 1)
	})
}
