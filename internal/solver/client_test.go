package solver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/sysu-ecnc-dev/roster-portal/backend/internal/domain"
)

func testRequest() *domain.GenerationRequest {
	return &domain.GenerationRequest{
		GroupID:              5,
		StartDate:            "2024-10-01",
		EndDate:              "2024-10-31",
		AllowedShiftTypeIDs:  []int64{1, 2},
		MaxConsecutiveShifts: 5,
		SchedulePattern:      domain.PatternCustom,
		MinDaysOffPerWeek:    2,
	}
}

func solverStub(t *testing.T, response map[string]any) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/generate", r.URL.Path)

		var request domain.GenerationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		assert.Equal(t, int64(5), request.GroupID)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	t.Cleanup(server.Close)

	return server
}

func TestClientGenerate(t *testing.T) {
	t.Run("success carries shifts", func(t *testing.T) {
		server := solverStub(t, map[string]any{
			"status": "Success",
			"shifts": []map[string]any{
				{
					"date":        "2024-10-07",
					"shiftTypeID": 1,
					"employees":   []map[string]any{{"employeeID": 1, "employeeName": "张三"}},
				},
			},
		})

		outcome, err := NewClient(server.URL).Generate(context.Background(), testRequest())
		require.NoError(t, err)

		success, ok := outcome.(Success)
		require.True(t, ok)
		require.Len(t, success.Shifts, 1)
		assert.Equal(t, "2024-10-07", success.Shifts[0].Date)
		require.Len(t, success.Shifts[0].Employees, 1)
		assert.Equal(t, int64(1), success.Shifts[0].Employees[0].EmployeeID)
	})

	t.Run("warning carries shifts and codes", func(t *testing.T) {
		server := solverStub(t, map[string]any{
			"status":   "Warning",
			"shifts":   []map[string]any{{"date": "2024-10-07", "shiftTypeID": 1}},
			"warnings": []string{"HighWorkloadDetected", "SomeDaysWithoutShifts"},
		})

		outcome, err := NewClient(server.URL).Generate(context.Background(), testRequest())
		require.NoError(t, err)

		warning, ok := outcome.(Warning)
		require.True(t, ok)
		assert.Len(t, warning.Shifts, 1)
		assert.Equal(t, []domain.GenerationWarningCode{
			domain.WarnHighWorkloadDetected,
			domain.WarnSomeDaysWithoutShifts,
		}, warning.Warnings)
	})

	t.Run("warning without codes is rejected", func(t *testing.T) {
		server := solverStub(t, map[string]any{
			"status": "Warning",
			"shifts": []map[string]any{{"date": "2024-10-07", "shiftTypeID": 1}},
		})

		_, err := NewClient(server.URL).Generate(context.Background(), testRequest())
		assert.Error(t, err)
	})

	t.Run("error carries only a code", func(t *testing.T) {
		server := solverStub(t, map[string]any{
			"status": "Error",
			"error":  "NoEmployeesInGroup",
		})

		outcome, err := NewClient(server.URL).Generate(context.Background(), testRequest())
		require.NoError(t, err)

		failure, ok := outcome.(Failure)
		require.True(t, ok)
		assert.Equal(t, domain.ErrNoEmployeesInGroup, failure.Code)
	})

	t.Run("error without code is rejected", func(t *testing.T) {
		server := solverStub(t, map[string]any{"status": "Error"})

		_, err := NewClient(server.URL).Generate(context.Background(), testRequest())
		assert.Error(t, err)
	})

	t.Run("unknown status is rejected", func(t *testing.T) {
		server := solverStub(t, map[string]any{"status": "Pending"})

		_, err := NewClient(server.URL).Generate(context.Background(), testRequest())
		assert.Error(t, err)
	})

	t.Run("non-200 response is rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		t.Cleanup(server.Close)

		_, err := NewClient(server.URL).Generate(context.Background(), testRequest())
		assert.Error(t, err)
	})
}

func TestClientExport(t *testing.T) {
	t.Run("posts the save payload and returns file bytes", func(t *testing.T) {
		content := []byte("fake xlsx bytes")
		var received domain.SavePayload
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/schedules/42/export", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
			_, _ = w.Write(content)
		}))
		t.Cleanup(server.Close)

		payload := domain.SavePayload{
			GroupID:   5,
			StartDate: "2024-10-01",
			EndDate:   "2024-10-31",
			Shifts: []domain.SavePayloadShift{
				{
					ShiftTypeID: 1,
					Date:        "2024-10-07",
					Employees:   []domain.SavePayloadEmployee{{ID: 1, Note: "交接库存"}},
				},
			},
		}

		data, err := NewClient(server.URL).Export(context.Background(), 42, payload)
		require.NoError(t, err)
		assert.Equal(t, content, data)
		assert.Equal(t, payload, received)
	})

	t.Run("non-200 response is rejected", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		t.Cleanup(server.Close)

		_, err := NewClient(server.URL).Export(context.Background(), 42, domain.SavePayload{})
		assert.Error(t, err)
	})
}
