package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/attendance-insights-go/internal/domain/leave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T, path, body string) *Client {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != path {
			http.NotFound(w, r)
			return
		}
		assert.Equal(t, "secret-key", r.Header.Get("X-Api-Key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return NewClient(server.URL, "secret-key", 5*time.Second)
}

func TestDirectoryClient_NormalizesFieldVariants(t *testing.T) {
	t.Parallel()

	// Mixed generations: numeric ids, fname/lname, dept, wrapped envelope.
	body := `{"data": [
		{"id": 7, "fname": "Ana", "lname": "Cruz", "dept": "HR", "status": "active"},
		{"employee_id": "E-12", "first_name": "Ben", "last_name": "Diaz", "department": "Engineering", "employment_status": "inactive"}
	]}`
	client := NewDirectoryClient(testServer(t, "/employees", body))

	employees, err := client.ListEmployees(context.Background())

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "7", employees[0].ID)
	assert.Equal(t, "Ana", employees[0].FirstName)
	assert.Equal(t, "Cruz", employees[0].LastName)
	assert.Equal(t, "HR", employees[0].Department)
	assert.True(t, employees[0].IsActive())
	assert.Equal(t, "E-12", employees[1].ID)
	assert.False(t, employees[1].IsActive())
}

func TestAttendanceClient_NormalizesDateVariants(t *testing.T) {
	t.Parallel()

	// Bare array, three date field generations, one full timestamp.
	body := `[
		{"employee_id": 1, "date": "2024-03-11", "status": "late", "time_in": "09:12"},
		{"employee_id": 2, "attendance_date": "2024-03-11 08:00:00", "status": "present", "clock_in": "08:00", "clock_out": "17:01"},
		{"employee_id": 3, "work_date": "2024-03-11", "status": "undertime"},
		{"employee_id": 4, "date": "not-a-date", "status": "present"}
	]`
	client := NewAttendanceClient(testServer(t, "/attendance", body))

	records, err := client.ListByDate(context.Background(), time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, records, 4)
	want := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, want, records[0].Date)
	assert.Equal(t, "09:12", records[0].TimeIn)
	assert.Equal(t, want, records[1].Date)
	assert.Equal(t, "08:00", records[1].TimeIn)
	assert.Equal(t, "17:01", records[1].TimeOut)
	assert.Equal(t, want, records[2].Date)
	// Unparseable dates come through as zero; the classifier skips them.
	assert.True(t, records[3].Date.IsZero())
}

func TestLeaveClient_NormalizesAndDefaultsStatus(t *testing.T) {
	t.Parallel()

	body := `[
		{"employee_id": "1", "start_date": "2024-03-11", "end_date": "2024-03-13", "status": "approved", "reason": "vacation"},
		{"employee_id": "2", "date_from": "2024-03-12", "date_to": "2024-03-12"}
	]`
	client := NewLeaveClient(testServer(t, "/leaves", body))

	intervals, err := client.ListApproved(
		context.Background(),
		time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 13, 0, 0, 0, 0, time.UTC),
	)

	require.NoError(t, err)
	require.Len(t, intervals, 2)
	assert.Equal(t, leave.ApprovalStatusApproved, intervals[0].Status)
	assert.Equal(t, "vacation", intervals[0].Reason)
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), intervals[1].StartDate)
	// Missing status on a pre-filtered endpoint counts as approved.
	assert.Equal(t, leave.ApprovalStatusApproved, intervals[1].Status)
}

func TestClient_UpstreamErrorStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)
	client := NewDirectoryClient(NewClient(server.URL, "", 5*time.Second))

	_, err := client.ListEmployees(context.Background())

	require.Error(t, err)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestClient_MalformedJSON(t *testing.T) {
	t.Parallel()

	client := NewDirectoryClient(testServer(t, "/employees", `{"data": "nope"`))

	_, err := client.ListEmployees(context.Background())

	assert.Error(t, err)
}
