package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"attendflow/internal/app/server"
	"attendflow/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func newTestApp(t *testing.T) *httptest.Server {
	t.Helper()
	cfg := config.Config{
		Addr:               ":0",
		Environment:        "test",
		RunSeed:            true,
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 1000,
		InsightTimeout:     5 * time.Second,
		MetricsEnabled:     true,
	}
	app, err := server.New(cfg)
	if err != nil {
		t.Fatalf("failed to build app: %v", err)
	}
	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, client *http.Client, method, url string, payload any) (int, envelope) {
	t.Helper()
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return resp.StatusCode, env
}

func TestCheckInCheckOutJourney(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()

	checkIn := map[string]any{
		"employeeId": "emp-1",
		"token":      "HQ-OFFICE-001",
		"latitude":   37.7749,
		"longitude":  -122.4194,
		"photoUrl":   "data:image/jpeg;base64,stub",
	}

	status, env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/check-in", checkIn)
	if status != http.StatusCreated || !env.Success {
		t.Fatalf("expected successful check-in, got status %d", status)
	}

	status, env = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/check-in", checkIn)
	if status != http.StatusConflict {
		t.Fatalf("expected 409 on second check-in, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "already_checked_in" {
		t.Fatalf("expected already_checked_in code, got %+v", env.Error)
	}

	status, env = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/check-out", map[string]any{"employeeId": "emp-1"})
	if status != http.StatusOK || !env.Success {
		t.Fatalf("expected successful check-out, got status %d", status)
	}
	var checkOut struct {
		CheckedOut bool `json:"checkedOut"`
	}
	if err := json.Unmarshal(env.Data, &checkOut); err != nil {
		t.Fatalf("decode check-out data: %v", err)
	}
	if !checkOut.CheckedOut {
		t.Fatal("expected checkedOut true")
	}

	status, env = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/check-out", map[string]any{"employeeId": "emp-1"})
	if status != http.StatusOK {
		t.Fatalf("expected 200 for no-op check-out, got %d", status)
	}
	if err := json.Unmarshal(env.Data, &checkOut); err != nil {
		t.Fatalf("decode check-out data: %v", err)
	}
	if checkOut.CheckedOut {
		t.Fatal("expected checkedOut false when no open record remains")
	}
}

func TestCheckInRejections(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()

	status, env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/check-in", map[string]any{
		"employeeId": "emp-1",
		"token":      "WRONG-TOKEN",
		"latitude":   37.7749,
		"longitude":  -122.4194,
	})
	if status != http.StatusUnprocessableEntity || env.Error == nil || env.Error.Code != "token_mismatch" {
		t.Fatalf("expected token_mismatch, got status %d error %+v", status, env.Error)
	}

	status, env = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/check-in", map[string]any{
		"employeeId": "emp-1",
		"token":      "HQ-OFFICE-001",
		"latitude":   38.9,
		"longitude":  -122.4194,
	})
	if status != http.StatusUnprocessableEntity || env.Error == nil || env.Error.Code != "outside_geofence" {
		t.Fatalf("expected outside_geofence, got status %d error %+v", status, env.Error)
	}

	status, env = doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/attendance/check-in", map[string]any{
		"employeeId": "emp-unknown",
		"token":      "HQ-OFFICE-001",
	})
	if status != http.StatusNotFound || env.Error == nil || env.Error.Code != "employee_not_found" {
		t.Fatalf("expected employee_not_found, got status %d error %+v", status, env.Error)
	}
}

func TestPayrollJourney(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()

	status, env := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/payroll", nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("expected payroll register, got status %d", status)
	}
	var reports []struct {
		EmployeeID string  `json:"employeeId"`
		NetPay     float64 `json:"netPay"`
	}
	if err := json.Unmarshal(env.Data, &reports); err != nil {
		t.Fatalf("decode reports: %v", err)
	}
	if len(reports) != 8 {
		t.Fatalf("expected 8 reports for the 8 active seed employees, got %d", len(reports))
	}
	for _, report := range reports {
		if report.EmployeeID == "emp-3" || report.EmployeeID == "emp-4" {
			t.Fatalf("inactive employee %s must not appear in payroll", report.EmployeeID)
		}
		if report.EmployeeID == "emp-1" && report.NetPay != 3865 {
			// 5 nine-hour shifts: 5 OT hours at 22 * 1.5 plus a 200 bonus.
			t.Fatalf("expected emp-1 net pay 3865, got %v", report.NetPay)
		}
	}

	status, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/payroll/emp-3", nil)
	if status != http.StatusNotFound || env.Error == nil || env.Error.Code != "payroll_not_applicable" {
		t.Fatalf("expected payroll_not_applicable for inactive employee, got status %d error %+v", status, env.Error)
	}

	resp, err := client.Get(ts.URL + "/api/v1/payroll/export")
	if err != nil {
		t.Fatalf("export request failed: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("expected text/csv, got %s", ct)
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected header plus 8 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "Name,Employee ID,Department,Status") {
		t.Fatalf("unexpected export header: %s", lines[0])
	}
	for _, line := range lines[1:] {
		if strings.Contains(line, "Mike Wilson") || strings.Contains(line, "Sarah Jenkins") {
			t.Fatalf("export contains inactive employee: %s", line)
		}
	}

	resp, err = client.Get(ts.URL + "/api/v1/payroll/emp-1/payslip")
	if err != nil {
		t.Fatalf("payslip request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK || resp.Header.Get("Content-Type") != "application/pdf" {
		t.Fatalf("expected PDF payslip, got status %d type %s", resp.StatusCode, resp.Header.Get("Content-Type"))
	}
}

func TestEmployeeImportAndToggle(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()

	csv := "Name,Employee ID,Role,Location,Department,Base Salary,Hourly Rate\n" +
		"Alice Green,EMP100,EMPLOYEE,loc-1,Engineering,3000,20\n" +
		"Too,Short\n"
	resp, err := client.Post(ts.URL+"/api/v1/employees/import", "text/csv", strings.NewReader(csv))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 on import, got %d", resp.StatusCode)
	}
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode import envelope: %v", err)
	}
	var imported struct {
		Imported  int `json:"imported"`
		Employees []struct {
			ID           string  `json:"id"`
			OTMultiplier float64 `json:"otMultiplier"`
		} `json:"employees"`
	}
	if err := json.Unmarshal(env.Data, &imported); err != nil {
		t.Fatalf("decode import data: %v", err)
	}
	if imported.Imported != 1 {
		t.Fatalf("expected exactly 1 imported employee, got %d", imported.Imported)
	}
	if imported.Employees[0].OTMultiplier != 1.5 {
		t.Fatalf("expected default otMultiplier 1.5, got %v", imported.Employees[0].OTMultiplier)
	}

	newID := imported.Employees[0].ID
	status, env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/employees/"+newID+"/toggle-status", nil)
	if status != http.StatusOK {
		t.Fatalf("expected toggle to succeed, got %d", status)
	}
	var toggled struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(env.Data, &toggled); err != nil {
		t.Fatalf("decode toggle data: %v", err)
	}
	if toggled.Status != "INACTIVE" {
		t.Fatalf("expected INACTIVE after toggle, got %s", toggled.Status)
	}
}

func TestEmployeeEnumCaseDoesNotAffectPayroll(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()

	status, env := doJSON(t, client, http.MethodPost, ts.URL+"/api/v1/employees", map[string]any{
		"name":       "Alice Green",
		"employeeId": "EMP100",
		"locationId": "loc-1",
		"role":       "employee",
		"status":     "active",
		"baseSalary": 3000,
		"hourlyRate": 20,
	})
	if status != http.StatusCreated || !env.Success {
		t.Fatalf("expected 201 for lower-case enums, got status %d", status)
	}
	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Role   string `json:"role"`
	}
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatalf("decode created employee: %v", err)
	}
	if created.Status != "ACTIVE" || created.Role != "EMPLOYEE" {
		t.Fatalf("expected canonical enums, got status %q role %q", created.Status, created.Role)
	}

	payrollHas := func() bool {
		_, env := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/payroll", nil)
		var reports []struct {
			EmployeeID string `json:"employeeId"`
		}
		if err := json.Unmarshal(env.Data, &reports); err != nil {
			t.Fatalf("decode reports: %v", err)
		}
		for _, report := range reports {
			if report.EmployeeID == created.ID {
				return true
			}
		}
		return false
	}
	if !payrollHas() {
		t.Fatal("expected lower-case active employee in the payroll register")
	}

	status, _ = doJSON(t, client, http.MethodPut, ts.URL+"/api/v1/employees/"+created.ID, map[string]any{
		"name":       "Alice Green",
		"employeeId": "EMP100",
		"locationId": "loc-1",
		"baseSalary": 3200,
		"hourlyRate": 20,
	})
	if status != http.StatusOK {
		t.Fatalf("expected update without status to succeed, got %d", status)
	}
	if !payrollHas() {
		t.Fatal("expected employee to stay payroll-eligible when the update omits status")
	}
}

func TestInsightsUnavailableWithoutKey(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()

	status, env := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/insights", nil)
	if status != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without an API key, got %d", status)
	}
	if env.Error == nil || env.Error.Code != "insights_unavailable" {
		t.Fatalf("expected insights_unavailable, got %+v", env.Error)
	}
}

func TestReportsAndMetrics(t *testing.T) {
	ts := newTestApp(t)
	client := ts.Client()

	status, env := doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/reports/locations", nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("expected location analytics, got status %d", status)
	}
	var analytics []struct {
		LocationID string `json:"locationId"`
		Total      int    `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &analytics); err != nil {
		t.Fatalf("decode analytics: %v", err)
	}
	if len(analytics) != 3 {
		t.Fatalf("expected 3 seeded locations, got %d", len(analytics))
	}

	status, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/reports/employees/emp-5", nil)
	if status != http.StatusOK {
		t.Fatalf("expected employee stats, got %d", status)
	}
	var stats struct {
		TotalShifts int `json:"totalShifts"`
		LateDays    int `json:"lateDays"`
	}
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if stats.TotalShifts != 5 || stats.LateDays != 5 {
		t.Fatalf("expected 5 late shifts for emp-5, got %+v", stats)
	}

	status, env = doJSON(t, client, http.MethodGet, ts.URL+"/api/v1/metrics", nil)
	if status != http.StatusOK || !env.Success {
		t.Fatalf("expected metrics snapshot, got status %d", status)
	}
}
