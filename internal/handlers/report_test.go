package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"timesheet-backend/internal/database"
	"timesheet-backend/internal/models"
	"timesheet-backend/internal/reports"

	"github.com/google/uuid"
)

func seedTimesheetRow(t *testing.T, project models.Project, employeeID, date string, hours float64, status models.TimesheetStatus) {
	ts := models.Timesheet{
		TimesheetID: uuid.NewString(),
		ProjectID:   project.ProjectID,
		ProjectName: project.JobName,
		ProjectCode: project.Code.Code,
		EmployeeID:  employeeID,
		Date:        date,
		Hours:       hours,
		Status:      status,
	}
	if err := database.DB.Create(&ts).Error; err != nil {
		t.Fatalf("failed to seed timesheet: %v", err)
	}
}

func TestReportByEmployee_RequiresIDs(t *testing.T) {
	srv := setupServer(t)
	_, principalToken := seedUser(t, "lead", models.RolePrincipal)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/reports/employee", principalToken, nil)
	wantStatus(t, resp, http.StatusBadRequest)
	var result struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &result)
	if result.Message != "employeeIds is required" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestReportByEmployee_Success(t *testing.T) {
	srv := setupServer(t)
	_, principalToken := seedUser(t, "lead", models.RolePrincipal)

	project := models.Project{
		ProjectID: uuid.NewString(),
		JobName:   "Site survey",
		Status:    models.ProjectOpen,
		Code:      models.ProjectCode{CustomerCode: "0001", Serial: 1, Suffix: "A", Code: "0001.0001A"},
		Assignments: []models.Assignment{
			{EmployeeID: "e1", EmployeeName: "Ivanov", HourlyRate: 50, Hours: 10, Amount: 500},
		},
	}
	if err := database.DB.Create(&project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	var result struct {
		Success bool                   `json:"success"`
		Report  reports.EmployeeReport `json:"report"`
	}
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/reports/employee?employeeIds=e1", principalToken, nil)
	wantStatus(t, resp, http.StatusOK)
	decodeBody(t, resp, &result)

	if !result.Success {
		t.Error("expected success flag")
	}
	if len(result.Report.Projects) != 1 || result.Report.Projects[0].JobName != "Site survey" {
		t.Errorf("unexpected report projects: %+v", result.Report.Projects)
	}
}

func TestReportByEmployee_EmployeeRoleForbidden(t *testing.T) {
	srv := setupServer(t)
	_, workerToken := seedUser(t, "worker", models.RoleEmployee)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/reports/employee?employeeIds=e1", workerToken, nil)
	defer resp.Body.Close()
	wantStatus(t, resp, http.StatusForbidden)
}

func TestMonthlyReport_RequiresMonth(t *testing.T) {
	srv := setupServer(t)
	_, adminToken := seedUser(t, "admin", models.RoleAdmin)

	resp := doJSON(t, http.MethodGet, srv.URL+"/api/reports/monthly", adminToken, nil)
	wantStatus(t, resp, http.StatusBadRequest)
	var result struct {
		Message string `json:"message"`
	}
	decodeBody(t, resp, &result)
	if result.Message != "month (YYYY-MM) is required" {
		t.Errorf("unexpected message: %q", result.Message)
	}
}

func TestMonthlyReport_WindowBounds(t *testing.T) {
	srv := setupServer(t)
	_, adminToken := seedUser(t, "admin", models.RoleAdmin)

	project := models.Project{
		ProjectID: uuid.NewString(),
		JobName:   "Site survey",
		Status:    models.ProjectOpen,
		Code:      models.ProjectCode{CustomerCode: "0001", Serial: 1, Suffix: "A", Code: "0001.0001A"},
	}
	if err := database.DB.Create(&project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	seedTimesheetRow(t, project, "e1", "2025-03-01", 8, models.TimesheetApproved)
	seedTimesheetRow(t, project, "e1", "2025-03-31", 4, models.TimesheetSubmitted)
	seedTimesheetRow(t, project, "e1", "2025-04-01", 6, models.TimesheetApproved)

	var result struct {
		Success bool               `json:"success"`
		Month   string             `json:"month"`
		Report  reports.TimeReport `json:"report"`
	}
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/reports/monthly?month=2025-03", adminToken, nil)
	wantStatus(t, resp, http.StatusOK)
	decodeBody(t, resp, &result)

	if result.Month != "2025-03" {
		t.Errorf("expected month echoed back, got %q", result.Month)
	}
	if result.Report.Summary.TotalEntries != 2 || result.Report.Summary.TotalHours != 12 {
		t.Errorf("april entry must be excluded: %+v", result.Report.Summary)
	}
}

func TestRangeReport_Filters(t *testing.T) {
	srv := setupServer(t)
	_, adminToken := seedUser(t, "admin", models.RoleAdmin)

	project := models.Project{
		ProjectID: uuid.NewString(),
		JobName:   "Site survey",
		Status:    models.ProjectOpen,
		Code:      models.ProjectCode{CustomerCode: "0001", Serial: 1, Suffix: "A", Code: "0001.0001A"},
	}
	if err := database.DB.Create(&project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}
	seedTimesheetRow(t, project, "e1", "2025-03-03", 8, models.TimesheetApproved)
	seedTimesheetRow(t, project, "e2", "2025-03-04", 4, models.TimesheetSubmitted)

	var result struct {
		Report reports.TimeReport `json:"report"`
	}
	resp := doJSON(t, http.MethodGet,
		srv.URL+"/api/reports/range?from=2025-03-01&to=2025-03-31&employeeIds=e1&statuses=approved",
		adminToken, nil)
	wantStatus(t, resp, http.StatusOK)
	decodeBody(t, resp, &result)

	if result.Report.Summary.TotalEntries != 1 || result.Report.Summary.TotalHours != 8 {
		t.Errorf("filters must narrow the window: %+v", result.Report.Summary)
	}
	if len(result.Report.ByEmployee) != 1 || result.Report.ByEmployee[0].EmployeeID != "e1" {
		t.Errorf("unexpected byEmployee rollup: %+v", result.Report.ByEmployee)
	}
}

func TestDashboard_Counts(t *testing.T) {
	srv := setupServer(t)
	_, workerToken := seedUser(t, "worker", models.RoleEmployee)

	seedEmployee(t, "Ivanov", "ivanov@example.com")
	project := models.Project{
		ProjectID: uuid.NewString(),
		JobName:   "Site survey",
		Status:    models.ProjectOpen,
		Code:      models.ProjectCode{CustomerCode: "0001", Serial: 1, Suffix: "A", Code: "0001.0001A"},
	}
	if err := database.DB.Create(&project).Error; err != nil {
		t.Fatalf("failed to seed project: %v", err)
	}

	today := time.Now().Format("2006-01-02")
	ts := models.Timesheet{
		TimesheetID: uuid.NewString(),
		ProjectID:   project.ProjectID,
		EmployeeID:  "e1",
		Date:        today,
		Hours:       8,
		WeekStart:   weekStartOf(today),
		Status:      models.TimesheetSubmitted,
	}
	if err := database.DB.Create(&ts).Error; err != nil {
		t.Fatalf("failed to seed timesheet: %v", err)
	}

	var result struct {
		Overview struct {
			TotalEmployees     int64 `json:"totalEmployees"`
			TotalProjects      int64 `json:"totalProjects"`
			TimesheetsThisWeek int64 `json:"timesheetsThisWeek"`
		} `json:"overview"`
		ByStatus struct {
			Projects struct {
				Open int64 `json:"open"`
			} `json:"projects"`
			Timesheets struct {
				Submitted int64 `json:"submitted"`
			} `json:"timesheets"`
		} `json:"byStatus"`
	}
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/dashboard", workerToken, nil)
	wantStatus(t, resp, http.StatusOK)
	decodeBody(t, resp, &result)

	if result.Overview.TotalEmployees != 1 || result.Overview.TotalProjects != 1 {
		t.Errorf("unexpected overview: %+v", result.Overview)
	}
	if result.Overview.TimesheetsThisWeek != 1 {
		t.Errorf("expected 1 timesheet this week, got %d", result.Overview.TimesheetsThisWeek)
	}
	if result.ByStatus.Projects.Open != 1 || result.ByStatus.Timesheets.Submitted != 1 {
		t.Errorf("unexpected byStatus: %+v", result.ByStatus)
	}
}

// weekStartOf дублирует расчёт понедельника для посева данных.
func weekStartOf(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format("2006-01-02")
}
