package reports

import (
	"sort"
	"strings"

	"timesheet-backend/internal/models"

	"gorm.io/gorm"
)

// TimeFilter — необязательные фильтры отчёта за период. Статусы
// сравниваются без учёта регистра; границы дат — строки YYYY-MM-DD,
// лексикографический порядок совпадает с хронологическим.
type TimeFilter struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	EmployeeIDs     []string `json:"employeeIds,omitempty"`
	ProjectIDs      []string `json:"projectIds,omitempty"`
	Statuses        []string `json:"statuses,omitempty"`
	ProjectStatuses []string `json:"projectStatuses,omitempty"`
}

type TimeSummary struct {
	TotalHours    float64 `json:"totalHours"`
	TotalEntries  int     `json:"totalEntries"`
	TotalCost     float64 `json:"totalCost"`
	EmployeeCount int     `json:"employeeCount"`
	ProjectCount  int     `json:"projectCount"`
}

type EmployeeTotal struct {
	EmployeeID   string  `json:"employeeId"`
	Hours        float64 `json:"hours"`
	Cost         float64 `json:"cost"`
	ProjectCount int     `json:"projectCount"`
}

type ProjectTotal struct {
	ProjectID     string  `json:"projectId"`
	JobName       string  `json:"jobName"`
	Status        string  `json:"status"`
	Hours         float64 `json:"hours"`
	Cost          float64 `json:"cost"`
	EmployeeCount int     `json:"employeeCount"`
}

type DayTotal struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
	Cost  float64 `json:"cost"`
}

type TimeReport struct {
	Summary             TimeSummary     `json:"summary"`
	ByEmployee          []EmployeeTotal `json:"byEmployee"`
	ByProject           []ProjectTotal  `json:"byProject"`
	PerDay              []DayTotal      `json:"perDay"`
	StatusCounts        []StatusCount   `json:"statusCounts"`
	ProjectStatusCounts []StatusCount   `json:"projectStatusCounts"`
}

// TimeWindow — отчёт по табелям за период: фильтрация, left join на
// проект, стоимость строки из ставки назначения, и пять независимых
// разрезов за один проход по выборке.
func TimeWindow(db *gorm.DB, f TimeFilter) (*TimeReport, error) {
	q := db.Model(&models.Timesheet{})
	if f.From != "" {
		q = q.Where("date >= ?", f.From)
	}
	if f.To != "" {
		q = q.Where("date <= ?", f.To)
	}
	if len(f.EmployeeIDs) > 0 {
		q = q.Where("employee_id IN ?", f.EmployeeIDs)
	}
	if len(f.ProjectIDs) > 0 {
		q = q.Where("project_id IN ?", f.ProjectIDs)
	}

	var timesheets []models.Timesheet
	if err := q.Find(&timesheets).Error; err != nil {
		return nil, err
	}

	statusFilter := lowerSet(f.Statuses)
	projectStatusFilter := lowerSet(f.ProjectStatuses)

	projects, err := loadProjects(db, timesheets)
	if err != nil {
		return nil, err
	}

	report := &TimeReport{
		ByEmployee:          []EmployeeTotal{},
		ByProject:           []ProjectTotal{},
		PerDay:              []DayTotal{},
		StatusCounts:        []StatusCount{},
		ProjectStatusCounts: []StatusCount{},
	}

	byEmployee := map[string]*EmployeeTotal{}
	employeeProjects := map[string]map[string]struct{}{}
	byProject := map[string]*ProjectTotal{}
	projectEmployees := map[string]map[string]struct{}{}
	perDay := map[string]*DayTotal{}
	statusCounts := map[string]int{}
	projectStatusCounts := map[string]int{}

	for _, ts := range timesheets {
		if statusFilter != nil {
			if _, ok := statusFilter[strings.ToLower(string(ts.Status))]; !ok {
				continue
			}
		}

		project := projects[ts.ProjectID] // left join: может быть nil
		if projectStatusFilter != nil {
			if project == nil {
				continue
			}
			if _, ok := projectStatusFilter[strings.ToLower(string(project.Status))]; !ok {
				continue
			}
		}

		rate := 0.0
		if project != nil {
			for _, a := range project.Assignments {
				if a.EmployeeID == ts.EmployeeID {
					rate = a.HourlyRate
					break
				}
			}
		}
		cost := ts.Hours * rate

		report.Summary.TotalHours += ts.Hours
		report.Summary.TotalEntries++
		report.Summary.TotalCost += cost

		emp, ok := byEmployee[ts.EmployeeID]
		if !ok {
			emp = &EmployeeTotal{EmployeeID: ts.EmployeeID}
			byEmployee[ts.EmployeeID] = emp
			employeeProjects[ts.EmployeeID] = map[string]struct{}{}
		}
		emp.Hours += ts.Hours
		emp.Cost += cost
		employeeProjects[ts.EmployeeID][ts.ProjectID] = struct{}{}

		proj, ok := byProject[ts.ProjectID]
		if !ok {
			proj = &ProjectTotal{ProjectID: ts.ProjectID, JobName: ts.ProjectName}
			if project != nil {
				proj.JobName = project.JobName
				proj.Status = string(project.Status)
			}
			byProject[ts.ProjectID] = proj
			projectEmployees[ts.ProjectID] = map[string]struct{}{}
		}
		proj.Hours += ts.Hours
		proj.Cost += cost
		projectEmployees[ts.ProjectID][ts.EmployeeID] = struct{}{}

		day, ok := perDay[ts.Date]
		if !ok {
			day = &DayTotal{Date: ts.Date}
			perDay[ts.Date] = day
		}
		day.Hours += ts.Hours
		day.Cost += cost

		statusCounts[string(ts.Status)]++
		if project != nil {
			projectStatusCounts[string(project.Status)]++
		}
	}

	for id, emp := range byEmployee {
		emp.ProjectCount = len(employeeProjects[id])
		report.ByEmployee = append(report.ByEmployee, *emp)
	}
	sort.Slice(report.ByEmployee, func(i, j int) bool {
		a, b := report.ByEmployee[i], report.ByEmployee[j]
		if a.Hours != b.Hours {
			return a.Hours > b.Hours
		}
		return a.EmployeeID < b.EmployeeID
	})

	for id, proj := range byProject {
		proj.EmployeeCount = len(projectEmployees[id])
		report.ByProject = append(report.ByProject, *proj)
	}
	sort.Slice(report.ByProject, func(i, j int) bool {
		a, b := report.ByProject[i], report.ByProject[j]
		if a.Hours != b.Hours {
			return a.Hours > b.Hours
		}
		return a.ProjectID < b.ProjectID
	})

	for _, day := range perDay {
		report.PerDay = append(report.PerDay, *day)
	}
	sort.Slice(report.PerDay, func(i, j int) bool {
		return report.PerDay[i].Date < report.PerDay[j].Date
	})

	report.Summary.EmployeeCount = len(byEmployee)
	report.Summary.ProjectCount = len(byProject)
	report.StatusCounts = sortedStatusCounts(statusCounts)
	report.ProjectStatusCounts = sortedStatusCounts(projectStatusCounts)

	return report, nil
}

func loadProjects(db *gorm.DB, timesheets []models.Timesheet) (map[string]*models.Project, error) {
	ids := map[string]struct{}{}
	for _, ts := range timesheets {
		ids[ts.ProjectID] = struct{}{}
	}
	if len(ids) == 0 {
		return map[string]*models.Project{}, nil
	}

	list := make([]string, 0, len(ids))
	for id := range ids {
		list = append(list, id)
	}

	var projects []models.Project
	err := db.Preload("Assignments").Where("project_id IN ?", list).Find(&projects).Error
	if err != nil {
		return nil, err
	}

	out := make(map[string]*models.Project, len(projects))
	for i := range projects {
		out[projects[i].ProjectID] = &projects[i]
	}
	return out, nil
}
