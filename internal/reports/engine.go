package reports

import (
	"errors"
	"sort"
	"strings"

	"timesheet-backend/internal/models"

	"gorm.io/gorm"
)

var ErrEmployeeIDsRequired = errors.New("employee ids required")

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type EmployeePair struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
}

type EmployeeReportProject struct {
	ProjectID string               `json:"projectId"`
	JobName   string               `json:"jobName"`
	Code      string               `json:"code"`
	Status    models.ProjectStatus `json:"status"`
	Employees []EmployeePair       `json:"employees"`
}

type EmployeeReportRow struct {
	EmployeeID   string `json:"employeeId"`
	EmployeeName string `json:"employeeName"`
	ProjectCount int    `json:"projectCount"`
}

type EmployeeReport struct {
	Projects       []EmployeeReportProject `json:"projects"`
	TotalProjects  int                     `json:"totalProjects"`
	StatusCounts   []StatusCount           `json:"statusCounts"`
	TotalEmployees int                     `json:"totalEmployees"`
	Employees      []EmployeeReportRow     `json:"employees"`
}

// ByEmployees строит отчёт по набору сотрудников: какие проекты их
// затрагивают и сколько проектов приходится на каждого.
func ByEmployees(db *gorm.DB, employeeIDs []string) (*EmployeeReport, error) {
	if len(employeeIDs) == 0 {
		return nil, ErrEmployeeIDsRequired
	}

	requested := make(map[string]struct{}, len(employeeIDs))
	for _, id := range employeeIDs {
		requested[id] = struct{}{}
	}

	var projects []models.Project
	err := db.Preload("Assignments").
		Where("id IN (?)", db.Model(&models.Assignment{}).
			Select("project_id").
			Where("employee_id IN ?", employeeIDs)).
		Find(&projects).Error
	if err != nil {
		return nil, err
	}

	report := &EmployeeReport{
		Projects:     []EmployeeReportProject{},
		StatusCounts: []StatusCount{},
		Employees:    []EmployeeReportRow{},
	}

	statusCounts := map[string]int{}
	perEmployee := map[string]*EmployeeReportRow{}

	for _, p := range projects {
		row := EmployeeReportProject{
			ProjectID: p.ProjectID,
			JobName:   p.JobName,
			Code:      p.Code.Code,
			Status:    p.Status,
			Employees: []EmployeePair{},
		}

		seen := map[EmployeePair]struct{}{}
		for _, a := range p.Assignments {
			if _, ok := requested[a.EmployeeID]; !ok {
				continue
			}
			pair := EmployeePair{EmployeeID: a.EmployeeID, EmployeeName: a.EmployeeName}
			if _, dup := seen[pair]; dup {
				continue
			}
			seen[pair] = struct{}{}
			row.Employees = append(row.Employees, pair)

			emp, ok := perEmployee[a.EmployeeID]
			if !ok {
				emp = &EmployeeReportRow{EmployeeID: a.EmployeeID, EmployeeName: a.EmployeeName}
				perEmployee[a.EmployeeID] = emp
			}
			emp.ProjectCount++
		}

		sort.Slice(row.Employees, func(i, j int) bool {
			return row.Employees[i].EmployeeName < row.Employees[j].EmployeeName
		})

		report.Projects = append(report.Projects, row)
		statusCounts[string(p.Status)]++
	}

	sort.Slice(report.Projects, func(i, j int) bool {
		return report.Projects[i].JobName < report.Projects[j].JobName
	})
	report.TotalProjects = len(report.Projects)
	report.StatusCounts = sortedStatusCounts(statusCounts)

	for _, emp := range perEmployee {
		report.Employees = append(report.Employees, *emp)
	}
	sort.Slice(report.Employees, func(i, j int) bool {
		return report.Employees[i].EmployeeName < report.Employees[j].EmployeeName
	})
	report.TotalEmployees = len(report.Employees)

	return report, nil
}

type ProjectReportRow struct {
	ProjectID     string               `json:"projectId"`
	JobName       string               `json:"jobName"`
	Code          string               `json:"code"`
	Status        models.ProjectStatus `json:"status"`
	EmployeeCount int                  `json:"employeeCount"`
	ProjectCost   float64              `json:"projectCost"`
}

type ProjectReportSummary struct {
	Count     int     `json:"count"`
	TotalCost float64 `json:"totalCost"`
}

type ProjectReport struct {
	Projects []ProjectReportRow   `json:"projects"`
	Summary  ProjectReportSummary `json:"summary"`
}

// ByProjects строит отчёт по набору проектов; пустой набор означает все.
// Стоимость берётся из сохранённого totalCost, а при его отсутствии
// досчитывается из сумм назначений.
func ByProjects(db *gorm.DB, projectIDs []string) (*ProjectReport, error) {
	q := db.Preload("Assignments")
	if len(projectIDs) > 0 {
		q = q.Where("project_id IN ?", projectIDs)
	}

	var projects []models.Project
	if err := q.Find(&projects).Error; err != nil {
		return nil, err
	}

	report := &ProjectReport{Projects: []ProjectReportRow{}}
	for _, p := range projects {
		cost := p.TotalCost
		if cost <= 0 {
			for _, a := range p.Assignments {
				cost += a.Amount
			}
		}
		report.Projects = append(report.Projects, ProjectReportRow{
			ProjectID:     p.ProjectID,
			JobName:       p.JobName,
			Code:          p.Code.Code,
			Status:        p.Status,
			EmployeeCount: len(p.Assignments),
			ProjectCost:   cost,
		})
		report.Summary.TotalCost += cost
	}

	sort.Slice(report.Projects, func(i, j int) bool {
		return report.Projects[i].JobName < report.Projects[j].JobName
	})
	report.Summary.Count = len(report.Projects)

	return report, nil
}

func sortedStatusCounts(counts map[string]int) []StatusCount {
	out := make([]StatusCount, 0, len(counts))
	for status, count := range counts {
		out = append(out, StatusCount{Status: status, Count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Status < out[j].Status })
	return out
}

func lowerSet(values []string) map[string]struct{} {
	if len(values) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[strings.ToLower(v)] = struct{}{}
	}
	return set
}
