package handlers

import (
	"fmt"
	"log"
	"net/http"

	"timesheet-backend/internal/database"
	"timesheet-backend/internal/middleware"
	"timesheet-backend/internal/models"
	"timesheet-backend/internal/projectcode"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type assignmentRequest struct {
	EmployeeID   string  `json:"employeeId" binding:"required"`
	EmployeeName string  `json:"employeeName"`
	HourlyRate   float64 `json:"hourlyRate" binding:"min=0"`
	Hours        float64 `json:"hours" binding:"min=0"`
}

type createProjectRequest struct {
	JobName          string              `json:"jobName" binding:"required,min=1,max=255"`
	CustomerIDOrCode string              `json:"customerIdOrCode" binding:"required"`
	ManagerID        string              `json:"managerId"`
	Assignments      []assignmentRequest `json:"assignments"`
}

func buildAssignments(reqs []assignmentRequest) []models.Assignment {
	out := make([]models.Assignment, 0, len(reqs))
	for _, a := range reqs {
		out = append(out, models.Assignment{
			EmployeeID:   a.EmployeeID,
			EmployeeName: a.EmployeeName,
			HourlyRate:   a.HourlyRate,
			Hours:        a.Hours,
			Amount:       a.Hours * a.HourlyRate,
		})
	}
	return out
}

func CreateProject(c *gin.Context) {
	var req createProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "jobName and customerIdOrCode are required"})
		return
	}

	var customer models.Customer
	err := database.DB.
		Where("customer_id = ? OR code = ?", req.CustomerIDOrCode, req.CustomerIDOrCode).
		First(&customer).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	// порядковый номер — по числу проектов этого заказчика
	var existing int64
	if err := database.DB.Model(&models.Project{}).
		Where("code_customer_code = ?", customer.Code).
		Count(&existing).Error; err != nil {
		log.Printf("failed to count customer projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	serial := int(existing) + 1
	code := projectcode.Make(customer.Code, serial, projectcode.SuffixFor(serial))

	assignments := buildAssignments(req.Assignments)
	totalHours, totalCost, perHourCost := projectcode.Totals(assignments)

	claims := middleware.CurrentUser(c)
	project := models.Project{
		ProjectID:   uuid.NewString(),
		JobName:     req.JobName,
		Code:        code,
		ManagerID:   req.ManagerID,
		Assignments: assignments,
		TotalCost:   totalCost,
		TotalHours:  totalHours,
		PerHourCost: perHourCost,
		Status:      models.ProjectOpen,
		CreatedBy:   claims.UserID,
	}
	if err := database.DB.Create(&project).Error; err != nil {
		log.Printf("failed to create project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	database.AppendTracking("project", project.ProjectID, "create", claims.UserID, claims.UserName, map[string]any{
		"jobName":   req.JobName,
		"managerId": req.ManagerID,
	})

	c.JSON(http.StatusCreated, project)
}

type updateProjectRequest struct {
	JobName     *string               `json:"jobName" binding:"omitempty,min=1,max=255"`
	ManagerID   *string               `json:"managerId"`
	Status      *models.ProjectStatus `json:"status"`
	Assignments *[]assignmentRequest  `json:"assignments"`
}

// UpdateProject всегда продвигает порядковый номер кода и пересобирает
// суффикс, независимо от того, какие поля меняются. Суммы
// пересчитываются только при замене списка назначений.
func UpdateProject(c *gin.Context) {
	var project models.Project
	err := database.DB.Preload("Assignments").
		Where("project_id = ?", c.Param("id")).
		First(&project).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	var req updateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Status != nil && !models.ValidProjectStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	changed := map[string]any{}
	if req.JobName != nil {
		project.JobName = *req.JobName
		changed["jobName"] = *req.JobName
	}
	if req.ManagerID != nil {
		project.ManagerID = *req.ManagerID
		changed["managerId"] = *req.ManagerID
	}
	if req.Status != nil {
		project.Status = *req.Status
		changed["status"] = *req.Status
	}

	serial := project.Code.Serial + 1
	project.Code = projectcode.Make(project.Code.CustomerCode, serial, projectcode.SuffixFor(serial))

	if req.Assignments != nil {
		if err := database.DB.Where("project_id = ?", project.ID).
			Delete(&models.Assignment{}).Error; err != nil {
			log.Printf("failed to replace assignments: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		project.Assignments = buildAssignments(*req.Assignments)
		project.TotalHours, project.TotalCost, project.PerHourCost = projectcode.Totals(project.Assignments)
		changed["assignments"] = fmt.Sprintf("%d assignment(s)", len(project.Assignments))
	}

	claims := middleware.CurrentUser(c)
	project.UpdatedBy = claims.UserID

	if err := database.DB.Save(&project).Error; err != nil {
		log.Printf("failed to update project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	database.AppendTracking("project", project.ProjectID, "update", claims.UserID, claims.UserName, changed)

	c.JSON(http.StatusOK, gin.H{"message": "Project updated", "project": project})
}

func ListProjects(c *gin.Context) {
	var projects []models.Project
	if err := database.DB.Preload("Assignments").Order("job_name asc").Find(&projects).Error; err != nil {
		log.Printf("failed to list projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, projects)
}

func DeleteProject(c *gin.Context) {
	id := c.Param("id")

	var project models.Project
	if err := database.DB.Where("project_id = ?", id).First(&project).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	if err := database.DB.Select("Assignments").Delete(&project).Error; err != nil {
		log.Printf("failed to delete project: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Project %s deleted successfully", id)})
}
