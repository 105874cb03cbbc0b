package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"timesheet-backend/internal/database"
	"timesheet-backend/internal/middleware"
	"timesheet-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createTimesheetRequest struct {
	ProjectID string  `json:"projectId" binding:"required"`
	Date      string  `json:"date" binding:"required,datetime=2006-01-02"`
	Hours     float64 `json:"hours" binding:"min=0"`
}

// weekStart возвращает понедельник недели, в которую попадает дата.
func weekStart(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset).Format("2006-01-02")
}

func CreateTimesheet(c *gin.Context) {
	var req createTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "projectId and date (YYYY-MM-DD) are required"})
		return
	}

	var project models.Project
	if err := database.DB.Where("project_id = ?", req.ProjectID).First(&project).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Project closed, cannot add timesheet"})
		return
	}
	if project.Status == models.ProjectCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Project closed, cannot add timesheet"})
		return
	}

	if req.Hours > 24 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot log more than 24 hours/day"})
		return
	}

	claims := middleware.CurrentUser(c)
	ts := models.Timesheet{
		TimesheetID: uuid.NewString(),
		ProjectID:   req.ProjectID,
		ProjectName: project.JobName,
		ProjectCode: project.Code.Code,
		EmployeeID:  claims.UserID,
		Date:        req.Date,
		Hours:       req.Hours,
		WeekStart:   weekStart(req.Date),
		Status:      models.TimesheetSubmitted,
		CreatedBy:   claims.UserID,
	}
	if err := database.DB.Create(&ts).Error; err != nil {
		log.Printf("failed to create timesheet: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, ts)
}

type updateTimesheetRequest struct {
	Date   *string                 `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Hours  *float64                `json:"hours" binding:"omitempty,min=0"`
	Status *models.TimesheetStatus `json:"status"`
}

func UpdateTimesheet(c *gin.Context) {
	var ts models.Timesheet
	if err := database.DB.Where("timesheet_id = ?", c.Param("id")).First(&ts).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}

	claims := middleware.CurrentUser(c)
	isOwner := ts.EmployeeID == claims.UserID
	isAdmin := claims.Role == models.RoleAdmin
	isPrincipal := claims.Role == models.RolePrincipal
	if !isOwner && !isAdmin && !isPrincipal {
		c.JSON(http.StatusForbidden, gin.H{"message": "Not allowed"})
		return
	}

	// утверждённые записи правит только админ
	if ts.Status == models.TimesheetApproved && !isAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Approved entries cannot be edited"})
		return
	}

	var req updateTimesheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if req.Status != nil && !models.ValidTimesheetStatus(*req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}
	if req.Hours != nil && *req.Hours > 24 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot log more than 24 hours/day"})
		return
	}

	if req.Date != nil {
		ts.Date = *req.Date
		ts.WeekStart = weekStart(*req.Date)
	}
	if req.Hours != nil {
		ts.Hours = *req.Hours
	}
	if req.Status != nil {
		ts.Status = *req.Status
	}
	ts.UpdatedBy = claims.UserID

	if err := database.DB.Save(&ts).Error; err != nil {
		log.Printf("failed to update timesheet: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, ts)
}

type approveRequest struct {
	Status models.TimesheetStatus `json:"status"`
}

func ApproveTimesheet(c *gin.Context) {
	var ts models.Timesheet
	if err := database.DB.Where("timesheet_id = ?", c.Param("id")).First(&ts).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}

	var req approveRequest
	_ = c.ShouldBindJSON(&req)
	status := req.Status
	if status == "" {
		status = models.TimesheetApproved
	}
	if !models.ValidTimesheetStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}

	claims := middleware.CurrentUser(c)
	ts.Status = status
	ts.UpdatedBy = claims.UserID
	if err := database.DB.Save(&ts).Error; err != nil {
		log.Printf("failed to approve timesheet: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	// уведомляем владельца записи о смене статуса
	var owner models.User
	if err := database.DB.Where("user_id = ?", ts.EmployeeID).First(&owner).Error; err == nil {
		var employee models.Employee
		to := cfg.AdminEmail
		if owner.EmployeeID != "" {
			if err := database.DB.Where("employee_id = ?", owner.EmployeeID).First(&employee).Error; err == nil && employee.PersonalEmail != "" {
				to = employee.PersonalEmail
			}
		}
		mail.Notify(
			to,
			fmt.Sprintf("Timesheet %s", status),
			fmt.Sprintf("Your timesheet for %s (%s) is now %s.", ts.Date, ts.ProjectName, status),
			"timesheet", models.ActionStatusChange, claims.UserID,
		)
	}

	c.JSON(http.StatusOK, ts)
}

// ListTimesheets отдаёт сотруднику только его записи,
// админу и руководителю — все.
func ListTimesheets(c *gin.Context) {
	claims := middleware.CurrentUser(c)

	q := database.DB.Order("date desc")
	if claims.Role == models.RoleEmployee {
		q = q.Where("employee_id = ?", claims.UserID)
	}

	var list []models.Timesheet
	if err := q.Find(&list).Error; err != nil {
		log.Printf("failed to list timesheets: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func DeleteTimesheet(c *gin.Context) {
	id := c.Param("id")

	result := database.DB.Where("timesheet_id = ?", id).Delete(&models.Timesheet{})
	if result.Error != nil {
		log.Printf("failed to delete timesheet: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Timesheet not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Timesheet deleted",
		"timesheetId": id,
	})
}
