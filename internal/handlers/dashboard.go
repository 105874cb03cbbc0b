package handlers

import (
	"log"
	"net/http"
	"time"

	"timesheet-backend/internal/database"
	"timesheet-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func Dashboard(c *gin.Context) {
	var totalEmployees, totalProjects, timesheetsThisWeek int64

	db := database.DB
	if err := db.Model(&models.Employee{}).Count(&totalEmployees).Error; err != nil {
		log.Printf("failed to build dashboard: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	db.Model(&models.Project{}).Count(&totalProjects)

	monday := weekStart(time.Now().Format("2006-01-02"))
	db.Model(&models.Timesheet{}).Where("week_start = ?", monday).Count(&timesheetsThisWeek)

	projectCount := func(s models.ProjectStatus) int64 {
		var n int64
		db.Model(&models.Project{}).Where("status = ?", s).Count(&n)
		return n
	}
	timesheetCount := func(s models.TimesheetStatus) int64 {
		var n int64
		db.Model(&models.Timesheet{}).Where("status = ?", s).Count(&n)
		return n
	}

	c.JSON(http.StatusOK, gin.H{
		"overview": gin.H{
			"totalEmployees":     totalEmployees,
			"totalProjects":      totalProjects,
			"timesheetsThisWeek": timesheetsThisWeek,
		},
		"byStatus": gin.H{
			"projects": gin.H{
				"open":       projectCount(models.ProjectOpen),
				"inProgress": projectCount(models.ProjectInProgress),
				"done":       projectCount(models.ProjectCompleted),
			},
			"timesheets": gin.H{
				"submitted": timesheetCount(models.TimesheetSubmitted),
				"approved":  timesheetCount(models.TimesheetApproved),
				"rejected":  timesheetCount(models.TimesheetRejected),
			},
		},
	})
}
