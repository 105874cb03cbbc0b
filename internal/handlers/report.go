package handlers

import (
	"log"
	"net/http"
	"strings"

	"timesheet-backend/internal/database"
	"timesheet-backend/internal/reports"

	"github.com/gin-gonic/gin"
)

// idList разбирает параметр запроса вида "a,b,c" в список идентификаторов.
func idList(c *gin.Context, name string) []string {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func ReportByEmployee(c *gin.Context) {
	employeeIDs := idList(c, "employeeIds")

	report, err := reports.ByEmployees(database.DB, employeeIDs)
	if err == reports.ErrEmployeeIDsRequired {
		c.JSON(http.StatusBadRequest, gin.H{"message": "employeeIds is required"})
		return
	}
	if err != nil {
		log.Printf("employee report failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"filters": gin.H{"employeeIds": employeeIDs},
		"report":  report,
	})
}

func ReportByProject(c *gin.Context) {
	projectIDs := idList(c, "projectIds")

	report, err := reports.ByProjects(database.DB, projectIDs)
	if err != nil {
		log.Printf("project report failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"filters": gin.H{"projectIds": projectIDs},
		"report":  report,
	})
}

func timeFilter(c *gin.Context) reports.TimeFilter {
	return reports.TimeFilter{
		EmployeeIDs:     idList(c, "employeeIds"),
		ProjectIDs:      idList(c, "projectIds"),
		Statuses:        idList(c, "statuses"),
		ProjectStatuses: idList(c, "projectStatuses"),
	}
}

// MonthlyReport — отчёт за календарный месяц (month=YYYY-MM).
func MonthlyReport(c *gin.Context) {
	month := strings.TrimSpace(c.Query("month"))
	if month == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "month (YYYY-MM) is required"})
		return
	}

	f := timeFilter(c)
	// даты фиксированной ширины: границы месяца задаются лексикографически
	f.From = month + "-01"
	f.To = month + "-31"

	report, err := reports.TimeWindow(database.DB, f)
	if err != nil {
		log.Printf("monthly report failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"month":   month,
		"filters": f,
		"report":  report,
	})
}

// RangeReport — отчёт за произвольный период; from/to необязательны,
// отсутствие границы означает открытый конец.
func RangeReport(c *gin.Context) {
	f := timeFilter(c)
	f.From = strings.TrimSpace(c.Query("from"))
	f.To = strings.TrimSpace(c.Query("to"))

	report, err := reports.TimeWindow(database.DB, f)
	if err != nil {
		log.Printf("range report failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"filters": f,
		"report":  report,
	})
}
