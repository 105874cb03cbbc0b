package models

import "time"

type TimesheetStatus string

const (
	TimesheetOpen       TimesheetStatus = "Open"
	TimesheetInProgress TimesheetStatus = "InProgress"
	TimesheetSubmitted  TimesheetStatus = "Submitted"
	TimesheetApproved   TimesheetStatus = "Approved"
	TimesheetRejected   TimesheetStatus = "Rejected"
)

func ValidTimesheetStatus(s TimesheetStatus) bool {
	switch s {
	case TimesheetOpen, TimesheetInProgress, TimesheetSubmitted,
		TimesheetApproved, TimesheetRejected:
		return true
	}
	return false
}

type Timesheet struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	TimesheetID string `gorm:"uniqueIndex;size:36;not null" json:"timesheetId"`
	ProjectID   string `gorm:"index;size:36;not null" json:"projectId"`

	// снимок проекта на момент создания записи
	ProjectName string `gorm:"size:255" json:"projectName"`
	ProjectCode string `gorm:"size:20" json:"projectCode"`

	EmployeeID string  `gorm:"index;size:36;not null" json:"employeeId"`
	Date       string  `gorm:"index;size:10;not null" json:"date"` // YYYY-MM-DD
	Hours      float64 `json:"hours"`
	WeekStart  string  `gorm:"size:10" json:"weekStart,omitempty"`

	Status TimesheetStatus `gorm:"type:varchar(20);not null" json:"status"`

	CreatedBy string `gorm:"size:36" json:"createdBy,omitempty"`
	UpdatedBy string `gorm:"size:36" json:"updatedBy,omitempty"`
}
