package models

import "time"

type ProjectStatus string

const (
	ProjectOpen       ProjectStatus = "Open"
	ProjectInProgress ProjectStatus = "In-progress"
	ProjectCompleted  ProjectStatus = "Completed"
)

func ValidProjectStatus(s ProjectStatus) bool {
	switch s {
	case ProjectOpen, ProjectInProgress, ProjectCompleted:
		return true
	}
	return false
}

// ProjectCode — структурированный код проекта: часть заказчика,
// порядковый номер и буквенный суффикс, например "0007.0001A".
type ProjectCode struct {
	CustomerCode string `gorm:"size:10" json:"customerCode"`
	Serial       int    `json:"serial"`
	Suffix       string `gorm:"size:1" json:"suffix"`
	Code         string `gorm:"size:20" json:"code"`
}

// Assignment — назначение сотрудника на проект со ставкой и часами.
type Assignment struct {
	ID        uint `gorm:"primaryKey" json:"-"`
	ProjectID uint `gorm:"index" json:"-"`

	EmployeeID   string  `gorm:"size:36" json:"employeeId"`
	EmployeeName string  `gorm:"size:255" json:"employeeName"`
	HourlyRate   float64 `json:"hourlyRate"`
	Hours        float64 `json:"hours"`
	Amount       float64 `json:"amount"`
}

type Project struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ProjectID string `gorm:"uniqueIndex;size:36;not null" json:"projectId"`
	JobName   string `gorm:"size:255;not null" json:"jobName"`

	Code ProjectCode `gorm:"embedded;embeddedPrefix:code_" json:"projectCode"`

	ManagerID   string       `gorm:"size:36" json:"managerId,omitempty"`
	Assignments []Assignment `gorm:"constraint:OnDelete:CASCADE" json:"assignments"`

	TotalCost   float64 `json:"totalCost"`
	TotalHours  float64 `json:"totalHours"`
	PerHourCost float64 `json:"perHourCost"`

	Status ProjectStatus `gorm:"type:varchar(20);not null" json:"status"`

	CreatedBy string `gorm:"size:36" json:"createdBy,omitempty"`
	UpdatedBy string `gorm:"size:36" json:"updatedBy,omitempty"`
}
