package models

import "time"

type EmployeeCategory string

const (
	CategoryFullTime EmployeeCategory = "FullTime"
	CategoryPartTime EmployeeCategory = "PartTime"
	CategoryContract EmployeeCategory = "Contract"
	CategoryIntern   EmployeeCategory = "Intern"
)

func ValidCategory(c EmployeeCategory) bool {
	switch c {
	case "", CategoryFullTime, CategoryPartTime, CategoryContract, CategoryIntern:
		return true
	}
	return false
}

type Employee struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	EmployeeID string `gorm:"uniqueIndex;size:36;not null" json:"employeeId"`
	Name       string `gorm:"size:255;not null" json:"name"`

	// каждый контакт уникален, когда заполнен (пустые не индексируются)
	PersonalEmail  string `gorm:"size:255" json:"personalEmail,omitempty"`
	CompanyEmail   string `gorm:"size:255" json:"companyEmail,omitempty"`
	PersonalMobile string `gorm:"size:50" json:"personalMobile,omitempty"`
	CompanyMobile  string `gorm:"size:50" json:"companyMobile,omitempty"`

	DateOfBirth string `gorm:"size:10" json:"dateOfBirth,omitempty"` // YYYY-MM-DD
	Address     string `gorm:"size:500" json:"address,omitempty"`

	Designation     string           `gorm:"size:255" json:"designation,omitempty"`
	ExperienceYears int              `json:"experienceYears"`
	BloodGroup      string           `gorm:"size:5" json:"bloodGroup,omitempty"`
	HourlyCharge    float64          `json:"hourlyCharge"`
	Category        EmployeeCategory `gorm:"size:20" json:"category,omitempty"`

	CreatedBy string `gorm:"size:36" json:"createdBy,omitempty"`
	UpdatedBy string `gorm:"size:36" json:"updatedBy,omitempty"`
}
