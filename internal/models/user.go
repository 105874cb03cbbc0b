package models

import "time"

type UserRole string

const (
	RoleAdmin     UserRole = "Admin"
	RolePrincipal UserRole = "Principal"
	RoleEmployee  UserRole = "Employee"
)

func ValidRole(r UserRole) bool {
	switch r {
	case RoleAdmin, RolePrincipal, RoleEmployee:
		return true
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UserID   string `gorm:"uniqueIndex;size:36;not null" json:"userId"`
	UserName string `gorm:"uniqueIndex;size:50;not null" json:"userName"`

	// связь с Employee.EmployeeID, необязательная
	EmployeeID string `gorm:"size:36" json:"employeeId,omitempty"`

	Role         UserRole   `gorm:"type:varchar(20);not null" json:"role"`
	PasswordHash string     `gorm:"not null" json:"-"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`

	CreatedBy string `gorm:"size:36" json:"createdBy,omitempty"`
	UpdatedBy string `gorm:"size:36" json:"updatedBy,omitempty"`
}
