package handlers

import (
	"log"
	"net/http"

	"timesheet-backend/internal/database"
	"timesheet-backend/internal/middleware"
	"timesheet-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type employeeRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`

	PersonalEmail  string `json:"personalEmail" binding:"omitempty,email"`
	CompanyEmail   string `json:"companyEmail" binding:"omitempty,email"`
	PersonalMobile string `json:"personalMobile" binding:"omitempty,min=7,max=20"`
	CompanyMobile  string `json:"companyMobile" binding:"omitempty,min=7,max=20"`

	DateOfBirth string `json:"dateOfBirth" binding:"omitempty,datetime=2006-01-02"`
	Address     string `json:"address" binding:"max=500"`

	Designation     string                  `json:"designation" binding:"max=255"`
	ExperienceYears int                     `json:"experienceYears" binding:"min=0,max=80"`
	BloodGroup      string                  `json:"bloodGroup" binding:"omitempty,oneof=A+ A- B+ B- O+ O- AB+ AB-"`
	HourlyCharge    float64                 `json:"hourlyCharge" binding:"min=0"`
	Category        models.EmployeeCategory `json:"category"`
}

// проверяет уникальность контактов и пары имя+дата рождения;
// excludeID исключает самого сотрудника при обновлении
func employeeConflict(req *employeeRequest, excludeID string) (string, error) {
	type check struct {
		column  string
		value   string
		message string
	}
	checks := []check{
		{"personal_email", req.PersonalEmail, "Employee with this personal email already exists"},
		{"company_email", req.CompanyEmail, "Employee with this company email already exists"},
		{"personal_mobile", req.PersonalMobile, "Employee with this personal mobile already exists"},
		{"company_mobile", req.CompanyMobile, "Employee with this company mobile already exists"},
	}

	for _, ch := range checks {
		if ch.value == "" {
			continue
		}
		var count int64
		q := database.DB.Model(&models.Employee{}).Where(ch.column+" = ?", ch.value)
		if excludeID != "" {
			q = q.Where("employee_id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count > 0 {
			return ch.message, nil
		}
	}

	if req.DateOfBirth != "" {
		var count int64
		q := database.DB.Model(&models.Employee{}).
			Where("name = ? AND date_of_birth = ?", req.Name, req.DateOfBirth)
		if excludeID != "" {
			q = q.Where("employee_id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count > 0 {
			return "Employee with this name and date of birth already exists", nil
		}
	}

	return "", nil
}

func CreateEmployee(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
		return
	}

	conflict, err := employeeConflict(&req, "")
	if err != nil {
		log.Printf("failed to check employee uniqueness: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if conflict != "" {
		c.JSON(http.StatusConflict, gin.H{"message": conflict})
		return
	}

	claims := middleware.CurrentUser(c)
	employee := models.Employee{
		EmployeeID:      uuid.NewString(),
		Name:            req.Name,
		PersonalEmail:   req.PersonalEmail,
		CompanyEmail:    req.CompanyEmail,
		PersonalMobile:  req.PersonalMobile,
		CompanyMobile:   req.CompanyMobile,
		DateOfBirth:     req.DateOfBirth,
		Address:         req.Address,
		Designation:     req.Designation,
		ExperienceYears: req.ExperienceYears,
		BloodGroup:      req.BloodGroup,
		HourlyCharge:    req.HourlyCharge,
		Category:        req.Category,
		CreatedBy:       claims.UserID,
	}
	if err := database.DB.Create(&employee).Error; err != nil {
		log.Printf("failed to create employee: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func ListEmployees(c *gin.Context) {
	var employees []models.Employee
	if err := database.DB.Order("name asc").Find(&employees).Error; err != nil {
		log.Printf("failed to list employees: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, employees)
}

func GetEmployee(c *gin.Context) {
	var employee models.Employee
	if err := database.DB.Where("employee_id = ?", c.Param("id")).First(&employee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	c.JSON(http.StatusOK, employee)
}

func UpdateEmployee(c *gin.Context) {
	var employee models.Employee
	if err := database.DB.Where("employee_id = ?", c.Param("id")).First(&employee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if !models.ValidCategory(req.Category) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid category"})
		return
	}

	conflict, err := employeeConflict(&req, employee.EmployeeID)
	if err != nil {
		log.Printf("failed to check employee uniqueness: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if conflict != "" {
		c.JSON(http.StatusConflict, gin.H{"message": conflict})
		return
	}

	claims := middleware.CurrentUser(c)
	employee.Name = req.Name
	employee.PersonalEmail = req.PersonalEmail
	employee.CompanyEmail = req.CompanyEmail
	employee.PersonalMobile = req.PersonalMobile
	employee.CompanyMobile = req.CompanyMobile
	employee.DateOfBirth = req.DateOfBirth
	employee.Address = req.Address
	employee.Designation = req.Designation
	employee.ExperienceYears = req.ExperienceYears
	employee.BloodGroup = req.BloodGroup
	employee.HourlyCharge = req.HourlyCharge
	employee.Category = req.Category
	employee.UpdatedBy = claims.UserID

	if err := database.DB.Save(&employee).Error; err != nil {
		log.Printf("failed to update employee: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, employee)
}

func DeleteEmployee(c *gin.Context) {
	result := database.DB.Where("employee_id = ?", c.Param("id")).Delete(&models.Employee{})
	if result.Error != nil {
		log.Printf("failed to delete employee: %v", result.Error)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted"})
}
