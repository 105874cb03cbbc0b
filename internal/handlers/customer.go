package handlers

import (
	"fmt"
	"log"
	"net/http"

	"timesheet-backend/internal/database"
	"timesheet-backend/internal/middleware"
	"timesheet-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type customerRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255"`
	Address string `json:"address" binding:"max=500"`
}

func CreateCustomer(c *gin.Context) {
	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}

	code, err := database.NextCustomerCode(database.DB)
	if err != nil {
		log.Printf("failed to allocate customer code: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	claims := middleware.CurrentUser(c)
	customer := models.Customer{
		CustomerID: uuid.NewString(),
		Name:       req.Name,
		Code:       code,
		Address:    req.Address,
		CreatedBy:  claims.UserID,
	}
	if err := database.DB.Create(&customer).Error; err != nil {
		log.Printf("failed to create customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	database.AppendTracking("customer", customer.CustomerID, "create", claims.UserID, claims.UserName, map[string]any{
		"name": req.Name,
		"code": code,
	})

	c.JSON(http.StatusCreated, customer)
}

func ListCustomers(c *gin.Context) {
	var customers []models.Customer
	if err := database.DB.Order("code asc").Find(&customers).Error; err != nil {
		log.Printf("failed to list customers: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, customers)
}

func UpdateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := database.DB.Where("customer_id = ?", c.Param("id")).First(&customer).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	var req customerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "name is required"})
		return
	}

	// код заказчика неизменяемый, правятся только реквизиты
	claims := middleware.CurrentUser(c)
	customer.Name = req.Name
	customer.Address = req.Address
	customer.UpdatedBy = claims.UserID

	if err := database.DB.Save(&customer).Error; err != nil {
		log.Printf("failed to update customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	database.AppendTracking("customer", customer.CustomerID, "update", claims.UserID, claims.UserName, map[string]any{
		"name":    req.Name,
		"address": req.Address,
	})

	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer принимает CustomerID или код и отказывает, если на
// заказчика ссылается хотя бы один проект.
func DeleteCustomer(c *gin.Context) {
	id := c.Param("id")

	var customer models.Customer
	err := database.DB.Where("customer_id = ? OR code = ?", id, id).First(&customer).Error
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found"})
		return
	}

	var linked int64
	if err := database.DB.Model(&models.Project{}).
		Where("code_customer_code = ?", customer.Code).
		Count(&linked).Error; err != nil {
		log.Printf("failed to count linked projects: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if linked > 0 {
		c.JSON(http.StatusConflict, gin.H{
			"message": fmt.Sprintf("Cannot delete: %d project(s) linked to customer %s", linked, customer.Code),
		})
		return
	}

	if err := database.DB.Delete(&customer).Error; err != nil {
		log.Printf("failed to delete customer: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Deleted",
		"customerId": customer.CustomerID,
		"code":       customer.Code,
	})
}
