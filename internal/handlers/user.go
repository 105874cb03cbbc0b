package handlers

import (
	"fmt"
	"log"
	"net/http"

	"timesheet-backend/internal/database"
	"timesheet-backend/internal/middleware"
	"timesheet-backend/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func ListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("user_name asc").Find(&users).Error; err != nil {
		log.Printf("failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, users)
}

func GetUserProfile(c *gin.Context) {
	id := c.Param("id")
	claims := middleware.CurrentUser(c)

	if claims.Role != models.RoleAdmin && claims.UserID != id {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}

	var user models.User
	if err := database.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}
	c.JSON(http.StatusOK, user)
}

type updateProfileRequest struct {
	UserName *string          `json:"userName" binding:"omitempty,min=3,max=50"`
	Role     *models.UserRole `json:"role"`
	Password *string          `json:"plainPassword" binding:"omitempty,min=6"`
}

func UpdateUserProfile(c *gin.Context) {
	id := c.Param("id")
	claims := middleware.CurrentUser(c)

	if claims.Role != models.RoleAdmin && claims.UserID != id {
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		return
	}

	var user models.User
	if err := database.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	changed := map[string]any{}

	if req.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("failed to hash password: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
			return
		}
		user.PasswordHash = string(hash)
		changed["password"] = "changed"
	}

	if req.UserName != nil && *req.UserName != user.UserName {
		var count int64
		database.DB.Model(&models.User{}).
			Where("user_name = ? AND user_id <> ?", *req.UserName, user.UserID).
			Count(&count)
		if count > 0 {
			c.JSON(http.StatusConflict, gin.H{"message": "userName already exists"})
			return
		}
		user.UserName = *req.UserName
		changed["userName"] = *req.UserName
	}

	// роль меняет только админ; для остальных поле молча игнорируется
	if req.Role != nil && claims.Role == models.RoleAdmin {
		if !models.ValidRole(*req.Role) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
			return
		}
		user.Role = *req.Role
		changed["role"] = *req.Role
	}

	user.UpdatedBy = claims.UserID
	if err := database.DB.Save(&user).Error; err != nil {
		log.Printf("failed to update user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	database.AppendTracking("users", user.UserID, "update", claims.UserID, claims.UserName, changed)

	c.JSON(http.StatusOK, user)
}

func DeleteUser(c *gin.Context) {
	id := c.Param("id")
	claims := middleware.CurrentUser(c)

	var user models.User
	if err := database.DB.Where("user_id = ?", id).First(&user).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		log.Printf("failed to delete user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	mail.Notify(
		cfg.AdminEmail,
		"User deleted",
		fmt.Sprintf("User %s (id: %s) deleted by %s", user.UserName, user.UserID, claims.UserName),
		"user", models.ActionDelete, claims.UserID,
	)

	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
