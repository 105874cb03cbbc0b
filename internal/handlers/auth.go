package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"timesheet-backend/internal/auth"
	"timesheet-backend/internal/database"
	"timesheet-backend/internal/middleware"
	"timesheet-backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userName and password required"})
		return
	}

	var user models.User
	if err := database.DB.Where("user_name = ?", req.UserName).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}

	token, err := auth.IssueToken(cfg.JWTSecret, cfg.JWTTTL, &user)
	if err != nil {
		log.Printf("failed to issue token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	now := time.Now()
	user.LastLogin = &now
	if err := database.DB.Save(&user).Error; err != nil {
		log.Printf("failed to update last login: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"userId":   user.UserID,
			"userName": user.UserName,
			"role":     user.Role,
		},
	})
}

type registerRequest struct {
	UserName   string          `json:"userName" binding:"required,min=3,max=50"`
	EmployeeID string          `json:"employeeId" binding:"required"`
	Role       models.UserRole `json:"role"`
	Password   string          `json:"plainPassword" binding:"required,min=6"`
}

// Register создаёт учётную запись для существующего сотрудника.
// Доступно только админу; при достижении лимита пользователей
// регистрация блокируется и админ получает уведомление.
func Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "userName, employeeId and plainPassword are required"})
		return
	}

	if req.Role == "" {
		req.Role = models.RoleEmployee
	}
	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		return
	}

	claims := middleware.CurrentUser(c)

	var userCount int64
	if err := database.DB.Model(&models.User{}).Count(&userCount).Error; err != nil {
		log.Printf("failed to count users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	if userCount >= int64(cfg.UserLimit) {
		mail.Notify(
			cfg.AdminEmail,
			"User creation blocked: limit reached",
			fmt.Sprintf("Attempted to create user %s but user limit (%d) reached.", req.UserName, cfg.UserLimit),
			"user", models.ActionCreate, claims.UserID,
		)
		c.JSON(http.StatusForbidden, gin.H{"message": "User creation not allowed: limit reached. Admin notified."})
		return
	}

	var employee models.Employee
	if err := database.DB.Where("employee_id = ?", req.EmployeeID).First(&employee).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Employee not found for provided employeeId"})
		return
	}

	var count int64
	database.DB.Model(&models.User{}).Where("user_name = ?", req.UserName).Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"message": "userName already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	user := models.User{
		UserID:       uuid.NewString(),
		UserName:     req.UserName,
		EmployeeID:   req.EmployeeID,
		Role:         req.Role,
		PasswordHash: string(hash),
		CreatedBy:    claims.UserID,
	}
	if err := database.DB.Create(&user).Error; err != nil {
		log.Printf("failed to create user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	database.AppendTracking("users", user.UserID, "create", claims.UserID, claims.UserName, map[string]any{
		"userName":   req.UserName,
		"employeeId": req.EmployeeID,
		"role":       req.Role,
	})

	welcomeTo := employee.PersonalEmail
	if welcomeTo == "" {
		welcomeTo = cfg.AdminEmail
	}
	mail.Notify(
		welcomeTo,
		"Welcome to System",
		fmt.Sprintf("Hello %s,\n\nYour account has been created.\nUsername: %s\nPlease change your password after first login.", req.UserName, req.UserName),
		"user", models.ActionCreate, claims.UserID,
	)

	c.JSON(http.StatusCreated, user)
}
