package server

import (
	"net/http"

	"timesheet-backend/internal/config"
	"timesheet-backend/internal/handlers"
	"timesheet-backend/internal/middleware"
	"timesheet-backend/internal/models"

	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// AUTH
	r.POST("/api/auth/login", handlers.Login)

	api := r.Group("/api")
	api.Use(middleware.RequireAuth(cfg.JWTSecret))

	api.POST("/auth/register",
		middleware.RequireRole(models.RoleAdmin),
		handlers.Register,
	)

	// ЗАКАЗЧИКИ
	api.POST("/customers",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreateCustomer,
	)
	api.GET("/customers",
		middleware.RequireRole(models.RoleAdmin, models.RolePrincipal),
		handlers.ListCustomers,
	)
	api.PUT("/customers/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.UpdateCustomer,
	)
	api.DELETE("/customers/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteCustomer,
	)

	// СОТРУДНИКИ
	api.POST("/employees",
		middleware.RequireRole(models.RoleAdmin),
		handlers.CreateEmployee,
	)
	api.GET("/employees",
		middleware.RequireRole(models.RoleAdmin, models.RolePrincipal),
		handlers.ListEmployees,
	)
	api.GET("/employees/:id", handlers.GetEmployee)
	api.PUT("/employees/:id", handlers.UpdateEmployee)
	api.DELETE("/employees/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteEmployee,
	)

	// ПРОЕКТЫ
	api.POST("/projects",
		middleware.RequireRole(models.RoleAdmin, models.RolePrincipal),
		handlers.CreateProject,
	)
	api.PUT("/projects/:id",
		middleware.RequireRole(models.RoleAdmin, models.RolePrincipal),
		handlers.UpdateProject,
	)
	api.GET("/projects", handlers.ListProjects)
	api.DELETE("/projects/:id",
		middleware.RequireRole(models.RoleAdmin, models.RolePrincipal),
		handlers.DeleteProject,
	)

	// ТАБЕЛИ
	api.POST("/timesheets",
		middleware.RequireRole(models.RoleEmployee, models.RoleAdmin),
		handlers.CreateTimesheet,
	)
	api.PUT("/timesheets/:id",
		middleware.RequireRole(models.RoleEmployee, models.RoleAdmin, models.RolePrincipal),
		handlers.UpdateTimesheet,
	)
	api.POST("/timesheets/:id/approve",
		middleware.RequireRole(models.RolePrincipal, models.RoleAdmin),
		handlers.ApproveTimesheet,
	)
	api.GET("/timesheets", handlers.ListTimesheets)
	api.DELETE("/timesheets/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteTimesheet,
	)

	// ПОЛЬЗОВАТЕЛИ
	api.GET("/users",
		middleware.RequireRole(models.RoleAdmin),
		handlers.ListUsers,
	)
	api.GET("/users/profile/:id", handlers.GetUserProfile)
	api.PUT("/users/profile/:id", handlers.UpdateUserProfile)
	api.DELETE("/users/:id",
		middleware.RequireRole(models.RoleAdmin),
		handlers.DeleteUser,
	)

	// ДАШБОРД
	api.GET("/dashboard", handlers.Dashboard)

	// ОТЧЁТЫ
	rep := api.Group("/reports",
		middleware.RequireRole(models.RoleAdmin, models.RolePrincipal),
	)
	rep.GET("/employee", handlers.ReportByEmployee)
	rep.GET("/project", handlers.ReportByProject)
	rep.GET("/monthly", handlers.MonthlyReport)
	rep.GET("/range", handlers.RangeReport)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
