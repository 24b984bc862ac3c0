package app

import (
	"go-employee-api/internal/department"
	"go-employee-api/internal/employee"
	"go-employee-api/internal/middleware"
	"go-employee-api/internal/shared/phonecrypt"
	"go-employee-api/internal/statistics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	logger *zap.Logger,
) error {
	router.Use(middleware.RequestID())

	// --- Shared primitives ---
	hasher := phonecrypt.NewHasher()

	// --- Repositories ---
	departmentRepo := department.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	statisticsRepo := statistics.NewRepository(gormDB)

	// --- Services ---
	departmentService := department.NewService(departmentRepo, logger)
	employeeService := employee.NewService(employeeRepo, hasher, logger)
	statisticsService := statistics.NewService(statisticsRepo, logger)

	// --- Handlers ---
	departmentHandler := department.NewHandler(departmentService, logger)
	employeeHandler := employee.NewHandler(employeeService, logger)
	statisticsHandler := statistics.NewHandler(statisticsService, logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		department.RegisterRoutes(api, departmentHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, logger)
		statistics.RegisterRoutes(api, statisticsHandler, logger)
	}

	return nil
}
