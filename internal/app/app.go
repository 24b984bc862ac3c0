package app

import (
	"os"

	"go-employee-api/internal/department"
	"go-employee-api/internal/employee"
	"go-employee-api/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BuildApp connects the infrastructure and registers every feature module
// on the router.
func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&department.Department{}, &employee.Employee{}); err != nil {
		return err
	}

	return registerModules(router, db, logger)
}
