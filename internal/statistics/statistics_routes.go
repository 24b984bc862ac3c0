package statistics

import (
	"go-employee-api/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	stats := r.Group("/employees/statistics")
	stats.Use(middleware.ContextLogger(logger))
	stats.Use(middleware.RateLimitByIP(2, 5))
	{
		stats.GET("/highest-salary", handler.HighestSalary)
		stats.GET("/salary-range-count", handler.SalaryRangeCount)
		stats.GET("/youngest-employee", handler.YoungestEmployee)
	}
}
