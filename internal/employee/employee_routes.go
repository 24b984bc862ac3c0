package employee

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
	employees := r.Group("/employees")
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("", handler.GetAll)

		// Writes are throttled harder: each create/update can trigger a
		// full phone-hash scan.
		employees.POST("",
			middleware.RateLimitByIP(1, 3),
			handler.Create,
		)
		employees.PUT("/:id",
			middleware.RateLimitByIP(1, 3),
			handler.Update,
		)
		employees.DELETE("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)
	}
}
