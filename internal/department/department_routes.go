package department

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
	departments := r.Group("/departments")
	departments.Use(middleware.ContextLogger(logger))
	{
		departments.GET("", handler.GetAll)
		departments.GET("/:id", handler.GetById)

		departments.POST("",
			middleware.RateLimitByIP(1, 5),
			handler.Create,
		)
		departments.PUT("/:id",
			middleware.RateLimitByIP(1, 5),
			handler.Update,
		)
		departments.DELETE("/:id",
			middleware.RateLimitByIP(0.5, 2),
			handler.Delete,
		)
	}
}
