package leave

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the leave endpoints. Every operation is deliberately
// unauthenticated; any caller may create, edit, approve, reject or delete any
// record. That is a significant limitation for a real deployment.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/leaves")
	{
		leaves.GET("", handler.GetAll)
		leaves.GET("/:id", handler.GetById)
		leaves.POST("", handler.Create)
		leaves.PUT("/:id", handler.Update)
		leaves.DELETE("/:id", handler.Delete)
	}
}
