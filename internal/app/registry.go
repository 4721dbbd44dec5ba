package app

import (
	"net/http"

	"github.com/thakursapna1996/LeaveTrack-Pro/internal/leave"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func registerModules(router *gin.Engine, gormDB *gorm.DB) error {
	// --- Repositories ---
	leaveRepo := leave.NewRepository(gormDB)

	// --- Services ---
	leaveService := leave.NewService(leaveRepo)

	// --- Handlers ---
	leaveHandler := leave.NewHandler(leaveService)

	// Liveness probe, payload kept stable for external monitors.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"app":    "LeaveTrack-Pro",
		})
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		leave.RegisterRoutes(api, leaveHandler)
	}

	return nil
}
