package app

import (
	"os"

	"github.com/thakursapna1996/LeaveTrack-Pro/internal/leave"
	"github.com/thakursapna1996/LeaveTrack-Pro/internal/middleware"
	"github.com/thakursapna1996/LeaveTrack-Pro/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "leaves.db"
	}

	db, err := connection.ConnectSQLiteWithRetry(dbPath, 5)
	if err != nil {
		return err
	}

	if err := db.AutoMigrate(&leave.Leave{}); err != nil {
		return err
	}
	zap.L().Info("database ready", zap.String("path", dbPath))

	router.Use(middleware.RequestID())

	// Register Modules & Routes
	return registerModules(router, db)
}
