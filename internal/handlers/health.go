package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Healthz reports liveness and store reachability.
func Healthz(handle *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ok"
		code := 200

		if sqlDB, err := handle.DB(); err != nil || sqlDB.Ping() != nil {
			status = "degraded"
			code = 503
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}
