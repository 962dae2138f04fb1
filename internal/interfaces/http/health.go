package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// healthCheck handles GET /health
func (c *Container) healthCheck(ctx *gin.Context) {
	status := http.StatusOK
	checks := gin.H{}

	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx.Request.Context())
	}
	if err != nil {
		checks["database"] = "down"
		status = http.StatusServiceUnavailable
	} else {
		checks["database"] = "up"
	}

	if err := c.redis.Ping(ctx.Request.Context()).Err(); err != nil {
		checks["redis"] = "down"
		status = http.StatusServiceUnavailable
	} else {
		checks["redis"] = "up"
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "degraded"
	}

	ctx.JSON(status, gin.H{
		"status":    overall,
		"checks":    checks,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
