package controller

import (
	"net/http"
	"time"

	"thesistrack_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type HealthController struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, RDB: rdb}
}

// Health godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) Health(ctx *gin.Context) {
	util.Success(ctx, gin.H{"status": "ok", "time": time.Now().Format(util.TimeFormat)})
}

// Ready godoc
// @Summary Readiness probe
// @Description Checks MySQL and, when configured, Redis connectivity.
// @Tags health
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /ready [get]
func (c *HealthController) Ready(ctx *gin.Context) {
	sqlDB, err := c.DB.DB()
	if err != nil || sqlDB.Ping() != nil {
		util.Error(ctx, http.StatusServiceUnavailable, "database unavailable")
		return
	}
	if c.RDB != nil {
		if err := c.RDB.Ping(ctx.Request.Context()).Err(); err != nil {
			util.Error(ctx, http.StatusServiceUnavailable, "redis unavailable")
			return
		}
	}
	util.Success(ctx, gin.H{"status": "ready"})
}
