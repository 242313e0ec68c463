package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/bizdesk/backend/internal/infrastructure/logger"
	"github.com/bizdesk/backend/internal/infrastructure/persistence"
	"github.com/bizdesk/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

// Pinger reports store reachability and pool usage
type Pinger interface {
	Ping(ctx context.Context) error
	Stats() (persistence.ConnectionStats, error)
}

// HealthHandler answers liveness probes
type HealthHandler struct {
	BaseHandler
	db Pinger
}

// NewHealthHandler creates a HealthHandler
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check godoc
// @Summary      Health check
// @Description  Pings the database and reports connection pool usage
// @Tags         system
// @Produce      json
// @Success      200 {object} dto.HealthResponse
// @Failure      503 {object} dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "degraded", Database: "down"})
		return
	}

	resp := dto.HealthResponse{Status: "ok", Database: "up"}
	if s, err := h.db.Stats(); err == nil {
		resp.Pool = &dto.PoolStats{
			MaxOpen: s.MaxOpenConnections,
			Open:    s.OpenConnections,
			InUse:   s.InUse,
			Idle:    s.Idle,
			Waits:   s.WaitCount,
		}
	}
	h.OK(c, resp)
}
