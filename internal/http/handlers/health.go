package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/learnpath-backend/internal/platform/logger"
)

// Pinger is any store the readiness probe should check. A nil Pinger is a required store
// that was never configured.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	log    *logger.Logger
	stores map[string]Pinger
}

func NewHealthHandler(log *logger.Logger, stores map[string]Pinger) *HealthHandler {
	return &HealthHandler{log: log.With("handler", "HealthHandler"), stores: stores}
}

// GET /healthcheck
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

// GET /readyz
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	checks := gin.H{}
	for name, s := range h.stores {
		if s == nil {
			checks[name] = "not configured"
			status = http.StatusServiceUnavailable
			continue
		}
		if err := s.Ping(ctx); err != nil {
			h.log.Warn("readiness check failed", "store", name, "error", err)
			checks[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "ok"
	}
	c.JSON(status, gin.H{"checks": checks})
}
