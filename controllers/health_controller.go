package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is anything health can probe: the room registry, the answer cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthController struct {
	checks map[string]Pinger
}

// NewHealthController probes each named dependency; nil entries are skipped.
func NewHealthController(checks map[string]Pinger) *HealthController {
	live := make(map[string]Pinger, len(checks))
	for name, p := range checks {
		if p != nil {
			live[name] = p
		}
	}
	return &HealthController{checks: live}
}

// GET /health
func (ctrl *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	deps := gin.H{}
	for name, p := range ctrl.checks {
		if err := p.Ping(ctx); err != nil {
			status = "degraded"
			deps[name] = err.Error()
			continue
		}
		deps[name] = "ok"
	}

	code := http.StatusOK
	if status != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": status, "dependencies": deps})
}
