package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"cvparser/internal/service"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	cvService service.CVService
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(cvService service.CVService) *HealthHandler {
	return &HealthHandler{cvService: cvService}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.cvService.Ready(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "inference endpoint not reachable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
