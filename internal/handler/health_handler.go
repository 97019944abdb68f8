package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles health check endpoints.
type HealthHandler struct {
	upstreamBaseURL string
	client          *http.Client
}

// NewHealthHandler creates a new HealthHandler probing the legacy backend.
func NewHealthHandler(upstreamBaseURL string) *HealthHandler {
	return &HealthHandler{
		upstreamBaseURL: upstreamBaseURL,
		client:          &http.Client{Timeout: 3 * time.Second},
	}
}

// Liveness handles GET /healthz
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness handles GET /readyz
func (h *HealthHandler) Readiness(c *gin.Context) {
	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, h.upstreamBaseURL, nil)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "invalid upstream URL"})
		return
	}
	resp, err := h.client.Do(req)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "legacy backend not reachable"})
		return
	}
	_ = resp.Body.Close()
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
