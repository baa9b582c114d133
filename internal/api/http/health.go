package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	genservice "github.com/AwwwRyan/coverletter-gen/internal/generation/service"
)

type HealthResponse struct {
	Status     string               `json:"status"`
	Timestamp  time.Time            `json:"timestamp"`
	Service    string               `json:"service"`
	Version    string               `json:"version"`
	Store      string               `json:"store,omitempty"`
	Generation *genservice.Snapshot `json:"generation,omitempty"`
}

// Pinger is the health probe of the profile store.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	serviceName string
	version     string
	store       Pinger
}

func NewHealthHandler(serviceName, version string, store Pinger) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		store:       store,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	storeStatus := "disabled"
	if h.store != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.store.Ping(pingCtx); err != nil {
			storeStatus = "down"
		} else {
			storeStatus = "up"
		}
	}

	snapshot := genservice.GetMetrics().Snapshot()
	c.JSON(http.StatusOK, HealthResponse{
		Status:     "healthy",
		Timestamp:  time.Now().UTC(),
		Service:    h.serviceName,
		Version:    h.version,
		Store:      storeStatus,
		Generation: &snapshot,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
