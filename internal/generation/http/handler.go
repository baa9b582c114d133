package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AwwwRyan/coverletter-gen/internal/generation/domain"
	"github.com/AwwwRyan/coverletter-gen/internal/generation/service"
)

type Handler struct {
	generation *service.GenerationService
}

func New(generation *service.GenerationService) *Handler {
	return &Handler{generation: generation}
}

func (h *Handler) Register(rg *gin.RouterGroup, mw ...gin.HandlerFunc) {
	rg.POST("/generate", append(mw, h.Generate)...)
}

// Generate answers {letter} with the raw model output. Upstream failures keep
// the upstream status code.
func (h *Handler) Generate(c *gin.Context) {
	var req domain.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	letter, err := h.generation.Generate(c.Request.Context(), req)
	if err != nil {
		var verr *domain.ValidationError
		var upErr *domain.UpstreamError
		switch {
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message})
		case errors.As(err, &upErr):
			c.JSON(upErr.Status, gin.H{"error": upErr.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, domain.Response{Letter: letter})
}
