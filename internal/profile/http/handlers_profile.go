package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AwwwRyan/coverletter-gen/internal/auth"
	"github.com/AwwwRyan/coverletter-gen/internal/profile/domain"
)

// GetProfile returns the current user's profile
func (h *Handler) GetProfile(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	p, err := h.profiles.Get(c.Request.Context(), uid)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": p})
}

// RegisterProfile stores the full profile, replacing any previous document.
func (h *Handler) RegisterProfile(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var p domain.Profile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	// Registration defaults the email to the verified token's address.
	if p.Email == "" {
		p.Email = auth.UserEmail(c)
	}

	saved, err := h.profiles.Register(c.Request.Context(), uid, p)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"profile": saved})
}

// UpdateProfile merges the fields present in the body into the stored profile.
func (h *Handler) UpdateProfile(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	patch, err := domain.ParsePatch(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	merged, err := h.profiles.Update(c.Request.Context(), uid, patch)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile": merged})
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
	case errors.Is(err, domain.ErrMissingUserID):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to access profile"})
	}
}
