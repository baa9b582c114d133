package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AwwwRyan/coverletter-gen/internal/logging"
)

// Recovery turns a handler panic into a 500 {error} response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.FromContext(c.Request.Context()).LogErrorf("recovery", "panic recovered path=%s: %v", c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}
