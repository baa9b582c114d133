package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const DevUserID = "demo-user"

// DevIdentity sets a firebase uid in context without verifying a token.
// - The uid comes from X-User-Id and falls back to "demo-user".
// - Use this ONLY for development/testing; config refuses it in production.
func DevIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		uid := strings.TrimSpace(c.GetHeader("X-User-Id"))
		if uid == "" {
			uid = DevUserID
		}
		c.Set(CtxFirebaseUID, uid)
		if email := strings.TrimSpace(c.GetHeader("X-User-Email")); email != "" {
			c.Set(CtxEmail, email)
		}
		c.Next()
	}
}
