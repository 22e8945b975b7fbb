package routes

import (
	"pj_billing/internal/domain/entities"
	"pj_billing/internal/infrastructure/identity"

	"github.com/gin-gonic/gin"
)

// principalMiddleware lifts the externally authenticated principal from the
// X-Principal-* headers into the request context. An upstream gateway owns
// authentication; absent headers simply leave the context without a principal
// and the guarded operations refuse to run.
func principalMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Principal-Id")
		if id != "" {
			principal := entities.Principal{
				ID:         id,
				Name:       c.GetHeader("X-Principal-Name"),
				Department: c.GetHeader("X-Principal-Department"),
				Role:       c.GetHeader("X-Principal-Role"),
			}
			c.Request = c.Request.WithContext(identity.WithPrincipal(c.Request.Context(), principal))
		}
		c.Next()
	}
}
