package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
)

// AdminOnly rejects requests from accounts below the admin level.
// Must run after JWTAuth.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserLevel(c) < domain.AdminLevel {
			common.ErrorResponse(c, 403, "Admin access required", common.ErrForbidden)
			c.Abort()
			return
		}
		c.Next()
	}
}
