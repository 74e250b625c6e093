package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
)

// SessionHeader carries the anonymous visitor's session ID
const SessionHeader = "X-Session-ID"

const identityKey = "identity"

// Identity resolves the request's identity exactly once: an authenticated
// user when OptionalAuth put a user ID in the context, otherwise an
// anonymous session from the X-Session-ID header. A visitor without a
// session gets a fresh one, echoed back in the response header.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		var id domain.Identity
		if userID := GetUserID(c); userID != "" {
			id = domain.UserIdentity(userID)
		} else {
			sessionID := c.GetHeader(SessionHeader)
			if sessionID == "" {
				sessionID = uuid.New().String()
			}
			c.Header(SessionHeader, sessionID)
			id = domain.SessionIdentity(sessionID)
		}

		c.Set(identityKey, id)
		c.Next()
	}
}

// GetIdentity extracts the resolved identity from context
func GetIdentity(c *gin.Context) domain.Identity {
	v, exists := c.Get(identityKey)
	if !exists {
		return domain.Identity{}
	}
	if id, ok := v.(domain.Identity); ok {
		return id
	}
	return domain.Identity{}
}

// GetSessionID returns the session ID the request carried, empty when none
func GetSessionID(c *gin.Context) string {
	return c.GetHeader(SessionHeader)
}
