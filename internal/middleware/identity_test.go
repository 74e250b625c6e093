package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
)

func identityRouter(captured *domain.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/x", Identity(), func(c *gin.Context) {
		*captured = GetIdentity(c)
		c.Status(http.StatusOK)
	})
	return r
}

func TestIdentity_SessionHeaderBecomesAnonymousIdentity(t *testing.T) {
	var id domain.Identity
	r := identityRouter(&id)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(SessionHeader, "anon-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, domain.SessionIdentity("anon-1"), id)
	assert.Equal(t, "anon-1", w.Header().Get(SessionHeader))
}

func TestIdentity_MissingSessionGetsFreshOne(t *testing.T) {
	var id domain.Identity
	r := identityRouter(&id)

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.True(t, id.IsAnonymous())
	assert.NotEmpty(t, id.ID)
	assert.Equal(t, id.ID, w.Header().Get(SessionHeader))
}

func TestIdentity_AuthenticatedUserWins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var id domain.Identity
	r := gin.New()
	r.GET("/x", func(c *gin.Context) {
		c.Set("userID", "u1")
	}, Identity(), func(c *gin.Context) {
		id = GetIdentity(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(SessionHeader, "anon-1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, domain.UserIdentity("u1"), id)
	assert.Empty(t, w.Header().Get(SessionHeader))
}
