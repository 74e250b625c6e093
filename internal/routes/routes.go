package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ddoc14896/Realty-Website-sub000/internal/handler"
	"github.com/ddoc14896/Realty-Website-sub000/internal/middleware"
	"github.com/ddoc14896/Realty-Website-sub000/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	propertyHandler *handler.PropertyHandler,
	favoriteHandler *handler.FavoriteHandler,
	inquiryHandler *handler.InquiryHandler,
	authHandler *handler.AuthHandler,
	adminHandler *handler.AdminHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api/v1")

	// Authentication endpoints
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/me", middleware.JWTAuth(jwtManager), authHandler.Me)

	// Property catalog (public, no auth required)
	properties := api.Group("/properties")
	{
		properties.GET("", propertyHandler.Search)
		properties.GET("/:id", propertyHandler.Get)
		properties.POST("/:id/inquiries", inquiryHandler.Submit)
	}

	// Full-text search, backed by Elasticsearch when configured
	api.GET("/search", propertyHandler.FullTextSearch)

	// Favorites work for both anonymous sessions and logged-in users.
	// OptionalAuth resolves the user when a token is present; Identity
	// falls back to the X-Session-ID header.
	favorites := api.Group("/favorites",
		middleware.OptionalAuth(jwtManager), middleware.Identity())
	{
		favorites.GET("", favoriteHandler.List)
		favorites.POST("", favoriteHandler.Add)
		favorites.DELETE("", favoriteHandler.Remove)
		favorites.POST("/toggle", favoriteHandler.Toggle)
	}

	// Back-office
	admin := api.Group("/admin", middleware.JWTAuth(jwtManager), middleware.AdminOnly())
	{
		admin.POST("/properties", propertyHandler.Create)
		admin.PUT("/properties/:id", propertyHandler.Update)
		admin.DELETE("/properties/:id", propertyHandler.Delete)
		admin.POST("/properties/:id/images", propertyHandler.UploadImage)
		admin.POST("/properties/reindex", propertyHandler.Reindex)

		admin.GET("/inquiries", inquiryHandler.List)
		admin.PATCH("/inquiries/:id/status", inquiryHandler.UpdateStatus)

		admin.GET("/users", adminHandler.ListUsers)
		admin.GET("/stats", adminHandler.Stats)
	}
}
