package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
	"github.com/ddoc14896/Realty-Website-sub000/internal/middleware"
	"github.com/ddoc14896/Realty-Website-sub000/internal/service"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	service service.AuthService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/register
// @Summary Create an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body domain.RegisterRequest true "Account"
// @Success 201 {object} common.APIResponse{data=domain.AuthResponse}
// @Failure 409 {object} common.ErrorInfo
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid registration payload", err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, common.ErrUserAlreadyExists) {
			common.ErrorResponse(c, http.StatusConflict, "Email already registered", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Registration failed", err)
		return
	}

	common.CreatedResponse(c, resp)
}

// Login handles POST /auth/login
// @Summary Log in; merges anonymous favorites when X-Session-ID is present
// @Tags auth
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Anonymous session whose favorites are merged"
// @Param request body domain.LoginRequest true "Credentials"
// @Success 200 {object} common.APIResponse{data=domain.AuthResponse}
// @Failure 401 {object} common.ErrorInfo
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid login payload", err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req, middleware.GetSessionID(c))
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			common.ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Login failed", err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh handles POST /auth/refresh
// @Summary Exchange a refresh token for fresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body refreshRequest true "Refresh token"
// @Success 200 {object} common.APIResponse{data=domain.AuthResponse}
// @Failure 401 {object} common.ErrorInfo
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "refresh_token is required", err)
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		common.ErrorResponse(c, http.StatusUnauthorized, "Invalid refresh token", err)
		return
	}

	common.SuccessResponse(c, resp, nil)
}

// Me handles GET /auth/me
// @Summary Current account
// @Tags auth
// @Produce json
// @Success 200 {object} common.APIResponse{data=domain.User}
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "User not found", err)
		return
	}

	common.SuccessResponse(c, user, nil)
}
