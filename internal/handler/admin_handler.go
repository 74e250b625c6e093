package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/repository"
	"github.com/ddoc14896/Realty-Website-sub000/internal/service"
)

// AdminHandler handles back-office HTTP requests
type AdminHandler struct {
	users repository.UserRepository
	stats service.StatsService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(users repository.UserRepository, stats service.StatsService) *AdminHandler {
	return &AdminHandler{users: users, stats: stats}
}

// ListUsers handles GET /admin/users
// @Summary List accounts (admin)
// @Tags admin
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} common.APIResponse{data=[]domain.User}
// @Security BearerAuth
// @Router /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	users, total, err := h.users.Find(page, limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list users", err)
		return
	}

	common.SuccessResponse(c, users, &common.Meta{Page: page, Limit: limit, Total: total})
}

// Stats handles GET /admin/stats
// @Summary Dashboard counters (admin)
// @Tags admin
// @Produce json
// @Success 200 {object} common.APIResponse{data=service.Stats}
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Get(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load stats", err)
		return
	}

	common.SuccessResponse(c, stats, nil)
}
