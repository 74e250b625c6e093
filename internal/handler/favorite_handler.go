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

// FavoriteHandler handles favorites HTTP requests
type FavoriteHandler struct {
	store *service.FavoriteStore
}

// NewFavoriteHandler creates a new FavoriteHandler
func NewFavoriteHandler(store *service.FavoriteStore) *FavoriteHandler {
	return &FavoriteHandler{store: store}
}

type favoriteRequest struct {
	PropertyID string `json:"propertyId" binding:"required"`
}

// List handles GET /favorites
// @Summary Current identity's favorite set
// @Tags favorites
// @Produce json
// @Param X-Session-ID header string false "Anonymous session ID"
// @Success 200 {object} domain.FavoriteSetResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity.IsZero() {
		common.ErrorResponse(c, http.StatusBadRequest, "Missing identity", common.ErrInvalidInput)
		return
	}

	favorites, err := h.store.List(c.Request.Context(), identity)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load favorites", err)
		return
	}

	c.JSON(http.StatusOK, domain.NewFavoriteSetResponse(identity, favorites))
}

// Add handles POST /favorites
// @Summary Add a property to favorites
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body favoriteRequest true "Property to add"
// @Success 200 {object} domain.FavoriteSetResponse
// @Failure 409 {object} common.ErrorInfo "already in favorites"
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity.IsZero() {
		common.ErrorResponse(c, http.StatusBadRequest, "Missing identity", common.ErrInvalidInput)
		return
	}

	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "propertyId is required", err)
		return
	}

	favorites, err := h.store.Add(c.Request.Context(), identity, req.PropertyID)
	if err != nil {
		if errors.Is(err, common.ErrAlreadyFavorited) {
			common.ErrorResponse(c, http.StatusConflict, "already in favorites", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "favorite update failed", err)
		return
	}

	c.JSON(http.StatusOK, domain.NewFavoriteSetResponse(identity, favorites))
}

// Remove handles DELETE /favorites?propertyId=...
// @Summary Remove a property from favorites
// @Tags favorites
// @Produce json
// @Param propertyId query string true "Property to remove"
// @Success 200 {object} domain.FavoriteSetResponse
// @Router /favorites [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity.IsZero() {
		common.ErrorResponse(c, http.StatusBadRequest, "Missing identity", common.ErrInvalidInput)
		return
	}

	propertyID := c.Query("propertyId")
	if propertyID == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "propertyId is required", common.ErrInvalidInput)
		return
	}

	// Removing an absent pair is a silent no-op
	favorites, err := h.store.Remove(c.Request.Context(), identity, propertyID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "favorite update failed", err)
		return
	}

	c.JSON(http.StatusOK, domain.NewFavoriteSetResponse(identity, favorites))
}

// Toggle handles POST /favorites/toggle
// @Summary Toggle a property's favorite state
// @Tags favorites
// @Accept json
// @Produce json
// @Param request body favoriteRequest true "Property to toggle"
// @Success 200 {object} domain.FavoriteSetResponse
// @Router /favorites/toggle [post]
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	identity := middleware.GetIdentity(c)
	if identity.IsZero() {
		common.ErrorResponse(c, http.StatusBadRequest, "Missing identity", common.ErrInvalidInput)
		return
	}

	var req favoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "propertyId is required", err)
		return
	}

	favorites, err := h.store.Toggle(c.Request.Context(), identity, req.PropertyID)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "favorite update failed", err)
		return
	}

	c.JSON(http.StatusOK, domain.NewFavoriteSetResponse(identity, favorites))
}
