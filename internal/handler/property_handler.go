package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
	"github.com/ddoc14896/Realty-Website-sub000/internal/service"
	pkgstorage "github.com/ddoc14896/Realty-Website-sub000/pkg/storage"
)

// PropertyHandler handles property HTTP requests
type PropertyHandler struct {
	service service.PropertyService
	storage *pkgstorage.S3Client // nil when storage is not configured
}

// NewPropertyHandler creates a new PropertyHandler. storage may be nil.
func NewPropertyHandler(service service.PropertyService, storage *pkgstorage.S3Client) *PropertyHandler {
	return &PropertyHandler{service: service, storage: storage}
}

// Search handles GET /properties
// @Summary Search and browse listings
// @Tags properties
// @Produce json
// @Param q query string false "Free-text query over title, description and address"
// @Param location query string false "City or state substring"
// @Param minPrice query string false "Minimum price"
// @Param maxPrice query string false "Maximum price"
// @Param type query string false "Property type"
// @Param bedrooms query string false "Exact bedroom count"
// @Param bathrooms query string false "Minimum bathroom count"
// @Param status query string false "Listing status"
// @Param page query string false "Page (default 1)"
// @Param limit query string false "Page size (default 12)"
// @Success 200 {object} domain.SearchResponse
// @Router /properties [get]
func (h *PropertyHandler) Search(c *gin.Context) {
	filter := domain.ParseSearchFilter(c.Query)

	result, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Search failed", err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get handles GET /properties/:id
// @Summary Listing detail
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} common.APIResponse{data=domain.Property}
// @Failure 404 {object} common.ErrorInfo
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, common.ErrPropertyNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Property not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to load property", err)
		return
	}

	common.SuccessResponse(c, property, nil)
}

// FullTextSearch handles GET /search
// @Summary Relevance-ranked full-text search (Elasticsearch)
// @Tags properties
// @Produce json
// @Param q query string true "Query"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 12)"
// @Success 200 {object} common.APIResponse
// @Failure 503 {object} common.ErrorInfo
// @Router /search [get]
func (h *PropertyHandler) FullTextSearch(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "q is required", common.ErrInvalidInput)
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	result, err := h.service.FullTextSearch(c.Request.Context(), query, page, limit)
	if err != nil {
		common.ErrorResponse(c, http.StatusServiceUnavailable, "Full-text search unavailable", err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// Create handles POST /admin/properties
// @Summary Create a listing
// @Tags admin
// @Accept json
// @Produce json
// @Param request body domain.CreatePropertyRequest true "Listing"
// @Success 201 {object} common.APIResponse{data=domain.Property}
// @Security BearerAuth
// @Router /admin/properties [post]
func (h *PropertyHandler) Create(c *gin.Context) {
	var req domain.CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid listing payload", err)
		return
	}

	property, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInput) {
			common.ErrorResponse(c, http.StatusBadRequest, "Unknown property type or status", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to create property", err)
		return
	}

	common.CreatedResponse(c, property)
}

// Update handles PUT /admin/properties/:id
// @Summary Update a listing
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body domain.UpdatePropertyRequest true "Changed fields"
// @Success 200 {object} common.APIResponse{data=domain.Property}
// @Security BearerAuth
// @Router /admin/properties/{id} [put]
func (h *PropertyHandler) Update(c *gin.Context) {
	var req domain.UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Invalid listing payload", err)
		return
	}

	property, err := h.service.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrPropertyNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Property not found", err)
		case errors.Is(err, common.ErrInvalidInput):
			common.ErrorResponse(c, http.StatusBadRequest, "Unknown property type or status", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update property", err)
		}
		return
	}

	common.SuccessResponse(c, property, nil)
}

// Delete handles DELETE /admin/properties/:id
// @Summary Delete a listing
// @Tags admin
// @Produce json
// @Param id path string true "Property ID"
// @Success 204
// @Security BearerAuth
// @Router /admin/properties/{id} [delete]
func (h *PropertyHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, common.ErrPropertyNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Property not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete property", err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UploadImage handles POST /admin/properties/:id/images
// @Summary Upload a listing image
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Property ID"
// @Param file formData file true "Image file"
// @Success 200 {object} common.APIResponse{data=storage.UploadResult}
// @Failure 503 {object} common.ErrorInfo
// @Security BearerAuth
// @Router /admin/properties/{id}/images [post]
func (h *PropertyHandler) UploadImage(c *gin.Context) {
	if h.storage == nil {
		common.ErrorResponse(c, http.StatusServiceUnavailable, "Image storage not configured", nil)
		return
	}

	propertyID := c.Param("id")
	if _, err := h.service.Get(c.Request.Context(), propertyID); err != nil {
		common.ErrorResponse(c, http.StatusNotFound, "Property not found", err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "file is required", err)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "Failed to read file", err)
		return
	}
	defer file.Close()

	key := pkgstorage.GenerateKey(propertyID, fileHeader.Filename)
	contentType := fileHeader.Header.Get("Content-Type")
	result, err := h.storage.Upload(c.Request.Context(), key, file, contentType, fileHeader.Size)
	if err != nil {
		common.ErrorResponse(c, http.StatusInternalServerError, "Upload failed", err)
		return
	}

	common.SuccessResponse(c, result, nil)
}

// Reindex handles POST /admin/search/reindex
// @Summary Rebuild the Elasticsearch property index
// @Tags admin
// @Produce json
// @Success 200 {object} common.APIResponse
// @Failure 503 {object} common.ErrorInfo
// @Security BearerAuth
// @Router /admin/search/reindex [post]
func (h *PropertyHandler) Reindex(c *gin.Context) {
	count, err := h.service.Reindex(c.Request.Context())
	if err != nil {
		common.ErrorResponse(c, http.StatusServiceUnavailable, "Reindex failed", err)
		return
	}

	common.SuccessResponse(c, gin.H{"indexed": count}, nil)
}
