package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ddoc14896/Realty-Website-sub000/internal/common"
	"github.com/ddoc14896/Realty-Website-sub000/internal/domain"
	"github.com/ddoc14896/Realty-Website-sub000/internal/service"
)

// InquiryHandler handles inquiry HTTP requests
type InquiryHandler struct {
	service service.InquiryService
}

// NewInquiryHandler creates a new InquiryHandler
func NewInquiryHandler(service service.InquiryService) *InquiryHandler {
	return &InquiryHandler{service: service}
}

// Submit handles POST /properties/:id/inquiries
// @Summary Submit an inquiry about a listing
// @Tags inquiries
// @Accept json
// @Produce json
// @Param id path string true "Property ID"
// @Param request body domain.CreateInquiryRequest true "Inquiry"
// @Success 201 {object} common.APIResponse{data=domain.Inquiry}
// @Router /properties/{id}/inquiries [post]
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req domain.CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "name, email and message are required", err)
		return
	}

	inquiry, err := h.service.Submit(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, common.ErrPropertyNotFound) {
			common.ErrorResponse(c, http.StatusNotFound, "Property not found", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to submit inquiry", err)
		return
	}

	common.CreatedResponse(c, inquiry)
}

// List handles GET /admin/inquiries
// @Summary Back-office inquiry list
// @Tags admin
// @Produce json
// @Param status query string false "Filter by status (new/in-progress/closed)"
// @Param page query int false "Page (default 1)"
// @Param limit query int false "Page size (default 20)"
// @Success 200 {object} common.APIResponse{data=[]domain.Inquiry}
// @Security BearerAuth
// @Router /admin/inquiries [get]
func (h *InquiryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))
	status := domain.InquiryStatus(c.Query("status"))

	inquiries, meta, err := h.service.List(c.Request.Context(), status, page, limit)
	if err != nil {
		if errors.Is(err, common.ErrInvalidInquiryStatus) {
			common.ErrorResponse(c, http.StatusBadRequest, "Unknown inquiry status", err)
			return
		}
		common.ErrorResponse(c, http.StatusInternalServerError, "Failed to list inquiries", err)
		return
	}

	common.SuccessResponse(c, inquiries, meta)
}

// UpdateStatus handles PATCH /admin/inquiries/:id
// @Summary Move an inquiry to a new status
// @Tags admin
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param request body domain.UpdateInquiryStatusRequest true "New status"
// @Success 200 {object} common.APIResponse{data=domain.Inquiry}
// @Security BearerAuth
// @Router /admin/inquiries/{id} [patch]
func (h *InquiryHandler) UpdateStatus(c *gin.Context) {
	var req domain.UpdateInquiryStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "status is required", err)
		return
	}

	inquiry, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInquiryNotFound):
			common.ErrorResponse(c, http.StatusNotFound, "Inquiry not found", err)
		case errors.Is(err, common.ErrInvalidInquiryStatus):
			common.ErrorResponse(c, http.StatusBadRequest, "Unknown inquiry status", err)
		default:
			common.ErrorResponse(c, http.StatusInternalServerError, "Failed to update inquiry", err)
		}
		return
	}

	common.SuccessResponse(c, inquiry, nil)
}
