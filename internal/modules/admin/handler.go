package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staybook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the review-queue endpoints. The group is expected
// to carry JWTAuth plus AdminOnly.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ad := rg.Group("/admin")
	{
		ad.GET("/change-requests", h.ListPendingRequests)
		ad.GET("/change-requests/:id", h.GetRequest)
		ad.POST("/change-requests/:id/approve", h.ApproveRequest)
		ad.POST("/change-requests/:id/reject", h.RejectRequest)

		ad.GET("/hotels/pending", h.ListPendingHotels)
		ad.POST("/hotels/:id/approve", h.ApproveHotel)
		ad.POST("/hotels/:id/reject", h.RejectHotel)

		ad.GET("/hotels/publish-requests", h.ListPublishRequests)
		ad.POST("/hotels/:id/publish/approve", h.ApprovePublish)
		ad.POST("/hotels/:id/publish/reject", h.RejectPublish)

		ad.GET("/statistics", h.GetStatistics)
	}
}

func (h *Handler) ListPendingRequests(c *gin.Context) {
	page, limit := pagination(c)
	rows, total, err := h.service.ListPendingRequests(c.Request.Context(), page, limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, PendingRequestListResponse{
		Requests: rows,
		Total:    total,
		Page:     page,
		Limit:    limit,
	})
}

func (h *Handler) GetRequest(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	req, hotel, err := h.service.GetRequest(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"request": req,
		"hotel":   hotel,
	})
}

func (h *Handler) ApproveRequest(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	req, err := h.service.ApproveRequest(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Change request approved and applied", gin.H{"request": req})
}

func (h *Handler) RejectRequest(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var body RejectRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Feedback is required")
		return
	}

	req, err := h.service.RejectRequest(c.Request.Context(), id, c.GetInt64("user_id"), body.Feedback)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Change request rejected", gin.H{"request": req})
}

func (h *Handler) ListPendingHotels(c *gin.Context) {
	page, limit := pagination(c)
	hotels, total, err := h.service.ListPendingHotels(c.Request.Context(), page, limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, HotelListResponse{Hotels: hotels, Total: total, Page: page, Limit: limit})
}

func (h *Handler) ApproveHotel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	hotel, err := h.service.ApproveHotel(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Hotel registration approved", gin.H{"hotel": hotel})
}

func (h *Handler) RejectHotel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var body RejectHotelRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Reason is required")
		return
	}

	hotel, err := h.service.RejectHotel(c.Request.Context(), id, c.GetInt64("user_id"), body.Reason)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Hotel registration rejected", gin.H{"hotel": hotel})
}

func (h *Handler) ListPublishRequests(c *gin.Context) {
	page, limit := pagination(c)
	hotels, total, err := h.service.ListPublishRequests(c.Request.Context(), page, limit)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, HotelListResponse{Hotels: hotels, Total: total, Page: page, Limit: limit})
}

func (h *Handler) ApprovePublish(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	hotel, err := h.service.ApprovePublish(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Hotel published", gin.H{"hotel": hotel})
}

func (h *Handler) RejectPublish(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var body RejectHotelRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Reason is required")
		return
	}

	hotel, err := h.service.RejectPublish(c.Request.Context(), id, c.GetInt64("user_id"), body.Reason)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Publish request rejected", gin.H{"hotel": hotel})
}

func (h *Handler) GetStatistics(c *gin.Context) {
	stats, err := h.service.GetStatistics(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, ErrFeedbackRequired):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Feedback is required")
	case errors.Is(err, ErrInvalidState):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Resource is not in a reviewable state")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid ID")
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return clampPage(page, limit)
}
