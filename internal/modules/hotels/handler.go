package hotels

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"staybook/internal/pkg/response"
	"staybook/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the manager hotel endpoints. The group is
// expected to carry JWTAuth plus ManagerOnly.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ht := rg.Group("/hotel")
	{
		ht.POST("", h.Register)
		ht.GET("", h.GetOwn)
		ht.POST("/publish", h.RequestPublish)
	}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid fields", fieldErrs)
		return
	}

	hotel, err := h.service.Register(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"hotel": hotel})
}

func (h *Handler) GetOwn(c *gin.Context) {
	hotel, err := h.service.GetOwn(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"hotel": hotel})
}

func (h *Handler) RequestPublish(c *gin.Context) {
	hotel, err := h.service.RequestPublish(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Publish requested", gin.H{"hotel": hotel})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrHotelExists):
		response.Error(c, http.StatusConflict, "HOTEL_EXISTS", "Manager already has a registered hotel")
	case errors.Is(err, ErrHotelNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
	case errors.Is(err, ErrNotPublishable):
		response.Error(c, http.StatusConflict, "INVALID_STATE", "Hotel cannot request publishing in its current state")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
