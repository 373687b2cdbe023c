package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"staybook/internal/pkg/response"
	"staybook/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the public catalog endpoints. No auth required.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	ht := rg.Group("/hotels")
	{
		ht.GET("", h.ListHotels)
		ht.GET("/:slug", h.GetHotel)
		ht.GET("/:slug/book", h.Book)
	}
}

func (h *Handler) ListHotels(c *gin.Context) {
	var f repository.HotelFilters

	f.City = c.Query("city")
	f.Country = c.Query("country")
	f.Amenity = c.Query("amenity")
	f.SortBy = c.Query("sort")

	if v := c.Query("min_category"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.MinCategory = n
		}
	}
	if v := c.Query("min_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = n
		}
	}
	if v := c.Query("max_price"); v != "" {
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = n
		}
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	f.Limit = limit
	f.Offset = (page - 1) * limit

	hotels, total, err := h.service.ListHotels(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list hotels")
		return
	}
	response.Success(c, http.StatusOK, HotelListResponse{Hotels: hotels, Total: total, Page: page, Limit: limit})
}

func (h *Handler) GetHotel(c *gin.Context) {
	detail, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, detail)
}

func (h *Handler) Book(c *gin.Context) {
	var req BookRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "room_id, check_in and check_out are required")
		return
	}

	redirect, err := h.service.BookingURL(c.Request.Context(), c.Param("slug"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, BookResponse{RedirectURL: redirect})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrHotelNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
