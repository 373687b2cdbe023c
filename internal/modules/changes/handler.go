package changes

import (
	"errors"
	"net/http"
	"strconv"

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

// RegisterRoutes attaches the manager change-request endpoints. The group
// is expected to carry JWTAuth plus ManagerOnly.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	cr := rg.Group("/change-request")
	{
		cr.GET("", h.GetPending)
		cr.DELETE("", h.Cancel)
		cr.PUT("/hotel", h.SubmitHotelChanges)
		cr.POST("/rooms", h.SubmitRoomCreate)
		cr.PUT("/rooms/:id", h.SubmitRoomUpdate)
		cr.DELETE("/rooms/:id", h.SubmitRoomDelete)
		cr.PUT("/notes", h.UpdateNotes)
	}
}

func (h *Handler) GetPending(c *gin.Context) {
	view, err := h.service.ResolvePending(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, view)
}

func (h *Handler) SubmitHotelChanges(c *gin.Context) {
	var req HotelChangesInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid fields", fieldErrs)
		return
	}

	res, err := h.service.SubmitHotelChanges(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.submitResponse(c, res)
}

func (h *Handler) SubmitRoomCreate(c *gin.Context) {
	var req RoomCreateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid fields", fieldErrs)
		return
	}

	res, err := h.service.SubmitRoomCreate(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.submitResponse(c, res)
}

func (h *Handler) SubmitRoomUpdate(c *gin.Context) {
	roomID, ok := h.roomID(c)
	if !ok {
		return
	}

	var req RoomUpdateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fieldErrs := validator.Validate(req); fieldErrs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid fields", fieldErrs)
		return
	}

	res, err := h.service.SubmitRoomUpdate(c.Request.Context(), c.GetInt64("user_id"), roomID, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.submitResponse(c, res)
}

func (h *Handler) SubmitRoomDelete(c *gin.Context) {
	roomID, ok := h.roomID(c)
	if !ok {
		return
	}

	res, err := h.service.SubmitRoomDelete(c.Request.Context(), c.GetInt64("user_id"), roomID)
	if err != nil {
		h.fail(c, err)
		return
	}
	h.submitResponse(c, res)
}

func (h *Handler) UpdateNotes(c *gin.Context) {
	var req UpdateNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	cr, err := h.service.UpdateNotes(c.Request.Context(), c.GetInt64("user_id"), req.Notes)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"request": cr})
}

func (h *Handler) Cancel(c *gin.Context) {
	if err := h.service.Cancel(c.Request.Context(), c.GetInt64("user_id")); err != nil {
		h.fail(c, err)
		return
	}
	response.Message(c, http.StatusOK, "Change request cancelled", nil)
}

func (h *Handler) submitResponse(c *gin.Context, res *SubmitResult) {
	if res.NoChanges {
		response.Message(c, http.StatusOK, "No changes detected", nil)
		return
	}
	response.Message(c, http.StatusOK, "Changes saved for review", gin.H{"request": res.Request})
}

func (h *Handler) roomID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid room ID")
		return 0, false
	}
	return id, true
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrHotelNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Hotel not found")
	case errors.Is(err, ErrRoomNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
	case errors.Is(err, ErrRequestNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "No pending change request")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Operation failed")
	}
}
