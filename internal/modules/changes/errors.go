package changes

import "errors"

var (
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRequestNotFound = errors.New("change request not found")
	ErrValidation      = errors.New("validation error")
)
