package review

import "errors"

var (
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrAlreadyReviewed = errors.New("hotel already reviewed by this user")
)
