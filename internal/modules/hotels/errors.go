package hotels

import "errors"

var (
	ErrHotelExists    = errors.New("manager already has a hotel")
	ErrHotelNotFound  = errors.New("hotel not found")
	ErrNotPublishable = errors.New("hotel cannot request publishing in its current state")
)
