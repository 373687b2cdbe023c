package changes

import "staybook/internal/domain"

// HotelChangesInput is a candidate set of hotel field updates. A nil field
// means the caller did not intend a change.
type HotelChangesInput struct {
	Category     *int      `json:"category,omitempty" validate:"omitempty,min=1,max=5"`
	Latitude     *float64  `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude    *float64  `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	CheckInTime  *string   `json:"check_in_time,omitempty"`
	CheckOutTime *string   `json:"check_out_time,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Amenities    *[]string `json:"amenities,omitempty"`
	Languages    *[]string `json:"languages,omitempty"`
	Policies     *[]string `json:"policies,omitempty"`
	Images       *[]string `json:"images,omitempty" validate:"omitempty,max=10,dive,url"`
}

type RoomCreateInput struct {
	Name           string   `json:"name" validate:"required"`
	Description    string   `json:"description,omitempty"`
	Capacity       int      `json:"capacity" validate:"required,gt=0"`
	BedType        string   `json:"bed_type,omitempty"`
	SizeSqm        int      `json:"size_sqm,omitempty" validate:"omitempty,gt=0"`
	Amenities      []string `json:"amenities,omitempty"`
	PricePerNight  float64  `json:"price_per_night" validate:"required,gt=0"`
	AvailableCount int      `json:"available_count" validate:"required,gt=0"`
	MaxOccupancy   *int     `json:"max_occupancy,omitempty" validate:"omitempty,gt=0"`
	MinStayNights  *int     `json:"min_stay_nights,omitempty" validate:"omitempty,gt=0"`
}

type RoomUpdateInput struct {
	Name           *string   `json:"name,omitempty"`
	Description    *string   `json:"description,omitempty"`
	Capacity       *int      `json:"capacity,omitempty" validate:"omitempty,gt=0"`
	BedType        *string   `json:"bed_type,omitempty"`
	SizeSqm        *int      `json:"size_sqm,omitempty" validate:"omitempty,gt=0"`
	Amenities      *[]string `json:"amenities,omitempty"`
	PricePerNight  *float64  `json:"price_per_night,omitempty" validate:"omitempty,gt=0"`
	AvailableCount *int      `json:"available_count,omitempty" validate:"omitempty,gte=0"`
	MaxOccupancy   *int      `json:"max_occupancy,omitempty" validate:"omitempty,gt=0"`
	MinStayNights  *int      `json:"min_stay_nights,omitempty" validate:"omitempty,gt=0"`
}

type UpdateNotesRequest struct {
	Notes string `json:"notes" validate:"max=2000"`
}

// SubmitResult distinguishes "your edit was a no-op" from failure. NoChanges
// true means nothing was written; Request is nil in that case unless a
// pending request already existed.
type SubmitResult struct {
	Request   *domain.ChangeRequest
	NoChanges bool
}

// PendingView is what a manager sees: the accumulated request plus the
// current hotel state it diffs against.
type PendingView struct {
	Request *domain.ChangeRequest `json:"request"`
	Hotel   *domain.Hotel         `json:"hotel"`
}
