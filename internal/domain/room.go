package domain

import "time"

type Room struct {
	ID             int64     `json:"id"`
	HotelID        int64     `json:"hotel_id" gorm:"index"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Capacity       int       `json:"capacity"`
	BedType        string    `json:"bed_type,omitempty"`
	SizeSqm        int       `json:"size_sqm,omitempty"`
	Amenities      []string  `json:"amenities,omitempty" gorm:"serializer:json"`
	PricePerNight  float64   `json:"price_per_night"`
	AvailableCount int       `json:"available_count"`
	MaxOccupancy   *int      `json:"max_occupancy,omitempty"`
	MinStayNights  *int      `json:"min_stay_nights,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
