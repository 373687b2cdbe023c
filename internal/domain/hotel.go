package domain

import "time"

type HotelStatus string

const (
	HotelPending  HotelStatus = "pending"
	HotelApproved HotelStatus = "approved"
	HotelRejected HotelStatus = "rejected"
)

// PublishStatus governs traveler visibility and is independent from the
// registration review status above.
type PublishStatus string

const (
	PublishDraft     PublishStatus = "draft"
	PublishRequested PublishStatus = "publish_requested"
	Published        PublishStatus = "published"
	PublishRejected  PublishStatus = "publish_rejected"
)

const MaxHotelImages = 10

type Hotel struct {
	ID           int64        `json:"id"`
	OwnerID      int64        `json:"owner_id" gorm:"uniqueIndex"`
	Slug         string       `json:"slug" gorm:"uniqueIndex"`
	Name         string       `json:"name"`
	City         string       `json:"city"`
	Country      string       `json:"country"`
	Address      string       `json:"address"`
	Category     int          `json:"category"`
	Latitude     *float64     `json:"latitude,omitempty"`
	Longitude    *float64     `json:"longitude,omitempty"`
	Description  string       `json:"description"`
	CheckInTime  string       `json:"check_in_time,omitempty"`
	CheckOutTime string       `json:"check_out_time,omitempty"`
	Amenities    []string     `json:"amenities,omitempty" gorm:"serializer:json"`
	Languages    []string     `json:"languages,omitempty" gorm:"serializer:json"`
	Policies     []string     `json:"policies,omitempty" gorm:"serializer:json"`
	Images       []string     `json:"images,omitempty" gorm:"serializer:json"`
	Rating       float64      `json:"rating"`
	TotalReviews int          `json:"total_reviews"`
	Status       HotelStatus  `json:"status" gorm:"index"`
	PublishStatus PublishStatus `json:"publish_status" gorm:"index"`
	RejectedReason string     `json:"rejected_reason,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
	DeletedAt    *time.Time   `json:"-"`

	Rooms []Room `json:"rooms,omitempty"`
}

// Visible reports whether travelers may see this hotel in the catalog.
func (h *Hotel) Visible() bool {
	return h.Status == HotelApproved && h.PublishStatus == Published
}
