package domain

import "time"

type Review struct {
	ID        int64     `json:"id"`
	HotelID   int64     `json:"hotel_id" gorm:"uniqueIndex:idx_one_review_per_user"`
	UserID    int64     `json:"user_id" gorm:"uniqueIndex:idx_one_review_per_user"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
