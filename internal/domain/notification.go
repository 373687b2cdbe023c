package domain

import (
	"encoding/json"
	"time"
)

type NotificationType string

const (
	NotifChangeRequestSubmitted NotificationType = "change_request_submitted"
	NotifChangeRequestApproved  NotificationType = "change_request_approved"
	NotifChangeRequestRejected  NotificationType = "change_request_rejected"
	NotifHotelApproved          NotificationType = "hotel_approved"
	NotifHotelRejected          NotificationType = "hotel_rejected"
	NotifPublishApproved        NotificationType = "publish_approved"
	NotifPublishRejected        NotificationType = "publish_rejected"
	NotifNewReview              NotificationType = "new_review"
)

type Notification struct {
	ID        int64            `json:"id"`
	UserID    int64            `json:"user_id" gorm:"index"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message,omitempty"`
	Data      json.RawMessage  `json:"data,omitempty"`
	IsRead    bool             `json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
}
