package admin

import (
	"staybook/internal/domain"
	"staybook/internal/repository"
)

type RejectRequest struct {
	Feedback string `json:"feedback" binding:"required"`
}

type RejectHotelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type PendingRequestListResponse struct {
	Requests []repository.PendingRequestRow `json:"requests"`
	Total    int                            `json:"total"`
	Page     int                            `json:"page"`
	Limit    int                            `json:"limit"`
}

type HotelListResponse struct {
	Hotels []domain.Hotel `json:"hotels"`
	Total  int            `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

type StatisticsResponse struct {
	TotalUsers             int `json:"total_users"`
	TotalHotels            int `json:"total_hotels"`
	PublishedHotels        int `json:"published_hotels"`
	PendingRegistrations   int `json:"pending_registrations"`
	PendingPublishRequests int `json:"pending_publish_requests"`
	PendingChangeRequests  int `json:"pending_change_requests"`
}
