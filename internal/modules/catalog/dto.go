package catalog

import "staybook/internal/domain"

type HotelListResponse struct {
	Hotels []domain.Hotel `json:"hotels"`
	Total  int64          `json:"total"`
	Page   int            `json:"page"`
	Limit  int            `json:"limit"`
}

type HotelDetailResponse struct {
	Hotel   *domain.Hotel   `json:"hotel"`
	Reviews []domain.Review `json:"reviews"`
}

type BookRequest struct {
	RoomID   int64  `form:"room_id" binding:"required"`
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
	Guests   int    `form:"guests"`
}

type BookResponse struct {
	RedirectURL string `json:"redirect_url"`
}
