package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"gorm.io/gorm"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

var (
	ErrHotelNotFound = errors.New("hotel not found")
	ErrRoomNotFound  = errors.New("room not found")
)

const recentReviewsShown = 5

type Service struct {
	hotels  *repository.HotelRepository
	rooms   *repository.RoomRepository
	reviews *repository.ReviewRepository
	bookURL string
}

func NewService(
	hotels *repository.HotelRepository,
	rooms *repository.RoomRepository,
	reviews *repository.ReviewRepository,
	bookURL string,
) *Service {
	return &Service{hotels: hotels, rooms: rooms, reviews: reviews, bookURL: bookURL}
}

func (s *Service) ListHotels(ctx context.Context, f repository.HotelFilters) ([]domain.Hotel, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return s.hotels.ListPublished(ctx, f)
}

// GetBySlug returns a published hotel with rooms and its most recent
// reviews. Unpublished hotels do not exist as far as travelers know.
func (s *Service) GetBySlug(ctx context.Context, slug string) (*HotelDetailResponse, error) {
	hotel, err := s.hotels.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	if !hotel.Visible() {
		return nil, ErrHotelNotFound
	}

	reviews, _, err := s.reviews.ListByHotelID(ctx, hotel.ID, recentReviewsShown, 0)
	if err != nil {
		return nil, err
	}

	return &HotelDetailResponse{Hotel: hotel, Reviews: reviews}, nil
}

// BookingURL builds the handoff URL for the external booking flow. All
// booking parameters travel in the query string; nothing is reserved here.
func (s *Service) BookingURL(ctx context.Context, slug string, req BookRequest) (string, error) {
	hotel, err := s.hotels.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrHotelNotFound
		}
		return "", err
	}
	if !hotel.Visible() {
		return "", ErrHotelNotFound
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrRoomNotFound
		}
		return "", err
	}
	if room.HotelID != hotel.ID {
		return "", ErrRoomNotFound
	}

	q := url.Values{}
	q.Set("hotel", hotel.Slug)
	q.Set("room_id", strconv.FormatInt(room.ID, 10))
	q.Set("check_in", req.CheckIn)
	q.Set("check_out", req.CheckOut)
	if req.Guests > 0 {
		q.Set("guests", strconv.Itoa(req.Guests))
	}

	return fmt.Sprintf("%s?%s", s.bookURL, q.Encode()), nil
}
