package changes

import (
	"context"

	"staybook/internal/domain"
)

type HotelRepository interface {
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Hotel, error)
}

type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

type ChangeRequestRepository interface {
	GetPendingByHotelID(ctx context.Context, hotelID int64) (*domain.ChangeRequest, error)
	Create(ctx context.Context, req *domain.ChangeRequest) error
	Save(ctx context.Context, req *domain.ChangeRequest) error
	Delete(ctx context.Context, id int64) error
}

type NotificationSender interface {
	NotifyChangeRequestSubmitted(ctx context.Context, hotelID, requestID int64, hotelName string) error
}
