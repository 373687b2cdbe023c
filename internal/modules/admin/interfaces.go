package admin

import (
	"context"

	"gorm.io/gorm"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	DB() *gorm.DB
}

type HotelRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	Update(ctx context.Context, hotel *domain.Hotel) error
	DB() *gorm.DB
}

type ChangeRequestRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.ChangeRequest, error)
	ListPending(ctx context.Context, limit, offset int) ([]repository.PendingRequestRow, int64, error)
	DB() *gorm.DB
}

type NotificationSender interface {
	NotifyChangeRequestResolved(ctx context.Context, managerID, requestID int64, approved bool, feedback string) error
	NotifyHotelReviewed(ctx context.Context, managerID, hotelID int64, approved bool, reason string) error
	NotifyPublishReviewed(ctx context.Context, managerID, hotelID int64, approved bool, reason string) error
}
