package hotels

import (
	"context"

	"staybook/internal/domain"
)

type HotelRepository interface {
	GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Hotel, error)
	Create(ctx context.Context, hotel *domain.Hotel) error
	Update(ctx context.Context, hotel *domain.Hotel) error
	CountBySlugPrefix(ctx context.Context, prefix string) (int64, error)
}
