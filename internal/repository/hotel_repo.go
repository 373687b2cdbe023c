package repository

import (
	"context"

	"gorm.io/gorm"

	"staybook/internal/domain"
)

type HotelFilters struct {
	City        string
	Country     string
	MinCategory int
	MinPrice    float64
	MaxPrice    float64
	Amenity     string
	SortBy      string // "price", "rating", default created_at
	Limit       int
	Offset      int
}

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) DB() *gorm.DB {
	return r.db
}

// ListPublished returns traveler-visible hotels with optional filters.
func (r *HotelRepository) ListPublished(
	ctx context.Context,
	f HotelFilters,
) ([]domain.Hotel, int64, error) {

	var hotels []domain.Hotel
	var total int64

	q := r.db.WithContext(ctx).
		Model(&domain.Hotel{}).
		Where("status = ? AND publish_status = ? AND deleted_at IS NULL",
			domain.HotelApproved, domain.Published)

	if f.City != "" {
		q = q.Where("city = ?", f.City)
	}
	if f.Country != "" {
		q = q.Where("country = ?", f.Country)
	}
	if f.MinCategory > 0 {
		q = q.Where("category >= ?", f.MinCategory)
	}
	if f.Amenity != "" {
		// amenities is a JSON array column; match the quoted element
		q = q.Where("amenities LIKE ?", `%"`+f.Amenity+`"%`)
	}

	if f.MinPrice > 0 || f.MaxPrice > 0 {
		q = q.Joins("JOIN rooms ON rooms.hotel_id = hotels.id").Distinct("hotels.*")
		if f.MinPrice > 0 {
			q = q.Where("rooms.price_per_night >= ?", f.MinPrice)
		}
		if f.MaxPrice > 0 {
			q = q.Where("rooms.price_per_night <= ?", f.MaxPrice)
		}
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	switch f.SortBy {
	case "rating":
		q = q.Order("rating DESC")
	case "price":
		q = q.Order("(SELECT MIN(price_per_night) FROM rooms WHERE rooms.hotel_id = hotels.id) ASC")
	default:
		q = q.Order("created_at DESC")
	}

	err := q.
		Preload("Rooms").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&hotels).Error

	return hotels, total, err
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var hotel domain.Hotel
	err := r.db.WithContext(ctx).
		Where("hotels.id = ? AND deleted_at IS NULL", id).
		Preload("Rooms").
		First(&hotel).Error
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *HotelRepository) GetBySlug(ctx context.Context, slug string) (*domain.Hotel, error) {
	var hotel domain.Hotel
	err := r.db.WithContext(ctx).
		Where("slug = ? AND deleted_at IS NULL", slug).
		Preload("Rooms").
		First(&hotel).Error
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *HotelRepository) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Hotel, error) {
	var hotel domain.Hotel
	err := r.db.WithContext(ctx).
		Where("owner_id = ? AND deleted_at IS NULL", ownerID).
		Preload("Rooms").
		First(&hotel).Error
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *HotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *HotelRepository) Update(ctx context.Context, hotel *domain.Hotel) error {
	return r.db.WithContext(ctx).Save(hotel).Error
}

func (r *HotelRepository) CountBySlugPrefix(ctx context.Context, prefix string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Hotel{}).
		Where("slug = ? OR slug LIKE ?", prefix, prefix+"-%").
		Count(&n).Error
	return n, err
}
