package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"staybook/internal/domain"
)

// PendingRequestRow joins a pending change request with hotel and manager
// info for the admin review queue.
type PendingRequestRow struct {
	ID           int64     `json:"id"`
	HotelID      int64     `json:"hotel_id"`
	HotelName    string    `json:"hotel_name"`
	HotelSlug    string    `json:"hotel_slug"`
	ManagerID    int64     `json:"manager_id"`
	ManagerName  string    `json:"manager_name"`
	ManagerEmail string    `json:"manager_email"`
	ManagerNotes string    `json:"manager_notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type ChangeRequestRepository struct {
	db *gorm.DB
}

func NewChangeRequestRepository(db *gorm.DB) *ChangeRequestRepository {
	return &ChangeRequestRepository{db: db}
}

func (r *ChangeRequestRepository) DB() *gorm.DB {
	return r.db
}

func (r *ChangeRequestRepository) GetByID(ctx context.Context, id int64) (*domain.ChangeRequest, error) {
	var req domain.ChangeRequest
	if err := r.db.WithContext(ctx).First(&req, id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *ChangeRequestRepository) GetPendingByHotelID(ctx context.Context, hotelID int64) (*domain.ChangeRequest, error) {
	var req domain.ChangeRequest
	err := r.db.WithContext(ctx).
		Where("hotel_id = ? AND status = ?", hotelID, domain.RequestPending).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *ChangeRequestRepository) Create(ctx context.Context, req *domain.ChangeRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *ChangeRequestRepository) Save(ctx context.Context, req *domain.ChangeRequest) error {
	return r.db.WithContext(ctx).Save(req).Error
}

// Delete removes a request entirely. Only manager cancellation uses this;
// admin resolution keeps the row for audit.
func (r *ChangeRequestRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&domain.ChangeRequest{}, id).Error
}

func (r *ChangeRequestRepository) ListPending(ctx context.Context, limit, offset int) ([]PendingRequestRow, int64, error) {
	base := r.db.WithContext(ctx).
		Table("change_requests").
		Joins("JOIN hotels ON hotels.id = change_requests.hotel_id").
		Joins("JOIN users ON users.id = change_requests.manager_id").
		Where("change_requests.status = ?", domain.RequestPending)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []PendingRequestRow
	err := base.
		Select(`change_requests.id, change_requests.hotel_id, hotels.name AS hotel_name,
			hotels.slug AS hotel_slug, change_requests.manager_id, users.name AS manager_name,
			users.email AS manager_email, change_requests.manager_notes,
			change_requests.created_at, change_requests.updated_at`).
		Order("change_requests.created_at ASC").
		Limit(limit).
		Offset(offset).
		Scan(&rows).Error

	return rows, total, err
}
