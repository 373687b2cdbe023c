package admin

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"staybook/internal/domain"
	"staybook/internal/pkg/metrics"
	"staybook/internal/repository"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrFeedbackRequired = errors.New("feedback is required")
	ErrInvalidState     = errors.New("invalid state for this transition")
)

type Service struct {
	users    UserRepository
	hotels   HotelRepository
	requests ChangeRequestRepository
	notifs   NotificationSender
	log      *zap.SugaredLogger
	metrics  *metrics.Metrics
}

func NewService(
	users UserRepository,
	hotels HotelRepository,
	requests ChangeRequestRepository,
	notifs NotificationSender,
	log *zap.SugaredLogger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		users:    users,
		hotels:   hotels,
		requests: requests,
		notifs:   notifs,
		log:      log,
		metrics:  m,
	}
}

// -------------------- Change requests --------------------

func (s *Service) ListPendingRequests(ctx context.Context, page, limit int) ([]repository.PendingRequestRow, int, error) {
	page, limit = clampPage(page, limit)
	rows, total, err := s.requests.ListPending(ctx, limit, (page-1)*limit)
	return rows, int(total), err
}

func (s *Service) GetRequest(ctx context.Context, id int64) (*domain.ChangeRequest, *domain.Hotel, error) {
	req, err := s.requests.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}

	hotel, err := s.hotels.GetByID(ctx, req.HotelID)
	if err != nil {
		return nil, nil, err
	}
	return req, hotel, nil
}

// ApproveRequest applies every accumulated change in one transaction: the
// request is the unit of atomicity as the manager perceives it. Either the
// hotel row, every room operation, and the status flip all land, or none
// do.
func (s *Service) ApproveRequest(ctx context.Context, requestID, adminID int64) (*domain.ChangeRequest, error) {
	var approved domain.ChangeRequest

	err := s.requests.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var req domain.ChangeRequest
		if err := tx.Where("id = ? AND status = ?", requestID, domain.RequestPending).
			First(&req).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var hotel domain.Hotel
		if err := tx.First(&hotel, req.HotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		now := time.Now()

		if updates := req.HotelChanges.Fields(); len(updates) > 0 {
			updates["updated_at"] = now
			if err := tx.Model(&domain.Hotel{}).
				Where("id = ?", hotel.ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		for _, rc := range req.RoomChanges {
			if err := applyRoomChange(tx, hotel.ID, rc, now); err != nil {
				return err
			}
		}

		if err := tx.Model(&domain.ChangeRequest{}).
			Where("id = ?", req.ID).
			Updates(map[string]any{
				"status":      domain.RequestApproved,
				"reviewed_by": adminID,
				"reviewed_at": now,
				"updated_at":  now,
			}).Error; err != nil {
			return err
		}

		req.Status = domain.RequestApproved
		req.ReviewedBy = &adminID
		req.ReviewedAt = &now
		approved = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ChangeRequestsResolved.WithLabelValues("approved").Inc()
	}
	s.notifyResolved(ctx, &approved, true, "")

	return &approved, nil
}

// RejectRequest records feedback and discards the changes without applying
// anything. The manager may resubmit, which opens a fresh pending request.
func (s *Service) RejectRequest(ctx context.Context, requestID, adminID int64, feedback string) (*domain.ChangeRequest, error) {
	if strings.TrimSpace(feedback) == "" {
		return nil, ErrFeedbackRequired
	}

	req, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.Status != domain.RequestPending {
		return nil, ErrNotFound
	}

	now := time.Now()
	if err := s.requests.DB().WithContext(ctx).
		Model(&domain.ChangeRequest{}).
		Where("id = ? AND status = ?", req.ID, domain.RequestPending).
		Updates(map[string]any{
			"status":         domain.RequestRejected,
			"admin_feedback": feedback,
			"reviewed_by":    adminID,
			"reviewed_at":    now,
			"updated_at":     now,
		}).Error; err != nil {
		return nil, err
	}

	req.Status = domain.RequestRejected
	req.AdminFeedback = feedback
	req.ReviewedBy = &adminID
	req.ReviewedAt = &now

	if s.metrics != nil {
		s.metrics.ChangeRequestsResolved.WithLabelValues("rejected").Inc()
	}
	s.notifyResolved(ctx, req, false, feedback)

	return req, nil
}

func applyRoomChange(tx *gorm.DB, hotelID int64, rc domain.RoomChange, now time.Time) error {
	switch rc.Action {
	case domain.ActionCreate:
		if rc.Data == nil {
			return ErrInvalidState
		}
		room := rc.Data.ToRoom(hotelID)
		return tx.Create(&room).Error

	case domain.ActionUpdate:
		if rc.RoomID == nil || rc.Patch == nil {
			return ErrInvalidState
		}
		updates := rc.Patch.Fields()
		if len(updates) == 0 {
			return nil
		}
		updates["updated_at"] = now
		res := tx.Model(&domain.Room{}).
			Where("id = ? AND hotel_id = ?", *rc.RoomID, hotelID).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil

	case domain.ActionDelete:
		if rc.RoomID == nil {
			return ErrInvalidState
		}
		res := tx.Where("id = ? AND hotel_id = ?", *rc.RoomID, hotelID).
			Delete(&domain.Room{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	}

	return ErrInvalidState
}

func (s *Service) notifyResolved(ctx context.Context, req *domain.ChangeRequest, approved bool, feedback string) {
	if s.notifs == nil {
		return
	}
	if err := s.notifs.NotifyChangeRequestResolved(ctx, req.ManagerID, req.ID, approved, feedback); err != nil {
		s.log.Warnw("manager notification failed",
			"request_id", req.ID,
			"manager_id", req.ManagerID,
			"error", err,
		)
		if s.metrics != nil {
			s.metrics.NotificationFailures.Inc()
		}
	}
}

// -------------------- Registration review --------------------

func (s *Service) ListPendingHotels(ctx context.Context, page, limit int) ([]domain.Hotel, int, error) {
	page, limit = clampPage(page, limit)

	var total int64
	base := s.hotels.DB().WithContext(ctx).
		Model(&domain.Hotel{}).
		Where("status = ? AND deleted_at IS NULL", domain.HotelPending)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hotels []domain.Hotel
	if err := base.
		Order("created_at ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&hotels).Error; err != nil {
		return nil, 0, err
	}

	return hotels, int(total), nil
}

func (s *Service) ApproveHotel(ctx context.Context, hotelID, adminID int64) (*domain.Hotel, error) {
	hotel, err := s.pendingHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	hotel.Status = domain.HotelApproved
	hotel.RejectedReason = ""
	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}

	s.notifyHotelReviewed(ctx, hotel, true, "")
	return hotel, nil
}

func (s *Service) RejectHotel(ctx context.Context, hotelID, adminID int64, reason string) (*domain.Hotel, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrFeedbackRequired
	}

	hotel, err := s.pendingHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	hotel.Status = domain.HotelRejected
	hotel.RejectedReason = reason
	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}

	s.notifyHotelReviewed(ctx, hotel, false, reason)
	return hotel, nil
}

func (s *Service) pendingHotel(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if hotel.Status != domain.HotelPending {
		return nil, ErrInvalidState
	}
	return hotel, nil
}

func (s *Service) notifyHotelReviewed(ctx context.Context, hotel *domain.Hotel, approved bool, reason string) {
	if s.notifs == nil {
		return
	}
	if err := s.notifs.NotifyHotelReviewed(ctx, hotel.OwnerID, hotel.ID, approved, reason); err != nil {
		s.log.Warnw("registration notification failed",
			"hotel_id", hotel.ID,
			"error", err,
		)
		if s.metrics != nil {
			s.metrics.NotificationFailures.Inc()
		}
	}
}

// -------------------- Publish review --------------------

func (s *Service) ListPublishRequests(ctx context.Context, page, limit int) ([]domain.Hotel, int, error) {
	page, limit = clampPage(page, limit)

	var total int64
	base := s.hotels.DB().WithContext(ctx).
		Model(&domain.Hotel{}).
		Where("publish_status = ? AND deleted_at IS NULL", domain.PublishRequested)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hotels []domain.Hotel
	if err := base.
		Order("updated_at ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&hotels).Error; err != nil {
		return nil, 0, err
	}

	return hotels, int(total), nil
}

func (s *Service) ApprovePublish(ctx context.Context, hotelID, adminID int64) (*domain.Hotel, error) {
	hotel, err := s.publishRequestedHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	hotel.PublishStatus = domain.Published
	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}

	s.notifyPublishReviewed(ctx, hotel, true, "")
	return hotel, nil
}

func (s *Service) RejectPublish(ctx context.Context, hotelID, adminID int64, reason string) (*domain.Hotel, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, ErrFeedbackRequired
	}

	hotel, err := s.publishRequestedHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	hotel.PublishStatus = domain.PublishRejected
	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}

	s.notifyPublishReviewed(ctx, hotel, false, reason)
	return hotel, nil
}

func (s *Service) publishRequestedHotel(ctx context.Context, hotelID int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if hotel.PublishStatus != domain.PublishRequested {
		return nil, ErrInvalidState
	}
	return hotel, nil
}

func (s *Service) notifyPublishReviewed(ctx context.Context, hotel *domain.Hotel, approved bool, reason string) {
	if s.notifs == nil {
		return
	}
	if err := s.notifs.NotifyPublishReviewed(ctx, hotel.OwnerID, hotel.ID, approved, reason); err != nil {
		s.log.Warnw("publish notification failed",
			"hotel_id", hotel.ID,
			"error", err,
		)
		if s.metrics != nil {
			s.metrics.NotificationFailures.Inc()
		}
	}
}

// -------------------- Statistics --------------------

func (s *Service) GetStatistics(ctx context.Context) (*StatisticsResponse, error) {
	out := &StatisticsResponse{}

	var n int64
	if err := s.users.DB().WithContext(ctx).Model(&domain.User{}).Count(&n).Error; err != nil {
		return nil, err
	}
	out.TotalUsers = int(n)

	if err := s.hotels.DB().WithContext(ctx).Model(&domain.Hotel{}).
		Where("deleted_at IS NULL").Count(&n).Error; err != nil {
		return nil, err
	}
	out.TotalHotels = int(n)

	if err := s.hotels.DB().WithContext(ctx).Model(&domain.Hotel{}).
		Where("status = ? AND publish_status = ? AND deleted_at IS NULL",
			domain.HotelApproved, domain.Published).Count(&n).Error; err != nil {
		return nil, err
	}
	out.PublishedHotels = int(n)

	if err := s.hotels.DB().WithContext(ctx).Model(&domain.Hotel{}).
		Where("status = ? AND deleted_at IS NULL", domain.HotelPending).Count(&n).Error; err != nil {
		return nil, err
	}
	out.PendingRegistrations = int(n)

	if err := s.hotels.DB().WithContext(ctx).Model(&domain.Hotel{}).
		Where("publish_status = ? AND deleted_at IS NULL", domain.PublishRequested).Count(&n).Error; err != nil {
		return nil, err
	}
	out.PendingPublishRequests = int(n)

	if err := s.requests.DB().WithContext(ctx).Model(&domain.ChangeRequest{}).
		Where("status = ?", domain.RequestPending).Count(&n).Error; err != nil {
		return nil, err
	}
	out.PendingChangeRequests = int(n)

	return out, nil
}

func clampPage(page, limit int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return page, limit
}
