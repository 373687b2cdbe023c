package review

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"staybook/internal/domain"
	"staybook/internal/pkg/metrics"
	"staybook/internal/repository"
)

type Service struct {
	reviews *repository.ReviewRepository
	hotels  *repository.HotelRepository
	notifs  NotificationSender
	log     *zap.SugaredLogger
	metrics *metrics.Metrics
}

func NewService(
	reviews *repository.ReviewRepository,
	hotels *repository.HotelRepository,
	notifs NotificationSender,
	log *zap.SugaredLogger,
	m *metrics.Metrics,
) *Service {
	return &Service{reviews: reviews, hotels: hotels, notifs: notifs, log: log, metrics: m}
}

// Create stores one review per traveler per hotel and recomputes the
// hotel's rating aggregates in the same transaction.
func (s *Service) Create(ctx context.Context, userID int64, slug string, req CreateReviewRequest) (*domain.Review, error) {
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

	review := &domain.Review{
		HotelID: hotel.ID,
		UserID:  userID,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	err = s.reviews.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(review).Error; err != nil {
			if repository.IsUniqueViolation(err, "idx_one_review_per_user") {
				return ErrAlreadyReviewed
			}
			return err
		}

		// aggregates come from the committed reviews plus this one
		var agg struct {
			Count int64
			Avg   float64
		}
		if err := tx.Model(&domain.Review{}).
			Select("COUNT(*) AS count, AVG(rating) AS avg").
			Where("hotel_id = ?", hotel.ID).
			Scan(&agg).Error; err != nil {
			return err
		}

		return tx.Model(&domain.Hotel{}).
			Where("id = ?", hotel.ID).
			Updates(map[string]any{
				"rating":        agg.Avg,
				"total_reviews": agg.Count,
			}).Error
	})
	if err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if err := s.notifs.NotifyNewReview(ctx, hotel.OwnerID, hotel.ID, review.ID, review.Rating); err != nil {
			s.log.Warnw("review notification failed",
				"hotel_id", hotel.ID,
				"review_id", review.ID,
				"error", err,
			)
			if s.metrics != nil {
				s.metrics.NotificationFailures.Inc()
			}
		}
	}

	return review, nil
}

func (s *Service) ListByHotel(ctx context.Context, slug string, page, limit int) ([]domain.Review, int64, error) {
	hotel, err := s.hotels.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrHotelNotFound
		}
		return nil, 0, err
	}
	if !hotel.Visible() {
		return nil, 0, ErrHotelNotFound
	}

	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.reviews.ListByHotelID(ctx, hotel.ID, limit, (page-1)*limit)
}
