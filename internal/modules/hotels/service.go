package hotels

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"staybook/internal/domain"
	"staybook/internal/repository"
)

type Service struct {
	hotels HotelRepository
}

func NewService(hotels HotelRepository) *Service {
	return &Service{hotels: hotels}
}

// Register creates the manager's single hotel. It enters the admin's
// registration queue as pending and stays an unpublished draft until both
// reviews pass.
func (s *Service) Register(ctx context.Context, managerID int64, req RegisterHotelRequest) (*domain.Hotel, error) {
	if _, err := s.hotels.GetByOwnerID(ctx, managerID); err == nil {
		return nil, ErrHotelExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	slug, err := s.uniqueSlug(ctx, req.Name)
	if err != nil {
		return nil, err
	}

	category := req.Category
	if category == 0 {
		category = 1
	}

	hotel := &domain.Hotel{
		OwnerID:       managerID,
		Slug:          slug,
		Name:          req.Name,
		City:          req.City,
		Country:       req.Country,
		Address:       req.Address,
		Category:      category,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Description:   req.Description,
		CheckInTime:   req.CheckInTime,
		CheckOutTime:  req.CheckOutTime,
		Amenities:     req.Amenities,
		Languages:     req.Languages,
		Policies:      req.Policies,
		Images:        req.Images,
		Status:        domain.HotelPending,
		PublishStatus: domain.PublishDraft,
	}

	if err := s.hotels.Create(ctx, hotel); err != nil {
		// one hotel per manager, enforced by the unique owner index
		if repository.IsUniqueViolation(err, "") {
			return nil, ErrHotelExists
		}
		return nil, err
	}
	return hotel, nil
}

// GetOwn returns the manager's hotel with its rooms.
func (s *Service) GetOwn(ctx context.Context, managerID int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByOwnerID(ctx, managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return hotel, nil
}

// RequestPublish moves a draft or previously rejected hotel into the
// admin's publish queue. The registration itself must already be approved.
func (s *Service) RequestPublish(ctx context.Context, managerID int64) (*domain.Hotel, error) {
	hotel, err := s.GetOwn(ctx, managerID)
	if err != nil {
		return nil, err
	}

	if hotel.Status != domain.HotelApproved {
		return nil, ErrNotPublishable
	}
	if hotel.PublishStatus != domain.PublishDraft && hotel.PublishStatus != domain.PublishRejected {
		return nil, ErrNotPublishable
	}

	hotel.PublishStatus = domain.PublishRequested
	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *Service) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slugify(name)
	taken, err := s.hotels.CountBySlugPrefix(ctx, base)
	if err != nil {
		return "", err
	}
	return numberedSlug(base, taken), nil
}
