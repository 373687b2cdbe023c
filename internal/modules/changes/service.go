package changes

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
	hotels   HotelRepository
	rooms    RoomRepository
	requests ChangeRequestRepository
	notifs   NotificationSender
	log      *zap.SugaredLogger
	metrics  *metrics.Metrics
}

func NewService(
	hotels HotelRepository,
	rooms RoomRepository,
	requests ChangeRequestRepository,
	notifs NotificationSender,
	log *zap.SugaredLogger,
	m *metrics.Metrics,
) *Service {
	return &Service{
		hotels:   hotels,
		rooms:    rooms,
		requests: requests,
		notifs:   notifs,
		log:      log,
		metrics:  m,
	}
}

// ResolvePending returns the single active pending request for the
// manager's hotel, creating an empty one if none exists. Idempotent:
// repeated calls before any edit return the same request id.
func (s *Service) ResolvePending(ctx context.Context, managerID int64) (*PendingView, error) {
	hotel, err := s.ownHotel(ctx, managerID)
	if err != nil {
		return nil, err
	}

	req, err := s.findOrCreatePending(ctx, hotel)
	if err != nil {
		return nil, err
	}

	return &PendingView{Request: req, Hotel: hotel}, nil
}

// SubmitHotelChanges diffs the candidate fields against the current hotel
// state and merges the result into the pending request. An empty diff is a
// no-op: nothing is created or written.
func (s *Service) SubmitHotelChanges(ctx context.Context, managerID int64, in HotelChangesInput) (*SubmitResult, error) {
	hotel, err := s.ownHotel(ctx, managerID)
	if err != nil {
		return nil, err
	}

	diff := DiffHotel(hotel, in)
	if diff.IsEmpty() {
		return &SubmitResult{NoChanges: true}, nil
	}

	req, err := s.findOrCreatePending(ctx, hotel)
	if err != nil {
		return nil, err
	}

	req.HotelChanges = req.HotelChanges.Merge(diff)
	return s.persistAndNotify(ctx, hotel, req)
}

func (s *Service) SubmitRoomCreate(ctx context.Context, managerID int64, in RoomCreateInput) (*SubmitResult, error) {
	hotel, err := s.ownHotel(ctx, managerID)
	if err != nil {
		return nil, err
	}

	req, err := s.findOrCreatePending(ctx, hotel)
	if err != nil {
		return nil, err
	}

	data := domain.RoomData{
		Name:           in.Name,
		Description:    in.Description,
		Capacity:       in.Capacity,
		BedType:        in.BedType,
		SizeSqm:        in.SizeSqm,
		Amenities:      in.Amenities,
		PricePerNight:  in.PricePerNight,
		AvailableCount: in.AvailableCount,
		MaxOccupancy:   in.MaxOccupancy,
		MinStayNights:  in.MinStayNights,
	}
	req.RoomChanges = append(req.RoomChanges, domain.RoomChange{
		Action: domain.ActionCreate,
		Data:   &data,
	})

	return s.persistAndNotify(ctx, hotel, req)
}

func (s *Service) SubmitRoomUpdate(ctx context.Context, managerID, roomID int64, in RoomUpdateInput) (*SubmitResult, error) {
	hotel, err := s.ownHotel(ctx, managerID)
	if err != nil {
		return nil, err
	}

	room, err := s.hotelRoom(ctx, hotel, roomID)
	if err != nil {
		return nil, err
	}

	patch := DiffRoom(room, in)
	if patch.IsEmpty() {
		return &SubmitResult{NoChanges: true}, nil
	}

	req, err := s.findOrCreatePending(ctx, hotel)
	if err != nil {
		return nil, err
	}

	req.RoomChanges = Supersede(req.RoomChanges, domain.RoomChange{
		Action: domain.ActionUpdate,
		RoomID: &roomID,
		Patch:  &patch,
	})

	return s.persistAndNotify(ctx, hotel, req)
}

func (s *Service) SubmitRoomDelete(ctx context.Context, managerID, roomID int64) (*SubmitResult, error) {
	hotel, err := s.ownHotel(ctx, managerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.hotelRoom(ctx, hotel, roomID); err != nil {
		return nil, err
	}

	req, err := s.findOrCreatePending(ctx, hotel)
	if err != nil {
		return nil, err
	}

	req.RoomChanges = Supersede(req.RoomChanges, domain.RoomChange{
		Action: domain.ActionDelete,
		RoomID: &roomID,
	})

	return s.persistAndNotify(ctx, hotel, req)
}

// UpdateNotes mutates the free-text context on the pending request.
func (s *Service) UpdateNotes(ctx context.Context, managerID int64, notes string) (*domain.ChangeRequest, error) {
	hotel, err := s.ownHotel(ctx, managerID)
	if err != nil {
		return nil, err
	}

	req, err := s.findOrCreatePending(ctx, hotel)
	if err != nil {
		return nil, err
	}

	req.ManagerNotes = notes
	if err := s.requests.Save(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

// Cancel discards the pending request and all accumulated diffs. Nothing
// was applied yet, so there is nothing to roll back.
func (s *Service) Cancel(ctx context.Context, managerID int64) error {
	hotel, err := s.ownHotel(ctx, managerID)
	if err != nil {
		return err
	}

	req, err := s.requests.GetPendingByHotelID(ctx, hotel.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}

	return s.requests.Delete(ctx, req.ID)
}

func (s *Service) ownHotel(ctx context.Context, managerID int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByOwnerID(ctx, managerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return hotel, nil
}

// hotelRoom loads a room and verifies it belongs to the manager's hotel.
// Rooms created inside the still-pending request have no id yet, so an
// update or delete can only ever name a persisted room.
func (s *Service) hotelRoom(ctx context.Context, hotel *domain.Hotel, roomID int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	if room.HotelID != hotel.ID {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// findOrCreatePending implements the soft lookup backed by the partial
// unique index: when two submissions race, the loser's insert violates
// idx_one_pending_request_per_hotel and we re-fetch the winner's row.
func (s *Service) findOrCreatePending(ctx context.Context, hotel *domain.Hotel) (*domain.ChangeRequest, error) {
	req, err := s.requests.GetPendingByHotelID(ctx, hotel.ID)
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fresh := &domain.ChangeRequest{
		HotelID:   hotel.ID,
		ManagerID: hotel.OwnerID,
		Status:    domain.RequestPending,
	}
	if err := s.requests.Create(ctx, fresh); err != nil {
		if repository.IsUniqueViolation(err, "idx_one_pending_request_per_hotel") {
			return s.requests.GetPendingByHotelID(ctx, hotel.ID)
		}
		return nil, err
	}
	return fresh, nil
}

// persistAndNotify saves the merged request and dispatches the one-time
// admin notification. The AdminNotified flag flips in the same write that
// stores the first diff, so a second merge never re-notifies.
func (s *Service) persistAndNotify(ctx context.Context, hotel *domain.Hotel, req *domain.ChangeRequest) (*SubmitResult, error) {
	first := !req.AdminNotified
	if first {
		req.AdminNotified = true
	}

	if err := s.requests.Save(ctx, req); err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.ChangeRequestsSubmitted.Inc()
	}

	if first && s.notifs != nil {
		if err := s.notifs.NotifyChangeRequestSubmitted(ctx, hotel.ID, req.ID, hotel.Name); err != nil {
			s.log.Warnw("admin notification failed",
				"hotel_id", hotel.ID,
				"request_id", req.ID,
				"error", err,
			)
			if s.metrics != nil {
				s.metrics.NotificationFailures.Inc()
			}
		}
	}

	return &SubmitResult{Request: req}, nil
}
