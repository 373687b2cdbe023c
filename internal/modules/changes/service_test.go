package changes

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"staybook/internal/domain"
)

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) GetByOwnerID(ctx context.Context, ownerID int64) (*domain.Hotel, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type MockChangeRequestRepository struct {
	mock.Mock
}

func (m *MockChangeRequestRepository) GetPendingByHotelID(ctx context.Context, hotelID int64) (*domain.ChangeRequest, error) {
	args := m.Called(ctx, hotelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChangeRequest), args.Error(1)
}

func (m *MockChangeRequestRepository) Create(ctx context.Context, req *domain.ChangeRequest) error {
	args := m.Called(ctx, req)
	if args.Error(0) == nil && req != nil {
		req.ID = 501 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockChangeRequestRepository) Save(ctx context.Context, req *domain.ChangeRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

func (m *MockChangeRequestRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyChangeRequestSubmitted(ctx context.Context, hotelID, requestID int64, hotelName string) error {
	args := m.Called(ctx, hotelID, requestID, hotelName)
	return args.Error(0)
}

type serviceMocks struct {
	hotels   *MockHotelRepository
	rooms    *MockRoomRepository
	requests *MockChangeRequestRepository
	notifs   *MockNotificationSender
}

func newTestService() (*Service, *serviceMocks) {
	m := &serviceMocks{
		hotels:   new(MockHotelRepository),
		rooms:    new(MockRoomRepository),
		requests: new(MockChangeRequestRepository),
		notifs:   new(MockNotificationSender),
	}
	svc := NewService(m.hotels, m.rooms, m.requests, m.notifs, zap.NewNop().Sugar(), nil)
	return svc, m
}

func testHotel() *domain.Hotel {
	return &domain.Hotel{
		ID:          7,
		OwnerID:     42,
		Name:        "Sea Breeze",
		Category:    3,
		Description: "City center stay",
	}
}

func TestResolvePendingCreatesWhenNoneExists(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()
	hotel := testHotel()

	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(hotel, nil)
	m.requests.On("GetPendingByHotelID", ctx, int64(7)).Return(nil, gorm.ErrRecordNotFound)
	m.requests.On("Create", ctx, mock.AnythingOfType("*domain.ChangeRequest")).Return(nil)

	view, err := svc.ResolvePending(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(501), view.Request.ID)
	assert.Equal(t, domain.RequestPending, view.Request.Status)
	assert.Equal(t, int64(7), view.Request.HotelID)
	assert.Equal(t, int64(42), view.Request.ManagerID)
	assert.False(t, view.Request.HasChanges())
	assert.Equal(t, hotel, view.Hotel)
	m.requests.AssertExpectations(t)
}

func TestResolvePendingReturnsExisting(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	existing := &domain.ChangeRequest{ID: 300, HotelID: 7, ManagerID: 42, Status: domain.RequestPending}
	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(testHotel(), nil)
	m.requests.On("GetPendingByHotelID", ctx, int64(7)).Return(existing, nil)

	view, err := svc.ResolvePending(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(300), view.Request.ID)
	m.requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestResolvePendingNoHotel(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.ResolvePending(ctx, 42)
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestResolvePendingLosesCreationRace(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	winner := &domain.ChangeRequest{ID: 777, HotelID: 7, Status: domain.RequestPending}
	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(testHotel(), nil)
	m.requests.On("GetPendingByHotelID", ctx, int64(7)).
		Return(nil, gorm.ErrRecordNotFound).Once()
	m.requests.On("Create", ctx, mock.Anything).
		Return(errors.New("ERROR: duplicate key value violates unique constraint \"idx_one_pending_request_per_hotel\" (SQLSTATE 23505)"))
	m.requests.On("GetPendingByHotelID", ctx, int64(7)).Return(winner, nil).Once()

	view, err := svc.ResolvePending(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(777), view.Request.ID)
}

func TestSubmitHotelChangesNoOpWritesNothing(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(testHotel(), nil)

	cat := 3 // identical to current
	res, err := svc.SubmitHotelChanges(ctx, 42, HotelChangesInput{Category: &cat})
	require.NoError(t, err)
	assert.True(t, res.NoChanges)

	m.requests.AssertNotCalled(t, "GetPendingByHotelID", mock.Anything, mock.Anything)
	m.requests.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	m.requests.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	m.notifs.AssertNotCalled(t, "NotifyChangeRequestSubmitted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSubmitHotelChangesMergesIntoPending(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	cat := 4
	existing := &domain.ChangeRequest{
		ID:            300,
		HotelID:       7,
		Status:        domain.RequestPending,
		HotelChanges:  domain.HotelChanges{Category: &cat},
		AdminNotified: true,
	}
	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(testHotel(), nil)
	m.requests.On("GetPendingByHotelID", ctx, int64(7)).Return(existing, nil)
	m.requests.On("Save", ctx, existing).Return(nil)

	desc := "Fully renovated"
	res, err := svc.SubmitHotelChanges(ctx, 42, HotelChangesInput{Description: &desc})
	require.NoError(t, err)
	assert.False(t, res.NoChanges)

	require.NotNil(t, res.Request.HotelChanges.Category)
	assert.Equal(t, 4, *res.Request.HotelChanges.Category, "earlier diff survives the merge")
	require.NotNil(t, res.Request.HotelChanges.Description)
	assert.Equal(t, "Fully renovated", *res.Request.HotelChanges.Description)
	m.notifs.AssertNotCalled(t, "NotifyChangeRequestSubmitted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFirstSubmissionNotifiesOnce(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(testHotel(), nil)
	m.requests.On("GetPendingByHotelID", ctx, int64(7)).Return(nil, gorm.ErrRecordNotFound).Once()
	m.requests.On("Create", ctx, mock.Anything).Return(nil)
	m.requests.On("Save", ctx, mock.Anything).Return(nil)
	m.notifs.On("NotifyChangeRequestSubmitted", ctx, int64(7), int64(501), "Sea Breeze").Return(nil).Once()

	desc := "New description"
	res, err := svc.SubmitHotelChanges(ctx, 42, HotelChangesInput{Description: &desc})
	require.NoError(t, err)
	assert.True(t, res.Request.AdminNotified, "flag flips in the same save as the first diff")

	// the second edit lands on the already-notified request
	m.requests.On("GetPendingByHotelID", ctx, int64(7)).Return(res.Request, nil)

	cat := 5
	_, err = svc.SubmitHotelChanges(ctx, 42, HotelChangesInput{Category: &cat})
	require.NoError(t, err)

	m.notifs.AssertNumberOfCalls(t, "NotifyChangeRequestSubmitted", 1)
}

func TestNotificationFailureDoesNotFailSubmission(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(testHotel(), nil)
	m.requests.On("GetPendingByHotelID", ctx, int64(7)).Return(nil, gorm.ErrRecordNotFound)
	m.requests.On("Create", ctx, mock.Anything).Return(nil)
	m.requests.On("Save", ctx, mock.Anything).Return(nil)
	m.notifs.On("NotifyChangeRequestSubmitted", ctx, int64(7), int64(501), "Sea Breeze").
		Return(errors.New("smtp: connection refused"))

	desc := "New description"
	res, err := svc.SubmitHotelChanges(ctx, 42, HotelChangesInput{Description: &desc})
	require.NoError(t, err)
	assert.False(t, res.NoChanges)
	assert.True(t, res.Request.AdminNotified)
}

func TestSubmitRoomUpdateForeignRoomRejected(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(testHotel(), nil)
	m.rooms.On("GetByID", ctx, int64(99)).Return(&domain.Room{ID: 99, HotelID: 8}, nil)

	name := "Hijack"
	_, err := svc.SubmitRoomUpdate(ctx, 42, 99, RoomUpdateInput{Name: &name})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestSubmitRoomUpdateUnknownRoom(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(testHotel(), nil)
	m.rooms.On("GetByID", ctx, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	name := "Ghost"
	_, err := svc.SubmitRoomUpdate(ctx, 42, 99, RoomUpdateInput{Name: &name})
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestSubmitRoomUpdateNoOp(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(testHotel(), nil)
	m.rooms.On("GetByID", ctx, int64(11)).Return(&domain.Room{ID: 11, HotelID: 7, Name: "Standard"}, nil)

	name := "Standard"
	res, err := svc.SubmitRoomUpdate(ctx, 42, 11, RoomUpdateInput{Name: &name})
	require.NoError(t, err)
	assert.True(t, res.NoChanges)
	m.requests.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestDeleteSupersedesEarlierUpdate(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	roomID := int64(11)
	cap3 := 3
	existing := &domain.ChangeRequest{
		ID:      300,
		HotelID: 7,
		Status:  domain.RequestPending,
		RoomChanges: []domain.RoomChange{
			{Action: domain.ActionUpdate, RoomID: &roomID, Patch: &domain.RoomPatch{Capacity: &cap3}},
		},
		AdminNotified: true,
	}

	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(testHotel(), nil)
	m.rooms.On("GetByID", ctx, roomID).Return(&domain.Room{ID: roomID, HotelID: 7}, nil)
	m.requests.On("GetPendingByHotelID", ctx, int64(7)).Return(existing, nil)
	m.requests.On("Save", ctx, existing).Return(nil)

	res, err := svc.SubmitRoomDelete(ctx, 42, roomID)
	require.NoError(t, err)

	require.Len(t, res.Request.RoomChanges, 1)
	assert.Equal(t, domain.ActionDelete, res.Request.RoomChanges[0].Action)
	assert.Equal(t, roomID, *res.Request.RoomChanges[0].RoomID)
}

func TestUpdateNotes(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	existing := &domain.ChangeRequest{ID: 300, HotelID: 7, Status: domain.RequestPending}
	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(testHotel(), nil)
	m.requests.On("GetPendingByHotelID", ctx, int64(7)).Return(existing, nil)
	m.requests.On("Save", ctx, existing).Return(nil)

	req, err := svc.UpdateNotes(ctx, 42, "Prices change for the summer season")
	require.NoError(t, err)
	assert.Equal(t, "Prices change for the summer season", req.ManagerNotes)
}

func TestCancelDeletesPending(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	existing := &domain.ChangeRequest{ID: 300, HotelID: 7, Status: domain.RequestPending}
	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(testHotel(), nil)
	m.requests.On("GetPendingByHotelID", ctx, int64(7)).Return(existing, nil)
	m.requests.On("Delete", ctx, int64(300)).Return(nil)

	require.NoError(t, svc.Cancel(ctx, 42))
	m.requests.AssertExpectations(t)
}

func TestCancelWithoutPending(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.hotels.On("GetByOwnerID", ctx, int64(42)).Return(testHotel(), nil)
	m.requests.On("GetPendingByHotelID", ctx, int64(7)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Cancel(ctx, 42)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}
