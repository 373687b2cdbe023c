package notification

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"staybook/internal/database"
	"staybook/internal/domain"
	"staybook/internal/repository"
)

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) Send(_ context.Context, to, subject, body string) error {
	m.sent = append(m.sent, to)
	return nil
}

func setupNotificationTest(t *testing.T) (*gorm.DB, *Service, *recordingMailer) {
	t.Helper()

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	mail := &recordingMailer{}
	svc := NewService(
		repository.NewNotificationRepository(db),
		repository.NewUserRepository(db),
		mail,
		zap.NewNop().Sugar(),
	)
	return db, svc, mail
}

func createUser(t *testing.T, db *gorm.DB, email string, role domain.UserRole) domain.User {
	t.Helper()
	u := domain.User{Email: email, Role: role, Name: "U"}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func TestSubmittedBroadcastsToAllAdmins(t *testing.T) {
	db, svc, mail := setupNotificationTest(t)
	ctx := context.Background()

	a1 := createUser(t, db, "a1@test.local", domain.RoleAdmin)
	a2 := createUser(t, db, "a2@test.local", domain.RoleAdmin)
	createUser(t, db, "traveler@test.local", domain.RoleTraveler)

	require.NoError(t, svc.NotifyChangeRequestSubmitted(ctx, 7, 501, "Sea Breeze"))

	for _, admin := range []domain.User{a1, a2} {
		list, unread, err := svc.GetUserNotifications(ctx, admin.ID, 20)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, domain.NotifChangeRequestSubmitted, list[0].Type)
		assert.Equal(t, int64(1), unread)
	}
	assert.ElementsMatch(t, []string{"a1@test.local", "a2@test.local"}, mail.sent)

	// travelers never hear about review queues
	var count int64
	require.NoError(t, db.Model(&domain.Notification{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestResolvedNotifiesManager(t *testing.T) {
	db, svc, mail := setupNotificationTest(t)
	ctx := context.Background()

	mgr := createUser(t, db, "mgr@test.local", domain.RoleManager)

	require.NoError(t, svc.NotifyChangeRequestResolved(ctx, mgr.ID, 501, false, "Need better photos"))

	list, _, err := svc.GetUserNotifications(ctx, mgr.ID, 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.NotifChangeRequestRejected, list[0].Type)
	assert.Contains(t, list[0].Message, "Need better photos")
	assert.Equal(t, []string{"mgr@test.local"}, mail.sent)
}

func TestMarkAsRead(t *testing.T) {
	db, svc, _ := setupNotificationTest(t)
	ctx := context.Background()

	mgr := createUser(t, db, "mgr@test.local", domain.RoleManager)
	other := createUser(t, db, "other@test.local", domain.RoleManager)

	require.NoError(t, svc.NotifyHotelReviewed(ctx, mgr.ID, 7, true, ""))
	list, unread, err := svc.GetUserNotifications(ctx, mgr.ID, 20)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, int64(1), unread)

	// another user cannot mark someone else's notification
	assert.ErrorIs(t, svc.MarkAsRead(ctx, other.ID, list[0].ID), ErrNotFound)

	require.NoError(t, svc.MarkAsRead(ctx, mgr.ID, list[0].ID))
	_, unread, err = svc.GetUserNotifications(ctx, mgr.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}

func TestMarkAllAsRead(t *testing.T) {
	db, svc, _ := setupNotificationTest(t)
	ctx := context.Background()

	mgr := createUser(t, db, "mgr@test.local", domain.RoleManager)
	require.NoError(t, svc.NotifyPublishReviewed(ctx, mgr.ID, 7, true, ""))
	require.NoError(t, svc.NotifyNewReview(ctx, mgr.ID, 7, 90, 4))

	require.NoError(t, svc.MarkAllAsRead(ctx, mgr.ID))
	_, unread, err := svc.GetUserNotifications(ctx, mgr.ID, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(0), unread)
}
