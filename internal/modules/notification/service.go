package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"staybook/internal/domain"
	"staybook/internal/pkg/mailer"
	"staybook/internal/repository"
)

// Service persists in-app notifications and mirrors them to email. It
// implements the NotificationSender interfaces of the manager, admin and
// review services. Dispatch errors bubble up to those callers, which treat
// them as best-effort.
type Service struct {
	notifications *repository.NotificationRepository
	users         *repository.UserRepository
	mail          mailer.Mailer
	log           *zap.SugaredLogger
}

func NewService(
	notifications *repository.NotificationRepository,
	users *repository.UserRepository,
	mail mailer.Mailer,
	log *zap.SugaredLogger,
) *Service {
	return &Service{notifications: notifications, users: users, mail: mail, log: log}
}

// -------------------- Inbox --------------------

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	list, err := s.notifications.ListByUserID(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}
	unread, err := s.notifications.CountUnread(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, userID, id int64) error {
	affected, err := s.notifications.MarkRead(ctx, userID, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.notifications.MarkAllRead(ctx, userID)
}

// -------------------- Dispatch --------------------

// NotifyChangeRequestSubmitted broadcasts the first edit of a new change
// request to every admin.
func (s *Service) NotifyChangeRequestSubmitted(ctx context.Context, hotelID, requestID int64, hotelName string) error {
	admins, err := s.users.ListByRole(ctx, domain.RoleAdmin)
	if err != nil {
		return err
	}
	if len(admins) == 0 {
		s.log.Warnw("no admins to notify about change request", "request_id", requestID)
		return nil
	}

	data := mustJSON(map[string]int64{"hotel_id": hotelID, "request_id": requestID})
	title := "New change request"
	message := fmt.Sprintf("%s submitted changes for review", hotelName)

	rows := make([]domain.Notification, 0, len(admins))
	for _, admin := range admins {
		rows = append(rows, domain.Notification{
			UserID:  admin.ID,
			Type:    domain.NotifChangeRequestSubmitted,
			Title:   title,
			Message: message,
			Data:    data,
		})
	}
	if err := s.notifications.CreateBatch(ctx, rows); err != nil {
		return err
	}

	for _, admin := range admins {
		s.sendMail(ctx, admin.Email, title, message)
	}
	return nil
}

func (s *Service) NotifyChangeRequestResolved(ctx context.Context, managerID, requestID int64, approved bool, feedback string) error {
	kind := domain.NotifChangeRequestApproved
	title := "Change request approved"
	message := "Your changes have been applied to your hotel."
	if !approved {
		kind = domain.NotifChangeRequestRejected
		title = "Change request rejected"
		message = fmt.Sprintf("Your changes were rejected: %s", feedback)
	}

	return s.deliver(ctx, managerID, kind, title, message,
		mustJSON(map[string]int64{"request_id": requestID}))
}

func (s *Service) NotifyHotelReviewed(ctx context.Context, managerID, hotelID int64, approved bool, reason string) error {
	kind := domain.NotifHotelApproved
	title := "Hotel registration approved"
	message := "Your hotel passed review. You can now request publishing."
	if !approved {
		kind = domain.NotifHotelRejected
		title = "Hotel registration rejected"
		message = fmt.Sprintf("Your hotel registration was rejected: %s", reason)
	}

	return s.deliver(ctx, managerID, kind, title, message,
		mustJSON(map[string]int64{"hotel_id": hotelID}))
}

func (s *Service) NotifyPublishReviewed(ctx context.Context, managerID, hotelID int64, approved bool, reason string) error {
	kind := domain.NotifPublishApproved
	title := "Hotel published"
	message := "Your hotel is now visible to travelers."
	if !approved {
		kind = domain.NotifPublishRejected
		title = "Publish request rejected"
		message = fmt.Sprintf("Your publish request was rejected: %s", reason)
	}

	return s.deliver(ctx, managerID, kind, title, message,
		mustJSON(map[string]int64{"hotel_id": hotelID}))
}

func (s *Service) NotifyNewReview(ctx context.Context, managerID, hotelID, reviewID int64, rating int) error {
	return s.deliver(ctx, managerID, domain.NotifNewReview,
		"New review",
		fmt.Sprintf("A traveler left a %d-star review on your hotel.", rating),
		mustJSON(map[string]int64{"hotel_id": hotelID, "review_id": reviewID}))
}

func (s *Service) deliver(ctx context.Context, userID int64, kind domain.NotificationType, title, message string, data json.RawMessage) error {
	if err := s.notifications.Create(ctx, &domain.Notification{
		UserID:  userID,
		Type:    kind,
		Title:   title,
		Message: message,
		Data:    data,
	}); err != nil {
		return err
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		s.log.Warnw("mail skipped, recipient lookup failed", "user_id", userID, "error", err)
		return nil
	}
	s.sendMail(ctx, user.Email, title, message)
	return nil
}

// sendMail mirrors the in-app notification over email. The in-app row is
// already committed, so a mail failure only gets a log line.
func (s *Service) sendMail(ctx context.Context, to, subject, body string) {
	if s.mail == nil {
		return
	}
	if err := s.mail.Send(ctx, to, subject, body); err != nil {
		s.log.Warnw("email dispatch failed", "to", to, "subject", subject, "error", err)
	}
}

func mustJSON(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}
