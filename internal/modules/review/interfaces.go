package review

import "context"

// NotificationSender lets the hotel's manager hear about new reviews.
type NotificationSender interface {
	NotifyNewReview(ctx context.Context, managerID, hotelID, reviewID int64, rating int) error
}
