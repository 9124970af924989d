package service

import (
	"fmt"

	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/repository"
	"go.uber.org/zap"
)

type NotificationService interface {
	MarkRead(userID, notificationID string) error
	MarkAllRead(userID string) int
	Counts(userID string) NotificationCounts
	RemindableRequest(userID, transactionID string) (model.Transaction, error)
}

type notification struct {
	notifications repository.NotificationRepository
	logger        *zap.Logger
}

func NewNotificationService(notifications repository.NotificationRepository, logger *zap.Logger) NotificationService {
	return &notification{notifications: notifications, logger: logger}
}

// MarkRead only touches notifications owned by userID.
func (n *notification) MarkRead(userID, notificationID string) error {
	for _, item := range n.notifications.ListByUser(userID) {
		if item.ID != notificationID {
			continue
		}

		if !n.notifications.MarkRead(notificationID) {
			break
		}
		return nil
	}

	n.logger.Debug("Notification to mark read not found",
		zap.String("userID", userID),
		zap.String("notificationID", notificationID))

	return NewServiceError(constants.ErrCodeNotificationMissing, ErrNotificationNotFound)
}

func (n *notification) MarkAllRead(userID string) int {
	return n.notifications.MarkAllRead(userID)
}

func (n *notification) Counts(userID string) NotificationCounts {
	return NotificationCounts{
		Unread:            n.notifications.CountUnread(userID),
		PendingActionable: n.notifications.CountPendingActionable(userID),
	}
}

// RemindableRequest returns the snapshot of an open request that userID asked for, read from the
// requester's own notification.
func (n *notification) RemindableRequest(userID, transactionID string) (model.Transaction, error) {
	note, ok := n.notifications.FindRequest(transactionID, userID)
	if !ok {
		return model.Transaction{}, NewServiceError(constants.ErrCodeNotAllowed, ErrNotRequester)
	}

	tx := note.Transaction
	if tx.Status.Terminal() {
		return model.Transaction{}, NewServiceError(constants.ErrCodeConsistency,
			fmt.Errorf("%w: status %s", ErrRequestNotPending, tx.Status))
	}

	if tx.SenderID != userID {
		return model.Transaction{}, NewServiceError(constants.ErrCodeNotAllowed, ErrNotRequester)
	}

	return tx, nil
}
