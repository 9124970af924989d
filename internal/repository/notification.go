package repository

import (
	"sync"

	"github.com/Behyna/social-payments/internal/model"
)

type NotificationRepository interface {
	Insert(n model.Notification)
	// ReplaceAll swaps the whole collection in one step so readers never observe a partial edit.
	ReplaceAll(notifications []model.Notification)
	// Update replaces the collection with edit's result under the store lock, so read toggles
	// racing with the edit are applied before or after it, never lost.
	Update(edit func(current []model.Notification) []model.Notification)
	List() []model.Notification
	ListByUser(userID string) []model.Notification
	FindRequest(transactionID, userID string) (model.Notification, bool)
	MarkRead(id string) bool
	MarkAllRead(userID string) int
	Remove(id string) bool
	CountUnread(userID string) int
	CountPendingActionable(userID string) int
}

type notification struct {
	mu    sync.RWMutex
	items []model.Notification
}

func NewNotificationRepository() NotificationRepository {
	return &notification{}
}

func (n *notification) Insert(item model.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.items = append([]model.Notification{item.Clone()}, n.items...)
}

func (n *notification) ReplaceAll(notifications []model.Notification) {
	items := make([]model.Notification, len(notifications))
	for i, item := range notifications {
		items[i] = item.Clone()
	}

	n.mu.Lock()
	n.items = items
	n.mu.Unlock()
}

func (n *notification) Update(edit func(current []model.Notification) []model.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()

	next := edit(n.filter(func(model.Notification) bool { return true }))

	items := make([]model.Notification, len(next))
	for i, item := range next {
		items[i] = item.Clone()
	}
	n.items = items
}

func (n *notification) List() []model.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.filter(func(model.Notification) bool { return true })
}

func (n *notification) ListByUser(userID string) []model.Notification {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return n.filter(func(item model.Notification) bool { return item.UserID == userID })
}

func (n *notification) FindRequest(transactionID, userID string) (model.Notification, bool) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, item := range n.items {
		if item.IsRequestFor(transactionID, userID) {
			return item.Clone(), true
		}
	}
	return model.Notification{}, false
}

func (n *notification) MarkRead(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i := range n.items {
		if n.items[i].ID == id {
			n.items[i].Read = true
			return true
		}
	}
	return false
}

func (n *notification) MarkAllRead(userID string) int {
	n.mu.Lock()
	defer n.mu.Unlock()

	marked := 0
	for i := range n.items {
		if n.items[i].UserID == userID && !n.items[i].Read {
			n.items[i].Read = true
			marked++
		}
	}
	return marked
}

func (n *notification) Remove(id string) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i := range n.items {
		if n.items[i].ID == id {
			n.items = append(n.items[:i:i], n.items[i+1:]...)
			return true
		}
	}
	return false
}

func (n *notification) CountUnread(userID string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.filter(func(item model.Notification) bool {
		return item.UserID == userID && !item.Read
	}))
}

// CountPendingActionable counts owned payment requests still awaiting action, regardless of read state.
// A failed request stays actionable for its payer, who can retry with another method.
func (n *notification) CountPendingActionable(userID string) int {
	n.mu.RLock()
	defer n.mu.RUnlock()

	return len(n.filter(func(item model.Notification) bool {
		if item.UserID != userID || item.Type != model.NotificationTypePaymentRequest {
			return false
		}

		switch item.Transaction.Status {
		case model.TransactionStatusPending:
			return true
		case model.TransactionStatusFailed:
			return item.Transaction.RecipientID == userID
		default:
			return false
		}
	}))
}

func (n *notification) filter(keep func(model.Notification) bool) []model.Notification {
	out := make([]model.Notification, 0, len(n.items))
	for _, item := range n.items {
		if keep(item) {
			out = append(out, item.Clone())
		}
	}
	return out
}
