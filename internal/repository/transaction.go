package repository

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/Behyna/social-payments/internal/model"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrTransactionNotFound = errors.New("TRANSACTION_NOT_FOUND")
	ErrSelfPayment         = errors.New("SELF_PAYMENT")
	ErrInvalidAmount       = errors.New("INVALID_AMOUNT")
	ErrEmptyComment        = errors.New("EMPTY_COMMENT")
)

type TransactionRepository interface {
	Insert(tx model.Transaction) error
	Update(id string, patch model.TransactionPatch) bool
	GetByID(id string) (model.Transaction, error)
	List() []model.Transaction
	ToggleLike(transactionID, userID string, user model.User) (model.Transaction, error)
	AppendComment(transactionID, userID string, user model.User, content string) (model.Transaction, error)
}

type transaction struct {
	mu     sync.RWMutex
	items  []model.Transaction
	logger *zap.Logger
}

func NewTransactionRepository(logger *zap.Logger) TransactionRepository {
	return &transaction{logger: logger}
}

func (t *transaction) Insert(tx model.Transaction) error {
	if tx.SenderID == tx.RecipientID {
		return ErrSelfPayment
	}

	if tx.Amount <= 0 {
		return ErrInvalidAmount
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.items = append([]model.Transaction{tx.Clone()}, t.items...)
	return nil
}

func (t *transaction) Update(id string, patch model.TransactionPatch) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(id)
	if i < 0 {
		t.logger.Warn("Transaction update skipped, id not found", zap.String("transactionID", id))
		return false
	}

	patch.Apply(&t.items[i])
	return true
}

func (t *transaction) GetByID(id string) (model.Transaction, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	i := t.indexOf(id)
	if i < 0 {
		return model.Transaction{}, ErrTransactionNotFound
	}

	return t.items[i].Clone(), nil
}

func (t *transaction) List() []model.Transaction {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]model.Transaction, len(t.items))
	for i, item := range t.items {
		out[i] = item.Clone()
	}
	return out
}

func (t *transaction) ToggleLike(transactionID, userID string, user model.User) (model.Transaction, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(transactionID)
	if i < 0 {
		return model.Transaction{}, ErrTransactionNotFound
	}

	item := &t.items[i]
	likes := make([]model.Like, 0, len(item.Likes)+1)
	unliked := false
	for _, l := range item.Likes {
		if l.UserID == userID {
			unliked = true
			continue
		}
		likes = append(likes, l)
	}

	if !unliked {
		likes = append(likes, model.Like{
			ID:            uuid.NewString(),
			UserID:        userID,
			User:          user,
			TransactionID: transactionID,
			CreatedAt:     time.Now(),
		})
	}

	item.Likes = likes
	return item.Clone(), nil
}

func (t *transaction) AppendComment(transactionID, userID string, user model.User, content string) (model.Transaction, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return model.Transaction{}, ErrEmptyComment
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	i := t.indexOf(transactionID)
	if i < 0 {
		return model.Transaction{}, ErrTransactionNotFound
	}

	item := &t.items[i]
	item.Comments = append(append([]model.Comment(nil), item.Comments...), model.Comment{
		ID:            uuid.NewString(),
		UserID:        userID,
		User:          user,
		TransactionID: transactionID,
		Content:       content,
		CreatedAt:     time.Now(),
	})

	return item.Clone(), nil
}

func (t *transaction) indexOf(id string) int {
	for i := range t.items {
		if t.items[i].ID == id {
			return i
		}
	}
	return -1
}
