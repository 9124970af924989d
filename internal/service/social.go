package service

import (
	"errors"

	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/metrics"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/repository"
	"go.uber.org/zap"
)

type SocialService interface {
	ToggleLike(transactionID, userID string) (model.Transaction, error)
	Comment(cmd CommentCommand) (model.Transaction, error)
}

type social struct {
	transactions repository.TransactionRepository
	users        repository.UserRepository
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

func NewSocialService(transactions repository.TransactionRepository, users repository.UserRepository,
	metrics *metrics.Metrics, logger *zap.Logger) SocialService {
	return &social{transactions: transactions, users: users, metrics: metrics, logger: logger}
}

func (s *social) ToggleLike(transactionID, userID string) (model.Transaction, error) {
	user, err := s.users.GetByID(userID)
	if err != nil {
		return model.Transaction{}, NewServiceError(constants.ErrCodeUserNotFound, err)
	}

	tx, err := s.transactions.ToggleLike(transactionID, userID, user)
	if err != nil {
		return model.Transaction{}, mapTransactionError(err)
	}

	action := "unlike"
	if tx.LikedBy(userID) {
		action = "like"
	}
	s.metrics.RecordSocialAction(action)

	return tx, nil
}

func (s *social) Comment(cmd CommentCommand) (model.Transaction, error) {
	user, err := s.users.GetByID(cmd.UserID)
	if err != nil {
		return model.Transaction{}, NewServiceError(constants.ErrCodeUserNotFound, err)
	}

	tx, err := s.transactions.AppendComment(cmd.TransactionID, cmd.UserID, user, cmd.Content)
	if err != nil {
		s.logger.Debug("Comment rejected",
			zap.String("transactionID", cmd.TransactionID),
			zap.String("userID", cmd.UserID),
			zap.Error(err))
		return model.Transaction{}, mapTransactionError(err)
	}

	s.metrics.RecordSocialAction("comment")

	return tx, nil
}

func mapTransactionError(err error) error {
	switch {
	case errors.Is(err, repository.ErrTransactionNotFound):
		return NewServiceError(constants.ErrCodeTransactionNotFound, err)
	case errors.Is(err, repository.ErrEmptyComment),
		errors.Is(err, repository.ErrSelfPayment),
		errors.Is(err, repository.ErrInvalidAmount):
		return NewServiceError(constants.ErrCodeValidationFailed, err)
	default:
		return NewServiceError(constants.ErrCodeOperationFailed, err)
	}
}
