package service

import (
	"time"

	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/repository"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FriendService interface {
	Request(userID, friendID string) (model.Relation, error)
	Remove(userID, friendID string) error
	StatusOf(userID, friendID string) model.Relation
	FriendIDsOf(userID string) []string
	Friends(userID string) []model.User
	Count(userID string) int
}

type friend struct {
	friends repository.FriendRepository
	users   repository.UserRepository
	logger  *zap.Logger
}

func NewFriendService(friends repository.FriendRepository, users repository.UserRepository,
	logger *zap.Logger) FriendService {
	return &friend{friends: friends, users: users, logger: logger}
}

// Request is idempotent. A pending edge in the opposite direction is accepted instead of mirrored,
// so each pair keeps a single edge.
func (f *friend) Request(userID, friendID string) (model.Relation, error) {
	if err := f.validatePair(userID, friendID); err != nil {
		return model.RelationNone, err
	}

	if edge, ok := f.friends.FindBetween(userID, friendID); ok {
		if edge.Status == model.FriendStatusPending && edge.UserID == friendID {
			f.friends.SetStatus(edge.ID, model.FriendStatusAccepted)
			f.logger.Info("Friend request accepted",
				zap.String("userID", userID),
				zap.String("friendID", friendID))
			return model.RelationFriends, nil
		}

		return relationOf(edge), nil
	}

	edge := model.Friend{
		ID:        uuid.NewString(),
		UserID:    userID,
		FriendID:  friendID,
		Status:    model.FriendStatusPending,
		CreatedAt: time.Now(),
	}

	if err := f.friends.Insert(edge); err != nil {
		return model.RelationNone, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	f.logger.Info("Friend request sent",
		zap.String("userID", userID),
		zap.String("friendID", friendID))

	return model.RelationPending, nil
}

func (f *friend) Remove(userID, friendID string) error {
	if userID == friendID {
		return NewServiceError(constants.ErrCodeValidationFailed, ErrSelfFriend)
	}

	removed := f.friends.DeleteBetween(userID, friendID)
	f.logger.Info("Friend edge removed",
		zap.String("userID", userID),
		zap.String("friendID", friendID),
		zap.Int("removed", removed))

	return nil
}

func (f *friend) StatusOf(userID, friendID string) model.Relation {
	edge, ok := f.friends.FindBetween(userID, friendID)
	if !ok {
		return model.RelationNone
	}
	return relationOf(edge)
}

func (f *friend) FriendIDsOf(userID string) []string {
	var ids []string
	for _, edge := range f.friends.ListByUser(userID) {
		if edge.Status == model.FriendStatusAccepted {
			ids = append(ids, edge.Other(userID))
		}
	}
	return ids
}

func (f *friend) Friends(userID string) []model.User {
	ids := f.FriendIDsOf(userID)

	out := make([]model.User, 0, len(ids))
	for _, id := range ids {
		u, err := f.users.GetByID(id)
		if err != nil {
			f.logger.Warn("Friend missing from directory", zap.String("friendID", id))
			continue
		}
		out = append(out, u)
	}
	return out
}

func (f *friend) Count(userID string) int {
	return len(f.FriendIDsOf(userID))
}

func (f *friend) validatePair(userID, friendID string) error {
	if userID == friendID {
		return NewServiceError(constants.ErrCodeValidationFailed, ErrSelfFriend)
	}

	if model.IsMerchant(userID) || model.IsMerchant(friendID) {
		return NewServiceError(constants.ErrCodeValidationFailed, ErrMerchantFriend)
	}

	for _, id := range []string{userID, friendID} {
		if _, err := f.users.GetByID(id); err != nil {
			return NewServiceError(constants.ErrCodeUserNotFound, err)
		}
	}

	return nil
}

func relationOf(edge model.Friend) model.Relation {
	switch edge.Status {
	case model.FriendStatusAccepted:
		return model.RelationFriends
	case model.FriendStatusPending:
		return model.RelationPending
	default:
		return model.RelationNone
	}
}
