package service

import (
	"errors"
	"strings"

	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/repository"
	"go.uber.org/zap"
)

var ErrEmptyName = errors.New("EMPTY_NAME")

type UserService interface {
	Get(userID string) (model.User, error)
	List() []model.User
	Rename(userID, name string) (model.User, error)
}

type user struct {
	users  repository.UserRepository
	logger *zap.Logger
}

func NewUserService(users repository.UserRepository, logger *zap.Logger) UserService {
	return &user{users: users, logger: logger}
}

func (u *user) Get(userID string) (model.User, error) {
	found, err := u.users.GetByID(userID)
	if err != nil {
		return model.User{}, NewServiceError(constants.ErrCodeUserNotFound, err)
	}
	return found, nil
}

func (u *user) List() []model.User {
	return u.users.List()
}

// Rename changes the display name only. Snapshots already embedded in transactions keep the old name.
func (u *user) Rename(userID, name string) (model.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.User{}, NewServiceError(constants.ErrCodeValidationFailed, ErrEmptyName)
	}

	updated, err := u.users.UpdateName(userID, name)
	if err != nil {
		return model.User{}, NewServiceError(constants.ErrCodeUserNotFound, err)
	}

	u.logger.Info("Display name updated", zap.String("userID", userID))

	return updated, nil
}
