package repository

import (
	"errors"
	"sync"
	"time"

	"github.com/Behyna/social-payments/internal/model"
)

var ErrUserNotFound = errors.New("USER_NOT_FOUND")

type UserRepository interface {
	GetByID(id string) (model.User, error)
	List() []model.User
	UpdateName(id, name string) (model.User, error)
}

type user struct {
	mu    sync.RWMutex
	users map[string]model.User
	order []string
}

// NewUserRepository seeds the directory; later duplicates of an id are ignored.
func NewUserRepository(seed []model.User) UserRepository {
	u := &user{users: make(map[string]model.User, len(seed))}
	for _, s := range seed {
		if _, ok := u.users[s.ID]; ok {
			continue
		}
		if s.CreatedAt.IsZero() {
			s.CreatedAt = time.Now()
		}
		u.users[s.ID] = s
		u.order = append(u.order, s.ID)
	}
	return u
}

func (u *user) GetByID(id string) (model.User, error) {
	u.mu.RLock()
	defer u.mu.RUnlock()

	found, ok := u.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}
	return found, nil
}

func (u *user) List() []model.User {
	u.mu.RLock()
	defer u.mu.RUnlock()

	out := make([]model.User, 0, len(u.order))
	for _, id := range u.order {
		out = append(out, u.users[id])
	}
	return out
}

func (u *user) UpdateName(id, name string) (model.User, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	found, ok := u.users[id]
	if !ok {
		return model.User{}, ErrUserNotFound
	}

	found.Name = name
	u.users[id] = found
	return found, nil
}
