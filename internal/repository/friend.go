package repository

import (
	"errors"
	"sync"

	"github.com/Behyna/social-payments/internal/model"
)

var ErrFriendEdgeExists = errors.New("FRIEND_EDGE_EXISTS")

// FriendRepository stores directed friend edges, at most one per unordered pair.
type FriendRepository interface {
	Insert(edge model.Friend) error
	SetStatus(id string, status model.FriendStatus) bool
	FindBetween(a, b string) (model.Friend, bool)
	DeleteBetween(a, b string) int
	ListByUser(userID string) []model.Friend
}

type friend struct {
	mu    sync.RWMutex
	edges []model.Friend
}

func NewFriendRepository() FriendRepository {
	return &friend{}
}

func (f *friend) Insert(edge model.Friend) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.findBetween(edge.UserID, edge.FriendID); ok {
		return ErrFriendEdgeExists
	}

	f.edges = append(f.edges, edge)
	return nil
}

func (f *friend) SetStatus(id string, status model.FriendStatus) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	for i := range f.edges {
		if f.edges[i].ID == id {
			f.edges[i].Status = status
			return true
		}
	}
	return false
}

func (f *friend) FindBetween(a, b string) (model.Friend, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return f.findBetween(a, b)
}

func (f *friend) DeleteBetween(a, b string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	kept := make([]model.Friend, 0, len(f.edges))
	for _, e := range f.edges {
		if !e.Connects(a, b) {
			kept = append(kept, e)
		}
	}

	removed := len(f.edges) - len(kept)
	f.edges = kept
	return removed
}

func (f *friend) ListByUser(userID string) []model.Friend {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var out []model.Friend
	for _, e := range f.edges {
		if e.UserID == userID || e.FriendID == userID {
			out = append(out, e)
		}
	}
	return out
}

func (f *friend) findBetween(a, b string) (model.Friend, bool) {
	for _, e := range f.edges {
		if e.Connects(a, b) {
			return e, true
		}
	}
	return model.Friend{}, false
}
