package repository_test

import (
	"testing"

	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFriend(t *testing.T) {
	repo := repository.NewFriendRepository()
	require.NoError(t, repo.Insert(model.Friend{ID: "f-1", UserID: "user-a", FriendID: "user-b", Status: model.FriendStatusPending}))

	t.Run("one edge per unordered pair", func(t *testing.T) {
		err := repo.Insert(model.Friend{ID: "f-2", UserID: "user-b", FriendID: "user-a", Status: model.FriendStatusPending})

		assert.ErrorIs(t, err, repository.ErrFriendEdgeExists)
	})

	t.Run("symmetric lookup", func(t *testing.T) {
		edge, ok := repo.FindBetween("user-b", "user-a")

		assert.True(t, ok)
		assert.Equal(t, "f-1", edge.ID)
	})

	t.Run("set status", func(t *testing.T) {
		assert.True(t, repo.SetStatus("f-1", model.FriendStatusAccepted))
		assert.False(t, repo.SetStatus("missing", model.FriendStatusAccepted))

		edge, _ := repo.FindBetween("user-a", "user-b")
		assert.Equal(t, model.FriendStatusAccepted, edge.Status)
	})

	t.Run("delete between either direction", func(t *testing.T) {
		require.NoError(t, repo.Insert(model.Friend{ID: "f-3", UserID: "user-c", FriendID: "user-a", Status: model.FriendStatusPending}))

		assert.Equal(t, 1, repo.DeleteBetween("user-b", "user-a"))
		assert.Len(t, repo.ListByUser("user-a"), 1)
		assert.Equal(t, 0, repo.DeleteBetween("user-b", "user-a"))
	})
}
