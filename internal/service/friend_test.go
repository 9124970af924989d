package service_test

import (
	"testing"

	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/repository"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFriendService() (service.FriendService, repository.FriendRepository) {
	repo := repository.NewFriendRepository()
	return service.NewFriendService(repo, repository.NewUserRepository(testUsers), zap.NewNop()), repo
}

func TestFriend_Request(t *testing.T) {
	t.Run("first request is pending in both directions", func(t *testing.T) {
		svc, _ := newFriendService()

		relation, err := svc.Request("user-a", "user-b")

		require.NoError(t, err)
		assert.Equal(t, model.RelationPending, relation)
		assert.Equal(t, model.RelationPending, svc.StatusOf("user-a", "user-b"))
		assert.Equal(t, model.RelationPending, svc.StatusOf("user-b", "user-a"))
		assert.Empty(t, svc.FriendIDsOf("user-a"))
	})

	t.Run("repeated request is a no-op", func(t *testing.T) {
		svc, repo := newFriendService()

		_, err := svc.Request("user-a", "user-b")
		require.NoError(t, err)
		relation, err := svc.Request("user-a", "user-b")

		require.NoError(t, err)
		assert.Equal(t, model.RelationPending, relation)
		assert.Len(t, repo.ListByUser("user-a"), 1)
	})

	t.Run("mutual request accepts the existing edge", func(t *testing.T) {
		svc, repo := newFriendService()

		_, err := svc.Request("user-a", "user-b")
		require.NoError(t, err)
		relation, err := svc.Request("user-b", "user-a")

		require.NoError(t, err)
		assert.Equal(t, model.RelationFriends, relation)
		assert.Len(t, repo.ListByUser("user-a"), 1)
		assert.Equal(t, []string{"user-b"}, svc.FriendIDsOf("user-a"))
		assert.Equal(t, []string{"user-a"}, svc.FriendIDsOf("user-b"))
		assert.Equal(t, 1, svc.Count("user-b"))
		assert.Equal(t, "Andi Wijaya", svc.Friends("user-b")[0].Name)
	})

	t.Run("merchants cannot be friends", func(t *testing.T) {
		svc, _ := newFriendService()

		_, err := svc.Request("user-a", "merchant-kopi")

		assertCode(t, err, constants.ErrCodeValidationFailed)
		assert.ErrorIs(t, err, service.ErrMerchantFriend)
	})

	t.Run("self request", func(t *testing.T) {
		svc, _ := newFriendService()

		_, err := svc.Request("user-a", "user-a")

		assert.ErrorIs(t, err, service.ErrSelfFriend)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _ := newFriendService()

		_, err := svc.Request("user-a", "user-z")

		assertCode(t, err, constants.ErrCodeUserNotFound)
	})
}

func TestFriend_Remove(t *testing.T) {
	t.Run("removes accepted edge from either side", func(t *testing.T) {
		svc, _ := newFriendService()
		_, _ = svc.Request("user-a", "user-b")
		_, _ = svc.Request("user-b", "user-a")

		require.NoError(t, svc.Remove("user-b", "user-a"))

		assert.Equal(t, model.RelationNone, svc.StatusOf("user-a", "user-b"))
		assert.Equal(t, 0, svc.Count("user-a"))
	})

	t.Run("removes pending edge", func(t *testing.T) {
		svc, _ := newFriendService()
		_, _ = svc.Request("user-a", "user-c")

		require.NoError(t, svc.Remove("user-c", "user-a"))

		assert.Equal(t, model.RelationNone, svc.StatusOf("user-c", "user-a"))
	})

	t.Run("missing edge is fine", func(t *testing.T) {
		svc, _ := newFriendService()

		assert.NoError(t, svc.Remove("user-a", "user-b"))
	})
}
