package repository_test

import (
	"testing"

	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	repo := repository.NewUserRepository([]model.User{
		{ID: "user-a", Name: "Andi"},
		{ID: "user-b", Name: "Budi"},
		{ID: "user-a", Name: "Duplicate"},
	})

	list := repo.List()
	require.Len(t, list, 2)
	assert.Equal(t, "Andi", list[0].Name)
	assert.False(t, list[0].CreatedAt.IsZero())

	_, err := repo.GetByID("user-z")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	updated, err := repo.UpdateName("user-b", "Budi S.")
	require.NoError(t, err)
	assert.Equal(t, "Budi S.", updated.Name)

	_, err = repo.UpdateName("user-z", "Zed")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}
