package repository_test

import (
	"testing"

	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTransaction(id string) model.Transaction {
	return model.Transaction{
		ID:          id,
		SenderID:    "user-a",
		RecipientID: "user-b",
		Amount:      10000,
		Status:      model.TransactionStatusPending,
		Type:        model.TransactionTypeRequest,
		Privacy:     model.PrivacyPublic,
	}
}

func TestTransaction_Insert(t *testing.T) {
	t.Run("newest first", func(t *testing.T) {
		repo := repository.NewTransactionRepository(zap.NewNop())

		require.NoError(t, repo.Insert(newTransaction("tx-1")))
		require.NoError(t, repo.Insert(newTransaction("tx-2")))

		list := repo.List()
		require.Len(t, list, 2)
		assert.Equal(t, "tx-2", list[0].ID)
		assert.Equal(t, "tx-1", list[1].ID)
	})

	t.Run("rejects self payment", func(t *testing.T) {
		repo := repository.NewTransactionRepository(zap.NewNop())
		tx := newTransaction("tx-1")
		tx.RecipientID = tx.SenderID

		assert.ErrorIs(t, repo.Insert(tx), repository.ErrSelfPayment)
		assert.Empty(t, repo.List())
	})

	t.Run("rejects non positive amount", func(t *testing.T) {
		repo := repository.NewTransactionRepository(zap.NewNop())
		tx := newTransaction("tx-1")
		tx.Amount = 0

		assert.ErrorIs(t, repo.Insert(tx), repository.ErrInvalidAmount)
		assert.Empty(t, repo.List())
	})
}

func TestTransaction_Update(t *testing.T) {
	repo := repository.NewTransactionRepository(zap.NewNop())
	require.NoError(t, repo.Insert(newTransaction("tx-1")))

	t.Run("merges only set fields", func(t *testing.T) {
		status := model.TransactionStatusDeclined

		assert.True(t, repo.Update("tx-1", model.TransactionPatch{Status: &status}))

		tx, err := repo.GetByID("tx-1")
		require.NoError(t, err)
		assert.Equal(t, model.TransactionStatusDeclined, tx.Status)
		assert.Equal(t, "user-a", tx.SenderID)
		assert.Equal(t, model.TransactionTypeRequest, tx.Type)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		status := model.TransactionStatusCompleted

		assert.False(t, repo.Update("missing", model.TransactionPatch{Status: &status}))
		assert.Len(t, repo.List(), 1)
	})
}

func TestTransaction_ReturnsCopies(t *testing.T) {
	repo := repository.NewTransactionRepository(zap.NewNop())
	require.NoError(t, repo.Insert(newTransaction("tx-1")))
	_, err := repo.ToggleLike("tx-1", "user-c", model.User{ID: "user-c"})
	require.NoError(t, err)

	tx, err := repo.GetByID("tx-1")
	require.NoError(t, err)
	tx.Likes[0].UserID = "tampered"
	tx.Status = model.TransactionStatusCompleted

	stored, err := repo.GetByID("tx-1")
	require.NoError(t, err)
	assert.Equal(t, "user-c", stored.Likes[0].UserID)
	assert.Equal(t, model.TransactionStatusPending, stored.Status)
}

func TestTransaction_ToggleLike(t *testing.T) {
	t.Run("toggling twice restores the like set", func(t *testing.T) {
		repo := repository.NewTransactionRepository(zap.NewNop())
		require.NoError(t, repo.Insert(newTransaction("tx-1")))
		seeded, err := repo.ToggleLike("tx-1", "user-a", model.User{ID: "user-a"})
		require.NoError(t, err)

		liked, err := repo.ToggleLike("tx-1", "user-c", model.User{ID: "user-c"})
		require.NoError(t, err)
		assert.True(t, liked.LikedBy("user-c"))
		assert.Len(t, liked.Likes, 2)

		restored, err := repo.ToggleLike("tx-1", "user-c", model.User{ID: "user-c"})
		require.NoError(t, err)
		assert.Equal(t, seeded.Likes, restored.Likes)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		repo := repository.NewTransactionRepository(zap.NewNop())

		_, err := repo.ToggleLike("missing", "user-c", model.User{ID: "user-c"})

		assert.ErrorIs(t, err, repository.ErrTransactionNotFound)
	})
}

func TestTransaction_AppendComment(t *testing.T) {
	repo := repository.NewTransactionRepository(zap.NewNop())
	require.NoError(t, repo.Insert(newTransaction("tx-1")))

	t.Run("appends in order", func(t *testing.T) {
		_, err := repo.AppendComment("tx-1", "user-a", model.User{ID: "user-a"}, "first")
		require.NoError(t, err)
		tx, err := repo.AppendComment("tx-1", "user-b", model.User{ID: "user-b"}, " second ")
		require.NoError(t, err)

		require.Len(t, tx.Comments, 2)
		assert.Equal(t, "first", tx.Comments[0].Content)
		assert.Equal(t, "second", tx.Comments[1].Content)
		assert.NotEmpty(t, tx.Comments[1].ID)
	})

	t.Run("whitespace only is rejected", func(t *testing.T) {
		_, err := repo.AppendComment("tx-1", "user-a", model.User{ID: "user-a"}, " \t\n")

		assert.ErrorIs(t, err, repository.ErrEmptyComment)
		tx, _ := repo.GetByID("tx-1")
		assert.Len(t, tx.Comments, 2)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		_, err := repo.AppendComment("missing", "user-a", model.User{ID: "user-a"}, "hi")

		assert.ErrorIs(t, err, repository.ErrTransactionNotFound)
	})
}
