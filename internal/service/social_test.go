package service_test

import (
	"testing"

	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/metrics"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/repository"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSocialService(t *testing.T) service.SocialService {
	t.Helper()

	logger := zap.NewNop()
	transactions := repository.NewTransactionRepository(logger)
	require.NoError(t, transactions.Insert(model.Transaction{
		ID: "tx-1", SenderID: "user-a", RecipientID: "user-b", Amount: 10000,
		Status: model.TransactionStatusCompleted, Type: model.TransactionTypePayment, Privacy: model.PrivacyPublic,
	}))

	return service.NewSocialService(transactions, repository.NewUserRepository(testUsers),
		metrics.NewMetrics(prometheus.NewRegistry()), logger)
}

func TestSocial_ToggleLike(t *testing.T) {
	t.Run("like then unlike", func(t *testing.T) {
		svc := newSocialService(t)

		liked, err := svc.ToggleLike("tx-1", "user-c")
		require.NoError(t, err)
		require.Len(t, liked.Likes, 1)
		assert.Equal(t, "Citra Lestari", liked.Likes[0].User.Name)

		unliked, err := svc.ToggleLike("tx-1", "user-c")
		require.NoError(t, err)
		assert.Empty(t, unliked.Likes)
	})

	t.Run("unknown transaction", func(t *testing.T) {
		svc := newSocialService(t)

		_, err := svc.ToggleLike("missing", "user-c")

		assertCode(t, err, constants.ErrCodeTransactionNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc := newSocialService(t)

		_, err := svc.ToggleLike("tx-1", "user-z")

		assertCode(t, err, constants.ErrCodeUserNotFound)
	})
}

func TestSocial_Comment(t *testing.T) {
	t.Run("appends trimmed comment", func(t *testing.T) {
		svc := newSocialService(t)

		tx, err := svc.Comment(service.CommentCommand{TransactionID: "tx-1", UserID: "user-b", Content: "  makasih!  "})

		require.NoError(t, err)
		require.Len(t, tx.Comments, 1)
		assert.Equal(t, "makasih!", tx.Comments[0].Content)
		assert.Equal(t, "user-b", tx.Comments[0].UserID)
	})

	t.Run("blank comment is rejected", func(t *testing.T) {
		svc := newSocialService(t)

		_, err := svc.Comment(service.CommentCommand{TransactionID: "tx-1", UserID: "user-b", Content: "   "})

		assertCode(t, err, constants.ErrCodeValidationFailed)
		assert.ErrorIs(t, err, repository.ErrEmptyComment)
	})
}
