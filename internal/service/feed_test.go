package service_test

import (
	"testing"
	"time"

	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/repository"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type feedFixture struct {
	svc          service.FeedService
	friends      service.FriendService
	transactions repository.TransactionRepository
	base         time.Time
	seq          int
}

func newFeedFixture() *feedFixture {
	logger := zap.NewNop()
	users := repository.NewUserRepository(testUsers)
	transactions := repository.NewTransactionRepository(logger)
	friends := service.NewFriendService(repository.NewFriendRepository(), users, logger)

	return &feedFixture{
		svc:          service.NewFeedService(transactions, users, friends, logger),
		friends:      friends,
		transactions: transactions,
		base:         time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (f *feedFixture) add(t *testing.T, id, sender, recipient string, amount int64, p model.Privacy,
	status model.TransactionStatus, txType model.TransactionType) {
	t.Helper()

	f.seq++
	require.NoError(t, f.transactions.Insert(model.Transaction{
		ID:          id,
		SenderID:    sender,
		Sender:      model.User{ID: sender},
		RecipientID: recipient,
		Recipient:   model.User{ID: recipient},
		Amount:      amount,
		Privacy:     p,
		Status:      status,
		Type:        txType,
		CreatedAt:   f.base.Add(time.Duration(f.seq) * time.Minute),
	}))
}

func (f *feedFixture) payment(t *testing.T, id, sender, recipient string, amount int64, p model.Privacy) {
	f.add(t, id, sender, recipient, amount, p, model.TransactionStatusCompleted, model.TransactionTypePayment)
}

func ids(txs []model.Transaction) []string {
	out := make([]string, 0, len(txs))
	for _, tx := range txs {
		out = append(out, tx.ID)
	}
	return out
}

func TestFeed_Feed(t *testing.T) {
	f := newFeedFixture()
	_, _ = f.friends.Request("user-a", "user-b")
	_, _ = f.friends.Request("user-b", "user-a")

	f.payment(t, "public-bc", "user-b", "user-c", 10000, model.PrivacyPublic)
	f.payment(t, "friends-bc", "user-b", "user-c", 20000, model.PrivacyFriends)
	f.payment(t, "private-bc", "user-b", "user-c", 30000, model.PrivacyPrivate)
	f.payment(t, "private-ac", "user-a", "user-c", 40000, model.PrivacyPrivate)
	f.add(t, "pending-request", "user-b", "user-c", 5000, model.PrivacyPublic,
		model.TransactionStatusPending, model.TransactionTypeRequest)
	f.add(t, "failed-payment", "user-b", "user-c", 5000, model.PrivacyPublic,
		model.TransactionStatusFailed, model.TransactionTypePayment)

	t.Run("friend of a participant", func(t *testing.T) {
		assert.Equal(t, []string{"private-ac", "friends-bc", "public-bc"}, ids(f.svc.Feed("user-a")))
	})

	t.Run("participant sees own private payments", func(t *testing.T) {
		assert.Equal(t, []string{"private-ac", "private-bc", "friends-bc", "public-bc"}, ids(f.svc.Feed("user-c")))
	})

	t.Run("stranger sees public only", func(t *testing.T) {
		assert.Equal(t, []string{"public-bc"}, ids(f.svc.Feed("merchant-kopi")))
	})

	t.Run("anonymous viewer sees nothing", func(t *testing.T) {
		assert.Empty(t, f.svc.Feed(""))
	})
}

func TestFeed_Profile(t *testing.T) {
	f := newFeedFixture()
	f.payment(t, "ab", "user-a", "user-b", 10000, model.PrivacyPublic)
	f.payment(t, "bc", "user-b", "user-c", 20000, model.PrivacyPublic)
	f.payment(t, "bc-private", "user-b", "user-c", 30000, model.PrivacyPrivate)
	f.payment(t, "ac", "user-a", "user-c", 40000, model.PrivacyPublic)

	t.Run("splits transactions with the viewer", func(t *testing.T) {
		view, err := f.svc.Profile("user-a", "user-b")

		require.NoError(t, err)
		assert.Equal(t, "Budi Santoso", view.User.Name)
		assert.Equal(t, model.RelationNone, view.Relation)
		assert.Equal(t, []string{"ab"}, ids(view.BetweenYou))
		assert.Equal(t, []string{"bc"}, ids(view.Others))
	})

	t.Run("own profile", func(t *testing.T) {
		view, err := f.svc.Profile("user-b", "user-b")

		require.NoError(t, err)
		assert.Empty(t, view.BetweenYou)
		assert.Equal(t, []string{"bc-private", "bc", "ab"}, ids(view.Others))
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := f.svc.Profile("user-a", "user-z")

		assertCode(t, err, constants.ErrCodeUserNotFound)
	})
}

func TestFeed_Merchant(t *testing.T) {
	f := newFeedFixture()
	_, _ = f.friends.Request("user-a", "user-b")
	_, _ = f.friends.Request("user-b", "user-a")

	f.payment(t, "b1", "user-b", "merchant-kopi", 30000, model.PrivacyFriends)
	f.payment(t, "b2", "user-b", "merchant-kopi", 20000, model.PrivacyPublic)
	f.payment(t, "c1", "user-c", "merchant-kopi", 25000, model.PrivacyPrivate)

	t.Run("aggregates every payment and lists visible ones", func(t *testing.T) {
		view, err := f.svc.Merchant("user-a", "merchant-kopi")

		require.NoError(t, err)
		assert.Equal(t, 3, view.TotalTransactions)
		assert.Equal(t, int64(75000), view.TotalVolume)
		assert.Equal(t, int64(25000), view.AverageAmount)
		assert.Equal(t, 2, view.UniqueCustomers)
		assert.Equal(t, 50, view.RepeatRate)
		assert.Equal(t, []string{"b2", "b1"}, ids(view.Transactions))
		require.Len(t, view.FriendsWhoPaid, 1)
		assert.Equal(t, "user-b", view.FriendsWhoPaid[0].ID)
	})

	t.Run("not a merchant", func(t *testing.T) {
		_, err := f.svc.Merchant("user-a", "user-b")

		assertCode(t, err, constants.ErrCodeUserNotFound)
	})
}
