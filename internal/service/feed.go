package service

import (
	"math"
	"slices"

	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/privacy"
	"github.com/Behyna/social-payments/internal/repository"
	"go.uber.org/zap"
)

type FeedService interface {
	Feed(viewerID string) []model.Transaction
	Profile(viewerID, userID string) (ProfileView, error)
	Merchant(viewerID, merchantID string) (MerchantView, error)
}

type feed struct {
	transactions repository.TransactionRepository
	users        repository.UserRepository
	friends      FriendService
	logger       *zap.Logger
}

func NewFeedService(transactions repository.TransactionRepository, users repository.UserRepository,
	friends FriendService, logger *zap.Logger) FeedService {
	return &feed{transactions: transactions, users: users, friends: friends, logger: logger}
}

// Feed lists settled payments the viewer may see, newest first.
func (f *feed) Feed(viewerID string) []model.Transaction {
	return privacy.Filter(f.settled(nil), viewerID, f.friends.FriendIDsOf(viewerID))
}

func (f *feed) Profile(viewerID, userID string) (ProfileView, error) {
	user, err := f.users.GetByID(userID)
	if err != nil {
		return ProfileView{}, NewServiceError(constants.ErrCodeUserNotFound, err)
	}

	txs := f.settled(func(tx model.Transaction) bool { return tx.Involves(userID) })
	visible := privacy.Filter(txs, viewerID, f.friends.FriendIDsOf(viewerID))

	view := ProfileView{
		User:       user,
		Relation:   f.friends.StatusOf(viewerID, userID),
		Friends:    f.friends.Count(userID),
		BetweenYou: []model.Transaction{},
		Others:     []model.Transaction{},
	}

	for _, tx := range visible {
		if viewerID != userID && tx.Involves(viewerID) {
			view.BetweenYou = append(view.BetweenYou, tx)
			continue
		}
		view.Others = append(view.Others, tx)
	}

	return view, nil
}

// Merchant aggregates over every settled payment of the merchant; only the listed transactions are
// privacy filtered.
func (f *feed) Merchant(viewerID, merchantID string) (MerchantView, error) {
	if !model.IsMerchant(merchantID) {
		return MerchantView{}, NewServiceError(constants.ErrCodeUserNotFound, repository.ErrUserNotFound)
	}

	merchant, err := f.users.GetByID(merchantID)
	if err != nil {
		return MerchantView{}, NewServiceError(constants.ErrCodeUserNotFound, err)
	}

	all := f.settled(func(tx model.Transaction) bool { return tx.Involves(merchantID) })
	friendIDs := f.friends.FriendIDsOf(viewerID)

	view := MerchantView{
		Merchant:          merchant,
		Transactions:      privacy.Filter(all, viewerID, friendIDs),
		TotalTransactions: len(all),
		FriendsWhoPaid:    []model.User{},
	}

	perCustomer := map[string]int{}
	for _, tx := range all {
		view.TotalVolume += tx.Amount
		perCustomer[tx.SenderID]++
	}

	if len(all) > 0 {
		view.AverageAmount = int64(math.Round(float64(view.TotalVolume) / float64(len(all))))
	}

	view.UniqueCustomers = len(perCustomer)
	if view.UniqueCustomers > 0 {
		repeat := 0
		for _, n := range perCustomer {
			if n > 1 {
				repeat++
			}
		}
		view.RepeatRate = int(math.Round(float64(repeat) * 100 / float64(view.UniqueCustomers)))
	}

	seen := map[string]bool{}
	for _, tx := range view.Transactions {
		if slices.Contains(friendIDs, tx.SenderID) && !seen[tx.SenderID] {
			seen[tx.SenderID] = true
			view.FriendsWhoPaid = append(view.FriendsWhoPaid, tx.Sender)
		}
	}

	return view, nil
}

// settled returns completed payments matching keep, newest first.
func (f *feed) settled(keep func(model.Transaction) bool) []model.Transaction {
	var out []model.Transaction
	for _, tx := range f.transactions.List() {
		if tx.Status != model.TransactionStatusCompleted || tx.Type != model.TransactionTypePayment {
			continue
		}
		if keep != nil && !keep(tx) {
			continue
		}
		out = append(out, tx)
	}

	slices.SortStableFunc(out, func(a, b model.Transaction) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return out
}
