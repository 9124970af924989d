// Package privacy decides which transactions a viewer may see. Feed, profile and merchant views all go
// through Visible so the three never disagree.
package privacy

import (
	"slices"

	"github.com/Behyna/social-payments/internal/model"
)

// Visible reports whether viewerID may see tx given the ids of the viewer's accepted friends.
// Participants always see their own transactions; an empty viewer sees nothing.
func Visible(tx model.Transaction, viewerID string, friendIDs []string) bool {
	if viewerID == "" {
		return false
	}

	if tx.Involves(viewerID) {
		return true
	}

	switch tx.Privacy {
	case model.PrivacyPublic:
		return true
	case model.PrivacyFriends:
		return slices.Contains(friendIDs, tx.SenderID) || slices.Contains(friendIDs, tx.RecipientID)
	case model.PrivacyPrivate:
		return false
	default:
		return false
	}
}

// Filter keeps the transactions Visible to viewerID, preserving order.
func Filter(txs []model.Transaction, viewerID string, friendIDs []string) []model.Transaction {
	out := make([]model.Transaction, 0, len(txs))
	for _, tx := range txs {
		if Visible(tx, viewerID, friendIDs) {
			out = append(out, tx)
		}
	}
	return out
}
