package model

import "time"

type FriendStatus string

const (
	FriendStatusPending  FriendStatus = "pending"
	FriendStatusAccepted FriendStatus = "accepted"
)

// Relation is the symmetric view of the edge between two users.
type Relation string

const (
	RelationNone    Relation = "none"
	RelationPending Relation = "pending"
	RelationFriends Relation = "friends"
)

type Friend struct {
	ID        string       `json:"id"`
	UserID    string       `json:"user_id"`
	FriendID  string       `json:"friend_id"`
	Status    FriendStatus `json:"status"`
	CreatedAt time.Time    `json:"created_at"`
}

// Connects reports whether the edge joins a and b in either direction.
func (f Friend) Connects(a, b string) bool {
	return (f.UserID == a && f.FriendID == b) || (f.UserID == b && f.FriendID == a)
}

// Other returns the party on the far side of the edge from userID.
func (f Friend) Other(userID string) string {
	if f.UserID == userID {
		return f.FriendID
	}
	return f.UserID
}
