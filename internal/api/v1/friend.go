package v1

import (
	"github.com/Behyna/social-payments/internal/api/contract"
	"github.com/Behyna/social-payments/internal/constants"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) RequestFriend(c *fiber.Ctx) error {
	userID, err := h.caller(c)
	if err != nil {
		return err
	}

	friendID := c.Params("id")
	relation, err := h.friends.Request(userID, friendID)
	if err != nil {
		return err
	}

	return c.JSON(contract.Success(constants.MsgFriendRequested, RelationResponse{UserID: friendID, Relation: relation}))
}

func (h *Handler) RemoveFriend(c *fiber.Ctx) error {
	userID, err := h.caller(c)
	if err != nil {
		return err
	}

	if err := h.friends.Remove(userID, c.Params("id")); err != nil {
		return err
	}

	return c.JSON(contract.Success(constants.MsgFriendRemoved, nil))
}

func (h *Handler) ListFriends(c *fiber.Ctx) error {
	userID, err := h.caller(c)
	if err != nil {
		return err
	}

	friends := h.friends.Friends(userID)
	return c.JSON(contract.Success("", FriendsResponse{Friends: friends, Count: len(friends)}))
}

func (h *Handler) FriendStatus(c *fiber.Ctx) error {
	userID, err := h.caller(c)
	if err != nil {
		return err
	}

	friendID := c.Params("id")
	return c.JSON(contract.Success("", RelationResponse{
		UserID:   friendID,
		Relation: h.friends.StatusOf(userID, friendID),
	}))
}
