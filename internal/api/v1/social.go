package v1

import (
	"github.com/Behyna/social-payments/internal/api/contract"
	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) Feed(c *fiber.Ctx) error {
	viewerID, err := h.caller(c)
	if err != nil {
		return err
	}

	return c.JSON(contract.Success("", h.feed.Feed(viewerID)))
}

// UserTransactions renders the merchant view for merchant ids and the profile view otherwise.
func (h *Handler) UserTransactions(c *fiber.Ctx) error {
	viewerID, err := h.caller(c)
	if err != nil {
		return err
	}

	userID := c.Params("id")
	if model.IsMerchant(userID) {
		view, err := h.feed.Merchant(viewerID, userID)
		if err != nil {
			return err
		}
		return c.JSON(contract.Success(constants.MsgTransactionsRetrieved, toMerchantResponse(view)))
	}

	view, err := h.feed.Profile(viewerID, userID)
	if err != nil {
		return err
	}
	return c.JSON(contract.Success(constants.MsgTransactionsRetrieved, toProfileResponse(view)))
}

func (h *Handler) ToggleLike(c *fiber.Ctx) error {
	userID, err := h.caller(c)
	if err != nil {
		return err
	}

	tx, err := h.social.ToggleLike(c.Params("id"), userID)
	if err != nil {
		return err
	}

	return c.JSON(contract.Success("", tx))
}

func (h *Handler) Comment(c *fiber.Ctx) error {
	userID, err := h.caller(c)
	if err != nil {
		return err
	}

	var req CommentRequest
	if err := h.validate(c, "comment", &req); err != nil {
		return err
	}

	tx, err := h.social.Comment(service.CommentCommand{
		TransactionID: c.Params("id"),
		UserID:        userID,
		Content:       req.Content,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(contract.Success(constants.MsgCommentAdded, tx))
}
