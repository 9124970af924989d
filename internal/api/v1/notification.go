package v1

import (
	"github.com/Behyna/social-payments/internal/api/contract"
	"github.com/Behyna/social-payments/internal/constants"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListNotifications(c *fiber.Ctx) error {
	userID, err := h.caller(c)
	if err != nil {
		return err
	}

	return c.JSON(contract.Success("", h.requests.VisibleNotifications(userID)))
}

func (h *Handler) CountNotifications(c *fiber.Ctx) error {
	userID, err := h.caller(c)
	if err != nil {
		return err
	}

	counts := h.notifications.Counts(userID)
	return c.JSON(contract.Success("", CountsResponse{
		Unread:            counts.Unread,
		PendingActionable: counts.PendingActionable,
	}))
}

func (h *Handler) MarkNotificationRead(c *fiber.Ctx) error {
	userID, err := h.caller(c)
	if err != nil {
		return err
	}

	if err := h.notifications.MarkRead(userID, c.Params("id")); err != nil {
		return err
	}

	return c.JSON(contract.Success(constants.MsgNotificationRead, nil))
}

func (h *Handler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	userID, err := h.caller(c)
	if err != nil {
		return err
	}

	updated := h.notifications.MarkAllRead(userID)
	return c.JSON(contract.Success(constants.MsgNotificationsRead, MarkAllReadResponse{Updated: updated}))
}
