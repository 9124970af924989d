package v1

import (
	"github.com/Behyna/social-payments/internal/api/contract"
	"github.com/Behyna/social-payments/internal/constants"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) ListUsers(c *fiber.Ctx) error {
	return c.JSON(contract.Success("", h.users.List()))
}

func (h *Handler) GetUser(c *fiber.Ctx) error {
	user, err := h.users.Get(c.Params("id"))
	if err != nil {
		return err
	}

	return c.JSON(contract.Success("", user))
}

func (h *Handler) Rename(c *fiber.Ctx) error {
	userID, err := h.caller(c)
	if err != nil {
		return err
	}

	var req RenameRequest
	if err := h.validate(c, "rename", &req); err != nil {
		return err
	}

	user, err := h.users.Rename(userID, req.Name)
	if err != nil {
		return err
	}

	return c.JSON(contract.Success(constants.MsgUserRenamed, user))
}
