package v1

import (
	"github.com/Behyna/social-payments/internal/api/contract"
	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetSettings(c *fiber.Ctx) error {
	userID, err := h.caller(c)
	if err != nil {
		return err
	}

	settings, err := h.settings.Get(userID)
	if err != nil {
		return err
	}

	return c.JSON(contract.Success("", settings))
}

func (h *Handler) UpdateSettings(c *fiber.Ctx) error {
	userID, err := h.caller(c)
	if err != nil {
		return err
	}

	var req UpdateSettingsRequest
	if err := h.validate(c, "update_settings", &req); err != nil {
		return err
	}

	settings, err := h.settings.Update(c.UserContext(), service.UpdateSettingsCommand{
		UserID:         userID,
		DefaultPrivacy: model.Privacy(req.DefaultPrivacy),
		NotifyPayments: req.NotifyPayments,
		NotifyRequests: req.NotifyRequests,
		NotifySocial:   req.NotifySocial,
	})
	if err != nil {
		return err
	}

	return c.JSON(contract.Success(constants.MsgSettingsUpdated, settings))
}
