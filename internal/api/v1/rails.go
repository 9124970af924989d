package v1

import (
	"errors"

	"github.com/Behyna/social-payments/internal/api/contract"
	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/Behyna/social-payments/pkg/rails"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (h *Handler) ChargeQRIS(c *fiber.Ctx) error {
	var req QRISChargeRequest
	if err := h.validate(c, "charge_qris", &req); err != nil {
		return err
	}

	return h.charge(c, rails.ChargeRequest{Channel: rails.ChannelQRIS, Amount: req.Amount})
}

func (h *Handler) ChargeVA(c *fiber.Ctx) error {
	var req VAChargeRequest
	if err := h.validate(c, "charge_va", &req); err != nil {
		return err
	}

	return h.charge(c, rails.ChargeRequest{Channel: rails.ChannelBankVA, Provider: req.Bank, Amount: req.Amount})
}

func (h *Handler) ChargeEWallet(c *fiber.Ctx) error {
	var req EWalletChargeRequest
	if err := h.validate(c, "charge_ewallet", &req); err != nil {
		return err
	}

	return h.charge(c, rails.ChargeRequest{Channel: rails.ChannelEWallet, Provider: req.Provider, Amount: req.Amount})
}

func (h *Handler) charge(c *fiber.Ctx, req rails.ChargeRequest) error {
	req.Reference = uuid.NewString()

	charge, err := h.rail.Charge(c.UserContext(), req)
	if err != nil {
		h.logger.Warn("Rail charge failed",
			zap.String("channel", string(req.Channel)),
			zap.String("provider", req.Provider),
			zap.Error(err))

		if errors.Is(err, rails.ErrInvalidChannel) || errors.Is(err, rails.ErrInvalidBank) ||
			errors.Is(err, rails.ErrInvalidProvider) || errors.Is(err, rails.ErrInvalidAmount) {
			return service.NewServiceError(constants.ErrCodeValidationFailed, err)
		}
		return service.NewServiceError(constants.ErrCodeExternalRail, err)
	}

	return c.Status(fiber.StatusCreated).JSON(contract.Success(constants.MsgChargeCreated, charge))
}
