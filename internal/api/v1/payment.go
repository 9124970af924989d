package v1

import (
	"time"

	"github.com/Behyna/social-payments/internal/api/contract"
	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (h *Handler) CreateRequest(c *fiber.Ctx) error {
	start := time.Now()

	requesterID, err := h.caller(c)
	if err != nil {
		return err
	}

	var req CreateRequestRequest
	if err := h.validate(c, "create_request", &req); err != nil {
		return err
	}

	res, err := h.requests.CreateRequest(c.UserContext(), service.CreateRequestCommand{
		SenderID:    requesterID,
		RecipientID: req.PayerID,
		Amount:      req.Amount,
		Note:        req.Note,
		Privacy:     model.Privacy(req.Privacy),
	})
	if err != nil {
		return err
	}

	h.logger.Info("Create request handled",
		zap.String("transactionID", res.Transaction.ID),
		zap.Duration("duration", time.Since(start)))

	return c.Status(fiber.StatusCreated).JSON(contract.Success(constants.MsgRequestCreated, CreateRequestResponse{
		Transaction:   res.Transaction,
		Notifications: res.Notifications,
	}))
}

func (h *Handler) CreatePayment(c *fiber.Ctx) error {
	start := time.Now()

	senderID, err := h.caller(c)
	if err != nil {
		return err
	}

	var req CreatePaymentRequest
	if err := h.validate(c, "create_payment", &req); err != nil {
		return err
	}

	res, err := h.requests.CreatePayment(c.UserContext(), service.CreatePaymentCommand{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Amount:      req.Amount,
		Note:        req.Note,
		Privacy:     model.Privacy(req.Privacy),
		Method:      model.PaymentMethod(req.Method),
	})
	if err != nil {
		return err
	}

	h.logger.Info("Create payment handled",
		zap.String("transactionID", res.Transaction.ID),
		zap.Duration("duration", time.Since(start)))

	return c.Status(fiber.StatusCreated).JSON(contract.Success(constants.MsgPaymentCompleted, toPaymentResponse(res)))
}

func (h *Handler) PayRequest(c *fiber.Ctx) error {
	start := time.Now()

	payerID, err := h.caller(c)
	if err != nil {
		return err
	}

	var req PayRequestRequest
	if err := h.validate(c, "pay_request", &req); err != nil {
		return err
	}

	res, err := h.requests.PayRequest(c.UserContext(), service.PayRequestCommand{
		TransactionID: c.Params("id"),
		Method:        model.PaymentMethod(req.Method),
		ActorID:       payerID,
	})
	if err != nil {
		return err
	}

	h.logger.Info("Pay request handled",
		zap.String("transactionID", res.Transaction.ID),
		zap.Duration("duration", time.Since(start)))

	return c.JSON(contract.Success(constants.MsgRequestPaid, toPaymentResponse(res)))
}

func (h *Handler) DeclineRequest(c *fiber.Ctx) error {
	payerID, err := h.caller(c)
	if err != nil {
		return err
	}

	tx, err := h.requests.DeclineRequest(c.UserContext(), service.DeclineRequestCommand{
		TransactionID: c.Params("id"),
		ActorID:       payerID,
	})
	if err != nil {
		return err
	}

	return c.JSON(contract.Success(constants.MsgRequestDeclined, tx))
}

func (h *Handler) CancelRequest(c *fiber.Ctx) error {
	requesterID, err := h.caller(c)
	if err != nil {
		return err
	}

	tx, err := h.requests.CancelRequest(c.UserContext(), service.CancelRequestCommand{
		TransactionID: c.Params("id"),
		ActorID:       requesterID,
	})
	if err != nil {
		return err
	}

	return c.JSON(contract.Success(constants.MsgRequestCancelled, tx))
}

// RemindRequest only lets the requester of an open request remind its payer. The reminder is built
// from the requester's notification snapshot.
func (h *Handler) RemindRequest(c *fiber.Ctx) error {
	requesterID, err := h.caller(c)
	if err != nil {
		return err
	}

	tx, err := h.notifications.RemindableRequest(requesterID, c.Params("id"))
	if err != nil {
		return err
	}

	err = h.requests.RemindRequest(c.UserContext(), service.RemindRequestCommand{
		TransactionID: tx.ID,
		RequesterID:   tx.SenderID,
		PayerID:       tx.RecipientID,
		Amount:        tx.Amount,
		Note:          tx.Note,
	})
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusAccepted).JSON(contract.Success(constants.MsgReminderSent, nil))
}
