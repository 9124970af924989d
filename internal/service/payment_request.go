package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/metrics"
	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/internal/repository"
	"github.com/Behyna/social-payments/pkg/rails"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SettingsReader is the read side of the settings store.
type SettingsReader interface {
	Get(userID string) (model.UserSettings, error)
}

// PaymentRequestService keeps a request transaction and its paired notifications consistent across
// every state transition.
type PaymentRequestService interface {
	CreateRequest(ctx context.Context, cmd CreateRequestCommand) (CreateRequestResponse, error)
	CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (PaymentResponse, error)
	PayRequest(ctx context.Context, cmd PayRequestCommand) (PaymentResponse, error)
	DeclineRequest(ctx context.Context, cmd DeclineRequestCommand) (model.Transaction, error)
	CancelRequest(ctx context.Context, cmd CancelRequestCommand) (model.Transaction, error)
	RemindRequest(ctx context.Context, cmd RemindRequestCommand) error
	VisibleNotifications(userID string) []model.Notification
}

type paymentRequest struct {
	// mu serializes events so no observer sees a transition half applied.
	mu sync.Mutex

	transactions  repository.TransactionRepository
	notifications repository.NotificationRepository
	users         repository.UserRepository
	settings      SettingsReader
	rail          rails.Rail
	reminder      Reminder
	metrics       *metrics.Metrics
	logger        *zap.Logger
}

func NewPaymentRequestService(transactions repository.TransactionRepository,
	notifications repository.NotificationRepository, users repository.UserRepository, settings SettingsReader,
	rail rails.Rail, reminder Reminder, metrics *metrics.Metrics, logger *zap.Logger) PaymentRequestService {
	return &paymentRequest{
		transactions:  transactions,
		notifications: notifications,
		users:         users,
		settings:      settings,
		rail:          rail,
		reminder:      reminder,
		metrics:       metrics,
		logger:        logger,
	}
}

func (p *paymentRequest) CreateRequest(ctx context.Context, cmd CreateRequestCommand) (CreateRequestResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx, err := p.newTransaction(cmd.SenderID, cmd.RecipientID, cmd.Amount, cmd.Note, cmd.Privacy)
	if err != nil {
		return CreateRequestResponse{}, p.fail("create_request", err)
	}

	tx.Type = model.TransactionTypeRequest
	tx.Status = model.TransactionStatusPending

	if err := p.transactions.Insert(tx); err != nil {
		return CreateRequestResponse{}, p.fail("create_request", insertError(err))
	}

	now := time.Now()
	pair := []model.Notification{
		p.newNotification(tx, tx.SenderID, model.NotificationTypePaymentRequest, now),
		p.newNotification(tx, tx.RecipientID, model.NotificationTypePaymentRequest, now),
	}
	p.notifications.Update(func(current []model.Notification) []model.Notification {
		return append(slices.Clone(pair), current...)
	})

	p.metrics.RecordTransactionCreated(string(tx.Type), string(tx.Status))
	p.logger.Info("Payment request created",
		zap.String("transactionID", tx.ID),
		zap.String("requesterID", tx.SenderID),
		zap.String("payerID", tx.RecipientID),
		zap.Int64("amount", tx.Amount))

	return CreateRequestResponse{Transaction: tx, Notifications: pair}, nil
}

func (p *paymentRequest) CreatePayment(ctx context.Context, cmd CreatePaymentCommand) (PaymentResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !cmd.Method.Valid() {
		return PaymentResponse{}, p.fail("create_payment",
			NewServiceError(constants.ErrCodeValidationFailed, ErrInvalidPaymentMethod))
	}

	tx, err := p.newTransaction(cmd.SenderID, cmd.RecipientID, cmd.Amount, cmd.Note, cmd.Privacy)
	if err != nil {
		return PaymentResponse{}, p.fail("create_payment", err)
	}

	tx.Type = model.TransactionTypePayment
	tx.PaymentMethod = cmd.Method

	charge, chargeErr := p.charge(ctx, tx, cmd.Method)
	if chargeErr != nil {
		tx.Status = model.TransactionStatusFailed
	} else {
		tx.Status = model.TransactionStatusCompleted
	}

	if err := p.transactions.Insert(tx); err != nil {
		return PaymentResponse{}, p.fail("create_payment", insertError(err))
	}

	p.metrics.RecordTransactionCreated(string(tx.Type), string(tx.Status))

	if chargeErr != nil {
		return PaymentResponse{Transaction: tx}, p.fail("create_payment", chargeErr)
	}

	if p.wantsPaymentNotifications(tx.RecipientID) {
		p.notifications.Insert(p.newNotification(tx, tx.RecipientID, model.NotificationTypePaymentReceived, time.Now()))
	}

	p.logger.Info("Payment completed",
		zap.String("transactionID", tx.ID),
		zap.String("senderID", tx.SenderID),
		zap.String("recipientID", tx.RecipientID),
		zap.String("method", string(tx.PaymentMethod)),
		zap.Int64("amount", tx.Amount))

	return PaymentResponse{
		Transaction:              tx,
		Charge:                   charge,
		RequiresQRISConfirmation: cmd.Method == model.PaymentMethodQRIS,
	}, nil
}

func (p *paymentRequest) PayRequest(ctx context.Context, cmd PayRequestCommand) (PaymentResponse, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !cmd.Method.Valid() {
		return PaymentResponse{}, p.fail("pay_request",
			NewServiceError(constants.ErrCodeValidationFailed, ErrInvalidPaymentMethod))
	}

	tx, pair, err := p.loadOpenRequest(cmd.TransactionID)
	if err != nil {
		return PaymentResponse{}, p.fail("pay_request", err)
	}

	if cmd.ActorID != "" && cmd.ActorID != pair.payerID {
		return PaymentResponse{}, p.fail("pay_request", NewServiceError(constants.ErrCodeNotAllowed, ErrNotPayer))
	}

	charge, chargeErr := p.charge(ctx, tx, cmd.Method)
	if chargeErr != nil {
		failed := model.TransactionStatusFailed
		p.transactions.Update(tx.ID, model.TransactionPatch{Status: &failed, PaymentMethod: &cmd.Method})
		if updated, err := p.transactions.GetByID(tx.ID); err == nil {
			p.commit(updated, "")
			tx = updated
		}

		return PaymentResponse{Transaction: tx}, p.fail("pay_request", chargeErr)
	}

	// The payer becomes the sender of the settled payment.
	status := model.TransactionStatusCompleted
	txType := model.TransactionTypePayment
	patch := model.TransactionPatch{
		SenderID:      &tx.RecipientID,
		Sender:        &tx.Recipient,
		RecipientID:   &tx.SenderID,
		Recipient:     &tx.Sender,
		Status:        &status,
		Type:          &txType,
		PaymentMethod: &cmd.Method,
	}

	updated, err := p.apply(tx.ID, patch)
	if err != nil {
		return PaymentResponse{}, p.fail("pay_request", err)
	}

	p.commit(updated, pair.payer.ID)

	p.metrics.RecordTransition(string(status))
	p.logger.Info("Payment request paid",
		zap.String("transactionID", updated.ID),
		zap.String("payerID", pair.payerID),
		zap.String("requesterID", pair.requesterID),
		zap.String("method", string(cmd.Method)))

	return PaymentResponse{
		Transaction:              updated,
		Charge:                   charge,
		RequiresQRISConfirmation: cmd.Method == model.PaymentMethodQRIS,
	}, nil
}

func (p *paymentRequest) DeclineRequest(ctx context.Context, cmd DeclineRequestCommand) (model.Transaction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx, pair, err := p.loadOpenRequest(cmd.TransactionID)
	if err != nil {
		return model.Transaction{}, p.fail("decline_request", err)
	}

	if cmd.ActorID != "" && cmd.ActorID != pair.payerID {
		return model.Transaction{}, p.fail("decline_request", NewServiceError(constants.ErrCodeNotAllowed, ErrNotPayer))
	}

	status := model.TransactionStatusDeclined
	updated, err := p.apply(tx.ID, model.TransactionPatch{Status: &status})
	if err != nil {
		return model.Transaction{}, p.fail("decline_request", err)
	}

	p.commit(updated, pair.payer.ID)

	p.metrics.RecordTransition(string(status))
	p.logger.Info("Payment request declined",
		zap.String("transactionID", updated.ID),
		zap.String("payerID", pair.payerID))

	return updated, nil
}

func (p *paymentRequest) CancelRequest(ctx context.Context, cmd CancelRequestCommand) (model.Transaction, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	tx, pair, err := p.loadOpenRequest(cmd.TransactionID)
	if err != nil {
		return model.Transaction{}, p.fail("cancel_request", err)
	}

	if cmd.ActorID != "" && cmd.ActorID != pair.requesterID {
		return model.Transaction{}, p.fail("cancel_request", NewServiceError(constants.ErrCodeNotAllowed, ErrNotRequester))
	}

	status := model.TransactionStatusCancelled
	updated, err := p.apply(tx.ID, model.TransactionPatch{Status: &status})
	if err != nil {
		return model.Transaction{}, p.fail("cancel_request", err)
	}

	p.notifications.Update(func(current []model.Notification) []model.Notification {
		return slices.DeleteFunc(current, func(n model.Notification) bool {
			return n.TransactionID == updated.ID
		})
	})

	p.metrics.RecordTransition(string(status))
	p.logger.Info("Payment request cancelled",
		zap.String("transactionID", updated.ID),
		zap.String("requesterID", pair.requesterID))

	return updated, nil
}

func (p *paymentRequest) RemindRequest(ctx context.Context, cmd RemindRequestCommand) error {
	if cmd.TransactionID == "" || cmd.PayerID == "" || cmd.RequesterID == "" {
		return p.fail("remind_request", NewServiceError(constants.ErrCodeValidationFailed, ErrMissingField))
	}

	err := p.reminder.Remind(ctx, model.Reminder{
		TransactionID: cmd.TransactionID,
		RequesterID:   cmd.RequesterID,
		PayerID:       cmd.PayerID,
		Amount:        cmd.Amount,
		Note:          cmd.Note,
		SentAt:        time.Now(),
	})
	if err != nil {
		p.metrics.RecordReminder("error")
		p.logger.Error("Failed to send payment reminder",
			zap.String("transactionID", cmd.TransactionID),
			zap.Error(err))
		return p.fail("remind_request", NewServiceError(constants.ErrCodeOperationFailed, err))
	}

	p.metrics.RecordReminder("sent")
	return nil
}

// VisibleNotifications hides request notifications whose owner may no longer act on or follow them.
// The payer sees a request only while it is open; the requester keeps it once paid or declined.
func (p *paymentRequest) VisibleNotifications(userID string) []model.Notification {
	owned := p.notifications.ListByUser(userID)

	out := make([]model.Notification, 0, len(owned))
	for _, n := range owned {
		if n.Type != model.NotificationTypePaymentRequest || requestVisibleTo(n.Transaction, userID) {
			out = append(out, n)
		}
	}
	return out
}

func requestVisibleTo(tx model.Transaction, userID string) bool {
	switch tx.Status {
	case model.TransactionStatusPending, model.TransactionStatusFailed:
		return true
	case model.TransactionStatusCompleted:
		// Roles are swapped once paid: the requester is now the recipient.
		return tx.RecipientID == userID
	case model.TransactionStatusDeclined:
		return tx.SenderID == userID
	case model.TransactionStatusCancelled:
		return false
	default:
		return false
	}
}

type requestPair struct {
	requesterID string
	payerID     string
	requester   model.Notification
	payer       model.Notification
}

// loadOpenRequest returns a request that may still transition together with both of its notifications.
func (p *paymentRequest) loadOpenRequest(transactionID string) (model.Transaction, requestPair, error) {
	tx, err := p.transactions.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return model.Transaction{}, requestPair{}, NewServiceError(constants.ErrCodeTransactionNotFound, err)
		}
		return model.Transaction{}, requestPair{}, NewServiceError(constants.ErrCodeOperationFailed, err)
	}

	if tx.Status.Terminal() {
		p.logger.Warn("Transition on settled request rejected",
			zap.String("transactionID", tx.ID),
			zap.String("status", string(tx.Status)))
		return model.Transaction{}, requestPair{}, NewServiceError(constants.ErrCodeConsistency,
			fmt.Errorf("%w: status %s", ErrRequestNotPending, tx.Status))
	}

	if tx.Type != model.TransactionTypeRequest {
		return model.Transaction{}, requestPair{}, NewServiceError(constants.ErrCodeConsistency, ErrNotRequest)
	}

	pair := requestPair{requesterID: tx.SenderID, payerID: tx.RecipientID}

	var requesterOK, payerOK bool
	pair.requester, requesterOK = p.notifications.FindRequest(tx.ID, pair.requesterID)
	pair.payer, payerOK = p.notifications.FindRequest(tx.ID, pair.payerID)
	if !requesterOK || !payerOK {
		p.logger.Error("Paired request notification missing",
			zap.String("transactionID", tx.ID),
			zap.Bool("requesterFound", requesterOK),
			zap.Bool("payerFound", payerOK))
		return model.Transaction{}, requestPair{}, NewServiceError(constants.ErrCodeConsistency, ErrNotificationMissing)
	}

	return tx, pair, nil
}

func (p *paymentRequest) apply(id string, patch model.TransactionPatch) (model.Transaction, error) {
	if !p.transactions.Update(id, patch) {
		return model.Transaction{}, NewServiceError(constants.ErrCodeConsistency, repository.ErrTransactionNotFound)
	}

	updated, err := p.transactions.GetByID(id)
	if err != nil {
		return model.Transaction{}, NewServiceError(constants.ErrCodeConsistency, err)
	}

	return updated, nil
}

// commit refreshes every snapshot of tx and drops the notification with dropID, in one replace.
func (p *paymentRequest) commit(tx model.Transaction, dropID string) {
	p.notifications.Update(func(current []model.Notification) []model.Notification {
		next := make([]model.Notification, 0, len(current))
		for _, n := range current {
			if dropID != "" && n.ID == dropID {
				continue
			}
			if n.TransactionID == tx.ID {
				n.Transaction = tx.Clone()
			}
			next = append(next, n)
		}
		return next
	})
}

func (p *paymentRequest) charge(ctx context.Context, tx model.Transaction, method model.PaymentMethod) (rails.Charge, error) {
	req, err := chargeRequest(tx, method)
	if err != nil {
		return rails.Charge{}, NewServiceError(constants.ErrCodeValidationFailed, err)
	}

	start := time.Now()
	charge, err := p.rail.Charge(ctx, req)
	if err != nil {
		p.metrics.RecordRailCharge(string(req.Channel), "error", time.Since(start))
		p.logger.Warn("Payment rail charge failed",
			zap.String("transactionID", tx.ID),
			zap.String("channel", string(req.Channel)),
			zap.String("provider", req.Provider),
			zap.Error(err))
		return rails.Charge{}, NewServiceError(constants.ErrCodeExternalRail, fmt.Errorf("%w: %w", ErrRailFailed, err))
	}

	p.metrics.RecordRailCharge(string(req.Channel), "success", time.Since(start))
	return charge, nil
}

func chargeRequest(tx model.Transaction, method model.PaymentMethod) (rails.ChargeRequest, error) {
	channel, ok := method.Channel()
	if !ok {
		return rails.ChargeRequest{}, ErrInvalidPaymentMethod
	}

	req := rails.ChargeRequest{Amount: tx.Amount, Reference: tx.ID}

	switch channel {
	case model.PaymentChannelQRIS:
		req.Channel = rails.ChannelQRIS
	case model.PaymentChannelBankVA:
		req.Channel = rails.ChannelBankVA
		req.Provider = string(method)
	case model.PaymentChannelEWallet:
		req.Channel = rails.ChannelEWallet
		req.Provider = string(method)
	default:
		return rails.ChargeRequest{}, ErrInvalidPaymentMethod
	}

	return req, nil
}

func (p *paymentRequest) newTransaction(senderID, recipientID string, amount int64, note string,
	privacy model.Privacy) (model.Transaction, error) {
	if senderID == recipientID {
		return model.Transaction{}, NewServiceError(constants.ErrCodeValidationFailed, repository.ErrSelfPayment)
	}

	if amount <= 0 {
		return model.Transaction{}, NewServiceError(constants.ErrCodeValidationFailed, repository.ErrInvalidAmount)
	}

	sender, err := p.users.GetByID(senderID)
	if err != nil {
		return model.Transaction{}, NewServiceError(constants.ErrCodeUserNotFound, err)
	}

	recipient, err := p.users.GetByID(recipientID)
	if err != nil {
		return model.Transaction{}, NewServiceError(constants.ErrCodeUserNotFound, err)
	}

	if privacy == "" {
		privacy = p.defaultPrivacy(senderID)
	}

	if !privacy.Valid() {
		return model.Transaction{}, NewServiceError(constants.ErrCodeValidationFailed, ErrInvalidPrivacy)
	}

	return model.Transaction{
		ID:               uuid.NewString(),
		SenderID:         sender.ID,
		Sender:           sender,
		RecipientID:      recipient.ID,
		Recipient:        recipient,
		Amount:           amount,
		Note:             strings.TrimSpace(note),
		Privacy:          privacy,
		CreatedAt:        time.Now(),
		Likes:            []model.Like{},
		Comments:         []model.Comment{},
		ShowAmountOnFeed: privacy != model.PrivacyPrivate,
	}, nil
}

func (p *paymentRequest) newNotification(tx model.Transaction, ownerID string, t model.NotificationType,
	at time.Time) model.Notification {
	return model.Notification{
		ID:            uuid.NewString(),
		UserID:        ownerID,
		TransactionID: tx.ID,
		Transaction:   tx.Clone(),
		Type:          t,
		CreatedAt:     at,
	}
}

func (p *paymentRequest) defaultPrivacy(userID string) model.Privacy {
	us, err := p.settings.Get(userID)
	if err != nil {
		p.logger.Warn("Failed to read user settings, using public privacy",
			zap.String("userID", userID),
			zap.Error(err))
		return model.PrivacyPublic
	}

	if !us.DefaultPrivacy.Valid() {
		return model.PrivacyPublic
	}
	return us.DefaultPrivacy
}

func (p *paymentRequest) wantsPaymentNotifications(userID string) bool {
	us, err := p.settings.Get(userID)
	if err != nil {
		return true
	}
	return us.NotifyPayments
}

func (p *paymentRequest) fail(operation string, err error) error {
	code := CodeOf(err)
	if code == "" {
		code = constants.ErrCodeOperationFailed
		err = NewServiceError(code, err)
	}

	p.metrics.RecordEngineError(operation, code)
	p.logger.Warn("Payment request operation failed",
		zap.String("operation", operation),
		zap.String("code", code),
		zap.Error(err))

	return err
}

func insertError(err error) error {
	if errors.Is(err, repository.ErrSelfPayment) || errors.Is(err, repository.ErrInvalidAmount) {
		return NewServiceError(constants.ErrCodeValidationFailed, err)
	}
	return NewServiceError(constants.ErrCodeOperationFailed, err)
}
