package v1

import (
	"errors"
	"time"

	"github.com/Behyna/social-payments/internal/api/validator"
	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/Behyna/social-payments/pkg/rails"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// HeaderUserID names the account the caller acts as. It switches between demo accounts and is not
// an authentication mechanism.
const HeaderUserID = "X-User-ID"

var ErrMissingCaller = errors.New(HeaderUserID + " header is required")

type Handler struct {
	logger        *zap.Logger
	requests      service.PaymentRequestService
	notifications service.NotificationService
	social        service.SocialService
	friends       service.FriendService
	feed          service.FeedService
	settings      service.SettingsService
	users         service.UserService
	rail          rails.Rail
	XValidator    validator.IXValidator
	startedAt     time.Time
}

func NewHandler(logger *zap.Logger, requests service.PaymentRequestService,
	notifications service.NotificationService, social service.SocialService, friends service.FriendService,
	feed service.FeedService, settings service.SettingsService, users service.UserService, rail rails.Rail,
	XValidator validator.IXValidator) *Handler {
	return &Handler{
		logger:        logger,
		requests:      requests,
		notifications: notifications,
		social:        social,
		friends:       friends,
		feed:          feed,
		settings:      settings,
		users:         users,
		rail:          rail,
		XValidator:    XValidator,
		startedAt:     time.Now(),
	}
}

func (h *Handler) Pong(c *fiber.Ctx) error {
	return c.SendString("pong")
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthResponse{
		Status: "ok",
		Uptime: time.Since(h.startedAt).Round(time.Second).String(),
	})
}

// caller resolves the acting user from the request header and makes sure it is a known account.
func (h *Handler) caller(c *fiber.Ctx) (string, error) {
	userID := c.Get(HeaderUserID)
	if userID == "" {
		return "", service.NewServiceError(constants.ErrCodeValidationFailed, ErrMissingCaller)
	}

	if _, err := h.users.Get(userID); err != nil {
		return "", err
	}
	return userID, nil
}

func (h *Handler) validate(c *fiber.Ctx, operation string, data any) error {
	res := h.XValidator.Validator(data, constants.MessageErrorFormat, c)
	if res.Code == "" {
		return nil
	}

	h.logger.Warn("Request validation failed",
		zap.String("operation", operation),
		zap.String("message", res.Message))

	return service.NewServiceError(constants.ErrCodeValidationFailed, errors.New(res.Message))
}
