package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Behyna/social-payments/internal/api/contract"
	"github.com/Behyna/social-payments/internal/constants"
	"github.com/Behyna/social-payments/internal/metrics"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const sep = " and "

type Error struct {
	FailedField string
	Tag         string
	Value       interface{}
}

type IXValidator interface {
	// Validator parses the body into data and validates it. A non-empty Code on the returned
	// response means the request must be rejected with it.
	Validator(data any, message string, c *fiber.Ctx) contract.Response
	Validate(data any) []Error
}

type XValidator struct {
	validator *validator.Validate
	metrics   *metrics.Metrics
}

func NewXValidator(v *validator.Validate, m *metrics.Metrics) (IXValidator, error) {
	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return nil, fmt.Errorf("register validation %s: %w", tag, err)
		}
	}

	return &XValidator{validator: v, metrics: m}, nil
}

func (x *XValidator) Validator(data any, message string, c *fiber.Ctx) contract.Response {
	if len(c.Body()) > 0 {
		if err := c.BodyParser(data); err != nil {
			return contract.Response{
				Code:    constants.ErrCodeValidationFailed,
				Message: "request body is not valid JSON",
			}
		}
	}

	errs := x.Validate(data)
	if len(errs) == 0 {
		return contract.Response{}
	}

	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, fmt.Sprintf(message, err.FailedField))
		if x.metrics != nil {
			x.metrics.RecordValidationError(err.FailedField, err.Tag)
		}
	}

	return contract.Response{
		Code:    constants.ErrCodeValidationFailed,
		Message: strings.Join(msgs, sep),
	}
}

func (x *XValidator) Validate(data any) []Error {
	err := x.validator.Struct(data)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []Error{{FailedField: "body", Tag: "invalid"}}
	}

	out := make([]Error, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Error{FailedField: fe.Field(), Tag: fe.Tag(), Value: fe.Value()})
	}
	return out
}
