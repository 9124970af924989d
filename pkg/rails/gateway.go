package rails

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Behyna/social-payments/pkg/httpclient"
)

const (
	QRISEndpoint    = "/rails/qris"
	BankVAEndpoint  = "/rails/va"
	EWalletEndpoint = "/rails/ewallet"
)

type gateway struct {
	client httpclient.HTTPClient
	config Config
}

// NewGatewayRail returns a Rail that forwards charges to a remote rails service.
func NewGatewayRail(cfg Config, client httpclient.HTTPClient) Rail {
	return &gateway{config: cfg, client: client}
}

func (g *gateway) Charge(ctx context.Context, request ChargeRequest) (Charge, error) {
	endpoint, err := endpointFor(request.Channel)
	if err != nil {
		return Charge{}, err
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(request); err != nil {
		return Charge{}, fmt.Errorf("encoding error: %w", err)
	}

	headers := map[string]string{
		"Content-Type": "application/json",
	}

	resp, err := g.client.Post(ctx, g.config.BaseURL+endpoint, &buf, headers)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return Charge{}, ErrTimeout
		}

		return Charge{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != StatusOK {
		return Charge{}, MapStatusToError(resp.StatusCode)
	}

	var charge Charge
	if err := json.NewDecoder(resp.Body).Decode(&charge); err != nil {
		return Charge{}, fmt.Errorf("decoding error: %w", err)
	}

	return charge, nil
}

func endpointFor(channel Channel) (string, error) {
	switch channel {
	case ChannelQRIS:
		return QRISEndpoint, nil
	case ChannelBankVA:
		return BankVAEndpoint, nil
	case ChannelEWallet:
		return EWalletEndpoint, nil
	default:
		return "", ErrInvalidChannel
	}
}
