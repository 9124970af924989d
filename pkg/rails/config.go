package rails

import "time"

type Config struct {
	// Mode selects the rail implementation: "mock" generates synthetic charges in process,
	// "gateway" forwards to BaseURL.
	Mode       string        `mapstructure:"mode"`
	BaseURL    string        `mapstructure:"base_url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	Delay      time.Duration `mapstructure:"delay"`
	QRISExpiry time.Duration `mapstructure:"qris_expiry"`
	VAExpiry   time.Duration `mapstructure:"va_expiry"`
	// FailingProviders makes the mock rail reject charges for the listed providers.
	FailingProviders []string `mapstructure:"failing_providers"`
}

const (
	ModeMock    = "mock"
	ModeGateway = "gateway"

	defaultQRISExpiry = 15 * time.Minute
	defaultVAExpiry   = 24 * time.Hour
)
