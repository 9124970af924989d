package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/Behyna/social-payments/internal/model"
	"github.com/Behyna/social-payments/pkg/mq"
	"github.com/Behyna/social-payments/pkg/rails"
	"github.com/Behyna/social-payments/pkg/sqlite"
	"github.com/spf13/viper"
)

type Config struct {
	API      API           `mapstructure:"api"`
	Rails    rails.Config  `mapstructure:"rails"`
	RabbitMQ mq.Config     `mapstructure:"rabbitmq"`
	Reminder Reminder      `mapstructure:"reminder"`
	Settings sqlite.Config `mapstructure:"settings"`
	Metrics  Metrics       `mapstructure:"metrics"`
	Users    []model.User  `mapstructure:"users"`
}

type API struct {
	Port string `mapstructure:"port"`
}

type Reminder struct {
	// Enable publishes reminders to RabbitMQ; otherwise they are only logged.
	Enable bool   `mapstructure:"enable"`
	Queue  string `mapstructure:"queue"`
}

type Metrics struct {
	Interval time.Duration `mapstructure:"interval"`
}

// Load reads ./config/config.yml. SOCIAL_* environment variables override file values,
// e.g. SOCIAL_RABBITMQ_URL.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("social")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("api.port", ":8080")
	v.SetDefault("rails.mode", rails.ModeMock)
	v.SetDefault("rails.timeout", 10*time.Second)
	v.SetDefault("rails.delay", 1500*time.Millisecond)
	v.SetDefault("reminder.queue", "payment.remind")
	v.SetDefault("settings.path", "social-payments.db")
	v.SetDefault("metrics.interval", 15*time.Second)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
