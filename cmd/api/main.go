package main

import (
	"context"
	"fmt"

	"github.com/Behyna/social-payments/internal/api"
	v1 "github.com/Behyna/social-payments/internal/api/v1"
	"github.com/Behyna/social-payments/internal/api/validator"
	"github.com/Behyna/social-payments/internal/config"
	apperrors "github.com/Behyna/social-payments/internal/errors"
	"github.com/Behyna/social-payments/internal/metrics"
	"github.com/Behyna/social-payments/internal/publishers"
	"github.com/Behyna/social-payments/internal/repository"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/Behyna/social-payments/pkg/httpclient"
	"github.com/Behyna/social-payments/pkg/mq"
	"github.com/Behyna/social-payments/pkg/rails"
	"github.com/Behyna/social-payments/pkg/sqlite"
	playground "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			prometheus.NewRegistry,
			NewMetrics,
			NewConnectionDB,
			NewFiberApp,
			NewXValidator,
			NewRail,
			NewReminder,

			NewUserRepository,
			repository.NewTransactionRepository,
			repository.NewNotificationRepository,
			repository.NewFriendRepository,
			repository.NewSettingsRepository,

			service.NewUserService,
			service.NewSettingsService,
			NewSettingsReader,
			service.NewFriendService,
			service.NewFeedService,
			service.NewSocialService,
			service.NewNotificationService,
			service.NewPaymentRequestService,

			v1.NewHandler,
		),
		fx.Invoke(startServer, startCollector),
	).Run()
}

func startServer(app *fiber.App, handler *v1.Handler, reg *prometheus.Registry, cfg *config.Config,
	logger *zap.Logger, lc fx.Lifecycle) {
	api.SetupRoutes(app, handler, reg)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("server exited", zap.Error(err))
				}
			}()
			logger.Info("api started", zap.String("port", cfg.API.Port), zap.String("railMode", cfg.Rails.Mode))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}

func startCollector(cfg *config.Config, m *metrics.Metrics, db *gorm.DB, logger *zap.Logger, lc fx.Lifecycle) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	collector := metrics.NewCollector(m, sqlDB, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			collector.Start(cfg.Metrics.Interval)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			collector.Stop()
			return sqlDB.Close()
		},
	})
	return nil
}

func NewMetrics(reg *prometheus.Registry) *metrics.Metrics {
	return metrics.NewMetrics(reg)
}

func NewConnectionDB(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	ctx := context.Background()
	return sqlite.NewConnection(ctx, cfg.Settings, logger)
}

func NewFiberApp(m *metrics.Metrics, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "social-payments",
		// Header and route values are kept in the stores past the request.
		Immutable:    true,
		ErrorHandler: apperrors.ErrorHandler(logger),
	})
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	return app
}

func NewXValidator(m *metrics.Metrics) (validator.IXValidator, error) {
	return validator.NewXValidator(playground.New(), m)
}

func NewRail(cfg *config.Config) (rails.Rail, error) {
	switch cfg.Rails.Mode {
	case rails.ModeMock:
		return rails.NewMockRail(cfg.Rails), nil
	case rails.ModeGateway:
		client := httpclient.NewHTTPClient(cfg.Rails.Timeout)
		return rails.NewGatewayRail(cfg.Rails, client), nil
	default:
		return nil, fmt.Errorf("unknown rails mode %q", cfg.Rails.Mode)
	}
}

// NewReminder publishes reminders to RabbitMQ when enabled and only logs them otherwise.
func NewReminder(cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) (service.Reminder, error) {
	if !cfg.Reminder.Enable {
		return service.NewLogReminder(logger), nil
	}

	rabbit, err := mq.NewConnection(cfg.RabbitMQ, logger)
	if err != nil {
		return nil, err
	}

	if err := rabbit.DeclareQueues(cfg.Reminder.Queue); err != nil {
		_ = rabbit.Close()
		return nil, err
	}

	publisher, err := rabbit.NewPublisher()
	if err != nil {
		_ = rabbit.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = publisher.Close()
			return rabbit.Close()
		},
	})

	return publishers.NewRemindPublisher(publisher, cfg.Reminder.Queue, logger), nil
}

func NewUserRepository(cfg *config.Config) repository.UserRepository {
	return repository.NewUserRepository(cfg.Users)
}

func NewSettingsReader(settings service.SettingsService) service.SettingsReader {
	return settings
}
