package main

import (
	"context"

	"github.com/Behyna/social-payments/internal/config"
	"github.com/Behyna/social-payments/internal/consumers"
	"github.com/Behyna/social-payments/internal/service"
	"github.com/Behyna/social-payments/pkg/mq"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			NewMQConnection,
			NewMQConsumer,

			service.NewLogReminder,

			NewRemindConsumer,
		),
		fx.Invoke(runRemindConsumer),
	).Run()
}

func runRemindConsumer(cfg *config.Config, remindConsumer consumers.RemindConsumer, logger *zap.Logger,
	rabbit *mq.RabbitMQ, lc fx.Lifecycle,
) {
	appCtx, cancel := context.WithCancel(context.Background())
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := rabbit.DeclareQueues(cfg.Reminder.Queue); err != nil {
				logger.Error("declare queues failed", zap.Error(err))
				return err
			}
			logger.Info("queue declared", zap.String("queue", cfg.Reminder.Queue))

			go func() {
				if err := remindConsumer.Consume(appCtx); err != nil {
					logger.Error("consumer exited", zap.Error(err))
				}
			}()

			logger.Info("remind consumer started")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping remind consumer")
			cancel()
			return rabbit.Close()
		},
	})
}

func NewMQConnection(cfg *config.Config, logger *zap.Logger) (*mq.RabbitMQ, error) {
	return mq.NewConnection(cfg.RabbitMQ, logger)
}

func NewMQConsumer(rabbitMQ *mq.RabbitMQ) (mq.Consumer, error) {
	return rabbitMQ.NewConsumer()
}

// NewRemindConsumer delivers reminders through the log channel until a push provider is configured.
func NewRemindConsumer(cfg *config.Config, push service.Reminder, consumer mq.Consumer,
	logger *zap.Logger) consumers.RemindConsumer {
	return consumers.NewRemindConsumer(push, consumer, cfg.Reminder.Queue, logger)
}
