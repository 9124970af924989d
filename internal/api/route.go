package api

import (
	v1 "github.com/Behyna/social-payments/internal/api/v1"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const prefixV1 = "api/v1/"

func SetupRoutes(app *fiber.App, handler *v1.Handler, gatherer prometheus.Gatherer) {
	app.Get("/ping", handler.Pong)
	app.Get("/health", handler.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	app.Post(prefixV1+"requests", handler.CreateRequest)
	app.Post(prefixV1+"requests/:id/pay", handler.PayRequest)
	app.Post(prefixV1+"requests/:id/decline", handler.DeclineRequest)
	app.Post(prefixV1+"requests/:id/cancel", handler.CancelRequest)
	app.Post(prefixV1+"requests/:id/remind", handler.RemindRequest)
	app.Post(prefixV1+"payments", handler.CreatePayment)

	app.Get(prefixV1+"notifications", handler.ListNotifications)
	app.Get(prefixV1+"notifications/count", handler.CountNotifications)
	app.Post(prefixV1+"notifications/read-all", handler.MarkAllNotificationsRead)
	app.Post(prefixV1+"notifications/:id/read", handler.MarkNotificationRead)

	app.Get(prefixV1+"feed", handler.Feed)
	app.Get(prefixV1+"users", handler.ListUsers)
	app.Patch(prefixV1+"users/me", handler.Rename)
	app.Get(prefixV1+"users/:id", handler.GetUser)
	app.Get(prefixV1+"users/:id/transactions", handler.UserTransactions)
	app.Post(prefixV1+"transactions/:id/likes", handler.ToggleLike)
	app.Post(prefixV1+"transactions/:id/comments", handler.Comment)

	app.Get(prefixV1+"friends", handler.ListFriends)
	app.Post(prefixV1+"friends/:id", handler.RequestFriend)
	app.Delete(prefixV1+"friends/:id", handler.RemoveFriend)
	app.Get(prefixV1+"friends/:id/status", handler.FriendStatus)

	app.Get(prefixV1+"settings", handler.GetSettings)
	app.Put(prefixV1+"settings", handler.UpdateSettings)

	app.Post(prefixV1+"rails/qris", handler.ChargeQRIS)
	app.Post(prefixV1+"rails/va", handler.ChargeVA)
	app.Post(prefixV1+"rails/ewallet", handler.ChargeEWallet)
}
