package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolpay_backend/internals/configs"
	"schoolpay_backend/internals/features/payments/controller"
	"schoolpay_backend/internals/features/payments/gateway"
	"schoolpay_backend/internals/features/payments/model"
	"schoolpay_backend/internals/features/payments/repository"
	"schoolpay_backend/internals/features/payments/service"
	authMw "schoolpay_backend/internals/middlewares/auth"
)

func PaymentRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	orders := repository.NewGormOrderRepository(db)
	statuses := repository.NewGormOrderStatusRepository(db)
	logs := repository.NewGormWebhookLogRepository(db)
	transactions := repository.NewGormTransactionRepository(db)

	gateways := map[string]gateway.Client{
		model.GatewayEdviron:  gateway.NewEdvironClient(cfg),
		model.GatewayMidtrans: gateway.NewMidtransClient(cfg),
	}

	paymentCtrl := controller.NewPaymentController(
		service.NewPaymentService(orders, statuses, gateways, cfg))
	webhookCtrl := controller.NewWebhookController(
		service.NewWebhookService(orders, statuses, logs))
	txCtrl := controller.NewTransactionController(
		service.NewTransactionService(transactions, orders, statuses))

	requireAuth := authMw.AuthJWT(authMw.AuthJWTOpts{Secret: cfg.JWTSecret})

	payment := app.Group("/payment")
	payment.Post("/create-payment", requireAuth, paymentCtrl.CreatePayment)
	payment.Get("/status/:customOrderId", requireAuth, paymentCtrl.GetPaymentStatus)
	payment.Get("/callback", paymentCtrl.PaymentCallback) // gateway redirect, no auth

	// Webhook is unauthenticated: the gateway does not sign deliveries.
	app.Post("/webhook", webhookCtrl.ProcessWebhook)

	tx := app.Group("/transactions", requireAuth)
	tx.Get("/", txCtrl.ListTransactions)
	tx.Get("/school/:schoolId", txCtrl.ListTransactionsBySchool)
	tx.Get("/status/:customOrderId", txCtrl.GetTransactionStatus)
	tx.Post("/dummy-data", txCtrl.CreateDummyData)
}
