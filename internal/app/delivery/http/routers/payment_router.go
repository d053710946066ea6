package routers

import (
	"medilink-service/internal/app/delivery/http/controllers"
	"medilink-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, middlewares *middlewares.Middlewares, paymentController *controllers.PaymentController) {
	// Gateway-facing endpoints: the IPN is authenticated by its HMAC
	// signature and the redirect is an untrusted browser hop, so neither
	// carries a bearer token.
	router.Post("/wallet/notification", paymentController.WalletNotification)
	router.Get("/wallet/return", paymentController.WalletReturn)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authenticate)
		r.Post("/", paymentController.CreatePayment)
		r.Post("/{orderID}/sync", paymentController.ManualSync)
		r.Get("/{orderID}", paymentController.GetPaymentStatus)
		r.Get("/{orderID}/watch", paymentController.WatchPaymentStatus)
	})
}
