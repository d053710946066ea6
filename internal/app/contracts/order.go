package contracts

import (
	"context"
	"medilink-service/internal/app/models"
)

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *models.PaymentOrder) (*models.PaymentOrder, error)
	FindByOrderID(ctx context.Context, orderID string) (*models.PaymentOrder, error)
	// CompleteOrder performs the atomic check-and-set transition: it moves the
	// order from pending to the given terminal status and persists the gateway
	// result fields in the same write. The boolean reports whether this call
	// performed the transition; when the order was already terminal the stored
	// order is returned unchanged with false.
	CompleteOrder(ctx context.Context, orderID string, status models.PaymentOrderStatus, result models.GatewayResult) (*models.PaymentOrder, bool, error)
}
