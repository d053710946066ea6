package contracts

import (
	"context"
	"medilink-service/internal/app/models"
)

type PaymentEventPublisher interface {
	PublishPaymentEvent(ctx context.Context, event *models.PaymentEvent) error
}
