package contracts

import (
	"context"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	InitiatePayment(ctx context.Context, request *requests.CreatePaymentRequest) (*responses.InitiatePaymentResponse, error)
	HandleWalletNotification(ctx context.Context, notification *requests.WalletNotification) (*responses.PaymentStatusResponse, error)
	HandleWalletRedirect(ctx context.Context, query *requests.WalletRedirectQuery) (*responses.PaymentStatusResponse, error)
	ManualSync(ctx context.Context, orderID string) (*responses.PaymentStatusResponse, error)
	GetStatus(ctx context.Context, orderID string) (*responses.PaymentStatusResponse, error)
}
