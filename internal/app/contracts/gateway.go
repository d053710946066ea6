package contracts

import (
	"context"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/dto/responses"
)

type WalletGatewayClient interface {
	// CreatePayment performs a single HTTPS exchange; it does not retry.
	CreatePayment(ctx context.Context, request *requests.WalletCreationRequest) (*responses.WalletCreationResponse, error)
	// QueryStatus issues a signed status query for manual sync.
	QueryStatus(ctx context.Context, orderID string) (*responses.WalletStatusResponse, error)
}
