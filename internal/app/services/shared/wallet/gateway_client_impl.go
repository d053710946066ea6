package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"medilink-service/internal/app/config"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/dto/responses"
	"medilink-service/internal/pkg/exceptions"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// walletGatewayClient performs the HTTPS exchanges with the payment provider.
// It issues single requests without built-in retry; the caller decides whether
// a transport failure is worth retrying. Response bodies are fully buffered
// before parsing.
type walletGatewayClient struct {
	httpClient   *http.Client
	builder      *PaymentRequestBuilder
	limiter      *rate.Limiter
	walletConfig config.Wallet
	Log          *zap.Logger
}

func NewWalletGatewayClient(walletConfig config.Wallet, builder *PaymentRequestBuilder, logger *zap.Logger) contracts.WalletGatewayClient {
	return &walletGatewayClient{
		httpClient: &http.Client{
			Timeout: time.Duration(walletConfig.RequestTimeoutInSec) * time.Second,
		},
		builder:      builder,
		limiter:      rate.NewLimiter(rate.Limit(walletConfig.RequestsPerSecond), walletConfig.RequestsPerSecond),
		walletConfig: walletConfig,
		Log:          logger,
	}
}

func (c *walletGatewayClient) CreatePayment(ctx context.Context, request *requests.WalletCreationRequest) (*responses.WalletCreationResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("walletGatewayClient.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
		zap.String(constvars.LoggingWalletRequestIDKey, request.RequestID),
		zap.Int64(constvars.LoggingAmountKey, request.Amount),
	)

	response := new(responses.WalletCreationResponse)
	if err := c.post(ctx, c.walletConfig.CreatePath, request, response); err != nil {
		c.Log.Error("walletGatewayClient.CreatePayment exchange failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, request.OrderID),
			zap.Error(err),
		)
		return nil, err
	}

	if response.ResultCode != constvars.WalletResultCodeSuccess {
		c.Log.Warn("walletGatewayClient.CreatePayment rejected by provider",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, request.OrderID),
			zap.Int(constvars.LoggingResultCodeKey, response.ResultCode),
		)
		// The parsed response rides along with the rejection so the caller
		// can persist the provider's code and message.
		return response, exceptions.ErrGatewayRejected(response.ResultCode, response.Message)
	}

	c.Log.Info("walletGatewayClient.CreatePayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
	)
	return response, nil
}

func (c *walletGatewayClient) QueryStatus(ctx context.Context, orderID string) (*responses.WalletStatusResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("walletGatewayClient.QueryStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	query := c.builder.BuildStatusQuery(orderID)
	response := new(responses.WalletStatusResponse)
	if err := c.post(ctx, c.walletConfig.QueryPath, query, response); err != nil {
		c.Log.Error("walletGatewayClient.QueryStatus exchange failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("walletGatewayClient.QueryStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.Int(constvars.LoggingResultCodeKey, response.ResultCode),
	)
	return response, nil
}

func (c *walletGatewayClient) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return exceptions.ErrGatewayTransport(err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	httpRequest, err := http.NewRequestWithContext(ctx, http.MethodPost, c.walletConfig.Endpoint+path, bytes.NewReader(payload))
	if err != nil {
		return exceptions.ErrGatewayTransport(err)
	}
	httpRequest.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	httpRequest.ContentLength = int64(len(payload))

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return exceptions.ErrGatewayTransport(err)
	}
	defer httpResponse.Body.Close()

	raw, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		// A truncated body is a parse failure, not a transport one: the
		// provider answered but the payload cannot be trusted.
		return exceptions.ErrGatewayParse(err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return exceptions.ErrGatewayParse(err)
	}
	return nil
}
