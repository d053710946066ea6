package payments

import (
	"context"
	"fmt"
	"medilink-service/internal/app/config"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/models"
	"medilink-service/internal/app/services/shared/wallet"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/dto/responses"
	"medilink-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const (
	auditVerdictVerified = "verified"
	auditVerdictRejected = "rejected"
)

// paymentUsecase is the reconciliation coordinator: the redirect hint, the
// asynchronous notification and manual sync all converge here, and it is the
// only writer of order status. A pending order transitions to success or
// failed exactly once; every later signal is a logged no-op.
type paymentUsecase struct {
	OrderRepository  contracts.OrderRepository
	GatewayClient    contracts.WalletGatewayClient
	RequestBuilder   *wallet.PaymentRequestBuilder
	CallbackVerifier *wallet.CallbackVerifier
	LockerService    contracts.LockerService
	EventPublisher   contracts.PaymentEventPublisher
	AuditTrail       contracts.AuditTrailService
	RedisRepository  contracts.RedisRepository
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

var (
	paymentUsecaseInstance contracts.PaymentUsecase
	oncePaymentUsecase     sync.Once
)

func NewPaymentUsecase(
	orderRepository contracts.OrderRepository,
	gatewayClient contracts.WalletGatewayClient,
	requestBuilder *wallet.PaymentRequestBuilder,
	callbackVerifier *wallet.CallbackVerifier,
	lockerService contracts.LockerService,
	eventPublisher contracts.PaymentEventPublisher,
	auditTrail contracts.AuditTrailService,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.PaymentUsecase {
	oncePaymentUsecase.Do(func() {
		instance := &paymentUsecase{
			OrderRepository:  orderRepository,
			GatewayClient:    gatewayClient,
			RequestBuilder:   requestBuilder,
			CallbackVerifier: callbackVerifier,
			LockerService:    lockerService,
			EventPublisher:   eventPublisher,
			AuditTrail:       auditTrail,
			RedisRepository:  redisRepository,
			InternalConfig:   internalConfig,
			Log:              logger,
		}
		paymentUsecaseInstance = instance
	})
	return paymentUsecaseInstance
}

func (uc *paymentUsecase) InitiatePayment(ctx context.Context, request *requests.CreatePaymentRequest) (*responses.InitiatePaymentResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.InitiatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
		zap.Int64(constvars.LoggingAmountKey, request.Amount),
	)

	if request.RedirectURL == "" {
		request.RedirectURL = uc.InternalConfig.Wallet.RedirectURL
	}
	if request.IPNURL == "" {
		request.IPNURL = uc.InternalConfig.Wallet.IPNURL
	}

	signed, err := uc.RequestBuilder.Build(request)
	if err != nil {
		uc.Log.Error("paymentUsecase.InitiatePayment request validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	creation, err := uc.sendWithRetry(ctx, signed)
	if err != nil {
		if exceptions.HasCode(err, exceptions.CodeGatewayRejected) && creation != nil {
			// The rejection is final for this order id; keep a failed order
			// around so the decline is auditable and the id cannot be reused.
			failedOrder := uc.orderFromRequest(request, signed)
			failedOrder.Status = models.OrderFailed
			failedOrder.ResultCode = creation.ResultCode
			failedOrder.GatewayMessage = creation.Message
			failedOrder.ResponseTime = creation.ResponseTime
			if _, createErr := uc.OrderRepository.CreateOrder(ctx, failedOrder); createErr != nil {
				uc.Log.Error("paymentUsecase.InitiatePayment error persisting rejected order",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingOrderIDKey, request.OrderID),
					zap.Error(createErr),
				)
			}
		}
		return nil, err
	}

	order := uc.orderFromRequest(request, signed)
	order.Status = models.OrderPending
	order.PayURL = creation.PayURL
	order.Deeplink = creation.Deeplink
	order.QRCodeURL = creation.QRCodeURL
	order.ResponseTime = creation.ResponseTime

	if _, err := uc.OrderRepository.CreateOrder(ctx, order); err != nil {
		uc.Log.Error("paymentUsecase.InitiatePayment error persisting order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, request.OrderID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("paymentUsecase.InitiatePayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, request.OrderID),
		zap.String(constvars.LoggingWalletRequestIDKey, signed.RequestID),
	)
	return &responses.InitiatePaymentResponse{
		OrderID:   order.OrderID,
		RequestID: order.RequestID,
		Status:    string(order.Status),
		PayURL:    order.PayURL,
		Deeplink:  order.Deeplink,
		QRCodeURL: order.QRCodeURL,
	}, nil
}

func (uc *paymentUsecase) HandleWalletNotification(ctx context.Context, notification *requests.WalletNotification) (*responses.PaymentStatusResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.HandleWalletNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, notification.OrderID),
		zap.Int(constvars.LoggingResultCodeKey, notification.ResultCode),
	)

	raw, marshalErr := json.Marshal(notification)
	if marshalErr != nil {
		raw = []byte(fmt.Sprintf("{\"orderId\":%q}", notification.OrderID))
	}

	verified, err := uc.CallbackVerifier.Verify(notification)
	if err != nil {
		// A forged or corrupted notification never touches order state and is
		// never reprocessed; it is archived so security review can inspect it.
		uc.Log.Error("paymentUsecase.HandleWalletNotification verification failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, notification.OrderID),
			zap.Error(err),
		)
		if archiveErr := uc.AuditTrail.ArchiveNotification(ctx, notification.OrderID, auditVerdictRejected, raw); archiveErr != nil {
			uc.Log.Error("paymentUsecase.HandleWalletNotification error archiving rejected notification",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(archiveErr),
			)
		}
		return nil, err
	}

	if archiveErr := uc.AuditTrail.ArchiveNotification(ctx, verified.OrderID, auditVerdictVerified, raw); archiveErr != nil {
		uc.Log.Warn("paymentUsecase.HandleWalletNotification error archiving verified notification",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(archiveErr),
		)
	}

	order, err := uc.resolve(ctx, verified.OrderID, models.GatewayResult{
		ResultCode:   verified.ResultCode,
		TransID:      verified.TransID,
		Message:      verified.Message,
		PayType:      verified.PayType,
		ResponseTime: notification.ResponseTime,
	})
	if err != nil {
		return nil, err
	}
	return uc.buildStatusResponse(order), nil
}

func (uc *paymentUsecase) HandleWalletRedirect(ctx context.Context, query *requests.WalletRedirectQuery) (*responses.PaymentStatusResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	// The redirect is a synchronous but untrusted hint: it never drives a
	// transition itself, it only triggers an authoritative re-check.
	uc.Log.Info("paymentUsecase.HandleWalletRedirect called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, query.OrderID),
		zap.Int(constvars.LoggingResultCodeKey, query.ResultCode),
	)
	return uc.ManualSync(ctx, query.OrderID)
}

func (uc *paymentUsecase) ManualSync(ctx context.Context, orderID string) (*responses.PaymentStatusResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("paymentUsecase.ManualSync called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	order, err := uc.OrderRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Status.IsTerminal() {
		uc.Log.Info("paymentUsecase.ManualSync order already terminal, nothing to sync",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.String(constvars.LoggingPaymentStatusKey, string(order.Status)),
		)
		return uc.buildStatusResponse(order), nil
	}

	statusResponse, err := uc.GatewayClient.QueryStatus(ctx, orderID)
	if err != nil {
		// No authoritative signal could be obtained; the order stays pending
		// and the caller keeps polling. Success is never fabricated.
		uc.Log.Warn("paymentUsecase.ManualSync gateway query failed, order stays pending",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		return uc.buildStatusResponse(order), nil
	}

	if constvars.WalletPendingResultCodes[statusResponse.ResultCode] {
		uc.Log.Info("paymentUsecase.ManualSync payment still in flight",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Int(constvars.LoggingResultCodeKey, statusResponse.ResultCode),
		)
		return uc.buildStatusResponse(order), nil
	}

	resolved, err := uc.resolve(ctx, orderID, models.GatewayResult{
		ResultCode:   statusResponse.ResultCode,
		TransID:      statusResponse.TransID,
		Message:      statusResponse.Message,
		PayType:      statusResponse.PayType,
		ResponseTime: statusResponse.ResponseTime,
	})
	if err != nil {
		return nil, err
	}
	return uc.buildStatusResponse(resolved), nil
}

func (uc *paymentUsecase) GetStatus(ctx context.Context, orderID string) (*responses.PaymentStatusResponse, error) {
	cacheKey := fmt.Sprintf(constvars.PaymentOrderStatusCacheKey, orderID)
	if cached, err := uc.RedisRepository.Get(ctx, cacheKey); err == nil && cached != "" {
		response := new(responses.PaymentStatusResponse)
		if err := json.Unmarshal([]byte(cached), response); err == nil {
			return response, nil
		}
	}

	order, err := uc.OrderRepository.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	response := uc.buildStatusResponse(order)
	if order.Status.IsTerminal() {
		// Terminal status never changes, so it is safe to cache.
		cacheTTL := time.Duration(uc.InternalConfig.Wallet.StatusCacheTTLInSec) * time.Second
		if err := uc.RedisRepository.Set(ctx, cacheKey, response, cacheTTL); err != nil {
			uc.Log.Warn("paymentUsecase.GetStatus error caching status",
				zap.String(constvars.LoggingOrderIDKey, orderID),
				zap.Error(err),
			)
		}
	}
	return response, nil
}

// resolve applies the single-transition rule for one authoritative gateway
// result. The mongo compare-and-swap guarantees exactly one winner under
// concurrent signals; the redis lock narrows the window in which two signals
// do redundant work. Only the winner publishes the outcome event.
func (uc *paymentUsecase) resolve(ctx context.Context, orderID string, result models.GatewayResult) (*models.PaymentOrder, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	lockKey := fmt.Sprintf(constvars.PaymentOrderLockKeyFormat, orderID)
	lockTTL := time.Duration(uc.InternalConfig.Wallet.LockTTLInSec) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		uc.Log.Warn("paymentUsecase.resolve lock unavailable, relying on store CAS",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
	}
	if acquired {
		defer uc.LockerService.Unlock(ctx, lockKey, lockValue)
	}

	status := models.StatusForResultCode(result.ResultCode)
	order, transitioned, err := uc.OrderRepository.CompleteOrder(ctx, orderID, status, result)
	if err != nil {
		return nil, err
	}

	if !transitioned {
		uc.Log.Info("paymentUsecase.resolve duplicate signal for terminal order, treated as no-op",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.String(constvars.LoggingPaymentStatusKey, string(order.Status)),
		)
		return order, nil
	}

	uc.Log.Info("paymentUsecase.resolve order transitioned",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String(constvars.LoggingPaymentStatusKey, string(order.Status)),
		zap.Int(constvars.LoggingResultCodeKey, order.ResultCode),
		zap.String(constvars.LoggingTransIDKey, order.TransID),
	)

	event := &models.PaymentEvent{
		OrderID:    order.OrderID,
		Status:     string(order.Status),
		ResultCode: order.ResultCode,
		TransID:    order.TransID,
		Amount:     order.Amount,
		OccurredAt: time.Now().UTC(),
	}
	if err := uc.EventPublisher.PublishPaymentEvent(ctx, event); err != nil {
		// The transition stands; the lost event is logged for operators.
		uc.Log.Error("paymentUsecase.resolve error publishing payment event",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
	}
	return order, nil
}

// sendWithRetry retries the creation exchange on transport failures only,
// with exponential backoff up to the configured attempt ceiling. Rejections
// and parse failures are returned immediately.
func (uc *paymentUsecase) sendWithRetry(ctx context.Context, signed *requests.WalletCreationRequest) (*responses.WalletCreationResponse, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	maxAttempts := uc.InternalConfig.Wallet.MaxRetryAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	baseDelay := time.Duration(uc.InternalConfig.Wallet.RetryBaseDelayInMS) * time.Millisecond

	var lastResponse *responses.WalletCreationResponse
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		response, err := uc.GatewayClient.CreatePayment(ctx, signed)
		if err == nil {
			return response, nil
		}
		lastResponse, lastErr = response, err

		if !exceptions.HasCode(err, exceptions.CodeGatewayTransport) || attempt == maxAttempts {
			break
		}

		delay := baseDelay << (attempt - 1)
		uc.Log.Warn("paymentUsecase.sendWithRetry transport failure, backing off",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, signed.OrderID),
			zap.Int(constvars.LoggingAttemptKey, attempt),
			zap.Duration(constvars.LoggingDurationKey, delay),
		)
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, exceptions.ErrGatewayTransport(ctx.Err())
		}
	}
	return lastResponse, lastErr
}

func (uc *paymentUsecase) orderFromRequest(request *requests.CreatePaymentRequest, signed *requests.WalletCreationRequest) *models.PaymentOrder {
	return &models.PaymentOrder{
		OrderID:        request.OrderID,
		RequestID:      signed.RequestID,
		Amount:         request.Amount,
		OrderInfo:      request.OrderInfo,
		ExtraData:      request.ExtraData,
		LinkedEntityID: request.LinkedEntityID,
	}
}

func (uc *paymentUsecase) buildStatusResponse(order *models.PaymentOrder) *responses.PaymentStatusResponse {
	return &responses.PaymentStatusResponse{
		OrderID:    order.OrderID,
		Status:     string(order.Status),
		ResultCode: order.ResultCode,
		TransID:    order.TransID,
		Amount:     order.Amount,
		Message:    order.GatewayMessage,
		UpdatedAt:  order.UpdatedAt,
	}
}
