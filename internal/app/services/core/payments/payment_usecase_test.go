package payments

import (
	"context"
	"medilink-service/internal/app/config"
	"medilink-service/internal/app/models"
	"medilink-service/internal/app/services/shared/wallet"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/dto/responses"
	"medilink-service/internal/pkg/exceptions"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*models.PaymentOrder
}

func newFakeOrderRepository() *fakeOrderRepository {
	return &fakeOrderRepository{orders: make(map[string]*models.PaymentOrder)}
}

func (r *fakeOrderRepository) CreateOrder(ctx context.Context, order *models.PaymentOrder) (*models.PaymentOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.orders[order.OrderID]; exists {
		return nil, exceptions.ErrOrderAlreadyExists(nil, order.OrderID)
	}
	now := time.Now().UTC()
	order.CreatedAt = now
	order.UpdatedAt = now
	stored := *order
	r.orders[order.OrderID] = &stored
	return order, nil
}

func (r *fakeOrderRepository) FindByOrderID(ctx context.Context, orderID string) (*models.PaymentOrder, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, exceptions.ErrOrderNotFound(nil, orderID)
	}
	found := *order
	return &found, nil
}

func (r *fakeOrderRepository) CompleteOrder(ctx context.Context, orderID string, status models.PaymentOrderStatus, result models.GatewayResult) (*models.PaymentOrder, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, false, exceptions.ErrOrderNotFound(nil, orderID)
	}
	if order.Status != models.OrderPending {
		existing := *order
		return &existing, false, nil
	}
	order.Status = status
	order.ResultCode = result.ResultCode
	order.TransID = result.TransID
	order.GatewayMessage = result.Message
	order.PayType = result.PayType
	order.ResponseTime = result.ResponseTime
	order.UpdatedAt = time.Now().UTC()
	updated := *order
	return &updated, true, nil
}

type fakeGatewayClient struct {
	mu              sync.Mutex
	createCalls     int
	createResponses []func() (*responses.WalletCreationResponse, error)
	queryResponse   *responses.WalletStatusResponse
	queryErr        error
	queryCalls      int
}

func (c *fakeGatewayClient) CreatePayment(ctx context.Context, request *requests.WalletCreationRequest) (*responses.WalletCreationResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	index := c.createCalls
	c.createCalls++
	if index >= len(c.createResponses) {
		index = len(c.createResponses) - 1
	}
	return c.createResponses[index]()
}

func (c *fakeGatewayClient) QueryStatus(ctx context.Context, orderID string) (*responses.WalletStatusResponse, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queryCalls++
	return c.queryResponse, c.queryErr
}

type fakeLockerService struct{}

func (l *fakeLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	return true, "lock-value", nil
}

func (l *fakeLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	return nil
}

type fakeEventPublisher struct {
	mu     sync.Mutex
	events []*models.PaymentEvent
}

func (p *fakeEventPublisher) PublishPaymentEvent(ctx context.Context, event *models.PaymentEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakeEventPublisher) published() []*models.PaymentEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]*models.PaymentEvent{}, p.events...)
}

type archivedNotification struct {
	orderID string
	verdict string
}

type fakeAuditTrail struct {
	mu       sync.Mutex
	archived []archivedNotification
}

func (a *fakeAuditTrail) ArchiveNotification(ctx context.Context, orderID, verdict string, payload []byte) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.archived = append(a.archived, archivedNotification{orderID: orderID, verdict: verdict})
	return nil
}

type fakeRedisRepository struct {
	mu     sync.Mutex
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: make(map[string]string)}
}

func (r *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = string(raw)
	return nil
}

func (r *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	value, ok := r.values[key]
	if !ok {
		return "", exceptions.ErrRedisGetNoData(nil, key)
	}
	return value, nil
}

func (r *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.values, key)
	return nil
}

func (r *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.values[key]; ok {
		return false, nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return false, err
	}
	r.values[key] = string(raw)
	return true, nil
}

type usecaseFixture struct {
	usecase   *paymentUsecase
	orders    *fakeOrderRepository
	gateway   *fakeGatewayClient
	publisher *fakeEventPublisher
	audit     *fakeAuditTrail
	redis     *fakeRedisRepository
	config    *config.InternalConfig
}

func newUsecaseFixture(gateway *fakeGatewayClient) *usecaseFixture {
	internalConfig := &config.InternalConfig{
		Wallet: config.Wallet{
			PartnerCode:         "PARTNERTEST",
			AccessKey:           "test-access-key",
			SecretKey:           "test-secret-key",
			RequestType:         "captureWallet",
			Lang:                "en",
			RedirectURL:         "https://medilink.example.com/payments/wallet/return",
			IPNURL:              "https://medilink.example.com/payments/wallet/notification",
			MaxRetryAttempts:    3,
			RetryBaseDelayInMS:  1,
			LockTTLInSec:        1,
			StatusCacheTTLInSec: 60,
		},
	}
	engine := wallet.NewSignatureEngine()

	fixture := &usecaseFixture{
		orders:    newFakeOrderRepository(),
		gateway:   gateway,
		publisher: &fakeEventPublisher{},
		audit:     &fakeAuditTrail{},
		redis:     newFakeRedisRepository(),
		config:    internalConfig,
	}
	fixture.usecase = &paymentUsecase{
		OrderRepository:  fixture.orders,
		GatewayClient:    fixture.gateway,
		RequestBuilder:   wallet.NewPaymentRequestBuilder(internalConfig.Wallet, engine),
		CallbackVerifier: wallet.NewCallbackVerifier(internalConfig.Wallet, engine),
		LockerService:    &fakeLockerService{},
		EventPublisher:   fixture.publisher,
		AuditTrail:       fixture.audit,
		RedisRepository:  fixture.redis,
		InternalConfig:   internalConfig,
		Log:              zap.NewNop(),
	}
	return fixture
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constvars.CONTEXT_REQUEST_ID_KEY, "test-request-id")
}

func acceptedCreation() func() (*responses.WalletCreationResponse, error) {
	return func() (*responses.WalletCreationResponse, error) {
		return &responses.WalletCreationResponse{
			ResultCode: 0,
			Message:    "Successful.",
			PayURL:     "https://wallet.example.com/pay/abc",
			Deeplink:   "wallet://pay/abc",
		}, nil
	}
}

func (f *usecaseFixture) signedNotification(orderID string, resultCode int) *requests.WalletNotification {
	notification := &requests.WalletNotification{
		PartnerCode:  "PARTNERTEST",
		AccessKey:    "test-access-key",
		RequestID:    "REQ-001",
		Amount:       150000,
		OrderID:      orderID,
		OrderInfo:    "Consultation fee",
		TransID:      "9000123",
		ResultCode:   resultCode,
		Message:      "gateway message",
		PayType:      "qr",
		ResponseTime: 1724900000000,
	}
	notification.Signature = wallet.NewSignatureEngine().Sign(map[string]string{
		"accessKey":    notification.AccessKey,
		"amount":       strconv.FormatInt(notification.Amount, 10),
		"extraData":    notification.ExtraData,
		"message":      notification.Message,
		"orderId":      notification.OrderID,
		"orderInfo":    notification.OrderInfo,
		"orderType":    notification.OrderType,
		"partnerCode":  notification.PartnerCode,
		"payType":      notification.PayType,
		"requestId":    notification.RequestID,
		"responseTime": strconv.FormatInt(notification.ResponseTime, 10),
		"resultCode":   strconv.Itoa(notification.ResultCode),
		"transId":      notification.TransID,
	}, f.config.Wallet.SecretKey)
	return notification
}

func (f *usecaseFixture) initiatePendingOrder(t *testing.T, orderID string) {
	t.Helper()
	_, err := f.usecase.InitiatePayment(testContext(), &requests.CreatePaymentRequest{
		OrderID:   orderID,
		OrderInfo: "Consultation fee",
		Amount:    150000,
	})
	require.NoError(t, err)
}

func TestInitiatePayment(t *testing.T) {
	t.Run("Accepted creation leaves the order pending", func(t *testing.T) {
		fixture := newUsecaseFixture(&fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
		})

		response, err := fixture.usecase.InitiatePayment(testContext(), &requests.CreatePaymentRequest{
			OrderID:   "ORDER-001",
			OrderInfo: "Consultation fee",
			Amount:    150000,
		})
		require.NoError(t, err)

		assert.Equal(t, string(models.OrderPending), response.Status)
		assert.Equal(t, "https://wallet.example.com/pay/abc", response.PayURL)

		order, err := fixture.orders.FindByOrderID(testContext(), "ORDER-001")
		require.NoError(t, err)
		assert.Equal(t, models.OrderPending, order.Status)
		assert.Empty(t, fixture.publisher.published(), "creation acceptance is not a payment outcome")
	})

	t.Run("Defaults redirect and IPN URLs from configuration", func(t *testing.T) {
		fixture := newUsecaseFixture(&fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
		})

		_, err := fixture.usecase.InitiatePayment(testContext(), &requests.CreatePaymentRequest{
			OrderID: "ORDER-001",
			Amount:  150000,
		})
		assert.NoError(t, err)
	})

	t.Run("Rejection persists a failed order", func(t *testing.T) {
		fixture := newUsecaseFixture(&fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){
				func() (*responses.WalletCreationResponse, error) {
					return &responses.WalletCreationResponse{ResultCode: 41, Message: "Duplicate orderId"},
						exceptions.ErrGatewayRejected(41, "Duplicate orderId")
				},
			},
		})

		_, err := fixture.usecase.InitiatePayment(testContext(), &requests.CreatePaymentRequest{
			OrderID: "ORDER-001",
			Amount:  150000,
		})
		require.Error(t, err)
		assert.True(t, exceptions.HasCode(err, exceptions.CodeGatewayRejected))

		order, findErr := fixture.orders.FindByOrderID(testContext(), "ORDER-001")
		require.NoError(t, findErr)
		assert.Equal(t, models.OrderFailed, order.Status)
		assert.Equal(t, 41, order.ResultCode)
	})

	t.Run("Reused order ID is rejected as a conflict", func(t *testing.T) {
		fixture := newUsecaseFixture(&fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
		})
		fixture.initiatePendingOrder(t, "ORDER-001")

		_, err := fixture.usecase.InitiatePayment(testContext(), &requests.CreatePaymentRequest{
			OrderID: "ORDER-001",
			Amount:  99000,
		})
		require.Error(t, err)
		assert.True(t, exceptions.HasCode(err, exceptions.CodeOrderConflict))

		// The original order is untouched by the duplicate attempt.
		order, findErr := fixture.orders.FindByOrderID(testContext(), "ORDER-001")
		require.NoError(t, findErr)
		assert.Equal(t, models.OrderPending, order.Status)
		assert.Equal(t, int64(150000), order.Amount)
	})

	t.Run("Retries transport failures with backoff then succeeds", func(t *testing.T) {
		transportFailure := func() (*responses.WalletCreationResponse, error) {
			return nil, exceptions.ErrGatewayTransport(nil)
		}
		gateway := &fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){
				transportFailure, transportFailure, acceptedCreation(),
			},
		}
		fixture := newUsecaseFixture(gateway)

		_, err := fixture.usecase.InitiatePayment(testContext(), &requests.CreatePaymentRequest{
			OrderID: "ORDER-001",
			Amount:  150000,
		})
		require.NoError(t, err)
		assert.Equal(t, 3, gateway.createCalls)
	})

	t.Run("Gives up after the attempt ceiling", func(t *testing.T) {
		transportFailure := func() (*responses.WalletCreationResponse, error) {
			return nil, exceptions.ErrGatewayTransport(nil)
		}
		gateway := &fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){transportFailure},
		}
		fixture := newUsecaseFixture(gateway)

		_, err := fixture.usecase.InitiatePayment(testContext(), &requests.CreatePaymentRequest{
			OrderID: "ORDER-001",
			Amount:  150000,
		})
		require.Error(t, err)
		assert.True(t, exceptions.HasCode(err, exceptions.CodeGatewayTransport))
		assert.Equal(t, 3, gateway.createCalls)
	})
}

func TestHandleWalletNotification(t *testing.T) {
	t.Run("Verified success notification completes the order once", func(t *testing.T) {
		fixture := newUsecaseFixture(&fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
		})
		fixture.initiatePendingOrder(t, "ORDER-001")

		notification := fixture.signedNotification("ORDER-001", 0)

		response, err := fixture.usecase.HandleWalletNotification(testContext(), notification)
		require.NoError(t, err)
		assert.Equal(t, string(models.OrderSuccess), response.Status)
		assert.Equal(t, "9000123", response.TransID)

		events := fixture.publisher.published()
		require.Len(t, events, 1)
		assert.Equal(t, string(models.OrderSuccess), events[0].Status)
	})

	t.Run("Duplicate notification is a no-op with a single event", func(t *testing.T) {
		fixture := newUsecaseFixture(&fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
		})
		fixture.initiatePendingOrder(t, "ORDER-001")

		notification := fixture.signedNotification("ORDER-001", 0)

		_, err := fixture.usecase.HandleWalletNotification(testContext(), notification)
		require.NoError(t, err)

		response, err := fixture.usecase.HandleWalletNotification(testContext(), notification)
		require.NoError(t, err)
		assert.Equal(t, string(models.OrderSuccess), response.Status)
		assert.Len(t, fixture.publisher.published(), 1)
	})

	t.Run("Conflicting late notification cannot flip a terminal order", func(t *testing.T) {
		fixture := newUsecaseFixture(&fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
		})
		fixture.initiatePendingOrder(t, "ORDER-001")

		_, err := fixture.usecase.HandleWalletNotification(testContext(), fixture.signedNotification("ORDER-001", 0))
		require.NoError(t, err)

		response, err := fixture.usecase.HandleWalletNotification(testContext(), fixture.signedNotification("ORDER-001", 1006))
		require.NoError(t, err)
		assert.Equal(t, string(models.OrderSuccess), response.Status)
		assert.Len(t, fixture.publisher.published(), 1)
	})

	t.Run("Tampered notification never touches order state", func(t *testing.T) {
		fixture := newUsecaseFixture(&fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
		})
		fixture.initiatePendingOrder(t, "ORDER-001")

		notification := fixture.signedNotification("ORDER-001", 0)
		notification.Amount = 1

		_, err := fixture.usecase.HandleWalletNotification(testContext(), notification)
		require.Error(t, err)
		assert.True(t, exceptions.HasCode(err, exceptions.CodeSignatureMismatch))

		order, findErr := fixture.orders.FindByOrderID(testContext(), "ORDER-001")
		require.NoError(t, findErr)
		assert.Equal(t, models.OrderPending, order.Status)
		assert.Empty(t, fixture.publisher.published())

		require.Len(t, fixture.audit.archived, 1)
		assert.Equal(t, auditVerdictRejected, fixture.audit.archived[0].verdict)
	})

	t.Run("Verified notification is archived", func(t *testing.T) {
		fixture := newUsecaseFixture(&fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
		})
		fixture.initiatePendingOrder(t, "ORDER-001")

		_, err := fixture.usecase.HandleWalletNotification(testContext(), fixture.signedNotification("ORDER-001", 0))
		require.NoError(t, err)

		require.Len(t, fixture.audit.archived, 1)
		assert.Equal(t, auditVerdictVerified, fixture.audit.archived[0].verdict)
	})

	t.Run("Concurrent signals produce exactly one transition and one event", func(t *testing.T) {
		fixture := newUsecaseFixture(&fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
		})
		fixture.initiatePendingOrder(t, "ORDER-001")

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := fixture.usecase.HandleWalletNotification(testContext(), fixture.signedNotification("ORDER-001", 0))
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		order, err := fixture.orders.FindByOrderID(testContext(), "ORDER-001")
		require.NoError(t, err)
		assert.Equal(t, models.OrderSuccess, order.Status)
		assert.Len(t, fixture.publisher.published(), 1)
	})
}

func TestManualSync(t *testing.T) {
	t.Run("Terminal order is returned without querying the gateway", func(t *testing.T) {
		gateway := &fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
		}
		fixture := newUsecaseFixture(gateway)
		fixture.initiatePendingOrder(t, "ORDER-001")

		_, err := fixture.usecase.HandleWalletNotification(testContext(), fixture.signedNotification("ORDER-001", 0))
		require.NoError(t, err)

		response, err := fixture.usecase.ManualSync(testContext(), "ORDER-001")
		require.NoError(t, err)
		assert.Equal(t, string(models.OrderSuccess), response.Status)
		assert.Equal(t, 0, gateway.queryCalls)
	})

	t.Run("Authoritative gateway result completes a pending order", func(t *testing.T) {
		gateway := &fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
			queryResponse: &responses.WalletStatusResponse{
				OrderID:    "ORDER-001",
				ResultCode: 0,
				TransID:    "9000123",
			},
		}
		fixture := newUsecaseFixture(gateway)
		fixture.initiatePendingOrder(t, "ORDER-001")

		response, err := fixture.usecase.ManualSync(testContext(), "ORDER-001")
		require.NoError(t, err)
		assert.Equal(t, string(models.OrderSuccess), response.Status)
		assert.Len(t, fixture.publisher.published(), 1)
	})

	t.Run("Query failure leaves the order pending without error", func(t *testing.T) {
		gateway := &fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
			queryErr:        exceptions.ErrGatewayTransport(nil),
		}
		fixture := newUsecaseFixture(gateway)
		fixture.initiatePendingOrder(t, "ORDER-001")

		response, err := fixture.usecase.ManualSync(testContext(), "ORDER-001")
		require.NoError(t, err)
		assert.Equal(t, string(models.OrderPending), response.Status)
		assert.Empty(t, fixture.publisher.published())
	})

	t.Run("In-flight result code does not transition the order", func(t *testing.T) {
		gateway := &fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
			queryResponse: &responses.WalletStatusResponse{
				OrderID:    "ORDER-001",
				ResultCode: 1000,
				Message:    "Waiting for user confirmation",
			},
		}
		fixture := newUsecaseFixture(gateway)
		fixture.initiatePendingOrder(t, "ORDER-001")

		response, err := fixture.usecase.ManualSync(testContext(), "ORDER-001")
		require.NoError(t, err)
		assert.Equal(t, string(models.OrderPending), response.Status)
		assert.Empty(t, fixture.publisher.published())
	})

	t.Run("Unknown order is reported", func(t *testing.T) {
		fixture := newUsecaseFixture(&fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
		})

		_, err := fixture.usecase.ManualSync(testContext(), "MISSING")
		require.Error(t, err)
		assert.True(t, exceptions.HasCode(err, exceptions.CodeOrderNotFound))
	})
}

func TestHandleWalletRedirect(t *testing.T) {
	t.Run("Redirect hint triggers an authoritative sync", func(t *testing.T) {
		gateway := &fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
			queryResponse: &responses.WalletStatusResponse{
				OrderID:    "ORDER-001",
				ResultCode: 0,
				TransID:    "9000123",
			},
		}
		fixture := newUsecaseFixture(gateway)
		fixture.initiatePendingOrder(t, "ORDER-001")

		// The hint claims failure; the authoritative query says success. The
		// query wins.
		response, err := fixture.usecase.HandleWalletRedirect(testContext(), &requests.WalletRedirectQuery{
			OrderID:    "ORDER-001",
			ResultCode: 1006,
			Message:    "User cancelled",
		})
		require.NoError(t, err)
		assert.Equal(t, string(models.OrderSuccess), response.Status)
		assert.Equal(t, 1, gateway.queryCalls)
	})
}

func TestGetStatus(t *testing.T) {
	t.Run("Terminal status is cached and served from cache", func(t *testing.T) {
		fixture := newUsecaseFixture(&fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
		})
		fixture.initiatePendingOrder(t, "ORDER-001")

		_, err := fixture.usecase.HandleWalletNotification(testContext(), fixture.signedNotification("ORDER-001", 0))
		require.NoError(t, err)

		first, err := fixture.usecase.GetStatus(testContext(), "ORDER-001")
		require.NoError(t, err)
		assert.Equal(t, string(models.OrderSuccess), first.Status)

		// The cached copy keeps answering even if the store loses the order.
		fixture.orders.mu.Lock()
		delete(fixture.orders.orders, "ORDER-001")
		fixture.orders.mu.Unlock()

		second, err := fixture.usecase.GetStatus(testContext(), "ORDER-001")
		require.NoError(t, err)
		assert.Equal(t, string(models.OrderSuccess), second.Status)
	})

	t.Run("Pending status is never cached", func(t *testing.T) {
		fixture := newUsecaseFixture(&fakeGatewayClient{
			createResponses: []func() (*responses.WalletCreationResponse, error){acceptedCreation()},
		})
		fixture.initiatePendingOrder(t, "ORDER-001")

		response, err := fixture.usecase.GetStatus(testContext(), "ORDER-001")
		require.NoError(t, err)
		assert.Equal(t, string(models.OrderPending), response.Status)

		fixture.redis.mu.Lock()
		defer fixture.redis.mu.Unlock()
		assert.Empty(t, fixture.redis.values)
	})
}
