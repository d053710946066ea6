package controllers

import (
	"context"
	"fmt"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/services/core/payments"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/exceptions"
	"medilink-service/internal/pkg/utils"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PaymentController struct {
	Log            *zap.Logger
	PaymentUsecase contracts.PaymentUsecase
	StatusPoller   *payments.StatusPoller
}

var (
	paymentControllerInstance *PaymentController
	oncePaymentController     sync.Once
)

func NewPaymentController(logger *zap.Logger, paymentUsecase contracts.PaymentUsecase, statusPoller *payments.StatusPoller) *PaymentController {
	oncePaymentController.Do(func() {
		instance := &PaymentController{
			Log:            logger,
			PaymentUsecase: paymentUsecase,
			StatusPoller:   statusPoller,
		}
		paymentControllerInstance = instance
	})
	return paymentControllerInstance
}

func (ctrl *PaymentController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PaymentController.CreatePayment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PaymentController.CreatePayment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreatePaymentRequest)
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		ctrl.Log.Error("PaymentController.CreatePayment error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// The gateway exchange plus retries can take a while on a flaky link.
	ctx, cancel := context.WithTimeout(r.Context(), 60*time.Second)
	defer cancel()

	response, err := ctrl.PaymentUsecase.InitiatePayment(ctx, request)
	if err != nil {
		ctrl.Log.Error("PaymentController.CreatePayment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PaymentController.CreatePayment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, response.OrderID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.PaymentSuccessfullyInitiated, response)
}

func (ctrl *PaymentController) WalletNotification(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PaymentController.WalletNotification requestID not found in context",
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("PaymentController.WalletNotification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
		zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
	)

	notification := new(requests.WalletNotification)
	if err := json.NewDecoder(r.Body).Decode(&notification); err != nil {
		ctrl.Log.Error("PaymentController.WalletNotification error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingErrorTypeKey, "JSON parsing"),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PaymentUsecase.HandleWalletNotification(ctx, notification)
	if err != nil {
		ctrl.Log.Error("PaymentController.WalletNotification error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, notification.OrderID),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PaymentController.WalletNotification succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, response.OrderID),
		zap.String(constvars.LoggingPaymentStatusKey, response.Status),
		zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentNotificationProcessed, response)
}

func (ctrl *PaymentController) WalletReturn(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PaymentController.WalletReturn requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	queryParams := r.URL.Query()
	resultCode, err := strconv.Atoi(queryParams.Get(constvars.WalletFieldResultCode))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseQueryParams(err))
		return
	}
	query := &requests.WalletRedirectQuery{
		OrderID:    queryParams.Get(constvars.WalletFieldOrderID),
		ResultCode: resultCode,
		Message:    queryParams.Get(constvars.WalletFieldMessage),
	}
	if query.OrderID == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrPaymentValidation(nil, "orderId query parameter is required"))
		return
	}

	ctrl.Log.Info("PaymentController.WalletReturn called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, query.OrderID),
		zap.Int(constvars.LoggingResultCodeKey, query.ResultCode),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.PaymentUsecase.HandleWalletRedirect(ctx, query)
	if err != nil {
		ctrl.Log.Error("PaymentController.WalletReturn error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, query.OrderID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PaymentController.WalletReturn succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, response.OrderID),
		zap.String(constvars.LoggingPaymentStatusKey, response.Status),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentRedirectAcknowledged, response)
}

func (ctrl *PaymentController) ManualSync(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PaymentController.ManualSync requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	orderID := chi.URLParam(r, "orderID")
	ctrl.Log.Info("PaymentController.ManualSync called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.PaymentUsecase.ManualSync(ctx, orderID)
	if err != nil {
		ctrl.Log.Error("PaymentController.ManualSync error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("PaymentController.ManualSync succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
		zap.String(constvars.LoggingPaymentStatusKey, response.Status),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentSuccessfullySynced, response)
}

// WatchPaymentStatus streams status snapshots as server-sent events until the
// order reaches a terminal state or the client disconnects. The poller behind
// it never transitions an order; it only reads and periodically triggers a
// manual sync.
func (ctrl *PaymentController) WatchPaymentStatus(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PaymentController.WatchPaymentStatus requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		ctrl.Log.Error("PaymentController.WatchPaymentStatus response writer does not support streaming",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.WrapWithoutError(
			constvars.StatusInternalServerError,
			constvars.ErrClientSomethingWrongWithApplication,
			"response writer does not support flushing for event streaming",
		))
		return
	}

	orderID := chi.URLParam(r, "orderID")
	ctrl.Log.Info("PaymentController.WatchPaymentStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)

	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextEventStream)
	w.Header().Set(constvars.HeaderCacheControl, "no-cache")
	w.WriteHeader(constvars.StatusOK)
	flusher.Flush()

	for update := range ctrl.StatusPoller.Watch(r.Context(), orderID) {
		payload, err := json.Marshal(update)
		if err != nil {
			ctrl.Log.Error("PaymentController.WatchPaymentStatus error encoding snapshot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			continue
		}
		fmt.Fprintf(w, "data: %s\n\n", payload)
		flusher.Flush()
	}

	ctrl.Log.Info("PaymentController.WatchPaymentStatus stream closed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOrderIDKey, orderID),
	)
}

func (ctrl *PaymentController) GetPaymentStatus(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("PaymentController.GetPaymentStatus requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	orderID := chi.URLParam(r, "orderID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.PaymentUsecase.GetStatus(ctx, orderID)
	if err != nil {
		ctrl.Log.Error("PaymentController.GetPaymentStatus error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingOrderIDKey, orderID),
			zap.Error(err),
		)
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PaymentStatusSuccessfullyFetched, response)
}
