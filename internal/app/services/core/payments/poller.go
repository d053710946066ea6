package payments

import (
	"context"
	"medilink-service/internal/app/contracts"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/dto/responses"
	"medilink-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
)

// StatusPoller watches one order on a fixed interval on behalf of a consumer
// that cannot receive the IPN directly (SSE stream, dashboard widget). Each
// tick performs a single status read; every syncEvery-th tick it triggers a
// manual sync instead, so a delayed webhook still converges. The poller never
// transitions an order itself. It stops permanently once the order is
// terminal or the context is cancelled; cancellation stops further ticks
// without aborting an in-flight read.
type StatusPoller struct {
	paymentUsecase contracts.PaymentUsecase
	interval       time.Duration
	syncEvery      int
	Log            *zap.Logger
}

func NewStatusPoller(paymentUsecase contracts.PaymentUsecase, interval time.Duration, syncEvery int, logger *zap.Logger) *StatusPoller {
	if interval <= 0 {
		interval = 3 * time.Second
	}
	return &StatusPoller{
		paymentUsecase: paymentUsecase,
		interval:       interval,
		syncEvery:      syncEvery,
		Log:            logger,
	}
}

// Watch returns a channel of status snapshots. The channel closes when the
// order reaches a terminal state, the order turns out not to exist, or ctx is
// cancelled.
func (p *StatusPoller) Watch(ctx context.Context, orderID string) <-chan *responses.PaymentStatusResponse {
	updates := make(chan *responses.PaymentStatusResponse, 1)

	go func() {
		defer close(updates)

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		tick := 0
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			tick++

			var response *responses.PaymentStatusResponse
			var err error
			if p.syncEvery > 0 && tick%p.syncEvery == 0 {
				response, err = p.paymentUsecase.ManualSync(ctx, orderID)
			} else {
				response, err = p.paymentUsecase.GetStatus(ctx, orderID)
			}
			if err != nil {
				if exceptions.HasCode(err, exceptions.CodeOrderNotFound) {
					p.Log.Error("StatusPoller.Watch order does not exist, stopping",
						zap.String(constvars.LoggingOrderIDKey, orderID),
						zap.Error(err),
					)
					return
				}
				p.Log.Warn("StatusPoller.Watch status read failed",
					zap.String(constvars.LoggingOrderIDKey, orderID),
					zap.Error(err),
				)
				continue
			}

			select {
			case updates <- response:
			case <-ctx.Done():
				return
			}

			if models.PaymentOrderStatus(response.Status).IsTerminal() {
				p.Log.Info("StatusPoller.Watch order terminal, stopping",
					zap.String(constvars.LoggingOrderIDKey, orderID),
					zap.String(constvars.LoggingPaymentStatusKey, response.Status),
				)
				return
			}
		}
	}()

	return updates
}
