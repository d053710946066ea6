package wallet

import (
	"fmt"
	"medilink-service/internal/app/config"
	"medilink-service/internal/app/models"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/exceptions"
	"strconv"
)

// CallbackVerifier validates inbound asynchronous notifications. The inbound
// signature covers thirteen keys, a different set from the outbound one;
// optional fields absent from the payload sign as empty strings.
type CallbackVerifier struct {
	engine       *SignatureEngine
	walletConfig config.Wallet
}

func NewCallbackVerifier(walletConfig config.Wallet, engine *SignatureEngine) *CallbackVerifier {
	return &CallbackVerifier{
		engine:       engine,
		walletConfig: walletConfig,
	}
}

// Verify recomputes the notification signature and compares it in constant
// time. A mismatch is fatal for this notification: it must not touch order
// state and is surfaced to the caller for audit, never retried.
func (v *CallbackVerifier) Verify(notification *requests.WalletNotification) (*models.VerifiedNotification, error) {
	if notification.OrderID == "" || notification.RequestID == "" {
		return nil, exceptions.ErrPaymentValidation(nil, fmt.Sprintf("notification missing required identifiers, orderId=%q requestId=%q", notification.OrderID, notification.RequestID))
	}

	params := map[string]string{
		constvars.WalletFieldAccessKey:    notification.AccessKey,
		constvars.WalletFieldAmount:       strconv.FormatInt(notification.Amount, 10),
		constvars.WalletFieldExtraData:    notification.ExtraData,
		constvars.WalletFieldMessage:      notification.Message,
		constvars.WalletFieldOrderID:      notification.OrderID,
		constvars.WalletFieldOrderInfo:    notification.OrderInfo,
		constvars.WalletFieldOrderType:    notification.OrderType,
		constvars.WalletFieldPartnerCode:  notification.PartnerCode,
		constvars.WalletFieldPayType:      notification.PayType,
		constvars.WalletFieldRequestID:    notification.RequestID,
		constvars.WalletFieldResponseTime: strconv.FormatInt(notification.ResponseTime, 10),
		constvars.WalletFieldResultCode:   strconv.Itoa(notification.ResultCode),
		constvars.WalletFieldTransID:      notification.TransID,
	}

	if !v.engine.Verify(params, v.walletConfig.SecretKey, notification.Signature) {
		return nil, exceptions.ErrSignatureMismatch(nil)
	}

	return &models.VerifiedNotification{
		OrderID:    notification.OrderID,
		RequestID:  notification.RequestID,
		ResultCode: notification.ResultCode,
		TransID:    notification.TransID,
		Amount:     notification.Amount,
		Message:    notification.Message,
		PayType:    notification.PayType,
	}, nil
}
