package wallet

import (
	"medilink-service/internal/app/config"
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/dto/requests"
	"medilink-service/internal/pkg/exceptions"
	"medilink-service/internal/pkg/utils"
	"strconv"
)

// PaymentRequestBuilder assembles and signs outbound payment-creation
// requests. Provider credentials come from the injected wallet configuration,
// never from the process environment.
type PaymentRequestBuilder struct {
	engine       *SignatureEngine
	walletConfig config.Wallet
}

func NewPaymentRequestBuilder(walletConfig config.Wallet, engine *SignatureEngine) *PaymentRequestBuilder {
	return &PaymentRequestBuilder{
		engine:       engine,
		walletConfig: walletConfig,
	}
}

// Build validates the caller's request and produces the signed creation body.
// The signature covers exactly the ten canonical keys: accessKey, amount,
// extraData, ipnUrl, orderId, orderInfo, partnerCode, redirectUrl, requestId,
// requestType.
func (b *PaymentRequestBuilder) Build(request *requests.CreatePaymentRequest) (*requests.WalletCreationRequest, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	requestID := request.RequestID
	if requestID == "" {
		requestID = utils.GenerateWalletRequestID(b.walletConfig.PartnerCode)
	}

	params := map[string]string{
		constvars.WalletFieldAccessKey:   b.walletConfig.AccessKey,
		constvars.WalletFieldAmount:      strconv.FormatInt(request.Amount, 10),
		constvars.WalletFieldExtraData:   request.ExtraData,
		constvars.WalletFieldIpnUrl:      request.IPNURL,
		constvars.WalletFieldOrderID:     request.OrderID,
		constvars.WalletFieldOrderInfo:   request.OrderInfo,
		constvars.WalletFieldPartnerCode: b.walletConfig.PartnerCode,
		constvars.WalletFieldRedirectUrl: request.RedirectURL,
		constvars.WalletFieldRequestID:   requestID,
		constvars.WalletFieldRequestType: b.walletConfig.RequestType,
	}
	signature := b.engine.Sign(params, b.walletConfig.SecretKey)

	return &requests.WalletCreationRequest{
		PartnerCode: b.walletConfig.PartnerCode,
		AccessKey:   b.walletConfig.AccessKey,
		RequestID:   requestID,
		Amount:      request.Amount,
		OrderID:     request.OrderID,
		OrderInfo:   request.OrderInfo,
		RedirectURL: request.RedirectURL,
		IPNURL:      request.IPNURL,
		ExtraData:   request.ExtraData,
		RequestType: b.walletConfig.RequestType,
		Signature:   signature,
		Lang:        b.walletConfig.Lang,
	}, nil
}

// BuildStatusQuery produces the signed body for the status-query endpoint
// used by manual sync. The signature covers accessKey, orderId, partnerCode
// and requestId.
func (b *PaymentRequestBuilder) BuildStatusQuery(orderID string) *requests.WalletStatusQueryRequest {
	requestID := utils.GenerateWalletRequestID(b.walletConfig.PartnerCode)
	params := map[string]string{
		constvars.WalletFieldAccessKey:   b.walletConfig.AccessKey,
		constvars.WalletFieldOrderID:     orderID,
		constvars.WalletFieldPartnerCode: b.walletConfig.PartnerCode,
		constvars.WalletFieldRequestID:   requestID,
	}
	signature := b.engine.Sign(params, b.walletConfig.SecretKey)

	return &requests.WalletStatusQueryRequest{
		PartnerCode: b.walletConfig.PartnerCode,
		AccessKey:   b.walletConfig.AccessKey,
		RequestID:   requestID,
		OrderID:     orderID,
		Signature:   signature,
		Lang:        b.walletConfig.Lang,
	}
}
