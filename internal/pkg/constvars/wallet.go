package constvars

// Wallet gateway protocol constants. The canonical key names below are the
// exact field names whose values participate in the HMAC signature.
const (
	WalletRequestTypeCaptureWallet = "captureWallet"

	WalletFieldAccessKey    = "accessKey"
	WalletFieldAmount       = "amount"
	WalletFieldExtraData    = "extraData"
	WalletFieldIpnUrl       = "ipnUrl"
	WalletFieldMessage      = "message"
	WalletFieldOrderID      = "orderId"
	WalletFieldOrderInfo    = "orderInfo"
	WalletFieldOrderType    = "orderType"
	WalletFieldPartnerCode  = "partnerCode"
	WalletFieldPayType      = "payType"
	WalletFieldRedirectUrl  = "redirectUrl"
	WalletFieldRequestID    = "requestId"
	WalletFieldRequestType  = "requestType"
	WalletFieldResponseTime = "responseTime"
	WalletFieldResultCode   = "resultCode"
	WalletFieldTransID      = "transId"
)

const (
	// Zero is the provider's only success code.
	WalletResultCodeSuccess = 0
)

// WalletPendingResultCodes are status-query result codes meaning the payment
// is still in flight (user has not confirmed, or the provider is processing).
// They must not produce a terminal transition.
var WalletPendingResultCodes = map[int]bool{
	1000: true,
	7000: true,
	7002: true,
	9000: true,
}

const (
	PaymentOrderLockKeyFormat    = "payments:order:%s:lock"
	PaymentOrderStatusCacheKey   = "payments:order:%s:status"
	PaymentOutcomeQueueName      = "payment_outcome_events_queue"
	PaymentAuditObjectNameFormat = "notifications/%s/%s_%s.json"
)
