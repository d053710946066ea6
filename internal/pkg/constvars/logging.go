package constvars

const (
	LoggingRequestIDKey          = "request_id"
	LoggingEndpointKey           = "endpoint"
	LoggingMethodKey             = "method"
	LoggingRemoteAddrKey         = "remote_addr"
	LoggingUserAgentKey          = "user_agent"
	LoggingQueryKey              = "query"
	LoggingStatusCodeKey         = "status_code"
	LoggingDurationKey           = "duration"
	LoggingSuccessKey            = "success"
	LoggingErrorTypeKey          = "error_type"
	LoggingAttemptKey            = "attempt"
	LoggingOrderIDKey            = "order_id"
	LoggingWalletRequestIDKey    = "wallet_request_id"
	LoggingAmountKey             = "amount"
	LoggingResultCodeKey         = "result_code"
	LoggingTransIDKey            = "trans_id"
	LoggingPaymentStatusKey      = "payment_status"
	LoggingRedisKey              = "redis_key"
	LoggingLockValueKey          = "lock_value"
	LoggingLockExpirationTimeKey = "lock_expiration_time"
	LoggingQueueKey              = "queue"
	LoggingBucketKey             = "bucket"
	LoggingObjectKey             = "object"
)
