package constvars

// Client-facing messages. Kept deliberately generic for payment failures so a
// forged notification cannot probe internals through error text.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please try again"
	ErrClientSomethingWrongWithApplication = "Something wrong with the application, please contact admin"
	ErrClientNotAuthorized                 = "You are not authorized to do this action"
	ErrClientNotLoggedIn                   = "You need to log in first"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientPaymentDeclined               = "The payment could not be completed, please start a new payment"
	ErrClientPaymentUnavailable            = "The payment service is temporarily unavailable, please try again shortly"
	ErrClientOrderNotFound                 = "We cannot find this payment order"
	ErrClientOrderAlreadyExists            = "A payment with this order ID already exists"
)

const (
	ErrDevValidationFailed           = "Request validation failed"
	ErrDevCannotParseJSON            = "Failed to parse JSON data"
	ErrDevCannotMarshalJSON          = "Failed to marshal data to JSON"
	ErrDevCannotParseQueryParams     = "Failed to parse query parameters"
	ErrDevServerDeadlineExceeded     = "Server deadline exceeded"
	ErrDevMissingRequestID           = "Request ID missing from context"
	ErrDevAuthTokenMissing           = "Authorization token is missing"
	ErrDevAuthTokenInvalidOrExpired  = "Authorization token is invalid or expired"
	ErrDevAuthSigningMethod          = "Unexpected JWT signing method"
	ErrDevGatewayTransport           = "Wallet gateway unreachable"
	ErrDevGatewayParse               = "Wallet gateway returned a malformed response body"
	ErrDevGatewayRejected            = "Wallet gateway rejected the payment request (resultCode=%d): %s"
	ErrDevSignatureMismatch          = "Inbound notification signature does not match the computed HMAC"
	ErrDevOrderNotFound              = "Payment order does not exist: %s"
	ErrDevOrderAlreadyExists         = "Payment order already exists: %s"
	ErrDevDBFailedToFindDocument     = "Failed to find document in database"
	ErrDevDBFailedToInsertDocument   = "Failed to insert document into database"
	ErrDevDBFailedToUpdateDocument   = "Failed to update document in database"
	ErrDevRedisFailedToSet           = "Failed to set value in redis"
	ErrDevRedisFailedToGet           = "Failed to get value from redis, key: %s"
	ErrDevRedisFailedToDelete        = "Failed to delete value from redis"
	ErrDevRedisFailedToUnlock        = "Failed to release redis lock"
	ErrDevRabbitMQFailedToPublish    = "Failed to publish message to queue: %s"
	ErrDevMinioFailedToCreateObject  = "Failed to create object in bucket: %s"
	ErrDevMinioFailedToPrepareBucket = "Failed to prepare audit bucket: %s"
	ErrDevUnknown                    = "unknown"
)
