package exceptions

import (
	"errors"
	"fmt"
	"medilink-service/internal/pkg/constvars"
)

// Error codes for the payment error taxonomy. Callers branch on these via
// HasCode instead of matching message text.
const (
	CodeValidation        = "VALIDATION"
	CodeGatewayTransport  = "GATEWAY_TRANSPORT"
	CodeGatewayParse      = "GATEWAY_PARSE"
	CodeGatewayRejected   = "GATEWAY_REJECTED"
	CodeSignatureMismatch = "SIGNATURE_MISMATCH"
	CodeOrderNotFound     = "ORDER_NOT_FOUND"
	CodeOrderConflict     = "ORDER_CONFLICT"
)

func HasCode(err error, code string) bool {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.Code == code
	}
	return false
}

func withCode(customErr *CustomError, code string) *CustomError {
	customErr.Code = code
	return customErr
}

var (
	ErrInputValidation = func(err error) *CustomError {
		return withCode(BuildNewCustomError(err, constvars.StatusBadRequest, FormatFirstValidationError(err), constvars.ErrDevValidationFailed), CodeValidation)
	}
	ErrPaymentValidation = func(err error, devMessage string) *CustomError {
		return withCode(BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, devMessage), CodeValidation)
	}
	ErrCannotParseJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseJSON)
	}
	ErrCannotMarshalJSON = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevCannotMarshalJSON)
	}
	ErrCannotParseQueryParams = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusBadRequest, constvars.ErrClientCannotProcessRequest, constvars.ErrDevCannotParseQueryParams)
	}
	ErrServerDeadlineExceeded = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusGatewayTimeout, constvars.ErrClientServerLongRespond, constvars.ErrDevServerDeadlineExceeded)
	}
	ErrMissingRequestID = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevMissingRequestID)
	}

	// Auth
	ErrTokenMissing = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotAuthorized, constvars.ErrDevAuthTokenMissing)
	}
	ErrTokenInvalidOrExpired = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientNotLoggedIn, constvars.ErrDevAuthTokenInvalidOrExpired)
	}

	// Wallet gateway
	ErrGatewayTransport = func(err error) *CustomError {
		return withCode(BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPaymentUnavailable, constvars.ErrDevGatewayTransport), CodeGatewayTransport)
	}
	ErrGatewayParse = func(err error) *CustomError {
		return withCode(BuildNewCustomError(err, constvars.StatusBadGateway, constvars.ErrClientPaymentUnavailable, constvars.ErrDevGatewayParse), CodeGatewayParse)
	}
	ErrGatewayRejected = func(resultCode int, message string) *CustomError {
		return withCode(BuildNewCustomError(nil, constvars.StatusPaymentRequired, constvars.ErrClientPaymentDeclined, fmt.Sprintf(constvars.ErrDevGatewayRejected, resultCode, message)), CodeGatewayRejected)
	}
	ErrSignatureMismatch = func(err error) *CustomError {
		return withCode(BuildNewCustomError(err, constvars.StatusUnauthorized, constvars.ErrClientCannotProcessRequest, constvars.ErrDevSignatureMismatch), CodeSignatureMismatch)
	}

	// Orders
	ErrOrderNotFound = func(err error, orderID string) *CustomError {
		return withCode(BuildNewCustomError(err, constvars.StatusNotFound, constvars.ErrClientOrderNotFound, fmt.Sprintf(constvars.ErrDevOrderNotFound, orderID)), CodeOrderNotFound)
	}
	ErrOrderAlreadyExists = func(err error, orderID string) *CustomError {
		return withCode(BuildNewCustomError(err, constvars.StatusConflict, constvars.ErrClientOrderAlreadyExists, fmt.Sprintf(constvars.ErrDevOrderAlreadyExists, orderID)), CodeOrderConflict)
	}

	// Mongo DB
	ErrMongoDBFindDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToFindDocument)
	}
	ErrMongoDBInsertDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToInsertDocument)
	}
	ErrMongoDBUpdateDocument = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevDBFailedToUpdateDocument)
	}

	// Redis
	ErrRedisSet = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToSet)
	}
	ErrRedisGetNoData = func(err error, key string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRedisFailedToGet, key))
	}
	ErrRedisDelete = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToDelete)
	}
	ErrRedisUnlock = func(err error) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, constvars.ErrDevRedisFailedToUnlock)
	}

	// RabbitMQ
	ErrRabbitMQPublishMessage = func(err error, queueName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevRabbitMQFailedToPublish, queueName))
	}

	// Minio
	ErrMinioCreateObject = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToCreateObject, bucketName))
	}
	ErrMinioPrepareBucket = func(err error, bucketName string) *CustomError {
		return BuildNewCustomError(err, constvars.StatusInternalServerError, constvars.ErrClientSomethingWrongWithApplication, fmt.Sprintf(constvars.ErrDevMinioFailedToPrepareBucket, bucketName))
	}
)
