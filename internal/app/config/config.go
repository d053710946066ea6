package config

import (
	"medilink-service/internal/pkg/constvars"
	"medilink-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "medilink"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "defaultPassword"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", "development"),
			Port:            utils.GetEnvString("APP_PORT", ":8080"),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:        utils.GetEnvString("APP_TIMEZONE", "Asia/Ho_Chi_Minh"),
			EndpointPrefix:  utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			MaxRequests:     utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		JWT: JWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 1),
		},
		Wallet: Wallet{
			PartnerCode:         utils.GetEnvString("WALLET_PARTNER_CODE", ""),
			AccessKey:           utils.GetEnvString("WALLET_ACCESS_KEY", ""),
			SecretKey:           utils.GetEnvString("WALLET_SECRET_KEY", ""),
			Endpoint:            utils.GetEnvString("WALLET_ENDPOINT", "https://test-payment.momo.vn"),
			CreatePath:          utils.GetEnvString("WALLET_CREATE_PATH", "/v2/gateway/api/create"),
			QueryPath:           utils.GetEnvString("WALLET_QUERY_PATH", "/v2/gateway/api/query"),
			RequestType:         utils.GetEnvString("WALLET_REQUEST_TYPE", constvars.WalletRequestTypeCaptureWallet),
			Lang:                utils.GetEnvString("WALLET_LANG", "en"),
			RedirectURL:         utils.GetEnvString("WALLET_REDIRECT_URL", ""),
			IPNURL:              utils.GetEnvString("WALLET_IPN_URL", ""),
			RequestTimeoutInSec: utils.GetEnvInt("WALLET_REQUEST_TIMEOUT_IN_SEC", 30),
			MaxRetryAttempts:    utils.GetEnvInt("WALLET_MAX_RETRY_ATTEMPTS", 3),
			RetryBaseDelayInMS:  utils.GetEnvInt("WALLET_RETRY_BASE_DELAY_IN_MS", 200),
			RequestsPerSecond:   utils.GetEnvInt("WALLET_REQUESTS_PER_SECOND", 10),
			LockTTLInSec:        utils.GetEnvInt("WALLET_LOCK_TTL_IN_SEC", 10),
			StatusCacheTTLInSec: utils.GetEnvInt("WALLET_STATUS_CACHE_TTL_IN_SEC", 60),
			PollIntervalInMS:    utils.GetEnvInt("WALLET_POLL_INTERVAL_IN_MS", 3000),
			PollSyncEvery:       utils.GetEnvInt("WALLET_POLL_SYNC_EVERY", 5),
			AuditBucketName:     utils.GetEnvString("WALLET_AUDIT_BUCKET_NAME", "payment-audit"),
		},
	}
}
