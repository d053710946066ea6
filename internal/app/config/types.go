package config

import (
	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoDB        *mongo.Client
		Redis          *redis.Client
		RabbitMQ       *amqp.Connection
		Minio          *minio.Client
		Logger         *logrus.Logger
		ZapLogger      *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App    App
		JWT    JWT
		Wallet Wallet
	}

	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		Logger   Logger
	}

	App struct {
		Env             string
		Port            string
		Version         string
		Timezone        string
		EndpointPrefix  string
		MaxRequests     int
		ShutdownTimeout int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}

	// Wallet holds the provider credentials and endpoints. It is injected
	// into the wallet components at construction; nothing reads it from the
	// process environment after startup.
	Wallet struct {
		PartnerCode         string
		AccessKey           string
		SecretKey           string
		Endpoint            string
		CreatePath          string
		QueryPath           string
		RequestType         string
		Lang                string
		RedirectURL         string
		IPNURL              string
		RequestTimeoutInSec int
		MaxRetryAttempts    int
		RetryBaseDelayInMS  int
		RequestsPerSecond   int
		LockTTLInSec        int
		StatusCacheTTLInSec int
		PollIntervalInMS    int
		PollSyncEvery       int
		AuditBucketName     string
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)
