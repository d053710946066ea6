package main

import (
	"context"
	"medilink-service/internal/app/config"
	"medilink-service/internal/app/delivery/http/controllers"
	"medilink-service/internal/app/delivery/http/middlewares"
	"medilink-service/internal/app/delivery/http/routers"
	"medilink-service/internal/app/drivers/database"
	"medilink-service/internal/app/drivers/logger"
	"medilink-service/internal/app/drivers/messaging"
	"medilink-service/internal/app/drivers/storage"
	"medilink-service/internal/app/services/core/payments"
	"medilink-service/internal/app/services/shared/auditlog"
	"medilink-service/internal/app/services/shared/events"
	"medilink-service/internal/app/services/shared/locker"
	redisRepo "medilink-service/internal/app/services/shared/redis"
	"medilink-service/internal/app/services/shared/wallet"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	defer zapLogger.Sync()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrapingTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		RabbitMQ:       rabbitMQ,
		Minio:          minioClient,
		Logger:         log,
		ZapLogger:      zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Redis
	redisRepository := redisRepo.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, bootstrap.ZapLogger)

	// Middlewares
	middlewares := &middlewares.Middlewares{
		Log:            bootstrap.ZapLogger,
		InternalConfig: bootstrap.InternalConfig,
	}

	// Wallet gateway
	signatureEngine := wallet.NewSignatureEngine()
	requestBuilder := wallet.NewPaymentRequestBuilder(bootstrap.InternalConfig.Wallet, signatureEngine)
	callbackVerifier := wallet.NewCallbackVerifier(bootstrap.InternalConfig.Wallet, signatureEngine)
	gatewayClient := wallet.NewWalletGatewayClient(bootstrap.InternalConfig.Wallet, requestBuilder, bootstrap.ZapLogger)

	// Events
	eventPublisher, err := events.NewPaymentEventPublisher(bootstrap.RabbitMQ, bootstrap.ZapLogger)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to initialize payment event publisher: %v", err)
	}

	// Audit trail
	auditTrail, err := auditlog.NewMinioAuditTrail(
		context.Background(),
		bootstrap.Minio,
		bootstrap.InternalConfig.Wallet.AuditBucketName,
		bootstrap.ZapLogger,
	)
	if err != nil {
		bootstrap.Logger.Fatalf("Failed to initialize audit trail: %v", err)
	}

	// Payments
	orderMongoRepository := payments.NewOrderMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	paymentUsecase := payments.NewPaymentUsecase(
		orderMongoRepository,
		gatewayClient,
		requestBuilder,
		callbackVerifier,
		lockService,
		eventPublisher,
		auditTrail,
		redisRepository,
		bootstrap.InternalConfig,
		bootstrap.ZapLogger,
	)
	statusPoller := payments.NewStatusPoller(
		paymentUsecase,
		time.Duration(bootstrap.InternalConfig.Wallet.PollIntervalInMS)*time.Millisecond,
		bootstrap.InternalConfig.Wallet.PollSyncEvery,
		bootstrap.ZapLogger,
	)
	paymentController := controllers.NewPaymentController(bootstrap.ZapLogger, paymentUsecase, statusPoller)

	bootstrap.Router.Use(middlewares.RequestIDMiddleware)
	bootstrap.Router.Use(middlewares.Logging(bootstrap.ZapLogger))

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, paymentController)
}
