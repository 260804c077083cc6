package main

import (
	"context"
	"mytelpay-order-service/internal/app/config"
	"mytelpay-order-service/internal/app/delivery/http/controllers"
	"mytelpay-order-service/internal/app/delivery/http/middlewares"
	"mytelpay-order-service/internal/app/delivery/http/routers"
	"mytelpay-order-service/internal/app/drivers/logger"
	"mytelpay-order-service/internal/app/drivers/telemetry"
	"mytelpay-order-service/internal/app/services/core/orderform"
	"mytelpay-order-service/internal/app/services/core/orders"
	"mytelpay-order-service/internal/app/services/shared/payment_gateway"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version sets the default build version
var Version = "develop"

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if internalConfig.App.Version == "" {
		internalConfig.App.Version = Version
	}

	log := logger.NewZapLogger(driverConfig, internalConfig)

	telemetryShutdown, err := telemetry.SetupOpenTelemetry(context.Background(), driverConfig, log)
	if err != nil {
		log.Fatal("Error while initializing OpenTelemetry", zap.Error(err))
	}

	chiRouter := chi.NewRouter()

	bootstrap := &config.Bootstrap{
		Router:            chiRouter,
		Logger:            log,
		DriverConfig:      driverConfig,
		InternalConfig:    internalConfig,
		TelemetryShutdown: telemetryShutdown,
	}
	if err := bootstrapingTheApp(bootstrap); err != nil {
		log.Fatal("Error while bootstrapping the app", zap.Error(err))
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           chiRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("Server started",
			zap.String("address", internalConfig.App.Port),
			zap.String("env", internalConfig.App.Env),
			zap.String("version", internalConfig.App.Version),
		)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Error("Error while shutting down", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Payment gateway
	signer, err := payment_gateway.NewSigner(bootstrap.InternalConfig)
	if err != nil {
		return err
	}
	paymentGatewayService := payment_gateway.NewMytelPayService(bootstrap.InternalConfig, bootstrap.Logger)

	// Order relay
	orderUsecase := orders.NewOrderUsecase(paymentGatewayService, signer, bootstrap.InternalConfig, bootstrap.Logger)
	orderController := controllers.NewOrderController(bootstrap.Logger, orderUsecase, bootstrap.InternalConfig)

	// Order form
	relayClient := orderform.NewRelayClient(bootstrap.InternalConfig, bootstrap.Logger)
	orderPageController := controllers.NewOrderPageController(bootstrap.Logger, relayClient)

	bootstrap.Logger.Info("Payment gateway configured",
		zap.String("base_url", bootstrap.InternalConfig.PaymentGateway.BaseUrl),
		zap.String("signer", signer.Name()),
	)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, orderController, orderPageController)
	return nil
}
