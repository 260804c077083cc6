package config

import (
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		Telemetry: Telemetry{
			Enabled:     utils.GetEnvBool("OTEL_ENABLED", false),
			ServiceName: utils.GetEnvString("OTEL_SERVICE_NAME", "mytelpay-order-service"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                        utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                       utils.GetEnvString("APP_PORT", ":8080"),
			Version:                    utils.GetEnvString("APP_VERSION", ""),
			Address:                    utils.GetEnvString("APP_ADDRESS", "localhost"),
			BaseUrl:                    utils.GetEnvString("APP_BASE_URL", "http://localhost:8080"),
			MaxRequests:                utils.GetEnvInt("APP_MAX_REQUESTS", 10),
			ShutdownTimeoutInSeconds:   utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 10),
			RequestBodyLimitInMegabyte: utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			RelayDistinctErrorStatus:   utils.GetEnvBool("APP_RELAY_DISTINCT_ERROR_STATUS", false),
		},
		PaymentGateway: AppPaymentGateway{
			BaseUrl:                utils.GetEnvString("PAYMENT_GATEWAY_BASE_URL", constvars.PaymentGatewayDefaultBaseUrl),
			Signer:                 utils.GetEnvString("PAYMENT_GATEWAY_SIGNER", constvars.PaymentGatewaySignerStatic),
			MerchantID:             utils.GetEnvString("PAYMENT_GATEWAY_MERCHANT_ID", constvars.PaymentGatewayDefaultMerchantID),
			Signature:              utils.GetEnvString("PAYMENT_GATEWAY_SIGNATURE", constvars.PaymentGatewayDefaultSignature),
			Nonce:                  utils.GetEnvString("PAYMENT_GATEWAY_NONCE", constvars.PaymentGatewayDefaultNonce),
			Timestamp:              utils.GetEnvString("PAYMENT_GATEWAY_TIMESTAMP", constvars.PaymentGatewayDefaultTimestamp),
			ApiKey:                 utils.GetEnvString("PAYMENT_GATEWAY_API_KEY", constvars.PaymentGatewayDefaultAPIKey),
			SecretKey:              utils.GetEnvString("PAYMENT_GATEWAY_SECRET_KEY", ""),
			RequestTimeoutInSecond: utils.GetEnvInt("PAYMENT_GATEWAY_REQUEST_TIMEOUT_IN_SECONDS", 0),
		},
		OrderForm: AppOrderForm{
			RelayBaseUrl:                utils.GetEnvString("ORDER_FORM_RELAY_BASE_URL", ""),
			RelayRequestTimeoutInSecond: utils.GetEnvInt("ORDER_FORM_RELAY_REQUEST_TIMEOUT_IN_SECONDS", 0),
			RelayToken:                  utils.GetEnvString("ORDER_FORM_RELAY_TOKEN", utils.GenerateNonce()),
		},
	}
}

// RelayBaseUrl resolves where the order form reaches the relay.
func (c *InternalConfig) RelayBaseUrl() string {
	if c.OrderForm.RelayBaseUrl != "" {
		return c.OrderForm.RelayBaseUrl
	}
	return c.App.BaseUrl
}
