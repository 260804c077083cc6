package config

type (
	DriverConfig struct {
		Logger    Logger
		Telemetry Telemetry
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	// Telemetry toggles the OpenTelemetry exporters. Exporter selection itself follows the
	// standard OTEL_* environment variables.
	Telemetry struct {
		Enabled     bool
		ServiceName string
	}
)

type InternalConfig struct {
	App            App
	PaymentGateway AppPaymentGateway
	OrderForm      AppOrderForm
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Address                    string
	BaseUrl                    string
	MaxRequests                int
	ShutdownTimeoutInSeconds   int
	RequestBodyLimitInMegabyte int
	// RelayDistinctErrorStatus reports relay failures with a status per failure kind
	// instead of a uniform 500.
	RelayDistinctErrorStatus bool
}

type AppPaymentGateway struct {
	BaseUrl                string
	Signer                 string
	MerchantID             string
	Signature              string
	Nonce                  string
	Timestamp              string
	ApiKey                 string
	SecretKey              string
	RequestTimeoutInSecond int
}

type AppOrderForm struct {
	// RelayBaseUrl is where the order form sends its requests. Empty means this server.
	RelayBaseUrl                string
	RelayRequestTimeoutInSecond int
	// RelayToken marks relay calls made by the order page so the rate limiter keys them
	// by the visitor instead of the calling host. Must match on both sides of the relay.
	RelayToken                  string
}
