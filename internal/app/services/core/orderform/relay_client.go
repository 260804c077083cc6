package orderform

import (
	"context"
	"mytelpay-order-service/internal/app/config"
	"mytelpay-order-service/internal/app/contracts"
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/dto/requests"
	"mytelpay-order-service/internal/pkg/dto/responses"
	"mytelpay-order-service/internal/pkg/exceptions"
	"mytelpay-order-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type relayClient struct {
	BaseUrl string
	Token   string
	Client  *resty.Client
	Log     *zap.Logger
}

func NewRelayClient(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.OrderRelayClient {
	client := resty.New().
		SetTransport(otelhttp.NewTransport(http.DefaultTransport))
	if timeout := internalConfig.OrderForm.RelayRequestTimeoutInSecond; timeout > 0 {
		client.SetTimeout(time.Duration(timeout) * time.Second)
	}

	return &relayClient{
		BaseUrl: strings.TrimRight(internalConfig.RelayBaseUrl(), "/"),
		Token:   internalConfig.OrderForm.RelayToken,
		Client:  client,
		Log:     logger,
	}
}

func (c *relayClient) CreateOrder(ctx context.Context, request *requests.OrderRequest) (*responses.RelayResponse, error) {
	requestID := utils.GetRequestID(ctx)

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	req := c.Client.R().
		SetContext(ctx).
		SetHeader(constvars.HeaderContentType, constvars.MIMEApplicationJSON).
		SetHeader(constvars.HeaderAccept, constvars.MIMEApplicationJSON).
		SetBody(payload)
	if requestID != "" {
		req.SetHeader(constvars.HeaderXRequestID, requestID)
	}
	if clientIP := utils.GetClientIP(ctx); clientIP != "" && c.Token != "" {
		req.SetHeader(constvars.HeaderXFormToken, c.Token)
		req.SetHeader(constvars.HeaderXFormClientIP, clientIP)
	}

	resp, err := req.Post(c.BaseUrl + constvars.OrderRelayPath)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	c.Log.Debug("relayClient.CreateOrder received response",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMerchantOrderKey, request.MerchantOrderID),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode()),
	)

	return &responses.RelayResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}
