package payment_gateway

import (
	"context"
	"errors"
	"mytelpay-order-service/internal/app/config"
	"mytelpay-order-service/internal/app/contracts"
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/dto/requests"
	"mytelpay-order-service/internal/pkg/dto/responses"
	"mytelpay-order-service/internal/pkg/exceptions"
	"mytelpay-order-service/internal/pkg/utils"
	"net"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

type mytelPayService struct {
	BaseUrl string
	Client  *resty.Client
	Log     *zap.Logger
}

func NewMytelPayService(internalConfig *config.InternalConfig, logger *zap.Logger) contracts.PaymentGatewayService {
	client := resty.New().
		SetTransport(otelhttp.NewTransport(http.DefaultTransport))
	if timeout := internalConfig.PaymentGateway.RequestTimeoutInSecond; timeout > 0 {
		client.SetTimeout(time.Duration(timeout) * time.Second)
	}

	return &mytelPayService{
		BaseUrl: strings.TrimRight(internalConfig.PaymentGateway.BaseUrl, "/"),
		Client:  client,
		Log:     logger,
	}
}

// CreateOrder posts payload to the gateway orders endpoint without re-encoding it and
// returns whatever status and body the gateway answered with.
func (s *mytelPayService) CreateOrder(ctx context.Context, payload []byte, headers *requests.AuthHeaders) (*responses.RelayResponse, error) {
	requestID := utils.GetRequestID(ctx)
	url := s.BaseUrl + constvars.PaymentGatewayOrdersPath
	headerMap := headers.ToMap()

	s.Log.Debug("mytelPayService.CreateOrder sending request",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUpstreamURLKey, url),
		zap.Strings(constvars.LoggingHeaderNamesKey, headerNames(headerMap)),
		zap.Int(constvars.LoggingRequestLengthKey, len(payload)),
	)

	resp, err := s.Client.R().
		SetContext(ctx).
		SetHeader(constvars.HeaderContentType, constvars.MIMEApplicationJSON).
		SetHeaders(headerMap).
		SetBody(payload).
		Post(url)
	if err != nil {
		if isTimeout(err) {
			return nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return nil, exceptions.ErrSendHTTPRequest(err)
	}

	s.Log.Debug("mytelPayService.CreateOrder received response",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUpstreamStatusKey, resp.StatusCode()),
		zap.Int(constvars.LoggingResponseLengthKey, len(resp.Body())),
	)

	return &responses.RelayResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}, nil
}

func headerNames(headers map[string]string) []string {
	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
