package orders

import (
	"bytes"
	"context"
	"errors"
	"mytelpay-order-service/internal/app/config"
	"mytelpay-order-service/internal/app/contracts"
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/dto/responses"
	"mytelpay-order-service/internal/pkg/exceptions"
	"mytelpay-order-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var errEmptyBody = errors.New("empty body")

type orderUsecase struct {
	PaymentGatewayService contracts.PaymentGatewayService
	Signer                contracts.PaymentGatewaySigner
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
}

var (
	orderUsecaseInstance contracts.OrderUsecase
	onceOrderUsecase     sync.Once
)

func NewOrderUsecase(
	paymentGatewayService contracts.PaymentGatewayService,
	signer contracts.PaymentGatewaySigner,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.OrderUsecase {
	onceOrderUsecase.Do(func() {
		instance := &orderUsecase{
			PaymentGatewayService: paymentGatewayService,
			Signer:                signer,
			InternalConfig:        internalConfig,
			Log:                   logger,
		}
		orderUsecaseInstance = instance
	})
	return orderUsecaseInstance
}

// RelayOrder forwards payload to the payment gateway exactly as received and hands back
// the gateway status and body. Each call makes one outbound request.
func (uc *orderUsecase) RelayOrder(ctx context.Context, payload []byte) (*responses.RelayResponse, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("orderUsecase.RelayOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRequestLengthKey, len(payload)),
	)

	if err := checkJSON(payload); err != nil {
		uc.Log.Error("orderUsecase.RelayOrder error request body is not JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCannotParseJSON(err)
	}

	headers, err := uc.Signer.Sign(ctx, payload)
	if err != nil {
		uc.Log.Error("orderUsecase.RelayOrder error signing request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSignerKey, uc.Signer.Name()),
			zap.Error(err),
		)
		return nil, exceptions.ErrSignGatewayRequest(err)
	}

	response, err := uc.PaymentGatewayService.CreateOrder(ctx, payload, headers)
	if err != nil {
		uc.Log.Error("orderUsecase.RelayOrder error calling payment gateway",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			var customErr *exceptions.CustomError
			if !errors.As(err, &customErr) {
				return nil, exceptions.ErrServerDeadlineExceeded(err)
			}
		}
		return nil, err
	}

	if err := checkJSON(response.Body); err != nil {
		uc.Log.Error("orderUsecase.RelayOrder error payment gateway body is not JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingUpstreamStatusKey, response.StatusCode),
			zap.Error(err),
		)
		return nil, exceptions.ErrDecodeGatewayResponse(err)
	}

	utils.LogBusinessEvent(uc.Log, "order_relayed", requestID,
		zap.String(constvars.LoggingSignerKey, uc.Signer.Name()),
		zap.Int(constvars.LoggingUpstreamStatusKey, response.StatusCode),
	)

	uc.Log.Info("orderUsecase.RelayOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUpstreamStatusKey, response.StatusCode),
	)
	return response, nil
}

func checkJSON(data []byte) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return errEmptyBody
	}
	var raw json.RawMessage
	return json.Unmarshal(data, &raw)
}
