package controllers

import (
	"io"
	"mytelpay-order-service/internal/app/config"
	"mytelpay-order-service/internal/app/contracts"
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/exceptions"
	"mytelpay-order-service/internal/pkg/utils"
	"net/http"
	"sync"

	"go.uber.org/zap"
)

type OrderController struct {
	Log            *zap.Logger
	OrderUsecase   contracts.OrderUsecase
	InternalConfig *config.InternalConfig
}

var (
	orderControllerInstance *OrderController
	onceOrderController     sync.Once
)

func NewOrderController(logger *zap.Logger, orderUsecase contracts.OrderUsecase, internalConfig *config.InternalConfig) *OrderController {
	onceOrderController.Do(func() {
		instance := &OrderController{
			Log:            logger,
			OrderUsecase:   orderUsecase,
			InternalConfig: internalConfig,
		}
		orderControllerInstance = instance
	})
	return orderControllerInstance
}

// CreateOrder relays the request body to the payment gateway and answers with the
// gateway status and body as they came.
func (ctrl *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	uniformStatus := !ctrl.InternalConfig.App.RelayDistinctErrorStatus

	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok || requestID == "" {
		ctrl.Log.Error("OrderController.CreateOrder requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil), uniformStatus)
		return
	}
	ctrl.Log.Info("OrderController.CreateOrder called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, ok := r.Context().Value(constvars.CONTEXT_RAW_BODY).([]byte)
	if !ok {
		var err error
		payload, err = io.ReadAll(r.Body)
		if err != nil {
			ctrl.Log.Error("OrderController.CreateOrder error reading body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrReadBody(err), uniformStatus)
			return
		}
	}

	result, err := ctrl.OrderUsecase.RelayOrder(r.Context(), payload)
	if err != nil {
		ctrl.Log.Error("OrderController.CreateOrder error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err, uniformStatus)
		return
	}

	ctrl.Log.Info("OrderController.CreateOrder succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingUpstreamStatusKey, result.StatusCode),
	)
	utils.BuildRawJSONResponse(w, result.StatusCode, result.Body)
}
