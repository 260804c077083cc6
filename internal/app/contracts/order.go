package contracts

import (
	"context"
	"mytelpay-order-service/internal/pkg/dto/requests"
	"mytelpay-order-service/internal/pkg/dto/responses"
)

type OrderUsecase interface {
	RelayOrder(ctx context.Context, payload []byte) (*responses.RelayResponse, error)
}

// OrderRelayClient is how the order form reaches the relay endpoint.
type OrderRelayClient interface {
	CreateOrder(ctx context.Context, request *requests.OrderRequest) (*responses.RelayResponse, error)
}
