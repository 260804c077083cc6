package contracts

import (
	"context"
	"mytelpay-order-service/internal/pkg/dto/requests"
	"mytelpay-order-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	CreateOrder(ctx context.Context, payload []byte, headers *requests.AuthHeaders) (*responses.RelayResponse, error)
}

// PaymentGatewaySigner produces the credential headers for one outbound payload.
type PaymentGatewaySigner interface {
	Name() string
	Sign(ctx context.Context, payload []byte) (*requests.AuthHeaders, error)
}
