package utils

import (
	"mytelpay-order-service/internal/pkg/constvars"
	"strconv"
	"time"

	"github.com/google/uuid"
)

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.NewString()
}

// GenerateMerchantOrderID returns ORD_ followed by the unix time in whole seconds.
func GenerateMerchantOrderID(now time.Time) string {
	return constvars.OrderFormMerchantOrderIDPrefix + strconv.FormatInt(now.Unix(), 10)
}

func GenerateNonce() string {
	return uuid.NewString()
}
