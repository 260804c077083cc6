package requests

import "github.com/goccy/go-json"

// OrderRequest is the payload the order form sends to the relay and the relay forwards
// to the payment gateway.
type OrderRequest struct {
	MerchantOrderID string          `json:"merchantOrderId"`
	Amount          int64           `json:"amount"`
	ServiceCode     string          `json:"serviceCode"`
	IpnUrl          string          `json:"ipnUrl"`
	UICallbackUrl   string          `json:"uiCallbackUrl"`
	ExtraData       json.RawMessage `json:"extraData"`
}
