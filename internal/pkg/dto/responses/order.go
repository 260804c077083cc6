package responses

import "github.com/goccy/go-json"

// RelayResponse is what the relay returned: the upstream status and body, untouched.
type RelayResponse struct {
	StatusCode int
	Body       json.RawMessage
}

// GatewayOrderResult holds the fields of a gateway response the order form looks at.
// Everything else in the body is opaque.
type GatewayOrderResult struct {
	Result interface{} `json:"result,omitempty"`
	Error  interface{} `json:"error,omitempty"`
}

// ErrorResponse is the body the relay writes when it fails on its own.
type ErrorResponse struct {
	Error string `json:"error"`
}
