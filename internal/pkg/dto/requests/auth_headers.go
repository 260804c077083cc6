package requests

import "mytelpay-order-service/internal/pkg/constvars"

// AuthHeaders is the credential bundle attached to every payment gateway call.
type AuthHeaders struct {
	MerchantID string
	Signature  string
	Nonce      string
	Timestamp  string
	APIKey     string
}

// ToMap keys the bundle by HTTP header name.
func (h AuthHeaders) ToMap() map[string]string {
	return map[string]string{
		constvars.HeaderXMerchantID: h.MerchantID,
		constvars.HeaderXSignature:  h.Signature,
		constvars.HeaderXNonce:      h.Nonce,
		constvars.HeaderXTimestamp:  h.Timestamp,
		constvars.HeaderXAPIKey:     h.APIKey,
	}
}
