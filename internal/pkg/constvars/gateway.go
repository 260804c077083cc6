package constvars

const (
	PaymentGatewayOrdersPath = "/api/v1/paygw/orders"

	PaymentGatewayDefaultBaseUrl = "https://apis-uat.mytelpay.com.mm:8000"
)

const (
	HeaderXMerchantID = "X-Merchant-Id"
	HeaderXSignature  = "X-Signature"
	HeaderXNonce      = "X-Nonce"
	HeaderXTimestamp  = "X-Timestamp"
	HeaderXAPIKey     = "X-API-Key"
)

const (
	PaymentGatewaySignerStatic = "static"
	PaymentGatewaySignerHMAC   = "hmac"
)

// Static credentials of the merchant sandbox. The signature is not computed over the
// payload.
const (
	PaymentGatewayDefaultMerchantID = "MERCHANT_001"
	PaymentGatewayDefaultSignature  = "gY3/H9toO1eMF/WpiEblYhAeUKidBZc4CJzga2JFMRUbKo1OCUGkfWb3Nnt84BTc0sT4zp5UvEiJQoY4NP8dow=="
	PaymentGatewayDefaultNonce      = "2f6a9c1e-7b4d-4e58-8a03-5d1c9e6b4f2a"
	PaymentGatewayDefaultTimestamp  = "1769064188023"
	PaymentGatewayDefaultAPIKey     = ""
)

const (
	MytelPayDeeplinkScheme     = "mytelpayv2://"
	MytelPayDeeplinkLinkPrefix = "mytelpay"
)
