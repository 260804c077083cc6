package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"numeric":  "must be a number",
	"url":      "must be a valid URL",
	"json":     "must be valid JSON",
	"max":      "maximum at %s characters long",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"max": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the payment gateway is taking too long to respond"
	ErrClientInvalidRequestBody            = "request body is not valid JSON"
	ErrClientGatewayUnreachable            = "failed to reach the payment gateway"
	ErrClientGatewayInvalidResponse        = "payment gateway returned a response that is not valid JSON"
	ErrClientInternalServerError           = "Internal Server Error"
	ErrClientTooManyRequests               = "too many requests, please try again later"
)

// Error messages for developers
const (
	ErrDevInvalidInput            = "invalid input"
	ErrDevValidationFailed        = "validation failed"
	ErrDevCannotParseJSON         = "cannot parse JSON"
	ErrDevCannotMarshalJSON       = "cannot marshal JSON"
	ErrDevReadBody                = "failed to read request body"
	ErrDevSendHTTPRequest         = "failed to send HTTP request"
	ErrDevServerProcess           = "server failed to process the request"
	ErrDevServerDeadlineExceeded  = "server deadline exceeded"
	ErrDevMissingRequestID        = "request id missing from context"
	ErrDevSignGatewayRequest      = "failed to sign payment gateway request"
	ErrDevDecodeGatewayResponse   = "failed to decode payment gateway response"
	ErrDevRenderTemplate          = "failed to render template"
	ErrDevRecoveredPanic          = "recovered from panic"
	ErrDevUnsupportedSigner       = "unsupported payment gateway signer %q"
	ErrDevRequestBodyLimitReached = "request body exceeds limit"
)
