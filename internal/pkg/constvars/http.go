package constvars

const (
	MIMEApplicationJSON     = "application/json"
	MIMETextHTMLCharsetUTF8 = "text/html; charset=utf-8"
)

const (
	StatusOK                  = 200
	StatusBadRequest          = 400
	StatusRequestTooLarge     = 413
	StatusTooManyRequests     = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusGatewayTimeout      = 504
)

const (
	HeaderAccept        = "Accept"
	HeaderContentType   = "Content-Type"
	HeaderContentLength = "Content-Length"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXFormToken    = "X-Order-Form-Token"
	HeaderXFormClientIP = "X-Order-Form-Client-IP"
	HeaderXCSRFToken    = "X-CSRF-Token"
	HeaderLink          = "Link"
)
