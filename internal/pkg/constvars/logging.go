package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingResponseLengthKey = "response_length"
	LoggingRequestLengthKey  = "request_length"
	LoggingEndpointKey       = "endpoint"
	LoggingMethodKey         = "method"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingErrorTypeKey      = "error_type"
	LoggingTraceIDKey        = "trace_id"
	LoggingSpanIDKey         = "span_id"
	LoggingTraceSampledKey   = "trace_sampled"
	LoggingUpstreamURLKey    = "upstream_url"
	LoggingUpstreamStatusKey = "upstream_status"
	LoggingHeaderNamesKey    = "header_names"
	LoggingSignerKey         = "signer"
	LoggingMerchantOrderKey  = "merchant_order_id"
	LoggingDeeplinkKey       = "deeplink"
)
