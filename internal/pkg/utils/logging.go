package utils

import (
	"context"
	"time"

	"mytelpay-order-service/internal/pkg/constvars"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func LogBusinessEvent(logger *zap.Logger, event string, requestID string, fields ...zap.Field) {
	allFields := []zap.Field{
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("business_event", event),
		zap.Time("timestamp", time.Now()),
	}
	allFields = append(allFields, fields...)

	logger.Info("Business event occurred", allFields...)
}

func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string); ok {
		return requestID
	}
	return ""
}

func GetClientIP(ctx context.Context) string {
	if clientIP, ok := ctx.Value(constvars.CONTEXT_CLIENT_IP_KEY).(string); ok {
		return clientIP
	}
	return ""
}

// TraceFields returns the trace and span ids of the span stored in ctx, if any.
func TraceFields(ctx context.Context) []zap.Field {
	spanContext := trace.SpanContextFromContext(ctx)
	if !spanContext.IsValid() {
		return nil
	}
	return []zap.Field{
		zap.String(constvars.LoggingTraceIDKey, spanContext.TraceID().String()),
		zap.String(constvars.LoggingSpanIDKey, spanContext.SpanID().String()),
		zap.Bool(constvars.LoggingTraceSampledKey, spanContext.TraceFlags().IsSampled()),
	}
}
