package utils

import (
	"errors"
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/dto/responses"
	"mytelpay-order-service/internal/pkg/exceptions"
	"net/http"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// BuildRawJSONResponse writes body untouched with the given status.
func BuildRawJSONResponse(w http.ResponseWriter, code int, body []byte) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.Header().Set(constvars.HeaderContentLength, strconv.Itoa(len(body)))
	w.WriteHeader(code)
	w.Write(body)
}

// BuildErrorResponse logs err and writes {"error": message}. When uniformStatus is true
// every failure is reported as 500, otherwise the status carried by the error is used.
func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error, uniformStatus bool) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientInternalServerError

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		if !uniformStatus {
			code = customErr.StatusCode
		}
		clientMessage = customErr.ClientMessage
		log.Error(customErr.DevMessage,
			zap.Int(constvars.LoggingStatusCodeKey, code),
			zap.Any("location", map[string]interface{}{
				"file":          customErr.Location.File,
				"line":          customErr.Location.Line,
				"function_name": customErr.Location.FunctionName,
			}),
		)
	} else if err != nil {
		clientMessage = err.Error()
		log.Error(err.Error(), zap.Int(constvars.LoggingStatusCodeKey, code))
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(responses.ErrorResponse{Error: clientMessage})
}
