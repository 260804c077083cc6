package middlewares

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"

	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/exceptions"
	"mytelpay-order-service/internal/pkg/utils"
)

// BodyBuffer reads the request body up to the configured limit, stores the raw bytes in
// the context and replaces the request body so handlers can read it again.
func (m *Middlewares) BodyBuffer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
		body := r.Body
		if limit > 0 {
			body = http.MaxBytesReader(w, r.Body, limit)
		}

		bodyBytes, err := io.ReadAll(body)
		if err != nil {
			uniformStatus := !m.InternalConfig.App.RelayDistinctErrorStatus
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestBodyTooLarge(err), uniformStatus)
				return
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrReadBody(err), uniformStatus)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_RAW_BODY, bodyBytes)
		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
