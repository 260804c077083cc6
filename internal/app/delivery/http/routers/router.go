package routers

import (
	"crypto/subtle"
	"mytelpay-order-service/internal/app/config"
	"mytelpay-order-service/internal/app/delivery/http/controllers"
	"mytelpay-order-service/internal/app/delivery/http/middlewares"
	"mytelpay-order-service/internal/pkg/constvars"
	"mytelpay-order-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	orderController *controllers.OrderController,
	orderPageController *controllers.OrderPageController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXCSRFToken, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderLink, constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(otelhttp.NewMiddleware("mytelpay-order-service",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	))
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	// Rate limiting middleware using httprate
	rateLimiter := httprate.Limit(
		internalConfig.App.MaxRequests,
		time.Second,
		httprate.WithKeyFuncs(keyByOrderFormVisitor(internalConfig.OrderForm.RelayToken)),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			utils.BuildRawJSONResponse(w, constvars.StatusTooManyRequests, tooManyRequestsBody)
		}),
	)
	router.Use(rateLimiter)

	router.Get("/-/live", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	attachOrderPageRoutes(router, middlewares, orderPageController)

	router.Route("/api", func(r chi.Router) {
		attachOrderRoutes(r, middlewares, orderController)
	})
}

// keyByOrderFormVisitor buckets relay calls made by the order page under the visitor
// who submitted the form. Every other request is keyed by its remote address.
func keyByOrderFormVisitor(token string) httprate.KeyFunc {
	return func(r *http.Request) (string, error) {
		visitor := r.Header.Get(constvars.HeaderXFormClientIP)
		presented := r.Header.Get(constvars.HeaderXFormToken)
		if token != "" && visitor != "" && subtle.ConstantTimeCompare([]byte(presented), []byte(token)) == 1 {
			return "order-form:" + visitor, nil
		}
		return httprate.KeyByIP(r)
	}
}

var tooManyRequestsBody = []byte(`{"error":"` + constvars.ErrClientTooManyRequests + `"}`)
