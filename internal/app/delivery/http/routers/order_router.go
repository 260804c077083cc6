package routers

import (
	"mytelpay-order-service/internal/app/delivery/http/controllers"
	"mytelpay-order-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachOrderRoutes(router chi.Router, middlewares *middlewares.Middlewares, orderController *controllers.OrderController) {
	router.With(middlewares.BodyBuffer).Post("/order", orderController.CreateOrder)
}

func attachOrderPageRoutes(router chi.Router, middlewares *middlewares.Middlewares, orderPageController *controllers.OrderPageController) {
	router.Get("/", orderPageController.Show)
	router.With(middlewares.BodyBuffer).Post("/", orderPageController.Submit)
}
