package http

import (
	"net/http"

	"github.com/barista-preorder/internal/application/catalog"
	"github.com/barista-preorder/internal/application/order"
	"github.com/barista-preorder/internal/application/verification"
	"github.com/barista-preorder/internal/config"
	"github.com/barista-preorder/internal/transport/http/handler"
	appmiddleware "github.com/barista-preorder/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — applied to the endpoints a code
	// guesser would hammer.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	verificationSvc := verification.NewService(deps.Codes, deps.Board, deps.Mailer, cfg.StrictDelivery, deps.Log)
	catalogSvc := catalog.NewService(deps.Catalog, deps.Images, deps.Log)
	orderSvc := order.NewService(deps.Board)

	healthH := handler.NewHealthHandler()
	verificationH := handler.NewVerificationHandler(verificationSvc)
	productH := handler.NewProductHandler(catalogSvc)
	orderH := handler.NewOrderHandler(orderSvc)

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)
		r.Post("/health-check/{action}", healthH.Ping)

		r.With(sensitiveRL.Limit).Post("/verification/send-code", verificationH.SendCode)
		r.With(sensitiveRL.Limit).Post("/orders/checkout", verificationH.Checkout)

		r.Get("/products", productH.List)
		r.Get("/products/{id}/image", productH.Image)
		r.Get("/orders", orderH.List)
	})

	return r
}
