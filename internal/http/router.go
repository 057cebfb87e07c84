package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/ims-backend/internal/http/handlers"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger)

	r.Get("/healthz", handlers.HealthHandler)

	r.Group(func(r chi.Router) {
		r.Use(RateLimitMiddleware)
		r.Post("/register", handlers.RegisterHandler)
		r.Post("/login", handlers.LoginHandler)
	})

	// Read endpoints are open, matching the original access rules.
	r.Get("/products", handlers.GetProductsHandler)
	r.Get("/products/search", handlers.FilterProductsHandler)
	r.Get("/products/{id}", handlers.GetProductByIDHandler)
	r.Get("/movements", handlers.GetMovementsHandler)
	r.Get("/dashboard/stats", handlers.GetDashboardStatsHandler)
	r.Get("/dashboard/below-minimum-stock", handlers.GetBelowMinimumStockHandler)

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware, RequireRole("admin", "employee"))
		r.Post("/products", handlers.CreateProductHandler)
		r.Put("/products/{id}", handlers.UpdateProductHandler)
		r.Get("/notifications", handlers.GetNotificationsHandler)
	})

	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware, RequireRole("admin"))
		r.Delete("/products/{id}", handlers.DeleteProductHandler)
		r.Post("/products/import", handlers.ImportProductsHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
