package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/toyboxhq/toybox/internal/service"
	"github.com/toyboxhq/toybox/pkg/health"
	"github.com/toyboxhq/toybox/pkg/httputil"
	"github.com/toyboxhq/toybox/pkg/middleware"
)

// NewRouter creates a chi router with all toy catalog routes registered.
func NewRouter(
	toyService *service.ToyService,
	categoryService *service.CategoryService,
	brandService *service.BrandService,
	healthHandler *health.Handler,
	corsConfig middleware.CORSConfig,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(corsConfig))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics("toybox"))

	// Welcome endpoint
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to the ToyBox API! Explore our collection of toys.",
		})
	})

	// Health and metrics endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Toy API endpoints
	toyHandler := NewToyHandler(toyService, logger)

	r.Route("/toys", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", toyHandler.ListToys)
		r.Get("/search", toyHandler.SearchToys)
		r.Get("/{slug}", toyHandler.GetToy)
		r.Post("/", toyHandler.CreateToy)
		r.Patch("/{id}", toyHandler.UpdateToy)
		r.Put("/{id}", toyHandler.ReplaceToy)
		r.Delete("/{id}", toyHandler.DeleteToy)
	})

	// Category API endpoints
	categoryHandler := NewCategoryHandler(categoryService, logger)

	r.Route("/categories", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", categoryHandler.ListCategories)
		r.Get("/{slug}", categoryHandler.GetCategory)
		r.Post("/", categoryHandler.CreateCategory)
		r.Patch("/{id}", categoryHandler.UpdateCategory)
		r.Put("/{id}", categoryHandler.ReplaceCategory)
		r.Delete("/{id}", categoryHandler.DeleteCategory)
	})

	// Brand API endpoints
	brandHandler := NewBrandHandler(brandService, logger)

	r.Route("/brands", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", brandHandler.ListBrands)
		r.Get("/{slug}", brandHandler.GetBrand)
		r.Post("/", brandHandler.CreateBrand)
		r.Patch("/{id}", brandHandler.UpdateBrand)
		r.Put("/{id}", brandHandler.ReplaceBrand)
		r.Delete("/{id}", brandHandler.DeleteBrand)
	})

	return r
}
