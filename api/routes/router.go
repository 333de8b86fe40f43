package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/angelmondragon/supercompare-api/api/controllers"
	"github.com/angelmondragon/supercompare-api/api/middleware"
	"github.com/angelmondragon/supercompare-api/api/responses"
	"github.com/angelmondragon/supercompare-api/internal/catalog"
	"github.com/angelmondragon/supercompare-api/pkg/config"
	"github.com/angelmondragon/supercompare-api/pkg/db"
	pkgerrors "github.com/angelmondragon/supercompare-api/pkg/errors"
	"github.com/angelmondragon/supercompare-api/pkg/logger"
	"github.com/angelmondragon/supercompare-api/pkg/metrics"
)

// NewRouter wires the public catalog API. reg may be nil, in which case no
// metrics are recorded or exposed.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	catalogService catalog.Service,
	reg *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	metricsEnabled := cfg.Metrics.Enabled && reg != nil
	if metricsEnabled {
		r.Use(middleware.Metrics(metrics.NewHTTPMetrics(reg)))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "route not found"))
	})

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if metricsEnabled {
		r.Method(http.MethodGet, cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/places", controllers.ListPlaces(catalogService, logg))
		r.Get("/search", controllers.SearchProducts(catalogService, logg))
		r.Get("/obtener-id-supermercado/{titulo}", controllers.SupermarketIDByTitle(catalogService, logg))
		r.Get("/productos/subcategoria/{id_subcategoria}", controllers.ListSubcategoryProducts(catalogService, logg))

		r.Route("/categorias", func(r chi.Router) {
			r.Get("/{id_supermercado}", controllers.ListCategories(catalogService, logg))
			r.Get("/{id_categoria}/subcategorias", controllers.ListSubcategories(catalogService, logg))
		})
	})

	return r
}
