package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"

	"github.com/DioGolang/GoRider/internal/infra/web/handler"
	"github.com/DioGolang/GoRider/internal/infra/web/middleware"
	"github.com/DioGolang/GoRider/pkg/logger"
	"github.com/DioGolang/GoRider/pkg/metrics"
)

type RouterConfig struct {
	ServiceName    string
	RequestTimeout time.Duration
}

type Router struct {
	Config    RouterConfig
	Riders    *handler.Rider
	Locations *handler.Location
	Health    http.Handler
	Metrics   http.Handler
	Limiter   *middleware.IPDispatcher
	Recorder  metrics.Metrics
	Logger    logger.Logger
}

// Handler mounts the API. Operational endpoints skip the rate limiter and timeout.
func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(otelchi.Middleware(rt.Config.ServiceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestLogger(rt.Logger))
	r.Use(middleware.MetricsWrapper(rt.Recorder))
	r.Use(chimw.Recoverer)

	if rt.Health != nil {
		r.Method(http.MethodGet, "/health", rt.Health)
	}
	if rt.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", rt.Metrics)
	}

	r.Route("/riders", func(r chi.Router) {
		if rt.Limiter != nil {
			r.Use(rt.Limiter.Handler(rt.Logger))
		}
		if rt.Config.RequestTimeout > 0 {
			r.Use(chimw.Timeout(rt.Config.RequestTimeout))
		}

		r.Post("/", rt.Riders.HandleCreate)
		r.Get("/", rt.Riders.HandleList)
		r.Get("/search", rt.Locations.HandleSearch)
		r.Get("/{id}", rt.Riders.HandleGet)
		r.Patch("/{id}", rt.Riders.HandleUpdate)
		r.Delete("/{id}", rt.Riders.HandleDelete)
		r.Post("/{id}/locations", rt.Locations.HandleUpsert)
		r.Get("/{id}/locations", rt.Locations.HandleGet)
	})

	return r
}
