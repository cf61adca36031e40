package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/amirhosseinghanipour/courseapi/internal/infrastructure/http/handlers"
	"github.com/amirhosseinghanipour/courseapi/internal/infrastructure/http/middleware"
)

type RouterConfig struct {
	UsersHandler   *handlers.UsersHandler
	CoursesHandler *handlers.CoursesHandler
	HealthHandler  *handlers.HealthHandler
	Authenticate   func(http.Handler) http.Handler // basic auth for gated routes
	Secure         func(http.Handler) http.Handler
	CORS           func(http.Handler) http.Handler
	Log            zerolog.Logger
	LogErrors      bool // log recovered panics
	Metrics        bool // expose /metrics
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(chimid.RequestID)
	r.Use(chimid.RealIP)
	r.Use(loggerMiddleware(cfg.Log))
	r.Use(recoverer(cfg.Log, cfg.LogErrors))
	if cfg.Metrics {
		r.Use(middleware.PrometheusMiddleware)
	}
	if cfg.Secure != nil {
		r.Use(cfg.Secure)
	}
	if cfg.CORS != nil {
		r.Use(cfg.CORS)
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Welcome to the REST API project!"}`))
	})
	if cfg.HealthHandler != nil {
		r.Get("/health", cfg.HealthHandler.ServeHTTP)
	}
	if cfg.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	r.Route("/api", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", cfg.UsersHandler.Create)
			r.Group(func(r chi.Router) {
				r.Use(cfg.Authenticate)
				r.Get("/", cfg.UsersHandler.Current)
			})
		})
		r.Route("/courses", func(r chi.Router) {
			r.Get("/", cfg.CoursesHandler.List)
			r.Get("/{id}", cfg.CoursesHandler.Get)
			r.Group(func(r chi.Router) {
				r.Use(cfg.Authenticate)
				r.Post("/", cfg.CoursesHandler.Create)
				r.Put("/{id}", cfg.CoursesHandler.Update)
				r.Delete("/{id}", cfg.CoursesHandler.Delete)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Route Not Found"}`))
	})

	return r
}

func loggerMiddleware(log zerolog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := chimid.GetReqID(r.Context())
			log.Info().
				Str("request_id", reqID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("request")
			next.ServeHTTP(w, r)
		})
	}
}

// recoverer converts panics into the 500 payload. logErrors is an explicit
// startup flag, not ambient process state.
func recoverer(log zerolog.Logger, logErrors bool) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					if rvr == http.ErrAbortHandler {
						panic(rvr)
					}
					if logErrors {
						log.Error().
							Interface("panic", rvr).
							Bytes("stack", debug.Stack()).
							Msg("recovered panic")
					}
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_ = json.NewEncoder(w).Encode(map[string]interface{}{
						"message": fmt.Sprint(rvr),
						"error":   struct{}{},
					})
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
