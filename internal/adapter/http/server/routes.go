package server

import (
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// setupRoutes - setups http routes
func (a *API) setupRoutes() {
	// System Health
	a.mux.HandleFunc("GET /health", a.routes.health.HealthCheck)

	a.setupMetricsRoute()
	a.setupSwaggerRoutes()

	a.mux.HandleFunc("POST /api/auth/register", a.routes.auth.Register)
	a.mux.HandleFunc("POST /api/auth/login", a.routes.auth.Login)

	a.mux.HandleFunc("GET /api/user/validate", a.routes.user.Validate)
	a.mux.HandleFunc("GET /api/user/profile", a.routes.user.Profile)
}

// setupSwaggerRoutes configures the Swagger UI endpoint
func (a *API) setupSwaggerRoutes() {
	a.mux.HandleFunc("/swagger/", httpSwagger.Handler())
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func (a *API) setupMetricsRoute() {
	a.mux.Handle("/metrics", promhttp.Handler())
}
