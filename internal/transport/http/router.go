// Package httptransport is the thin HTTP layer. It delegates to domain
// services without embedding business logic so transport concerns remain
// isolated.
package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"attesto/internal/verification/handler"
)

// RouterConfig holds the transport-level knobs.
type RouterConfig struct {
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter wires middleware and all public endpoints.
func NewRouter(verifyHandler *handler.Handler, cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(requestTimeMiddleware)
	r.Use(rateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	r.Get("/healthz", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	verifyHandler.Register(r)

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
