package main

import (
	"net/http"
	"os"

	"github.com/rs/zerolog/log"

	"travelbook/internal/adapters/observability"
	"travelbook/internal/shared"
	"travelbook/internal/stubserver"
)

// Runs a seeded in-memory travel backend for local development of the
// client. Not for production use.
func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv)

	addr := os.Getenv("STUB_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := stubserver.New(log.Logger)
	log.Info().Str("addr", addr).Msg("stub backend listening")

	httpSrv := &http.Server{Addr: addr, Handler: srv.Handler()}
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("stub backend failed")
	}
}
