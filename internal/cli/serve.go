package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/skooma/internal/logging"
	httpadapter "github.com/aretw0/skooma/pkg/adapters/http"
)

// RunServe starts the schema registry HTTP server and blocks until it
// fails or receives an interrupt signal.
func RunServe(cfg *ServeConfig) error {
	logger := logging.New(logging.ParseLevel(cfg.LogLevel))

	store, err := OpenStore(context.Background(), cfg.RedisURL, logger)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	metrics := httpadapter.NewMetrics(registry)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	mux.Handle("/", httpadapter.NewHandler(store,
		httpadapter.WithLogger(logger),
		httpadapter.WithMetrics(metrics),
	))

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: mux,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info("Starting skooma server", "addr", srv.Addr)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt or terminate signals.
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err

	case sig := <-shutdown:
		logger.Info("Starting shutdown", "signal", sig.String())

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("Graceful shutdown did not complete", "error", err)
			if err := srv.Close(); err != nil {
				return err
			}
		}
		logger.Info("Server stopped gracefully")
	}

	return nil
}
