package cli

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/aretw0/skooma/pkg/adapters/memory"
	redisadapter "github.com/aretw0/skooma/pkg/adapters/redis"
	"github.com/aretw0/skooma/pkg/ports"
)

// OpenStore returns a Redis-backed schema store when redisURL is set,
// otherwise an in-memory one. The Redis connection is verified up front.
func OpenStore(ctx context.Context, redisURL string, logger *slog.Logger) (ports.SchemaStore, error) {
	if redisURL == "" {
		logger.Info("Using in-memory schema store")
		return memory.NewStore(), nil
	}

	opt, err := backend.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}

	store := redisadapter.NewWithClient(backend.NewClient(opt))

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := store.Ping(pingCtx); err != nil {
		return nil, fmt.Errorf("connecting to redis at %s: %w", opt.Addr, err)
	}

	logger.Info("Using redis schema store", "addr", opt.Addr)
	return store, nil
}
