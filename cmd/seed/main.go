package main

import (
	"context"
	"log"
	"os"

	"vishnu-auto/internal/config"
	"vishnu-auto/internal/seed"
	"vishnu-auto/internal/store"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()

	var st store.Store
	switch cfg.StoreBackend {
	case "postgres":
		pool, err := store.ConnectPostgres(ctx, cfg.DBConnString)
		if err != nil {
			logger.Fatalf("connect db: %v", err)
		}
		defer pool.Close()
		st = store.NewPostgres(pool, logger)
	case "redis":
		st = store.NewRedis(cfg.RedisAddr, cfg.RedisPrefix)
	default:
		logger.Fatalf("seed needs a persistent store backend, got %q", cfg.StoreBackend)
	}

	if err := seed.Apply(ctx, st); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
