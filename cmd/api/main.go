package main

import (
	"context"
	"log"

	"github.com/laxmibeekeeping/multiservice-backend/config"
	"github.com/laxmibeekeeping/multiservice-backend/internal/bootstrap"
	"github.com/laxmibeekeeping/multiservice-backend/internal/registry"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	deps := registry.Deps{Config: cfg}

	// Both stores are optional: a missing or unreachable backend degrades
	// the routes that need it, it never stops the gateway from serving.
	if cfg.Database.DSN != "" {
		pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
		if err != nil {
			log.Printf("[startup] postgres unavailable: %v", err)
		} else {
			deps.DB = pool
			defer pool.Close()
		}
	}

	rdb, err := bootstrap.OpenRedis(ctx, cfg.Redis)
	if err != nil {
		log.Printf("[startup] redis unavailable: %v", err)
	} else if rdb != nil {
		deps.Redis = rdb
		defer rdb.Close()
	}

	router := bootstrap.BuildRouter(deps, bootstrap.Registry())

	log.Printf("[startup] env=%s version=%s listening on :%s",
		cfg.App.Environment, cfg.App.Version, cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
