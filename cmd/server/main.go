package main

import (
	"context"
	"database/sql"
	"fmt"
	"fruit-order-service/internal/adapters/cache"
	"fruit-order-service/internal/adapters/repositories"
	"fruit-order-service/internal/api"
	"fruit-order-service/internal/config"
	"fruit-order-service/internal/platform/db"
	"fruit-order-service/internal/platform/logger"
	"fruit-order-service/internal/ports"
	"fruit-order-service/internal/services"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// main is the application composition root.
// It wires concrete adapters (SQLite or Postgres, optional Redis) behind ports and starts the HTTP server.
func main() {
	loadedEnv := config.LoadDotEnv()
	cfg := config.Load()

	lg, err := logger.New(cfg.LogMode)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer lg.Sync()
	logger.SetGlobal(lg)

	if !loadedEnv {
		lg.Info("no .env file found (using environment variables)")
	}

	conn, err := openStore(cfg)
	if err != nil {
		lg.Fatal("open store", "driver", cfg.DBDriver, "err", err)
	}
	defer conn.Close()

	var repo ports.OrderRepository
	if cfg.DBDriver == "postgres" {
		repo = repositories.NewSQLOrderRepository(conn)
	} else {
		repo = repositories.NewSqliteOrderRepository(conn)
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer client.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := client.Ping(ctx).Err()
		cancel()
		if err != nil {
			lg.Fatal("connect redis", "addr", cfg.RedisAddr, "err", err)
		}
		repo = cache.NewRedisOrderCache(client, repo)
		lg.Info("order cache enabled", "addr", cfg.RedisAddr)
	}

	svc := services.NewOrderService(repo)

	// Seed demo data on startup for local runs.
	if cfg.SeedPath != "" {
		n, err := svc.Seed(context.Background(), cfg.SeedPath)
		if err != nil {
			lg.Fatal("seed orders", "path", cfg.SeedPath, "err", err)
		}
		lg.Info("seeded orders", "count", n, "path", cfg.SeedPath)
	}

	router := api.NewRouter(svc)

	lg.Info("server listening", "addr", ":"+cfg.Port, "driver", cfg.DBDriver)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		lg.Fatal("server stopped", "err", err)
	}
}

// Open the configured database and make sure its schema exists.
func openStore(cfg config.Config) (*sql.DB, error) {
	switch cfg.DBDriver {
	case "postgres":
		if strings.TrimSpace(cfg.DatabaseURL) == "" {
			return nil, fmt.Errorf("open store: DATABASE_URL is required for postgres")
		}
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		if err := repositories.InitPostgresSchema(conn); err != nil {
			conn.Close()
			return nil, err
		}
		return conn, nil
	case "sqlite":
		conn, err := db.OpenSqlite(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		if err := repositories.InitSchema(conn); err != nil {
			conn.Close()
			return nil, err
		}
		return conn, nil
	default:
		return nil, fmt.Errorf("open store: unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}
