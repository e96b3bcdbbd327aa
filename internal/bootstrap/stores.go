package bootstrap

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/yukikurage/devtrack-api/internal/config"
	"github.com/yukikurage/devtrack-api/internal/database"
	"github.com/yukikurage/devtrack-api/internal/handlers"
	"github.com/yukikurage/devtrack-api/internal/repository"
)

const sessionMaxAge = 86400 * 7 // 7 days

// Backend is an opened storage backend with its repositories
type Backend struct {
	Repositories repository.Repositories
	Health       handlers.HealthCheck
	Close        func(ctx context.Context) error
}

// OpenBackend connects to the database selected by DB_DRIVER and prepares its schema
func OpenBackend(ctx context.Context, cfg *config.Config) (*Backend, error) {
	if cfg.DBDriver == config.DriverMongo {
		client, err := database.ConnectMongo(ctx, cfg)
		if err != nil {
			return nil, err
		}
		db := client.Database(cfg.MongoDatabase)
		if err := database.EnsureMongoIndexes(ctx, db); err != nil {
			closeOnFailure(ctx, "MongoDB", client.Disconnect)
			return nil, err
		}
		return &Backend{
			Repositories: repository.NewMongoRepositories(db),
			Health:       handlers.MongoCheck(client),
			Close:        client.Disconnect,
		}, nil
	}

	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		closeOnFailure(ctx, "database", func(context.Context) error { return sqlDB.Close() })
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return &Backend{
		Repositories: repository.NewGormRepositories(db),
		Health:       handlers.GormCheck(db),
		Close: func(context.Context) error {
			return sqlDB.Close()
		},
	}, nil
}

// closeOnFailure releases a half-opened backend, logging any close error.
func closeOnFailure(ctx context.Context, name string, closeFn func(context.Context) error) {
	if err := closeFn(ctx); err != nil {
		log.Printf("Failed to close %s: %v", name, err)
	}
}

// NewSessionStore builds the session store selected by SESSION_STORE
func NewSessionStore(cfg *config.Config) (sessions.Store, error) {
	var store sessions.Store
	switch cfg.SessionStore {
	case config.SessionStoreCookie:
		store = cookie.NewStore([]byte(cfg.SessionSecret))
	default:
		rs, err := redisStore.NewStore(
			10,                // Redis pool size
			"tcp",             // network type
			cfg.RedisAddr(),   // Redis address from config
			"",                // username (empty for default user)
			cfg.RedisPassword, // password (empty = no password)
			[]byte(cfg.SessionSecret),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create Redis store: %w", err)
		}
		store = rs
	}

	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		Secure:   cfg.IsProduction(),
		SameSite: http.SameSiteLaxMode,
	})
	log.Printf("Using %s session store", cfg.SessionStore)
	return store, nil
}
