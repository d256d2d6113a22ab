// Package factory wires the application's storage, dependencies, and
// services together.
package factory

import (
	"errors"
	"io"
	"log/slog"

	"langman/internal/dependencies/clock"
	"langman/internal/dependencies/random"
	"langman/internal/services/auth"
	"langman/internal/services/game"
	"langman/internal/services/token"
	"langman/internal/services/usage"
	"langman/internal/storage"
	"langman/internal/storage/memory"
	redisstorage "langman/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	TokenService *token.Service
	AuthService  *auth.Service
	GameService  *game.Service
	UsageService *usage.Service
}

// Config holds configuration for the application factory
type Config struct {
	// JWTSecret signs access tokens (required)
	JWTSecret []byte
	// TokenConfig holds token settings (optional)
	// If zero value, defaults to token.DefaultConfig()
	TokenConfig token.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	if len(cfg.JWTSecret) == 0 {
		return nil, errors.New("JWTSecret is required")
	}

	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create external dependencies
	clk := clock.New()
	rnd := random.New()

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New(rnd)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Use default token config if not provided
	tokenCfg := cfg.TokenConfig
	if tokenCfg.TokenDuration == 0 {
		tokenCfg = token.DefaultConfig()
	}

	return newWithDependencies(store, clk, rnd, cfg.JWTSecret, tokenCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, secret []byte, tokenCfg token.Config, logger *slog.Logger) *App {
	// Create services
	tokenService := token.New(secret, clk, tokenCfg)
	authService := auth.New(store, tokenService, clk)
	gameService := game.New(store, tokenService, clk, logger)
	usageService := usage.New(store, logger)

	return &App{
		Storage:      store,
		Clock:        clk,
		Random:       rnd,
		TokenService: tokenService,
		AuthService:  authService,
		GameService:  gameService,
		UsageService: usageService,
	}
}
