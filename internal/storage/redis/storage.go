package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"langman/internal/model"
	"langman/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Usage operations

func (s *Storage) SaveUsage(ctx context.Context, usage *model.Usage) error {
	data, err := json.Marshal(usage)
	if err != nil {
		return err
	}

	if err := s.client.Set(ctx, usageKey(usage.ID), data, 0).Err(); err != nil {
		return err
	}
	return s.client.SAdd(ctx, usagesByLangKey(usage.Language), usage.ID).Err()
}

func (s *Storage) GetUsage(ctx context.Context, id int) (*model.Usage, error) {
	data, err := s.client.Get(ctx, usageKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUsageNotFound
		}
		return nil, err
	}

	var usage model.Usage
	if err := json.Unmarshal(data, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}

// RandomUsageByLanguage uses SRANDMEMBER on the per-language id set,
// Redis's native uniform random selection
func (s *Storage) RandomUsageByLanguage(ctx context.Context, lang model.Language) (*model.Usage, error) {
	member, err := s.client.SRandMember(ctx, usagesByLangKey(lang)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrNoUsageForLanguage
		}
		return nil, err
	}

	id, err := strconv.Atoi(member)
	if err != nil {
		return nil, err
	}
	return s.GetUsage(ctx, id)
}

func (s *Storage) CountUsages(ctx context.Context) (int, error) {
	total := 0
	for _, lang := range model.Languages() {
		n, err := s.client.SCard(ctx, usagesByLangKey(lang)).Result()
		if err != nil {
			return 0, err
		}
		total += int(n)
	}
	return total, nil
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, userKey(user.ID), data, 0).Err()
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	data, err := json.Marshal(account)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, accountKey(account.Username), data, 0).Err()
}

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	data, err := s.client.Get(ctx, accountKey(username)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrAccountNotFound
		}
		return nil, err
	}

	var account model.Account
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	data, err := json.Marshal(game)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, gameKey(game.ID), data, 0).Err()
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	data, err := s.client.Get(ctx, gameKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrGameNotFound
		}
		return nil, err
	}

	var game model.Game
	if err := json.Unmarshal(data, &game); err != nil {
		return nil, err
	}
	return &game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) (bool, error) {
	n, err := s.client.Del(ctx, gameKey(id)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
