package storage

import (
	"context"

	"langman/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Usage operations. Usages are seeded at startup and read-only
	// afterwards; RandomUsageByLanguage selects uniformly among the
	// usages for one language.
	SaveUsage(ctx context.Context, usage *model.Usage) error
	GetUsage(ctx context.Context, id int) (*model.Usage, error)
	RandomUsageByLanguage(ctx context.Context, lang model.Language) (*model.Usage, error)
	CountUsages(ctx context.Context) (int, error)

	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)

	// Account operations
	SaveAccount(ctx context.Context, account *model.Account) error
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)

	// Game operations. DeleteGame reports whether a record was removed
	// so deletion can stay idempotent at the service layer.
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) (bool, error)
}
