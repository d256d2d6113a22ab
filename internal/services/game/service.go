// Package game implements the game service: creating, reading, guessing
// on, and deleting play sessions, keeping the owning user's statistics in
// step with every game's lifecycle.
package game

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"langman/internal/dependencies/clock"
	"langman/internal/model"
	"langman/internal/services/token"
	"langman/internal/stats"
	"langman/internal/storage"
)

// Service orchestrates storage, credentials, and the guess state machine.
// All dependencies are explicit; each call runs within the caller's
// request-scoped context.
type Service struct {
	storage storage.Storage
	tokens  *token.Service
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new game service
func New(storage storage.Storage, tokens *token.Service, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		tokens:  tokens,
		clock:   clk,
		logger:  logger,
	}
}

// CreateResult is the outcome of creating a game
type CreateResult struct {
	GameID      model.GameID
	AccessToken string
}

// GameView is a game joined with its usage for presentation, plus a
// refreshed game-scoped credential where the operation issues one
type GameView struct {
	Game        *model.Game
	Usage       *model.Usage
	AccessToken string
	// ShowSecret is set when the game just ended and the plaintext
	// secret word may be revealed
	ShowSecret bool
}

// Create starts a new game in the given language for the identity,
// lazily creating the user row on first play
func (s *Service) Create(ctx context.Context, identity *token.Identity, lang model.Language) (*CreateResult, error) {
	if !lang.IsValid() {
		return nil, model.ErrInvalidLanguage
	}

	user, err := s.storage.GetUser(ctx, identity.UserID)
	if err != nil {
		if !errors.Is(err, model.ErrUserNotFound) {
			return nil, err
		}
		user = &model.User{
			ID:        identity.UserID,
			Name:      identity.Name,
			FirstTime: s.clock.Now(),
		}
	}

	usage, err := s.storage.RandomUsageByLanguage(ctx, lang)
	if err != nil {
		return nil, err
	}

	stats.GameStarted(user, lang)
	if err := s.storage.SaveUser(ctx, user); err != nil {
		return nil, err
	}

	game := &model.Game{
		ID:         model.GameID(uuid.NewString()),
		Player:     user.ID,
		UsageID:    usage.ID,
		RevealWord: blankWord(usage.SecretWord),
		StartTime:  s.clock.Now(),
	}
	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.Issue(identity.UserID, identity.Name, game.ID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("game created",
		slog.String("game_id", string(game.ID)),
		slog.String("player", string(user.ID)),
		slog.String("language", string(lang)),
	)

	return &CreateResult{GameID: game.ID, AccessToken: accessToken}, nil
}

// Get returns the state of one game joined with its usage. A missing game
// and a game owned by someone else are reported identically so game ids
// cannot be probed.
func (s *Service) Get(ctx context.Context, identity *token.Identity, gameID model.GameID) (*GameView, error) {
	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Player != identity.UserID {
		return nil, model.ErrGameNotFound
	}

	usage, err := s.storage.GetUsage(ctx, game.UsageID)
	if err != nil {
		return nil, err
	}

	accessToken, err := s.tokens.Issue(identity.UserID, identity.Name, gameID)
	if err != nil {
		return nil, err
	}

	return &GameView{Game: game, Usage: usage, AccessToken: accessToken}, nil
}

// Guess applies one letter to an active game. Every failure short-circuits
// before any state changes; on a terminal transition the end time is set
// and the owner's aggregates are updated in the same operation.
func (s *Service) Guess(ctx context.Context, identity *token.Identity, gameID model.GameID, letter string) (*GameView, error) {
	if identity.GameID != gameID {
		return nil, model.ErrWrongGameScope
	}

	game, err := s.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Result() != model.OutcomeActive {
		return nil, model.ErrGameOver
	}

	folded, err := normalizeLetter(letter)
	if err != nil {
		return nil, err
	}
	if game.HasGuessed(folded) {
		return nil, model.ErrAlreadyGuessed
	}

	usage, err := s.storage.GetUsage(ctx, game.UsageID)
	if err != nil {
		return nil, err
	}

	applyGuess(game, usage.SecretWord, folded)

	outcome := game.Result()
	if outcome != model.OutcomeActive {
		game.EndTime = s.clock.Now()

		user, err := s.storage.GetUser(ctx, game.Player)
		if err != nil {
			return nil, err
		}
		stats.GameEnded(user, outcome, game.EndTime.Sub(game.StartTime))
		if err := s.storage.SaveUser(ctx, user); err != nil {
			return nil, err
		}

		s.logger.Info("game finished",
			slog.String("game_id", string(game.ID)),
			slog.String("player", string(game.Player)),
			slog.String("outcome", string(outcome)),
		)
	}

	if err := s.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	return &GameView{
		Game:       game,
		Usage:      usage,
		ShowSecret: outcome != model.OutcomeActive,
	}, nil
}

// Delete removes a game if it exists, reporting whether a record was
// removed. Deleting an absent game is not an error.
func (s *Service) Delete(ctx context.Context, identity *token.Identity, gameID model.GameID) (bool, error) {
	if identity.GameID != gameID {
		return false, model.ErrWrongGameScope
	}
	return s.storage.DeleteGame(ctx, gameID)
}
