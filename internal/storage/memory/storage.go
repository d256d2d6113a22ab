package memory

import (
	"context"
	"sync"

	"langman/internal/dependencies/random"
	"langman/internal/model"
	"langman/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	usages       map[int]*model.Usage
	usagesByLang map[model.Language][]int
	users        map[model.UserID]*model.User
	accounts     map[string]*model.Account
	games        map[model.GameID]*model.Game

	random random.Random
}

// New creates a new in-memory storage instance. The random source drives
// uniform usage selection and can be mocked in tests.
func New(rnd random.Random) *Storage {
	return &Storage{
		usages:       make(map[int]*model.Usage),
		usagesByLang: make(map[model.Language][]int),
		users:        make(map[model.UserID]*model.User),
		accounts:     make(map[string]*model.Account),
		games:        make(map[model.GameID]*model.Game),
		random:       rnd,
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Usage operations

func (s *Storage) SaveUsage(ctx context.Context, usage *model.Usage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.usages[usage.ID]; !exists {
		s.usagesByLang[usage.Language] = append(s.usagesByLang[usage.Language], usage.ID)
	}
	s.usages[usage.ID] = usage
	return nil
}

func (s *Storage) GetUsage(ctx context.Context, id int) (*model.Usage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	usage, ok := s.usages[id]
	if !ok {
		return nil, model.ErrUsageNotFound
	}
	return usage, nil
}

func (s *Storage) RandomUsageByLanguage(ctx context.Context, lang model.Language) (*model.Usage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.usagesByLang[lang]
	if len(ids) == 0 {
		return nil, model.ErrNoUsageForLanguage
	}
	return s.usages[ids[s.random.Intn(len(ids))]], nil
}

func (s *Storage) CountUsages(ctx context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.usages), nil
}

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}

// Account operations

func (s *Storage) SaveAccount(ctx context.Context, account *model.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[account.Username] = account
	return nil
}

func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	account, ok := s.accounts[username]
	if !ok {
		return nil, model.ErrAccountNotFound
	}
	return account, nil
}

// Game operations

func (s *Storage) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.ID] = game
	return nil
}

func (s *Storage) GetGame(ctx context.Context, id model.GameID) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[id]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return game, nil
}

func (s *Storage) DeleteGame(ctx context.Context, id model.GameID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.games[id]
	delete(s.games, id)
	return ok, nil
}
