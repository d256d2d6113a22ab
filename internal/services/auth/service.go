package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"langman/internal/dependencies/clock"
	"langman/internal/model"
	"langman/internal/services/token"
	"langman/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameExists     = errors.New("username already exists")
)

// Session is an authenticated identity plus its freshly issued credential
type Session struct {
	Token  string
	UserID model.UserID
	Name   string
}

// Service handles account registration and login. It only establishes
// identities; the User row with game statistics is created lazily by the
// game service on first game creation.
type Service struct {
	storage storage.Storage
	tokens  *token.Service
	clock   clock.Clock
}

// New creates a new auth service
func New(storage storage.Storage, tokens *token.Service, clk clock.Clock) *Service {
	return &Service{
		storage: storage,
		tokens:  tokens,
		clock:   clk,
	}
}

// Guest establishes an identity from a display name alone. The user id is
// derived deterministically from the name so a returning guest keeps their
// statistics.
func (s *Service) Guest(ctx context.Context, name string) (*Session, error) {
	userID := model.UserID(uuid.NewMD5(uuid.NameSpaceURL, []byte(name)).String())
	return s.newSession(userID, name)
}

// Register creates an account and returns a session for it
func (s *Service) Register(ctx context.Context, username, password, name string) (*Session, error) {
	_, err := s.storage.GetAccountByUsername(ctx, username)
	if err == nil {
		return nil, ErrUsernameExists
	}
	if !errors.Is(err, model.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &model.Account{
		UserID:       model.UserID(uuid.NewString()),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.clock.Now(),
	}

	if err := s.storage.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	return s.newSession(account.UserID, name)
}

// Login authenticates an account and returns a session for it
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	account, err := s.storage.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrAccountNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	// Display name follows the registered user row when one exists
	name := username
	if user, err := s.storage.GetUser(ctx, account.UserID); err == nil {
		name = user.Name
	}

	return s.newSession(account.UserID, name)
}

func (s *Service) newSession(userID model.UserID, name string) (*Session, error) {
	tok, err := s.tokens.Issue(userID, name, "")
	if err != nil {
		return nil, err
	}
	return &Session{
		Token:  tok,
		UserID: userID,
		Name:   name,
	}, nil
}
