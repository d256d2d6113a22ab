package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"langman/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// Usage tests

func (s *StorageSuite) TestSaveAndGetUsage() {
	usage := &model.Usage{
		ID:         1,
		Language:   model.LanguageEnglish,
		SecretWord: "cat",
		Text:       "The {word} sat on the mat.",
		Source:     "A Primer",
	}

	s.Require().NoError(s.storage.SaveUsage(s.ctx, usage))

	got, err := s.storage.GetUsage(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(usage, got)
}

func (s *StorageSuite) TestGetUsageNotFound() {
	_, err := s.storage.GetUsage(s.ctx, 42)
	s.ErrorIs(err, model.ErrUsageNotFound)
}

func (s *StorageSuite) TestRandomUsageByLanguage() {
	s.Require().NoError(s.storage.SaveUsage(s.ctx, &model.Usage{ID: 1, Language: model.LanguageEnglish, SecretWord: "cat", Text: "{word}"}))
	s.Require().NoError(s.storage.SaveUsage(s.ctx, &model.Usage{ID: 2, Language: model.LanguageFrench, SecretWord: "chat", Text: "{word}"}))

	got, err := s.storage.RandomUsageByLanguage(s.ctx, model.LanguageFrench)
	s.Require().NoError(err)
	s.Equal(2, got.ID)
}

func (s *StorageSuite) TestRandomUsageByLanguageEmpty() {
	_, err := s.storage.RandomUsageByLanguage(s.ctx, model.LanguageSpanish)
	s.ErrorIs(err, model.ErrNoUsageForLanguage)
}

func (s *StorageSuite) TestCountUsages() {
	n, err := s.storage.CountUsages(s.ctx)
	s.Require().NoError(err)
	s.Equal(0, n)

	s.Require().NoError(s.storage.SaveUsage(s.ctx, &model.Usage{ID: 1, Language: model.LanguageEnglish, SecretWord: "cat", Text: "{word}"}))
	s.Require().NoError(s.storage.SaveUsage(s.ctx, &model.Usage{ID: 2, Language: model.LanguageSpanish, SecretWord: "gato", Text: "{word}"}))

	n, err = s.storage.CountUsages(s.ctx)
	s.Require().NoError(err)
	s.Equal(2, n)
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:        "u1",
		Name:      "Alice",
		NumGames:  3,
		Outcomes:  model.Counters{"active": 1, "won": 2},
		ByLang:    model.Counters{"en": 3},
		FirstTime: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
		TotalTime: 2 * time.Minute,
		AvgTime:   40 * time.Second,
	}

	s.Require().NoError(s.storage.SaveUser(s.ctx, user))

	got, err := s.storage.GetUser(s.ctx, "u1")
	s.Require().NoError(err)
	s.Equal(user, got)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "missing")
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Account tests

func (s *StorageSuite) TestSaveAndGetAccount() {
	account := &model.Account{
		UserID:       "u1",
		Username:     "alice",
		PasswordHash: "hash",
		CreatedAt:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	s.Require().NoError(s.storage.SaveAccount(s.ctx, account))

	got, err := s.storage.GetAccountByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(account, got)
}

func (s *StorageSuite) TestGetAccountNotFound() {
	_, err := s.storage.GetAccountByUsername(s.ctx, "bob")
	s.ErrorIs(err, model.ErrAccountNotFound)
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := &model.Game{
		ID:         "g1",
		Player:     "u1",
		UsageID:    1,
		Guessed:    "ae",
		RevealWord: "_a_",
		BadGuesses: 1,
		StartTime:  time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	got, err := s.storage.GetGame(s.ctx, "g1")
	s.Require().NoError(err)
	s.Equal(game, got)
}

func (s *StorageSuite) TestDeleteGameReportsRemoval() {
	game := &model.Game{ID: "g1", Player: "u1", UsageID: 1, RevealWord: "___"}
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	deleted, err := s.storage.DeleteGame(s.ctx, "g1")
	s.Require().NoError(err)
	s.True(deleted)

	deleted, err = s.storage.DeleteGame(s.ctx, "g1")
	s.Require().NoError(err)
	s.False(deleted)

	_, err = s.storage.GetGame(s.ctx, "g1")
	s.ErrorIs(err, model.ErrGameNotFound)
}
