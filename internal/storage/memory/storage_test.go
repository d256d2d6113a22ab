package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langman/internal/dependencies/mocks"
	"langman/internal/dependencies/random"
	"langman/internal/model"
)

func newStorage() *Storage {
	return New(random.New())
}

func TestUsageRoundTrip(t *testing.T) {
	s := newStorage()
	ctx := context.Background()

	usage := &model.Usage{
		ID:         1,
		Language:   model.LanguageEnglish,
		SecretWord: "cat",
		Text:       "The {word} sat on the mat.",
		Source:     "A Primer",
	}
	require.NoError(t, s.SaveUsage(ctx, usage))

	got, err := s.GetUsage(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, usage, got)

	_, err = s.GetUsage(ctx, 99)
	assert.ErrorIs(t, err, model.ErrUsageNotFound)
}

func TestRandomUsageByLanguage(t *testing.T) {
	rnd := mocks.NewMockRandom()
	s := New(rnd)
	ctx := context.Background()

	require.NoError(t, s.SaveUsage(ctx, &model.Usage{ID: 1, Language: model.LanguageEnglish, SecretWord: "cat", Text: "{word}"}))
	require.NoError(t, s.SaveUsage(ctx, &model.Usage{ID: 2, Language: model.LanguageEnglish, SecretWord: "dog", Text: "{word}"}))
	require.NoError(t, s.SaveUsage(ctx, &model.Usage{ID: 3, Language: model.LanguageFrench, SecretWord: "chat", Text: "{word}"}))

	rnd.QueueIntn(1)
	got, err := s.RandomUsageByLanguage(ctx, model.LanguageEnglish)
	require.NoError(t, err)
	assert.Equal(t, 2, got.ID)

	_, err = s.RandomUsageByLanguage(ctx, model.LanguageSpanish)
	assert.ErrorIs(t, err, model.ErrNoUsageForLanguage)
}

func TestRandomUsageOnlyMatchesLanguage(t *testing.T) {
	s := newStorage()
	ctx := context.Background()

	require.NoError(t, s.SaveUsage(ctx, &model.Usage{ID: 1, Language: model.LanguageEnglish, SecretWord: "cat", Text: "{word}"}))
	require.NoError(t, s.SaveUsage(ctx, &model.Usage{ID: 2, Language: model.LanguageFrench, SecretWord: "chat", Text: "{word}"}))

	for i := 0; i < 10; i++ {
		got, err := s.RandomUsageByLanguage(ctx, model.LanguageFrench)
		require.NoError(t, err)
		assert.Equal(t, model.LanguageFrench, got.Language)
	}
}

func TestCountUsages(t *testing.T) {
	s := newStorage()
	ctx := context.Background()

	n, err := s.CountUsages(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, s.SaveUsage(ctx, &model.Usage{ID: 1, Language: model.LanguageEnglish, SecretWord: "cat", Text: "{word}"}))
	require.NoError(t, s.SaveUsage(ctx, &model.Usage{ID: 2, Language: model.LanguageSpanish, SecretWord: "gato", Text: "{word}"}))

	n, err = s.CountUsages(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestUserRoundTrip(t *testing.T) {
	s := newStorage()
	ctx := context.Background()

	user := &model.User{
		ID:        "u1",
		Name:      "Alice",
		NumGames:  2,
		Outcomes:  model.Counters{"active": 1, "won": 1},
		ByLang:    model.Counters{"en": 2},
		FirstTime: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.SaveUser(ctx, user))

	got, err := s.GetUser(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, user, got)

	_, err = s.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestAccountRoundTrip(t *testing.T) {
	s := newStorage()
	ctx := context.Background()

	account := &model.Account{UserID: "u1", Username: "alice", PasswordHash: "x"}
	require.NoError(t, s.SaveAccount(ctx, account))

	got, err := s.GetAccountByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, account, got)

	_, err = s.GetAccountByUsername(ctx, "bob")
	assert.ErrorIs(t, err, model.ErrAccountNotFound)
}

func TestGameDeleteReportsRemoval(t *testing.T) {
	s := newStorage()
	ctx := context.Background()

	game := &model.Game{ID: "g1", Player: "u1", UsageID: 1, RevealWord: "___"}
	require.NoError(t, s.SaveGame(ctx, game))

	deleted, err := s.DeleteGame(ctx, "g1")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = s.DeleteGame(ctx, "g1")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = s.GetGame(ctx, "g1")
	assert.ErrorIs(t, err, model.ErrGameNotFound)
}
