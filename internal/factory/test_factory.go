package factory

import (
	"context"
	"io"
	"log/slog"
	"time"

	"langman/internal/dependencies/mocks"
	"langman/internal/model"
	"langman/internal/services/token"
	"langman/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	store := memory.New(mockRandom)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, []byte("test-secret"), token.DefaultConfig(), logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// SeedTestUsages loads a small corpus for testing
func (t *TestApp) SeedTestUsages(ctx context.Context) error {
	usages := []*model.Usage{
		{ID: 1, Language: model.LanguageEnglish, SecretWord: "cat", Text: "The {word} sat on the mat.", Source: "A Primer"},
		{ID: 2, Language: model.LanguageEnglish, SecretWord: "river", Text: "The {word} flows to the sea."},
		{ID: 3, Language: model.LanguageSpanish, SecretWord: "niño", Text: "El {word} juega en el parque."},
		{ID: 4, Language: model.LanguageFrench, SecretWord: "café", Text: "Nous allons au {word} ce matin."},
	}
	for _, u := range usages {
		if err := t.Storage.SaveUsage(ctx, u); err != nil {
			return err
		}
	}
	return nil
}
