// Package usage seeds and serves the corpus of example sentences that
// games are played against.
package usage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"langman/internal/model"
	"langman/internal/storage"
)

// Service manages the usage corpus
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new usage service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// seedEntry is the on-disk shape of one corpus entry
type seedEntry struct {
	Language   string `json:"language"`
	SecretWord string `json:"secret_word"`
	Usage      string `json:"usage"`
	Source     string `json:"source,omitempty"`
}

// LoadFromFile seeds the corpus from a JSON file. Seeding is skipped when
// the store already holds usages, so restarts do not duplicate the corpus.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	count, err := s.storage.CountUsages(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("usage corpus already seeded", slog.Int("count", count))
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var entries []seedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parsing usage corpus %s: %w", path, err)
	}

	return s.seed(ctx, entries)
}

func (s *Service) seed(ctx context.Context, entries []seedEntry) error {
	for i, entry := range entries {
		lang := model.Language(entry.Language)
		if !lang.IsValid() {
			return fmt.Errorf("usage entry %d: unknown language %q", i, entry.Language)
		}
		if entry.SecretWord == "" {
			return fmt.Errorf("usage entry %d: empty secret word", i)
		}
		if !strings.Contains(entry.Usage, model.WordPlaceholder) {
			return fmt.Errorf("usage entry %d: text does not contain %s", i, model.WordPlaceholder)
		}

		u := &model.Usage{
			ID:         i + 1,
			Language:   lang,
			SecretWord: entry.SecretWord,
			Text:       entry.Usage,
			Source:     entry.Source,
		}
		if err := s.storage.SaveUsage(ctx, u); err != nil {
			return err
		}
	}

	s.logger.Info("usage corpus seeded", slog.Int("count", len(entries)))
	return nil
}
