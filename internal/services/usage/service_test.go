package usage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"langman/internal/dependencies/random"
	"langman/internal/model"
	"langman/internal/storage/memory"
	"langman/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New(random.New())
	s.service = New(s.storage, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) writeCorpus(content string) string {
	path := filepath.Join(s.T().TempDir(), "usages.json")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validCorpus = `[
	{"language": "en", "secret_word": "cat", "usage": "The {word} sat on the mat.", "source": "A Primer"},
	{"language": "fr", "secret_word": "café", "usage": "Nous allons au {word}.", "source": "Le Petit Livre"},
	{"language": "es", "secret_word": "niño", "usage": "El {word} juega en el parque."}
]`

func (s *ServiceSuite) TestLoadFromFile() {
	err := s.service.LoadFromFile(s.ctx, s.writeCorpus(validCorpus))
	s.Require().NoError(err)

	count, err := s.storage.CountUsages(s.ctx)
	s.Require().NoError(err)
	s.Equal(3, count)

	u, err := s.storage.GetUsage(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(model.LanguageEnglish, u.Language)
	s.Equal("cat", u.SecretWord)
	s.Equal("The {word} sat on the mat.", u.Text)
	s.Equal("A Primer", u.Source)
}

func (s *ServiceSuite) TestLoadSkipsWhenAlreadySeeded() {
	s.Require().NoError(s.storage.SaveUsage(s.ctx, &model.Usage{
		ID:         1,
		Language:   model.LanguageEnglish,
		SecretWord: "dog",
		Text:       "The {word} barks.",
	}))

	err := s.service.LoadFromFile(s.ctx, s.writeCorpus(validCorpus))
	s.Require().NoError(err)

	count, err := s.storage.CountUsages(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, count)
}

func (s *ServiceSuite) TestLoadMissingFile() {
	err := s.service.LoadFromFile(s.ctx, filepath.Join(s.T().TempDir(), "absent.json"))
	s.Error(err)
}

func (s *ServiceSuite) TestLoadRejectsUnknownLanguage() {
	corpus := `[{"language": "de", "secret_word": "katze", "usage": "Die {word} schläft."}]`
	err := s.service.LoadFromFile(s.ctx, s.writeCorpus(corpus))
	s.ErrorContains(err, "unknown language")
}

func (s *ServiceSuite) TestLoadRejectsMissingPlaceholder() {
	corpus := `[{"language": "en", "secret_word": "cat", "usage": "No blank here."}]`
	err := s.service.LoadFromFile(s.ctx, s.writeCorpus(corpus))
	s.ErrorContains(err, "{word}")
}

func (s *ServiceSuite) TestLoadRejectsEmptySecretWord() {
	corpus := `[{"language": "en", "secret_word": "", "usage": "The {word}."}]`
	err := s.service.LoadFromFile(s.ctx, s.writeCorpus(corpus))
	s.ErrorContains(err, "empty secret word")
}
