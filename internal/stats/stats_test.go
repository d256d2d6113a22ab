package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"langman/internal/model"
)

func TestGameStarted(t *testing.T) {
	u := &model.User{ID: "u1", Name: "Alice"}

	GameStarted(u, model.LanguageEnglish)
	GameStarted(u, model.LanguageEnglish)
	GameStarted(u, model.LanguageFrench)

	assert.Equal(t, 3, u.NumGames)
	assert.Equal(t, 3, u.Outcomes.Get("active"))
	assert.Equal(t, 2, u.ByLang.Get("en"))
	assert.Equal(t, 1, u.ByLang.Get("fr"))
	assert.Equal(t, 0, u.ByLang.Get("es"))
}

func TestGameEndedConvertsActiveToOutcome(t *testing.T) {
	u := &model.User{ID: "u1", Name: "Alice"}
	GameStarted(u, model.LanguageEnglish)
	GameStarted(u, model.LanguageEnglish)

	GameEnded(u, model.OutcomeWon, 30*time.Second)

	assert.Equal(t, 1, u.Outcomes.Get("active"))
	assert.Equal(t, 1, u.Outcomes.Get("won"))
	assert.Equal(t, 2, u.NumGames)
}

func TestGameEndedTimeAccounting(t *testing.T) {
	u := &model.User{ID: "u1", Name: "Alice"}
	GameStarted(u, model.LanguageEnglish)
	GameStarted(u, model.LanguageEnglish)

	GameEnded(u, model.OutcomeWon, 30*time.Second)
	GameEnded(u, model.OutcomeLost, 90*time.Second)

	assert.Equal(t, 2*time.Minute, u.TotalTime)
	// Average is over num_games, matching the original accounting
	assert.Equal(t, time.Minute, u.AvgTime)
}

func TestAggregateConservation(t *testing.T) {
	// For N started and M completed games: active == N - M and the
	// outcome counts sum to N
	u := &model.User{ID: "u1", Name: "Alice"}

	const started = 7
	for i := 0; i < started; i++ {
		GameStarted(u, model.LanguageSpanish)
	}

	completed := []model.Outcome{model.OutcomeWon, model.OutcomeLost, model.OutcomeWon}
	for _, outcome := range completed {
		GameEnded(u, outcome, time.Second)
	}

	assert.Equal(t, started-len(completed), u.Outcomes.Get("active"))
	assert.Equal(t, started, u.Outcomes.Total())
	assert.Equal(t, started, u.NumGames)
}
