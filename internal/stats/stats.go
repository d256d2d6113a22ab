// Package stats updates a user's aggregated game statistics. The functions
// mutate the in-memory user only; persisting the result is the caller's
// responsibility. Outcome values are drawn from the fixed enumeration in
// the model package, so no validation happens here.
package stats

import (
	"time"

	"langman/internal/model"
)

// GameStarted records a new game for the user: one more game overall,
// one more active game, one more game in the given language.
func GameStarted(u *model.User, lang model.Language) {
	u.NumGames++
	u.Outcomes = u.Outcomes.Incr(string(model.OutcomeActive))
	u.ByLang = u.ByLang.Incr(string(lang))
}

// GameEnded converts one active game into the given terminal outcome and
// folds the game's duration into the running total and average.
func GameEnded(u *model.User, outcome model.Outcome, duration time.Duration) {
	u.Outcomes = u.Outcomes.Decr(string(model.OutcomeActive))
	u.Outcomes = u.Outcomes.Incr(string(outcome))
	u.TotalTime += duration
	u.AvgTime = u.TotalTime / time.Duration(u.NumGames)
}
