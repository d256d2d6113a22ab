package model

import (
	"strings"
	"time"
)

// GameID uniquely identifies a game
type GameID string

// Outcome is the result of a game
type Outcome string

const (
	OutcomeActive Outcome = "active"
	OutcomeWon    Outcome = "won"
	OutcomeLost   Outcome = "lost"
)

// MaxBadGuesses is the number of wrong guesses that loses a game
const MaxBadGuesses = 6

// Game is a single play session against one usage's secret word
type Game struct {
	ID      GameID `json:"game_id"`
	Player  UserID `json:"player"`
	UsageID int    `json:"usage_id"`

	// Guessed holds the folded lowercase letters guessed so far,
	// append-only and duplicate-free
	Guessed string `json:"guessed"`

	// RevealWord mirrors the secret word with unguessed positions as '_'.
	// Revealed positions keep the original (possibly accented) character.
	RevealWord string `json:"reveal_word"`

	BadGuesses int       `json:"bad_guesses"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
}

// Result derives the game outcome from the current state. The outcome is
// never stored: lost iff six bad guesses, else won iff the reveal word is
// fully filled, else active.
func (g *Game) Result() Outcome {
	if g.BadGuesses == MaxBadGuesses {
		return OutcomeLost
	}
	if !strings.Contains(g.RevealWord, "_") {
		return OutcomeWon
	}
	return OutcomeActive
}

// HasGuessed reports whether the folded letter was already guessed
func (g *Game) HasGuessed(letter string) bool {
	return strings.Contains(g.Guessed, letter)
}
