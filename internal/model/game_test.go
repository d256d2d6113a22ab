package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultIsDerivedFromBadGuessesAndRevealWord(t *testing.T) {
	cases := []struct {
		name       string
		badGuesses int
		revealWord string
		want       Outcome
	}{
		{"fresh game", 0, "___", OutcomeActive},
		{"partially revealed", 3, "c_t", OutcomeActive},
		{"fully revealed", 0, "cat", OutcomeWon},
		{"fully revealed with bad guesses", 5, "cat", OutcomeWon},
		{"six bad guesses", MaxBadGuesses, "c__", OutcomeLost},
		{"six bad guesses trumps reveal", MaxBadGuesses, "cat", OutcomeLost},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := &Game{BadGuesses: tc.badGuesses, RevealWord: tc.revealWord}
			assert.Equal(t, tc.want, g.Result())
		})
	}
}

func TestHasGuessed(t *testing.T) {
	g := &Game{Guessed: "aec"}
	assert.True(t, g.HasGuessed("e"))
	assert.False(t, g.HasGuessed("x"))
}

func TestUsageBlanked(t *testing.T) {
	u := &Usage{
		SecretWord: "café",
		Text:       "We met at the {word} on the corner.",
	}
	assert.Equal(t, "We met at the ____ on the corner.", u.Blanked())
}

func TestLanguageIsValid(t *testing.T) {
	for _, lang := range Languages() {
		assert.True(t, lang.IsValid())
	}
	assert.False(t, Language("de").IsValid())
	assert.False(t, Language("").IsValid())
}
