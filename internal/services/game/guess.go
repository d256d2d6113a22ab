package game

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"langman/internal/fold"
	"langman/internal/model"
)

// normalizeLetter validates that the guess is exactly one alphabetic
// character and returns its folded lowercase form
func normalizeLetter(letter string) (string, error) {
	r, size := utf8.DecodeRuneInString(letter)
	if r == utf8.RuneError || size != len(letter) || !unicode.IsLetter(r) {
		return "", model.ErrInvalidLetter
	}
	return fold.Rune(r), nil
}

// applyGuess applies one already-normalized letter to the game state.
// Callers must have checked that the game is active and the letter is not
// a duplicate; nothing here fails, it only advances the state machine.
func applyGuess(g *model.Game, secretWord, letter string) {
	g.Guessed += letter
	if strings.Contains(fold.String(secretWord), letter) {
		g.RevealWord = reveal(secretWord, g.Guessed)
	} else {
		g.BadGuesses++
	}
}

// reveal builds the display word: each secret character whose folded form
// has been guessed shows as itself (accents intact), the rest as '_'
func reveal(secretWord, guessed string) string {
	var b strings.Builder
	for _, r := range secretWord {
		if strings.Contains(guessed, fold.Rune(r)) {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// blankWord returns the fully blanked reveal word for a secret word
func blankWord(secretWord string) string {
	return strings.Repeat("_", utf8.RuneCountInString(secretWord))
}
