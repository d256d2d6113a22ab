package model

import (
	"strings"
	"unicode/utf8"
)

// Language is a supported usage language code
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageSpanish Language = "es"
	LanguageFrench  Language = "fr"
)

// Languages returns all supported language codes
func Languages() []Language {
	return []Language{LanguageEnglish, LanguageSpanish, LanguageFrench}
}

// IsValid reports whether the language is one of the supported codes
func (l Language) IsValid() bool {
	switch l {
	case LanguageEnglish, LanguageSpanish, LanguageFrench:
		return true
	}
	return false
}

// WordPlaceholder marks where the secret word sits in a usage sentence
const WordPlaceholder = "{word}"

// Usage is a reference example sentence embedding a secret word.
// Usage rows are seeded out-of-band and read-only at runtime.
type Usage struct {
	ID         int      `json:"usage_id"`
	Language   Language `json:"language"`
	SecretWord string   `json:"secret_word"`
	Text       string   `json:"usage"`
	Source     string   `json:"source,omitempty"`
}

// Blanked returns the usage sentence with the secret word replaced by
// one underscore per character, for display before the game is over
func (u *Usage) Blanked() string {
	blank := strings.Repeat("_", utf8.RuneCountInString(u.SecretWord))
	return strings.ReplaceAll(u.Text, WordPlaceholder, blank)
}
