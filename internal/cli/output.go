package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case AuthResult:
		o.printAuthResult(v)
	case CreateGameResult:
		o.printCreateGameResult(v)
	case GameResult:
		o.printGameResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// AuthResult is the auth endpoint response
type AuthResult struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
}

// CreateGameResult is the response to starting a game
type CreateGameResult struct {
	Message     string `json:"message"`
	GameID      string `json:"game_id"`
	AccessToken string `json:"access_token"`
}

// GameResult is the full game state response
type GameResult struct {
	GameID      string `json:"game_id"`
	Player      string `json:"player"`
	Guessed     string `json:"guessed"`
	RevealWord  string `json:"reveal_word"`
	BadGuesses  int    `json:"bad_guesses"`
	Result      string `json:"result"`
	Usage       string `json:"usage"`
	Lang        string `json:"lang"`
	Source      string `json:"source,omitempty"`
	SecretWord  string `json:"secret_word,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
}

// MessageResult is a bare message response
type MessageResult struct {
	Message string `json:"message"`
}

// HealthResult is the health endpoint response
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printAuthResult(r AuthResult) {
	fmt.Printf("Signed in as %s (%s)\n", r.Name, r.UserID)
	fmt.Println("Token saved.")
}

func (o *Output) printCreateGameResult(r CreateGameResult) {
	fmt.Printf("Game started: %s\n", r.GameID)
}

func (o *Output) printGameResult(r GameResult) {
	fmt.Printf("Game:    %s [%s]\n", r.GameID, r.Lang)
	fmt.Println()
	fmt.Printf("  %s\n", r.Usage)
	fmt.Println()
	fmt.Printf("  Word:       %s\n", spaced(r.RevealWord))
	fmt.Printf("  Guessed:    %s\n", spaced(r.Guessed))
	fmt.Printf("  Misses:     %d of 6\n", r.BadGuesses)

	switch r.Result {
	case "won":
		fmt.Printf("\nYou won! The word was %q.\n", r.SecretWord)
	case "lost":
		fmt.Printf("\nYou lost. The word was %q.\n", r.SecretWord)
	}
	if r.Source != "" {
		fmt.Printf("Source: %s\n", r.Source)
	}
}

func (o *Output) printHealthResult(r HealthResult) {
	fmt.Printf("Server status: %s\n", r.Status)
}

// spaced separates characters for readability ("c_t" -> "c _ t")
func spaced(s string) string {
	runes := []rune(s)
	parts := make([]string, len(runes))
	for i, r := range runes {
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
