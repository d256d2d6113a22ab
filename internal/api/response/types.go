package response

import (
	"langman/internal/ordinal"
	"langman/internal/services/auth"
	"langman/internal/services/game"
)

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		AccessToken: s.Token,
		UserID:      string(s.UserID),
		Name:        s.Name,
	}
}

// CreateGameResponse is the response for starting a new game
type CreateGameResponse struct {
	Message     string `json:"message"`
	GameID      string `json:"game_id"`
	AccessToken string `json:"access_token"`
}

// GameResponse is the full game state returned by game endpoints.
// Times are day ordinals; the secret word appears only once the game
// has finished.
type GameResponse struct {
	GameID      string `json:"game_id"`
	Player      string `json:"player"`
	UsageID     int    `json:"usage_id"`
	Guessed     string `json:"guessed"`
	RevealWord  string `json:"reveal_word"`
	BadGuesses  int    `json:"bad_guesses"`
	StartTime   int    `json:"start_time"`
	EndTime     int    `json:"end_time"`
	Result      string `json:"result"`
	Usage       string `json:"usage"`
	Lang        string `json:"lang"`
	Source      string `json:"source,omitempty"`
	SecretWord  string `json:"secret_word,omitempty"`
	AccessToken string `json:"access_token,omitempty"`
}

// GameResponseFromView converts a service game view, blanking the usage
// text and withholding the secret word while the game is active
func GameResponseFromView(v *game.GameView, playerName string) GameResponse {
	resp := GameResponse{
		GameID:      string(v.Game.ID),
		Player:      playerName,
		UsageID:     v.Game.UsageID,
		Guessed:     v.Game.Guessed,
		RevealWord:  v.Game.RevealWord,
		BadGuesses:  v.Game.BadGuesses,
		StartTime:   ordinal.FromTime(v.Game.StartTime),
		EndTime:     ordinal.FromTime(v.Game.EndTime),
		Result:      string(v.Game.Result()),
		Usage:       v.Usage.Blanked(),
		Lang:        string(v.Usage.Language),
		Source:      v.Usage.Source,
		AccessToken: v.AccessToken,
	}
	if v.ShowSecret {
		resp.SecretWord = v.Usage.SecretWord
	}
	return resp
}

// DeleteGameResponse reports the outcome of a delete
type DeleteGameResponse struct {
	Message string `json:"message"`
}

// DeleteGameResponseFor returns the message for whether a record was removed
func DeleteGameResponseFor(deleted bool) DeleteGameResponse {
	if deleted {
		return DeleteGameResponse{Message: "One record deleted"}
	}
	return DeleteGameResponse{Message: "Zero records deleted"}
}
