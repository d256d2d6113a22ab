package request

// CreateGuestRequest is the request body for creating a guest identity
type CreateGuestRequest struct {
	Name string `json:"name"`
}

// RegisterRequest is the request body for registering an account
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name,omitempty"`
}

// LoginRequest is the request body for logging in
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// CreateGameRequest is the request body for starting a game
type CreateGameRequest struct {
	Language string `json:"language"`
}

// GuessRequest is the request body for guessing a letter
type GuessRequest struct {
	Letter string `json:"letter"`
}
