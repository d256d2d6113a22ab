package model

import "time"

// Account holds the login credentials behind a user identity.
// The User row itself is created lazily on first game creation.
type Account struct {
	UserID       UserID    `json:"user_id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}
