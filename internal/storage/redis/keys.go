package redis

import (
	"fmt"

	"langman/internal/model"
)

// Key prefix for all langman data
const keyPrefix = "langman"

// usageKey returns the Redis key for a Usage
func usageKey(id int) string {
	return fmt.Sprintf("%s:usage:%d", keyPrefix, id)
}

// usagesByLangKey returns the Redis key for the SET of usage ids per language
func usagesByLangKey(lang model.Language) string {
	return fmt.Sprintf("%s:idx:usages_by_lang:%s", keyPrefix, lang)
}

// userKey returns the Redis key for a User
func userKey(id model.UserID) string {
	return fmt.Sprintf("%s:user:%s", keyPrefix, id)
}

// accountKey returns the Redis key for an Account, keyed by username
func accountKey(username string) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, username)
}

// gameKey returns the Redis key for a Game
func gameKey(id model.GameID) string {
	return fmt.Sprintf("%s:game:%s", keyPrefix, id)
}
