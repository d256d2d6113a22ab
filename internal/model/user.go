package model

import "time"

// UserID uniquely identifies a player
type UserID string

// Counters is a mapping from key to count. Absent keys read as zero,
// and Incr/Decr return the (possibly newly allocated) map so a nil
// Counters behaves like an all-zero one.
type Counters map[string]int

// Get returns the count for key, zero if absent
func (c Counters) Get(key string) int {
	return c[key]
}

// Incr increments the count for key by one
func (c Counters) Incr(key string) Counters {
	if c == nil {
		c = Counters{}
	}
	c[key]++
	return c
}

// Decr decrements the count for key by one
func (c Counters) Decr(key string) Counters {
	if c == nil {
		c = Counters{}
	}
	c[key]--
	return c
}

// Total returns the sum of all counts
func (c Counters) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// User is a player together with their aggregated game statistics
type User struct {
	ID   UserID `json:"user_id"`
	Name string `json:"user_name"`

	// Aggregates, updated exactly twice per game: once at creation
	// and once at the terminal transition
	NumGames int      `json:"num_games"`
	Outcomes Counters `json:"outcomes"`
	ByLang   Counters `json:"by_lang"`

	FirstTime time.Time     `json:"first_time"`
	TotalTime time.Duration `json:"total_time"`
	AvgTime   time.Duration `json:"avg_time"`
}
