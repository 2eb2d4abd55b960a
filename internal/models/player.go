package models

// Player is a contestant in a live game. Players are never persisted.
type Player struct {
	// ID identifies the player for the duration of the session
	ID string `json:"id"`

	// Name is the display name of the player
	Name string `json:"name"`

	// Score is the running total, which can go negative
	Score int `json:"score"`
}
