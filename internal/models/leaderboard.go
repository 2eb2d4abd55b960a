package models

// PlayerStats represents a player's results in a live game
type PlayerStats struct {
	// PlayerID is the session ID of the player
	PlayerID string `json:"playerId"`

	// PlayerName is the display name of the player
	PlayerName string `json:"playerName"`

	// Score is the player's running total
	Score int `json:"score"`

	// CorrectAnswers is the number of questions the player got right
	CorrectAnswers int `json:"correctAnswers"`

	// IncorrectAnswers is the number of questions the player got wrong
	IncorrectAnswers int `json:"incorrectAnswers"`
}

// Leaderboard represents the current standings in a live game
type Leaderboard struct {
	// GameID is the identifier of the game being played
	GameID string `json:"gameId"`

	// PlayerStats is ordered by score, highest first
	PlayerStats []*PlayerStats `json:"playerStats"`
}
