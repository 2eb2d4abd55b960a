package game

import "github.com/KirkDiggler/jeopardy/internal/models"

// Policy settles behaviour the contract leaves open
type Policy struct {
	// UpsertOnUpdate makes UpdateGame create a game whose ID does not exist
	// instead of failing with ErrGameNotFound
	UpsertOnUpdate bool

	// StrictDelete makes DeleteGame fail with ErrGameNotFound for a missing ID
	// instead of treating it as a no-op
	StrictDelete bool
}

type CreateGameInput struct {
	Game *models.Game
}

type CreateGameOutput struct {
	GameID string
}

type UpdateGameInput struct {
	GameID string
	Game   *models.Game
}

type GetGameInput struct {
	GameID string
}

type GetGameOutput struct {
	// Game is nil when Found is false
	Game  *models.Game
	Found bool
}

type GetTeacherGamesInput struct {
	TeacherID string
}

type GetTeacherGamesOutput struct {
	Games []*models.Game
}

type GetPublicGamesInput struct {
}

type GetPublicGamesOutput struct {
	Games []*models.Game
}

type DeleteGameInput struct {
	GameID string
}

type TogglePublicStatusInput struct {
	GameID   string
	IsPublic bool
}

type StreamTeacherGamesInput struct {
	TeacherID string
}

type SearchGamesInput struct {
	// Query is matched case-insensitively; empty matches everything
	Query string

	// TeacherID optionally restricts the search to one teacher
	TeacherID string
}

type SearchGamesOutput struct {
	Games []*models.Game
}
