package game

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/jeopardy/internal/repositories/game Repository

import (
	"context"
)

// Repository defines the persistence boundary for stored games.
// Every method except GetGame's not-found case may fail with a *StoreError.
type Repository interface {
	// CreateGame persists a new game and returns its generated ID
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// UpdateGame replaces the stored content of a game and refreshes its update time
	UpdateGame(ctx context.Context, input *UpdateGameInput) error

	// GetGame retrieves a game by ID; a missing game is reported through Found
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// GetTeacherGames lists a teacher's games, most recently updated first
	GetTeacherGames(ctx context.Context, input *GetTeacherGamesInput) (*GetTeacherGamesOutput, error)

	// GetPublicGames lists every game marked public
	GetPublicGames(ctx context.Context, input *GetPublicGamesInput) (*GetPublicGamesOutput, error)

	// DeleteGame permanently removes a game
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// TogglePublicStatus sets the visibility flag of a game
	TogglePublicStatus(ctx context.Context, input *TogglePublicStatusInput) error

	// StreamTeacherGames subscribes to the live list of a teacher's games
	StreamTeacherGames(ctx context.Context, input *StreamTeacherGamesInput) (*Subscription, error)

	// SearchGames matches games by title, category and question content
	SearchGames(ctx context.Context, input *SearchGamesInput) (*SearchGamesOutput, error)

	// Dispose closes every open subscription. Safe to call more than once.
	Dispose() error
}
