package board

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/jeopardy/internal/services/board Service

import (
	"context"

	gameRepo "github.com/KirkDiggler/jeopardy/internal/repositories/game"
)

// Service defines the operations teachers use to author boards
type Service interface {
	// CreateGame builds an empty board for a teacher and saves it
	CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error)

	// GetGame loads a board
	GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error)

	// SaveGame validates and stores an edited board
	SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error)

	// ListTeacherGames returns a teacher's boards, most recently edited first
	ListTeacherGames(ctx context.Context, input *ListTeacherGamesInput) (*ListGamesOutput, error)

	// ListPublicGames returns every shared board
	ListPublicGames(ctx context.Context, input *ListPublicGamesInput) (*ListGamesOutput, error)

	// SearchGames finds boards by their text
	SearchGames(ctx context.Context, input *SearchGamesInput) (*ListGamesOutput, error)

	// DeleteGame permanently removes a board
	DeleteGame(ctx context.Context, input *DeleteGameInput) error

	// SetVisibility shares or unshares a board
	SetVisibility(ctx context.Context, input *SetVisibilityInput) error

	// AddCategory appends a column to a board
	AddCategory(ctx context.Context, input *AddCategoryInput) (*GameOutput, error)

	// UpdateQuestion applies a partial edit to one question
	UpdateQuestion(ctx context.Context, input *UpdateQuestionInput) (*GameOutput, error)

	// SetFinalRound sets or clears the final round
	SetFinalRound(ctx context.Context, input *SetFinalRoundInput) (*GameOutput, error)

	// PlaceDailyDoubles hides daily doubles on random unanswered questions
	PlaceDailyDoubles(ctx context.Context, input *PlaceDailyDoublesInput) (*GameOutput, error)

	// WatchTeacherGames follows a teacher's boards live
	WatchTeacherGames(ctx context.Context, input *WatchTeacherGamesInput) (*gameRepo.Subscription, error)
}
