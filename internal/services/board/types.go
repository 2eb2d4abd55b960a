package board

import (
	"github.com/KirkDiggler/jeopardy/internal/common/clock"
	"github.com/KirkDiggler/jeopardy/internal/dice"
	"github.com/KirkDiggler/jeopardy/internal/models"
	gameRepo "github.com/KirkDiggler/jeopardy/internal/repositories/game"
)

// Config holds configuration for the board service
type Config struct {
	// Repository dependencies
	GameRepo gameRepo.Repository

	// Service dependencies
	DiceRoller dice.Roller
	Clock      clock.Clock
}

type CreateGameInput struct {
	TeacherID string `json:"teacherId"`

	// Title defaults to models.DefaultGameTitle
	Title string `json:"title"`
}

type CreateGameOutput struct {
	Game *models.Game
}

type GetGameInput struct {
	GameID string
}

type GetGameOutput struct {
	Game *models.Game
}

type SaveGameInput struct {
	Game *models.Game
}

type SaveGameOutput struct {
	Game *models.Game
}

type ListTeacherGamesInput struct {
	TeacherID string
}

type ListPublicGamesInput struct {
}

type SearchGamesInput struct {
	Query     string
	TeacherID string
}

type ListGamesOutput struct {
	Games []*models.Game
}

type DeleteGameInput struct {
	GameID string
}

type SetVisibilityInput struct {
	GameID   string
	IsPublic bool
}

// GameOutput carries the board as stored after an edit
type GameOutput struct {
	Game *models.Game
}

type AddCategoryInput struct {
	GameID   string
	Category *models.Category
}

// UpdateQuestionInput edits the fields that are set; nil fields are kept
type UpdateQuestionInput struct {
	GameID        string
	CategoryIndex int
	QuestionIndex int

	Text          *string
	Answer        *string
	Points        *int
	IsDailyDouble *bool
}

type SetFinalRoundInput struct {
	GameID string

	// FinalRound replaces the final round; nil removes it
	FinalRound *models.FinalRound
}

type PlaceDailyDoublesInput struct {
	GameID string

	// Count is the number of daily doubles to place; zero places one
	Count int
}

type WatchTeacherGamesInput struct {
	TeacherID string
}
