package play

import (
	"github.com/KirkDiggler/jeopardy/internal/common/uuid"
	"github.com/KirkDiggler/jeopardy/internal/models"
	"github.com/KirkDiggler/jeopardy/internal/services/board"
)

// MinDailyDoubleWager is the smallest wager accepted on a daily double
const MinDailyDoubleWager = 5

// SessionConfig holds configuration for a live session
type SessionConfig struct {
	// ID identifies the session
	ID string

	// Game is the board being played; the session works on its own copy
	Game *models.Game

	// UUIDGenerator assigns player IDs
	UUIDGenerator uuid.UUID
}

// ManagerConfig holds configuration for the session manager
type ManagerConfig struct {
	// BoardService loads boards to play and saves their progress
	BoardService board.Service

	// UUIDGenerator assigns session and player IDs
	UUIDGenerator uuid.UUID
}

type AddPlayerInput struct {
	Name string `json:"name"`
}

type AddPlayerOutput struct {
	Player *models.Player
}

type RenamePlayerInput struct {
	PlayerID string
	Name     string `json:"name"`
}

type AnswerQuestionInput struct {
	CategoryIndex int    `json:"categoryIndex"`
	QuestionIndex int    `json:"questionIndex"`
	PlayerID      string `json:"playerId"`
	Correct       bool   `json:"correct"`

	// Wager is only read for daily doubles
	Wager int `json:"wager"`
}

type AnswerQuestionOutput struct {
	// Question is the question after the answer was applied
	Question *models.Question

	// Player is the answering player after scoring
	Player *models.Player

	// Delta is the change applied to the player's score
	Delta int
}

type PassQuestionInput struct {
	CategoryIndex int `json:"categoryIndex"`
	QuestionIndex int `json:"questionIndex"`
}

type StartSessionInput struct {
	GameID string
}

type FinishSessionInput struct {
	SessionID string

	// SaveProgress writes the answered flags back to the stored board
	SaveProgress bool
}

type FinishSessionOutput struct {
	Leaderboard *models.Leaderboard
}
