package board

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/KirkDiggler/jeopardy/internal/common/clock"
	"github.com/KirkDiggler/jeopardy/internal/dice"
	"github.com/KirkDiggler/jeopardy/internal/models"
	gameRepo "github.com/KirkDiggler/jeopardy/internal/repositories/game"
	"github.com/go-playground/validator/v10"
)

// service implements the Service interface
type service struct {
	gameRepo   gameRepo.Repository
	diceRoller dice.Roller
	clock      clock.Clock
	validate   *validator.Validate
}

// New creates a new board service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.GameRepo == nil {
		return nil, ErrNilGameRepo
	}

	if cfg.DiceRoller == nil {
		return nil, ErrNilDiceRoller
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	return &service{
		gameRepo:   cfg.GameRepo,
		diceRoller: cfg.DiceRoller,
		clock:      cfg.Clock,
		validate:   validator.New(),
	}, nil
}

func (s *service) validateGame(game *models.Game) error {
	err := s.validate.Struct(game)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		return newValidationError(validationErrs)
	}
	return err
}

// CreateGame builds an empty board for a teacher and saves it
func (s *service) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	game := models.NewGame(input.TeacherID, s.clock.Now())
	if input.Title != "" {
		game.Title = input.Title
	}

	if err := s.validateGame(game); err != nil {
		return nil, err
	}

	out, err := s.gameRepo.CreateGame(ctx, &gameRepo.CreateGameInput{
		Game: game,
	})
	if err != nil {
		return nil, err
	}

	game.ID = out.GameID
	log.Printf("Created game %s for teacher %s", game.ID, game.TeacherID)

	return &CreateGameOutput{
		Game: game,
	}, nil
}

// load fetches a game, turning a missing game into ErrGameNotFound
func (s *service) load(ctx context.Context, gameID string) (*models.Game, error) {
	out, err := s.gameRepo.GetGame(ctx, &gameRepo.GetGameInput{
		GameID: gameID,
	})
	if err != nil {
		return nil, err
	}
	if !out.Found {
		return nil, ErrGameNotFound
	}
	return out.Game, nil
}

// store validates and writes a game, then reads it back so the caller sees
// the stored update time
func (s *service) store(ctx context.Context, game *models.Game) (*models.Game, error) {
	if err := s.validateGame(game); err != nil {
		return nil, err
	}

	err := s.gameRepo.UpdateGame(ctx, &gameRepo.UpdateGameInput{
		GameID: game.ID,
		Game:   game,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, err
	}

	return s.load(ctx, game.ID)
}

// GetGame loads a board
func (s *service) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	game, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{
		Game: game,
	}, nil
}

// SaveGame validates and stores an edited board
func (s *service) SaveGame(ctx context.Context, input *SaveGameInput) (*SaveGameOutput, error) {
	if input == nil || input.Game == nil || input.Game.ID == "" {
		return nil, errors.New("input, game and game ID cannot be empty")
	}

	game, err := s.store(ctx, input.Game)
	if err != nil {
		return nil, err
	}

	return &SaveGameOutput{
		Game: game,
	}, nil
}

// ListTeacherGames returns a teacher's boards, most recently edited first
func (s *service) ListTeacherGames(ctx context.Context, input *ListTeacherGamesInput) (*ListGamesOutput, error) {
	if input == nil || input.TeacherID == "" {
		return nil, errors.New("input and teacher ID cannot be empty")
	}

	out, err := s.gameRepo.GetTeacherGames(ctx, &gameRepo.GetTeacherGamesInput{
		TeacherID: input.TeacherID,
	})
	if err != nil {
		return nil, err
	}

	return &ListGamesOutput{
		Games: out.Games,
	}, nil
}

// ListPublicGames returns every shared board
func (s *service) ListPublicGames(ctx context.Context, input *ListPublicGamesInput) (*ListGamesOutput, error) {
	out, err := s.gameRepo.GetPublicGames(ctx, &gameRepo.GetPublicGamesInput{})
	if err != nil {
		return nil, err
	}

	return &ListGamesOutput{
		Games: out.Games,
	}, nil
}

// SearchGames finds boards by their text
func (s *service) SearchGames(ctx context.Context, input *SearchGamesInput) (*ListGamesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	out, err := s.gameRepo.SearchGames(ctx, &gameRepo.SearchGamesInput{
		Query:     input.Query,
		TeacherID: input.TeacherID,
	})
	if err != nil {
		return nil, err
	}

	return &ListGamesOutput{
		Games: out.Games,
	}, nil
}

// DeleteGame permanently removes a board
func (s *service) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	err := s.gameRepo.DeleteGame(ctx, &gameRepo.DeleteGameInput{
		GameID: input.GameID,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return err
	}

	log.Printf("Deleted game %s", input.GameID)
	return nil
}

// SetVisibility shares or unshares a board
func (s *service) SetVisibility(ctx context.Context, input *SetVisibilityInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	err := s.gameRepo.TogglePublicStatus(ctx, &gameRepo.TogglePublicStatusInput{
		GameID:   input.GameID,
		IsPublic: input.IsPublic,
	})
	if err != nil {
		if errors.Is(err, gameRepo.ErrGameNotFound) {
			return ErrGameNotFound
		}
		return err
	}

	return nil
}

// AddCategory appends a column to a board
func (s *service) AddCategory(ctx context.Context, input *AddCategoryInput) (*GameOutput, error) {
	if input == nil || input.GameID == "" || input.Category == nil {
		return nil, errors.New("input, game ID and category cannot be empty")
	}

	game, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:      input.Category.Name,
		Questions: make([]*models.Question, 0, len(input.Category.Questions)),
	}
	for _, q := range input.Category.Questions {
		if q == nil {
			category.Questions = append(category.Questions, nil)
			continue
		}
		category.Questions = append(category.Questions, q.CopyWith())
	}
	game.Categories = append(game.Categories, category)

	stored, err := s.store(ctx, game)
	if err != nil {
		return nil, err
	}

	return &GameOutput{Game: stored}, nil
}

// UpdateQuestion applies a partial edit to one question
func (s *service) UpdateQuestion(ctx context.Context, input *UpdateQuestionInput) (*GameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	game, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if input.CategoryIndex < 0 || input.CategoryIndex >= len(game.Categories) {
		return nil, ErrCategoryNotFound
	}
	category := game.Categories[input.CategoryIndex]
	if input.QuestionIndex < 0 || input.QuestionIndex >= len(category.Questions) {
		return nil, ErrQuestionNotFound
	}

	var opts []models.QuestionOption
	if input.Text != nil {
		opts = append(opts, models.WithText(*input.Text))
	}
	if input.Answer != nil {
		opts = append(opts, models.WithAnswer(*input.Answer))
	}
	if input.Points != nil {
		opts = append(opts, models.WithPoints(*input.Points))
	}
	if input.IsDailyDouble != nil {
		opts = append(opts, models.WithDailyDouble(*input.IsDailyDouble))
	}
	category.Questions[input.QuestionIndex] = category.Questions[input.QuestionIndex].CopyWith(opts...)

	stored, err := s.store(ctx, game)
	if err != nil {
		return nil, err
	}

	return &GameOutput{Game: stored}, nil
}

// SetFinalRound sets or clears the final round
func (s *service) SetFinalRound(ctx context.Context, input *SetFinalRoundInput) (*GameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	game, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if input.FinalRound != nil {
		final := *input.FinalRound
		game.FinalJeopardy = &final
	} else {
		game.FinalJeopardy = nil
	}

	stored, err := s.store(ctx, game)
	if err != nil {
		return nil, err
	}

	return &GameOutput{Game: stored}, nil
}

type boardPosition struct {
	category int
	question int
}

// PlaceDailyDoubles clears existing daily doubles and hides Count new ones on
// distinct unanswered questions
func (s *service) PlaceDailyDoubles(ctx context.Context, input *PlaceDailyDoublesInput) (*GameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	count := input.Count
	if count == 0 {
		count = 1
	}
	if count < 0 {
		return nil, ErrInvalidDailyDoubles
	}

	game, err := s.load(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	candidates := make([]boardPosition, 0, game.QuestionCount())
	for ci, category := range game.Categories {
		for qi, question := range category.Questions {
			if question.IsDailyDouble {
				category.Questions[qi] = question.CopyWith(models.WithDailyDouble(false))
			}
			if !question.IsAnswered {
				candidates = append(candidates, boardPosition{category: ci, question: qi})
			}
		}
	}

	if count > len(candidates) {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrNotEnoughQuestions, count, len(candidates))
	}

	for i := 0; i < count; i++ {
		pick := s.diceRoller.Roll(len(candidates)) - 1
		pos := candidates[pick]
		questions := game.Categories[pos.category].Questions
		questions[pos.question] = questions[pos.question].CopyWith(models.WithDailyDouble(true))

		candidates = append(candidates[:pick], candidates[pick+1:]...)
	}

	stored, err := s.store(ctx, game)
	if err != nil {
		return nil, err
	}

	return &GameOutput{Game: stored}, nil
}

// WatchTeacherGames follows a teacher's boards live
func (s *service) WatchTeacherGames(ctx context.Context, input *WatchTeacherGamesInput) (*gameRepo.Subscription, error) {
	if input == nil || input.TeacherID == "" {
		return nil, errors.New("input and teacher ID cannot be empty")
	}

	return s.gameRepo.StreamTeacherGames(ctx, &gameRepo.StreamTeacherGamesInput{
		TeacherID: input.TeacherID,
	})
}
