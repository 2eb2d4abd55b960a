package game

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/jeopardy/internal/common/clock"
	"github.com/KirkDiggler/jeopardy/internal/common/uuid"
	"github.com/KirkDiggler/jeopardy/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// gameRecord is the table row for a game. The board itself lives in Document;
// the other columns are copies used for filtering and ordering.
type gameRecord struct {
	ID        string         `gorm:"primaryKey;size:36"`
	TeacherID string         `gorm:"index;not null"`
	Title     string         `gorm:"not null"`
	IsPublic  bool           `gorm:"index;not null;default:false"`
	Document  datatypes.JSON `gorm:"not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time      `gorm:"index;autoUpdateTime:false"`
}

func (gameRecord) TableName() string {
	return "jeopardy_games"
}

func newGameRecord(game *models.Game) (*gameRecord, error) {
	doc, err := json.Marshal(game.ToDocument())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game: %w", err)
	}
	return &gameRecord{
		ID:        game.ID,
		TeacherID: game.TeacherID,
		Title:     game.Title,
		IsPublic:  game.IsPublic,
		Document:  datatypes.JSON(doc),
		CreatedAt: game.CreatedAt,
		UpdatedAt: game.UpdatedAt,
	}, nil
}

func (rec *gameRecord) toGame() (*models.Game, error) {
	return decodeGame(rec.ID, rec.Document)
}

func recordsToGames(records []gameRecord) ([]*models.Game, error) {
	games := make([]*models.Game, 0, len(records))
	for i := range records {
		game, err := records[i].toGame()
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}
	sortByUpdatedDesc(games)
	return games, nil
}

// SQLConfig holds configuration for the gorm-backed game repository
type SQLConfig struct {
	// DB is an open gorm connection (Postgres in production)
	DB *gorm.DB

	// AutoMigrate creates or updates the games table on start
	AutoMigrate bool

	// Clock stamps create and update times; defaults to the system clock
	Clock clock.Clock

	// UUID generates game IDs; defaults to random UUIDs
	UUID uuid.UUID

	// Policy settles update/delete behaviour on missing IDs
	Policy Policy
}

// sqlRepository implements the Repository interface on a relational database.
// Subscriptions only observe writes made through this instance.
type sqlRepository struct {
	db     *gorm.DB
	clock  clock.Clock
	uuid   uuid.UUID
	policy Policy
	subs   *registry
}

// NewSQL creates a new gorm-backed game repository
func NewSQL(cfg *SQLConfig) (*sqlRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.DB == nil {
		return nil, errors.New("database cannot be nil")
	}

	if cfg.AutoMigrate {
		if err := cfg.DB.AutoMigrate(&gameRecord{}); err != nil {
			return nil, fmt.Errorf("failed to migrate games table: %w", err)
		}
	}

	repo := &sqlRepository{
		db:     cfg.DB,
		clock:  cfg.Clock,
		uuid:   cfg.UUID,
		policy: cfg.Policy,
		subs:   newRegistry(),
	}
	if repo.clock == nil {
		repo.clock = clock.New()
	}
	if repo.uuid == nil {
		repo.uuid = uuid.New()
	}

	return repo, nil
}

func (r *sqlRepository) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
	if input == nil || input.Game == nil {
		return nil, errors.New("input and game cannot be nil")
	}

	now := r.clock.Now()
	game := input.Game.Clone()
	game.ID = r.uuid.NewUUID()
	if game.CreatedAt.IsZero() {
		game.CreatedAt = now
	}
	if game.UpdatedAt.IsZero() {
		game.UpdatedAt = now
	}

	rec, err := newGameRecord(game)
	if err != nil {
		return nil, err
	}

	// the primary key rejects an existing ID, so nothing is overwritten
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return nil, storeError("create game", err)
	}

	r.subs.publish(game.TeacherID)

	return &CreateGameOutput{GameID: game.ID}, nil
}

func (r *sqlRepository) UpdateGame(ctx context.Context, input *UpdateGameInput) error {
	if input == nil || input.Game == nil || input.GameID == "" {
		return errors.New("input, game and game ID cannot be empty")
	}

	game := input.Game.Clone()
	game.ID = input.GameID
	previousTeacher := ""

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing gameRecord
		err := tx.First(&existing, "id = ?", input.GameID).Error
		found := true
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			if !r.policy.UpsertOnUpdate {
				return ErrGameNotFound
			}
			found = false
		case err != nil:
			return err
		}

		now := r.clock.Now()
		if found {
			game.CreatedAt = existing.CreatedAt
			previousTeacher = existing.TeacherID
		} else if game.CreatedAt.IsZero() {
			game.CreatedAt = now
		}
		game.UpdatedAt = now

		rec, err := newGameRecord(game)
		if err != nil {
			return err
		}
		if found {
			return tx.Save(rec).Error
		}
		return tx.Create(rec).Error
	})
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return err
		}
		return storeError("update game", err)
	}

	r.subs.publish(previousTeacher, game.TeacherID)

	return nil
}

func (r *sqlRepository) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	var rec gameRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", input.GameID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &GetGameOutput{Found: false}, nil
		}
		return nil, storeError("get game", err)
	}

	game, err := rec.toGame()
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{Game: game, Found: true}, nil
}

func (r *sqlRepository) teacherGames(ctx context.Context, teacherID string) ([]*models.Game, error) {
	var records []gameRecord
	err := r.db.WithContext(ctx).
		Where("teacher_id = ?", teacherID).
		Order("updated_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, storeError("list teacher games", err)
	}

	return recordsToGames(records)
}

func (r *sqlRepository) GetTeacherGames(ctx context.Context, input *GetTeacherGamesInput) (*GetTeacherGamesOutput, error) {
	if input == nil || input.TeacherID == "" {
		return nil, errors.New("input and teacher ID cannot be empty")
	}

	games, err := r.teacherGames(ctx, input.TeacherID)
	if err != nil {
		return nil, err
	}

	return &GetTeacherGamesOutput{Games: games}, nil
}

func (r *sqlRepository) GetPublicGames(ctx context.Context, input *GetPublicGamesInput) (*GetPublicGamesOutput, error) {
	var records []gameRecord
	if err := r.db.WithContext(ctx).Where("is_public = ?", true).Find(&records).Error; err != nil {
		return nil, storeError("list public games", err)
	}

	games, err := recordsToGames(records)
	if err != nil {
		return nil, err
	}

	return &GetPublicGamesOutput{Games: games}, nil
}

func (r *sqlRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	teacherID := ""
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing gameRecord
		err := tx.Select("id", "teacher_id").First(&existing, "id = ?", input.GameID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if r.policy.StrictDelete {
					return ErrGameNotFound
				}
				return nil
			}
			return err
		}
		teacherID = existing.TeacherID

		return tx.Delete(&gameRecord{}, "id = ?", input.GameID).Error
	})
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return err
		}
		return storeError("delete game", err)
	}

	r.subs.publish(teacherID)

	return nil
}

func (r *sqlRepository) TogglePublicStatus(ctx context.Context, input *TogglePublicStatusInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	var game *models.Game
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing gameRecord
		if err := tx.First(&existing, "id = ?", input.GameID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}
			return err
		}

		var err error
		game, err = existing.toGame()
		if err != nil {
			return err
		}
		game.IsPublic = input.IsPublic
		game.UpdatedAt = r.clock.Now()

		rec, err := newGameRecord(game)
		if err != nil {
			return err
		}
		return tx.Save(rec).Error
	})
	if err != nil {
		if errors.Is(err, ErrGameNotFound) || errors.Is(err, models.ErrMalformedData) {
			return err
		}
		return storeError("toggle public status", err)
	}

	r.subs.publish(game.TeacherID)

	return nil
}

// SearchGames narrows by teacher in SQL and matches text in Go, since the
// board content is stored as an opaque JSON document
func (r *sqlRepository) SearchGames(ctx context.Context, input *SearchGamesInput) (*SearchGamesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	query := r.db.WithContext(ctx)
	if input.TeacherID != "" {
		query = query.Where("teacher_id = ?", input.TeacherID)
	}

	var records []gameRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, storeError("search games", err)
	}

	games, err := recordsToGames(records)
	if err != nil {
		return nil, err
	}

	return &SearchGamesOutput{Games: filterGames(games, input.Query)}, nil
}

func (r *sqlRepository) StreamTeacherGames(ctx context.Context, input *StreamTeacherGamesInput) (*Subscription, error) {
	if input == nil || input.TeacherID == "" {
		return nil, errors.New("input and teacher ID cannot be empty")
	}

	sub := newSubscription(ctx, input.TeacherID, func(ctx context.Context) ([]*models.Game, error) {
		return r.teacherGames(ctx, input.TeacherID)
	})
	if err := r.subs.add(sub); err != nil {
		return nil, err
	}
	sub.start(func() {
		r.subs.remove(sub)
	})

	return sub, nil
}

// Dispose closes every open subscription. The database handle is owned by
// the caller and stays open.
func (r *sqlRepository) Dispose() error {
	r.subs.dispose()
	return nil
}
