package game

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/jeopardy/internal/common/clock"
	"github.com/KirkDiggler/jeopardy/internal/common/uuid"
	"github.com/KirkDiggler/jeopardy/internal/models"
)

// MemoryConfig holds configuration for the in-memory game repository
type MemoryConfig struct {
	// Clock stamps create and update times; defaults to the system clock
	Clock clock.Clock

	// UUID generates game IDs; defaults to random UUIDs
	UUID uuid.UUID

	// Policy settles update/delete behaviour on missing IDs
	Policy Policy
}

// memoryRepository keeps games as documents in a map. Games are serialized on
// write and decoded on read so callers never share state with the store.
type memoryRepository struct {
	mu     sync.RWMutex
	docs   map[string]models.Document
	clock  clock.Clock
	uuid   uuid.UUID
	policy Policy
	subs   *registry
}

// NewMemory creates a new in-memory game repository
func NewMemory(cfg *MemoryConfig) *memoryRepository {
	if cfg == nil {
		cfg = &MemoryConfig{}
	}

	repo := &memoryRepository{
		docs:   make(map[string]models.Document),
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

	return repo
}

// load decodes a stored game; callers must hold the lock
func (r *memoryRepository) load(id string) (*models.Game, bool, error) {
	doc, ok := r.docs[id]
	if !ok {
		return nil, false, nil
	}
	game, err := models.GameFromDocument(id, doc)
	if err != nil {
		return nil, true, err
	}
	return game, true, nil
}

// loadWhere decodes every stored game accepted by keep; callers must hold the lock
func (r *memoryRepository) loadWhere(keep func(*models.Game) bool) ([]*models.Game, error) {
	games := make([]*models.Game, 0)
	for id := range r.docs {
		game, _, err := r.load(id)
		if err != nil {
			return nil, err
		}
		if keep(game) {
			games = append(games, game)
		}
	}
	sortByUpdatedDesc(games)
	return games, nil
}

func (r *memoryRepository) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
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

	r.mu.Lock()
	if _, exists := r.docs[game.ID]; exists {
		r.mu.Unlock()
		return nil, ErrGameExists
	}
	r.docs[game.ID] = game.ToDocument()
	r.mu.Unlock()

	r.subs.publish(game.TeacherID)

	return &CreateGameOutput{GameID: game.ID}, nil
}

func (r *memoryRepository) UpdateGame(ctx context.Context, input *UpdateGameInput) error {
	if input == nil || input.Game == nil || input.GameID == "" {
		return errors.New("input, game and game ID cannot be empty")
	}

	game := input.Game.Clone()
	game.ID = input.GameID

	r.mu.Lock()
	existing, found, err := r.load(input.GameID)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if !found && !r.policy.UpsertOnUpdate {
		r.mu.Unlock()
		return ErrGameNotFound
	}

	now := r.clock.Now()
	previousTeacher := ""
	if found {
		game.CreatedAt = existing.CreatedAt
		previousTeacher = existing.TeacherID
	} else if game.CreatedAt.IsZero() {
		game.CreatedAt = now
	}
	game.UpdatedAt = now
	r.docs[game.ID] = game.ToDocument()
	r.mu.Unlock()

	r.subs.publish(previousTeacher, game.TeacherID)

	return nil
}

func (r *memoryRepository) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	game, found, err := r.load(input.GameID)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{Game: game, Found: found}, nil
}

func (r *memoryRepository) teacherGames(teacherID string) ([]*models.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.loadWhere(func(g *models.Game) bool {
		return g.TeacherID == teacherID
	})
}

func (r *memoryRepository) GetTeacherGames(ctx context.Context, input *GetTeacherGamesInput) (*GetTeacherGamesOutput, error) {
	if input == nil || input.TeacherID == "" {
		return nil, errors.New("input and teacher ID cannot be empty")
	}

	games, err := r.teacherGames(input.TeacherID)
	if err != nil {
		return nil, err
	}

	return &GetTeacherGamesOutput{Games: games}, nil
}

func (r *memoryRepository) GetPublicGames(ctx context.Context, input *GetPublicGamesInput) (*GetPublicGamesOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games, err := r.loadWhere(func(g *models.Game) bool {
		return g.IsPublic
	})
	if err != nil {
		return nil, err
	}

	return &GetPublicGamesOutput{Games: games}, nil
}

func (r *memoryRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	doc, found := r.docs[input.GameID]
	if !found {
		r.mu.Unlock()
		if r.policy.StrictDelete {
			return ErrGameNotFound
		}
		return nil
	}
	teacherID, _ := doc["teacherId"].(string)
	delete(r.docs, input.GameID)
	r.mu.Unlock()

	r.subs.publish(teacherID)

	return nil
}

func (r *memoryRepository) TogglePublicStatus(ctx context.Context, input *TogglePublicStatusInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	r.mu.Lock()
	game, found, err := r.load(input.GameID)
	if err != nil {
		r.mu.Unlock()
		return err
	}
	if !found {
		r.mu.Unlock()
		return ErrGameNotFound
	}
	game.IsPublic = input.IsPublic
	game.UpdatedAt = r.clock.Now()
	r.docs[game.ID] = game.ToDocument()
	r.mu.Unlock()

	r.subs.publish(game.TeacherID)

	return nil
}

func (r *memoryRepository) SearchGames(ctx context.Context, input *SearchGamesInput) (*SearchGamesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	games, err := r.loadWhere(func(g *models.Game) bool {
		if input.TeacherID != "" && g.TeacherID != input.TeacherID {
			return false
		}
		return matchesQuery(g, input.Query)
	})
	if err != nil {
		return nil, err
	}

	return &SearchGamesOutput{Games: games}, nil
}

func (r *memoryRepository) StreamTeacherGames(ctx context.Context, input *StreamTeacherGamesInput) (*Subscription, error) {
	if input == nil || input.TeacherID == "" {
		return nil, errors.New("input and teacher ID cannot be empty")
	}

	sub := newSubscription(ctx, input.TeacherID, func(ctx context.Context) ([]*models.Game, error) {
		return r.teacherGames(input.TeacherID)
	})
	if err := r.subs.add(sub); err != nil {
		return nil, err
	}
	sub.start(func() {
		r.subs.remove(sub)
	})

	return sub, nil
}

func (r *memoryRepository) Dispose() error {
	r.subs.dispose()
	return nil
}
