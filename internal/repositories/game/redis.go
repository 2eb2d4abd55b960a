package game

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/KirkDiggler/jeopardy/internal/common/clock"
	"github.com/KirkDiggler/jeopardy/internal/common/uuid"
	"github.com/KirkDiggler/jeopardy/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	gameKeyPrefix         = "game:"
	teacherGamesKeyPrefix = "teacher_games:" // sorted set scored by update time
	publicGamesKey        = "public_games"
	allGamesKey           = "games"
	gameEventsPrefix      = "game_events:" // pub/sub channel per teacher

	publishTimeout = 5 * time.Second
)

// Config holds configuration for the Redis game repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// Clock stamps create and update times; defaults to the system clock
	Clock clock.Clock

	// UUID generates game IDs; defaults to random UUIDs
	UUID uuid.UUID

	// Policy settles update/delete behaviour on missing IDs
	Policy Policy
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	clock  clock.Clock
	uuid   uuid.UUID
	policy Policy
	subs   *registry
}

// NewRedis creates a new Redis-backed game repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	repo := &redisRepository{
		client: cfg.RedisClient,
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

func gameKey(id string) string {
	return gameKeyPrefix + id
}

func teacherGamesKey(teacherID string) string {
	return teacherGamesKeyPrefix + teacherID
}

func gameEventsChannel(teacherID string) string {
	return gameEventsPrefix + teacherID
}

func encodeGame(game *models.Game) ([]byte, error) {
	return json.Marshal(game.ToDocument())
}

// decodeDocument keeps numbers as json.Number so point values stay integers
func decodeDocument(raw []byte) (models.Document, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var doc models.Document
	if err := dec.Decode(&doc); err != nil {
		return nil, &models.MalformedDataError{Entity: "game", Field: "document", Reason: err.Error()}
	}
	return doc, nil
}

func decodeGame(id string, raw []byte) (*models.Game, error) {
	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}
	return models.GameFromDocument(id, doc)
}

// writeIndexes queues the index updates for a stored game
func writeIndexes(ctx context.Context, pipe redis.Pipeliner, game *models.Game) {
	pipe.ZAdd(ctx, teacherGamesKey(game.TeacherID), redis.Z{
		Score:  float64(game.UpdatedAt.UnixNano()),
		Member: game.ID,
	})
	pipe.SAdd(ctx, allGamesKey, game.ID)
	if game.IsPublic {
		pipe.SAdd(ctx, publicGamesKey, game.ID)
	} else {
		pipe.SRem(ctx, publicGamesKey, game.ID)
	}
}

// saveGameScript writes a game document and its index entries in one step.
// Returns nil when the game is missing and ARGV[5] is "1", otherwise the
// teacher the stored document belonged to before the write.
//
// KEYS: game, teacher games, public games, all games
// ARGV: document, game ID, score, public flag, must exist, teacher ID, teacher key prefix
var saveGameScript = redis.NewScript(`
local previous = ''
local old = redis.call('GET', KEYS[1])
if not old then
	if ARGV[5] == '1' then
		return false
	end
else
	local ok, doc = pcall(cjson.decode, old)
	if ok and type(doc) == 'table' and type(doc.teacherId) == 'string' then
		previous = doc.teacherId
	end
end

redis.call('SET', KEYS[1], ARGV[1])
if previous ~= '' and previous ~= ARGV[6] then
	redis.call('ZREM', ARGV[7] .. previous, ARGV[2])
end
redis.call('ZADD', KEYS[2], ARGV[3], ARGV[2])
redis.call('SADD', KEYS[4], ARGV[2])
if ARGV[4] == '1' then
	redis.call('SADD', KEYS[3], ARGV[2])
else
	redis.call('SREM', KEYS[3], ARGV[2])
end
return previous
`)

// deleteGameScript removes a game document and its index entries in one step.
// Returns nil when the game is missing, otherwise the owning teacher, which is
// empty for a document too broken to decode.
//
// KEYS: game, public games, all games
// ARGV: game ID, teacher key prefix
var deleteGameScript = redis.NewScript(`
local old = redis.call('GET', KEYS[1])
if not old then
	return false
end

local teacher = ''
local ok, doc = pcall(cjson.decode, old)
if ok and type(doc) == 'table' and type(doc.teacherId) == 'string' then
	teacher = doc.teacherId
end

redis.call('DEL', KEYS[1])
if teacher ~= '' then
	redis.call('ZREM', ARGV[2] .. teacher, ARGV[1])
end
redis.call('SREM', KEYS[2], ARGV[1])
redis.call('SREM', KEYS[3], ARGV[1])
return teacher
`)

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// saveGame stores an encoded game and returns the teacher who owned it
// before the write. Concurrent saves of the same game do not conflict: the
// last one wins.
func (r *redisRepository) saveGame(ctx context.Context, game *models.Game, mustExist bool) (string, error) {
	gameJSON, err := encodeGame(game)
	if err != nil {
		return "", fmt.Errorf("failed to marshal game: %w", err)
	}

	keys := []string{
		gameKey(game.ID),
		teacherGamesKey(game.TeacherID),
		publicGamesKey,
		allGamesKey,
	}
	previous, err := saveGameScript.Run(ctx, r.client, keys,
		gameJSON,
		game.ID,
		strconv.FormatInt(game.UpdatedAt.UnixNano(), 10),
		flag(game.IsPublic),
		flag(mustExist),
		game.TeacherID,
		teacherGamesKeyPrefix,
	).Text()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrGameNotFound
		}
		return "", err
	}
	return previous, nil
}

// publish tells every process following the teachers that their games
// changed. The write has already happened, so a cancelled caller context must
// not suppress the notification.
func (r *redisRepository) publish(ctx context.Context, gameID string, teacherIDs ...string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	seen := make(map[string]bool, len(teacherIDs))
	for _, teacherID := range teacherIDs {
		if teacherID == "" || seen[teacherID] {
			continue
		}
		seen[teacherID] = true
		if err := r.client.Publish(ctx, gameEventsChannel(teacherID), gameID).Err(); err != nil {
			log.Printf("Error publishing change for game %s to teacher %s: %v", gameID, teacherID, err)
		}
	}
}

// CreateGame persists a new game under a generated ID
func (r *redisRepository) CreateGame(ctx context.Context, input *CreateGameInput) (*CreateGameOutput, error) {
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

	gameJSON, err := encodeGame(game)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal game: %w", err)
	}

	key := gameKey(game.ID)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		exists, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if exists > 0 {
			return ErrGameExists
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, gameJSON, 0)
			writeIndexes(ctx, pipe, game)
			return nil
		})
		return err
	}, key)
	if err != nil {
		if errors.Is(err, ErrGameExists) {
			return nil, err
		}
		return nil, storeError("create game", err)
	}

	r.publish(ctx, game.ID, game.TeacherID)

	return &CreateGameOutput{GameID: game.ID}, nil
}

// UpdateGame replaces a stored game, keeping its creation time
func (r *redisRepository) UpdateGame(ctx context.Context, input *UpdateGameInput) error {
	if input == nil || input.Game == nil || input.GameID == "" {
		return errors.New("input, game and game ID cannot be empty")
	}

	game := input.Game.Clone()
	game.ID = input.GameID

	// the creation time never changes once stored
	raw, err := r.client.Get(ctx, gameKey(input.GameID)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		if !r.policy.UpsertOnUpdate {
			return ErrGameNotFound
		}
	case err != nil:
		return storeError("update game", err)
	default:
		existing, err := decodeGame(input.GameID, raw)
		if err != nil {
			return err
		}
		game.CreatedAt = existing.CreatedAt
	}

	now := r.clock.Now()
	if game.CreatedAt.IsZero() {
		game.CreatedAt = now
	}
	game.UpdatedAt = now

	previousTeacher, err := r.saveGame(ctx, game, !r.policy.UpsertOnUpdate)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return err
		}
		return storeError("update game", err)
	}

	r.publish(ctx, game.ID, previousTeacher, game.TeacherID)

	return nil
}

// GetGame retrieves a game by ID from Redis
func (r *redisRepository) GetGame(ctx context.Context, input *GetGameInput) (*GetGameOutput, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, gameKey(input.GameID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return &GetGameOutput{Found: false}, nil
		}
		return nil, storeError("get game", err)
	}

	game, err := decodeGame(input.GameID, raw)
	if err != nil {
		return nil, err
	}

	return &GetGameOutput{Game: game, Found: true}, nil
}

// fetchGames loads the given games in a single pipeline, skipping IDs that
// were deleted after they were listed
func (r *redisRepository) fetchGames(ctx context.Context, gameIDs []string) ([]*models.Game, error) {
	if len(gameIDs) == 0 {
		return []*models.Game{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(gameIDs))
	for i, id := range gameIDs {
		commands[i] = pipe.Get(ctx, gameKey(id))
	}

	// redis.Nil from a missing key is reported per command
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, err
	}

	games := make([]*models.Game, 0, len(gameIDs))
	for i, cmd := range commands {
		raw, err := cmd.Bytes()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				continue
			}
			return nil, fmt.Errorf("failed to get game %s: %w", gameIDs[i], err)
		}

		game, err := decodeGame(gameIDs[i], raw)
		if err != nil {
			return nil, err
		}
		games = append(games, game)
	}

	return games, nil
}

func (r *redisRepository) teacherGames(ctx context.Context, teacherID string) ([]*models.Game, error) {
	gameIDs, err := r.client.ZRevRange(ctx, teacherGamesKey(teacherID), 0, -1).Result()
	if err != nil {
		return nil, storeError("list teacher games", err)
	}

	games, err := r.fetchGames(ctx, gameIDs)
	if err != nil {
		if errors.Is(err, models.ErrMalformedData) {
			return nil, err
		}
		return nil, storeError("list teacher games", err)
	}

	sortByUpdatedDesc(games)
	return games, nil
}

// GetTeacherGames lists a teacher's games, most recently updated first
func (r *redisRepository) GetTeacherGames(ctx context.Context, input *GetTeacherGamesInput) (*GetTeacherGamesOutput, error) {
	if input == nil || input.TeacherID == "" {
		return nil, errors.New("input and teacher ID cannot be empty")
	}

	games, err := r.teacherGames(ctx, input.TeacherID)
	if err != nil {
		return nil, err
	}

	return &GetTeacherGamesOutput{Games: games}, nil
}

// GetPublicGames lists every public game
func (r *redisRepository) GetPublicGames(ctx context.Context, input *GetPublicGamesInput) (*GetPublicGamesOutput, error) {
	gameIDs, err := r.client.SMembers(ctx, publicGamesKey).Result()
	if err != nil {
		return nil, storeError("list public games", err)
	}

	games, err := r.fetchGames(ctx, gameIDs)
	if err != nil {
		if errors.Is(err, models.ErrMalformedData) {
			return nil, err
		}
		return nil, storeError("list public games", err)
	}

	sortByUpdatedDesc(games)
	return &GetPublicGamesOutput{Games: games}, nil
}

// DeleteGame removes a game and its index entries
func (r *redisRepository) DeleteGame(ctx context.Context, input *DeleteGameInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	keys := []string{gameKey(input.GameID), publicGamesKey, allGamesKey}
	teacherID, err := deleteGameScript.Run(ctx, r.client, keys, input.GameID, teacherGamesKeyPrefix).Text()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			if r.policy.StrictDelete {
				return ErrGameNotFound
			}
			return nil
		}
		return storeError("delete game", err)
	}

	r.publish(ctx, input.GameID, teacherID)

	return nil
}

// TogglePublicStatus sets the visibility flag and refreshes the update time
func (r *redisRepository) TogglePublicStatus(ctx context.Context, input *TogglePublicStatusInput) error {
	if input == nil || input.GameID == "" {
		return errors.New("input and game ID cannot be empty")
	}

	raw, err := r.client.Get(ctx, gameKey(input.GameID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrGameNotFound
		}
		return storeError("toggle public status", err)
	}

	game, err := decodeGame(input.GameID, raw)
	if err != nil {
		return err
	}
	game.IsPublic = input.IsPublic
	game.UpdatedAt = r.clock.Now()

	// a game deleted since the read stays deleted
	previousTeacher, err := r.saveGame(ctx, game, true)
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			return err
		}
		return storeError("toggle public status", err)
	}

	r.publish(ctx, game.ID, previousTeacher, game.TeacherID)

	return nil
}

// SearchGames matches games by their text, optionally for one teacher
func (r *redisRepository) SearchGames(ctx context.Context, input *SearchGamesInput) (*SearchGamesOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var games []*models.Game
	if input.TeacherID != "" {
		teacherGames, err := r.teacherGames(ctx, input.TeacherID)
		if err != nil {
			return nil, err
		}
		games = teacherGames
	} else {
		gameIDs, err := r.client.SMembers(ctx, allGamesKey).Result()
		if err != nil {
			return nil, storeError("search games", err)
		}
		games, err = r.fetchGames(ctx, gameIDs)
		if err != nil {
			if errors.Is(err, models.ErrMalformedData) {
				return nil, err
			}
			return nil, storeError("search games", err)
		}
	}

	matched := filterGames(games, input.Query)
	sortByUpdatedDesc(matched)

	return &SearchGamesOutput{Games: matched}, nil
}

// StreamTeacherGames subscribes to the teacher's change channel and re-reads
// the teacher's games on every published change
func (r *redisRepository) StreamTeacherGames(ctx context.Context, input *StreamTeacherGamesInput) (*Subscription, error) {
	if input == nil || input.TeacherID == "" {
		return nil, errors.New("input and teacher ID cannot be empty")
	}
	if r.subs.isDisposed() {
		return nil, ErrDisposed
	}

	pubsub := r.client.Subscribe(ctx, gameEventsChannel(input.TeacherID))
	// wait for the subscription to be confirmed so no change is missed
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, storeError("subscribe to teacher games", err)
	}

	sub := newSubscription(ctx, input.TeacherID, func(ctx context.Context) ([]*models.Game, error) {
		return r.teacherGames(ctx, input.TeacherID)
	})
	if err := r.subs.add(sub); err != nil {
		pubsub.Close()
		return nil, err
	}

	events := pubsub.Channel()
	go func() {
		for range events {
			sub.changed()
		}
	}()

	sub.start(func() {
		if err := pubsub.Close(); err != nil {
			log.Printf("Error closing subscription for teacher %s: %v", input.TeacherID, err)
		}
		r.subs.remove(sub)
	})

	return sub, nil
}

// Dispose closes every open subscription. The Redis client is owned by the
// caller and stays open.
func (r *redisRepository) Dispose() error {
	r.subs.dispose()
	return nil
}
