package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/jeopardy/internal/common/clock"
	"github.com/KirkDiggler/jeopardy/internal/common/uuid"
	"github.com/KirkDiggler/jeopardy/internal/config"
	"github.com/KirkDiggler/jeopardy/internal/dice"
	"github.com/KirkDiggler/jeopardy/internal/handlers/api"
	"github.com/KirkDiggler/jeopardy/internal/repositories/game"
	"github.com/KirkDiggler/jeopardy/internal/services/board"
	"github.com/KirkDiggler/jeopardy/internal/services/play"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	gin.SetMode(cfg.GinMode)

	policy := game.Policy{
		UpsertOnUpdate: cfg.UpsertOnUpdate,
		StrictDelete:   cfg.StrictDelete,
	}

	// Initialize game repository
	gameRepo, closeStore, err := newGameRepo(cfg, policy)
	if err != nil {
		log.Fatalf("Failed to create game repository: %v", err)
	}
	defer closeStore()

	// Initialize services
	boardSvc, err := board.New(&board.Config{
		GameRepo:   gameRepo,
		DiceRoller: dice.New(&dice.Config{}),
		Clock:      clock.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create board service: %v", err)
	}

	sessions, err := play.NewManager(&play.ManagerConfig{
		BoardService:  boardSvc,
		UUIDGenerator: uuid.New(),
	})
	if err != nil {
		log.Fatalf("Failed to create session manager: %v", err)
	}

	handler, err := api.New(&api.Config{
		BoardService: boardSvc,
		Sessions:     sessions,
	})
	if err != nil {
		log.Fatalf("Failed to create API handler: %v", err)
	}

	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: api.NewRouter(handler),
	}

	go func() {
		log.Printf("Server starting on %s (store: %s)", cfg.HTTPAddr, cfg.Store)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	// Close subscriptions first so open game streams end
	if err := gameRepo.Dispose(); err != nil {
		log.Printf("Error disposing game repository: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Error shutting down server: %v", err)
	}

	log.Println("Server has been shut down")
}

// newGameRepo builds the configured store and returns a function releasing
// its connections
func newGameRepo(cfg *config.Config, policy game.Policy) (game.Repository, func(), error) {
	switch cfg.Store {
	case config.StoreSQL:
		db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
		if err != nil {
			return nil, nil, err
		}

		repo, err := game.NewSQL(&game.SQLConfig{
			DB:          db,
			AutoMigrate: true,
			Policy:      policy,
		})
		if err != nil {
			return nil, nil, err
		}

		return repo, func() {
			if sqlDB, err := db.DB(); err == nil {
				sqlDB.Close()
			}
		}, nil

	case config.StoreMemory:
		log.Println("Using in-memory store; games are lost on restart")
		return game.NewMemory(&game.MemoryConfig{Policy: policy}), func() {}, nil

	default:
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		// Test Redis connection
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := redisClient.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}

		repo, err := game.NewRedis(&game.Config{
			RedisClient: redisClient,
			Policy:      policy,
		})
		if err != nil {
			return nil, nil, err
		}

		return repo, func() {
			redisClient.Close()
		}, nil
	}
}
