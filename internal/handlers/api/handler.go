package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/KirkDiggler/jeopardy/internal/models"
	gameRepo "github.com/KirkDiggler/jeopardy/internal/repositories/game"
	"github.com/KirkDiggler/jeopardy/internal/services/board"
	"github.com/KirkDiggler/jeopardy/internal/services/play"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Config holds configuration for the HTTP handlers
type Config struct {
	BoardService board.Service
	Sessions     *play.Manager

	// CheckOrigin decides which browser origins may open the game stream.
	// Nil allows every origin.
	CheckOrigin func(r *http.Request) bool
}

// Handler serves the board and live play API
type Handler struct {
	boardService board.Service
	sessions     *play.Manager
	upgrader     websocket.Upgrader
}

// New creates a new API handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.BoardService == nil {
		return nil, errors.New("board service cannot be nil")
	}

	if cfg.Sessions == nil {
		return nil, errors.New("session manager cannot be nil")
	}

	checkOrigin := cfg.CheckOrigin
	if checkOrigin == nil {
		checkOrigin = func(r *http.Request) bool { return true }
	}

	return &Handler{
		boardService: cfg.BoardService,
		sessions:     cfg.Sessions,
		upgrader: websocket.Upgrader{
			CheckOrigin: checkOrigin,
		},
	}, nil
}

// Register adds the API routes to router
func (h *Handler) Register(router *gin.Engine) {
	games := router.Group("/games")
	{
		games.POST("", h.CreateGame)
		games.GET("/public", h.ListPublicGames)
		games.GET("/search", h.SearchGames)
		games.GET("/:id", h.GetGame)
		games.PUT("/:id", h.SaveGame)
		games.DELETE("/:id", h.DeleteGame)
		games.PUT("/:id/visibility", h.SetVisibility)
		games.POST("/:id/categories", h.AddCategory)
		games.PATCH("/:id/categories/:category/questions/:question", h.UpdateQuestion)
		games.PUT("/:id/final-round", h.SetFinalRound)
		games.DELETE("/:id/final-round", h.ClearFinalRound)
		games.POST("/:id/daily-doubles", h.PlaceDailyDoubles)
		games.POST("/:id/sessions", h.StartSession)
	}

	teachers := router.Group("/teachers/:teacherID")
	{
		teachers.GET("/games", h.ListTeacherGames)
		teachers.GET("/games/stream", h.StreamTeacherGames)
	}

	sessions := router.Group("/sessions/:sessionID")
	{
		sessions.GET("", h.GetSession)
		sessions.POST("/players", h.AddPlayer)
		sessions.PUT("/players/:playerID", h.RenamePlayer)
		sessions.POST("/answers", h.AnswerQuestion)
		sessions.POST("/passes", h.PassQuestion)
		sessions.GET("/standings", h.Standings)
		sessions.POST("/finish", h.FinishSession)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// NewRouter returns a gin engine with recovery, request logging and the API routes
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	h.Register(router)
	return router
}

// writeError maps service errors to HTTP responses
func writeError(c *gin.Context, err error) {
	var validationErr *board.ValidationError
	var storeErr *gameRepo.StoreError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error(), "fields": validationErr.Fields})
	case errors.Is(err, board.ErrGameNotFound),
		errors.Is(err, board.ErrCategoryNotFound),
		errors.Is(err, board.ErrQuestionNotFound),
		errors.Is(err, play.ErrSessionNotFound),
		errors.Is(err, play.ErrPlayerNotFound),
		errors.Is(err, play.ErrOutOfRange):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, board.ErrNotEnoughQuestions),
		errors.Is(err, play.ErrQuestionAlreadyAnswered),
		errors.Is(err, play.ErrAlreadyAttempted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, board.ErrInvalidDailyDoubles),
		errors.Is(err, play.ErrInvalidWager),
		errors.Is(err, play.ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrMalformedData):
		log.Printf("Stored game is malformed: %v", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &storeErr):
		log.Printf("Store failure: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "storage unavailable"})
	case errors.Is(err, gameRepo.ErrDisposed):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		log.Printf("Unhandled error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
