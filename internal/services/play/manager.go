package play

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/KirkDiggler/jeopardy/internal/common/uuid"
	"github.com/KirkDiggler/jeopardy/internal/models"
	"github.com/KirkDiggler/jeopardy/internal/services/board"
)

// Manager keeps the sessions running in this process
type Manager struct {
	boards board.Service
	uuid   uuid.UUID

	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewManager creates a new session manager
func NewManager(cfg *ManagerConfig) (*Manager, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.BoardService == nil {
		return nil, ErrNilBoardService
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &Manager{
		boards:   cfg.BoardService,
		uuid:     cfg.UUIDGenerator,
		sessions: make(map[string]*Session),
	}, nil
}

// Start loads a board and opens a session on it
func (m *Manager) Start(ctx context.Context, input *StartSessionInput) (*Session, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	out, err := m.boards.GetGame(ctx, &board.GetGameInput{GameID: input.GameID})
	if err != nil {
		return nil, err
	}

	session, err := NewSession(&SessionConfig{
		ID:            m.uuid.NewUUID(),
		Game:          out.Game,
		UUIDGenerator: m.uuid,
	})
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	m.sessions[session.ID()] = session
	m.mu.Unlock()

	log.Printf("Started session %s for game %s", session.ID(), input.GameID)
	return session, nil
}

// Get returns a running session
func (m *Manager) Get(sessionID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Finish ends a session and returns its final standings. With SaveProgress
// the answered state of the board is written back to the stored game.
func (m *Manager) Finish(ctx context.Context, input *FinishSessionInput) (*FinishSessionOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	session, err := m.Get(input.SessionID)
	if err != nil {
		return nil, err
	}

	if input.SaveProgress {
		if err := m.saveProgress(ctx, session.Game()); err != nil {
			return nil, err
		}
	}

	m.mu.Lock()
	delete(m.sessions, input.SessionID)
	m.mu.Unlock()

	log.Printf("Finished session %s", input.SessionID)
	return &FinishSessionOutput{
		Leaderboard: session.Standings(),
	}, nil
}

// saveProgress marks the questions played in a session as answered on the
// stored board. Questions are matched by position; other edits made to the
// board while the session ran are kept.
func (m *Manager) saveProgress(ctx context.Context, played *models.Game) error {
	out, err := m.boards.GetGame(ctx, &board.GetGameInput{GameID: played.ID})
	if err != nil {
		return err
	}
	stored := out.Game.Clone()

	for ci, category := range played.Categories {
		if ci >= len(stored.Categories) {
			break
		}
		questions := stored.Categories[ci].Questions
		for qi, q := range category.Questions {
			if qi >= len(questions) {
				break
			}
			if !q.IsAnswered || questions[qi] == nil {
				continue
			}

			respondent := models.WithoutRespondent()
			if q.AnsweredBy != nil {
				respondent = models.WithAnsweredBy(*q.AnsweredBy)
			}
			questions[qi] = questions[qi].CopyWith(models.WithAnswered(true), respondent)
		}
	}

	_, err = m.boards.SaveGame(ctx, &board.SaveGameInput{Game: stored})
	return err
}
