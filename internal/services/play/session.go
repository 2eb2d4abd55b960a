package play

import (
	"fmt"
	"sort"
	"sync"

	"github.com/KirkDiggler/jeopardy/internal/common/uuid"
	"github.com/KirkDiggler/jeopardy/internal/models"
)

type position struct {
	category int
	question int
}

// Session is a live game in progress. Players and scores only live here;
// the board is a private copy of the stored game.
type Session struct {
	id   string
	uuid uuid.UUID

	mu        sync.RWMutex
	game      *models.Game
	players   map[string]*models.Player
	order     []string
	stats     map[string]*models.PlayerStats
	attempted map[position]map[string]bool
}

// NewSession starts a session on a copy of cfg.Game
func NewSession(cfg *SessionConfig) (*Session, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.Game == nil {
		return nil, ErrNilGame
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &Session{
		id:        cfg.ID,
		uuid:      cfg.UUIDGenerator,
		game:      cfg.Game.Clone(),
		players:   make(map[string]*models.Player),
		stats:     make(map[string]*models.PlayerStats),
		attempted: make(map[position]map[string]bool),
	}, nil
}

// ID returns the session identifier
func (s *Session) ID() string {
	return s.id
}

// Game returns a copy of the board with the current answered state
func (s *Session) Game() *models.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.game.Clone()
}

// Players returns copies of the players in join order
func (s *Session) Players() []*models.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	players := make([]*models.Player, 0, len(s.order))
	for _, id := range s.order {
		p := *s.players[id]
		players = append(players, &p)
	}
	return players
}

// AddPlayer joins a new player with a zero score
func (s *Session) AddPlayer(input *AddPlayerInput) (*AddPlayerOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}
	if input.Name == "" {
		return nil, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player := &models.Player{
		ID:   s.uuid.NewUUID(),
		Name: input.Name,
	}
	s.players[player.ID] = player
	s.order = append(s.order, player.ID)
	s.stats[player.ID] = &models.PlayerStats{
		PlayerID:   player.ID,
		PlayerName: player.Name,
	}

	p := *player
	return &AddPlayerOutput{Player: &p}, nil
}

// RenamePlayer changes a player's display name
func (s *Session) RenamePlayer(input *RenamePlayerInput) error {
	if input == nil {
		return ErrNilConfig
	}
	if input.Name == "" {
		return ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	player, ok := s.players[input.PlayerID]
	if !ok {
		return ErrPlayerNotFound
	}
	player.Name = input.Name
	s.stats[player.ID].PlayerName = input.Name

	return nil
}

// question returns the question at pos; callers must hold the lock
func (s *Session) question(pos position) (*models.Question, error) {
	if pos.category < 0 || pos.category >= len(s.game.Categories) {
		return nil, ErrOutOfRange
	}
	questions := s.game.Categories[pos.category].Questions
	if pos.question < 0 || pos.question >= len(questions) {
		return nil, ErrOutOfRange
	}
	return questions[pos.question], nil
}

// maxWager is the largest daily double wager a player may make. It is never
// below MinDailyDoubleWager. Callers must hold the lock.
func (s *Session) maxWager(player *models.Player) int {
	limit := s.game.HighestValue()
	if player.Score > limit {
		limit = player.Score
	}
	if limit < MinDailyDoubleWager {
		limit = MinDailyDoubleWager
	}
	return limit
}

// AnswerQuestion scores a player's response. A correct response closes the
// question. A wrong response on a regular question leaves it open for the
// other players; on a daily double it closes the question.
func (s *Session) AnswerQuestion(input *AnswerQuestionInput) (*AnswerQuestionOutput, error) {
	if input == nil {
		return nil, ErrNilConfig
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos := position{category: input.CategoryIndex, question: input.QuestionIndex}
	q, err := s.question(pos)
	if err != nil {
		return nil, err
	}
	if q.IsAnswered {
		return nil, ErrQuestionAlreadyAnswered
	}

	player, ok := s.players[input.PlayerID]
	if !ok {
		return nil, ErrPlayerNotFound
	}
	if s.attempted[pos][player.ID] {
		return nil, ErrAlreadyAttempted
	}

	value := q.Points
	if q.IsDailyDouble {
		limit := s.maxWager(player)
		if input.Wager < MinDailyDoubleWager || input.Wager > limit {
			return nil, fmt.Errorf("%w: must be between %d and %d", ErrInvalidWager, MinDailyDoubleWager, limit)
		}
		value = input.Wager
	}

	delta := value
	stats := s.stats[player.ID]
	if input.Correct {
		stats.CorrectAnswers++
		s.game.Categories[pos.category].Questions[pos.question] = q.CopyWith(
			models.WithAnswered(true),
			models.WithAnsweredBy(player.ID),
		)
	} else {
		delta = -value
		stats.IncorrectAnswers++
		if s.attempted[pos] == nil {
			s.attempted[pos] = make(map[string]bool)
		}
		s.attempted[pos][player.ID] = true
		if q.IsDailyDouble {
			s.game.Categories[pos.category].Questions[pos.question] = q.CopyWith(
				models.WithAnswered(true),
				models.WithoutRespondent(),
			)
		}
	}

	player.Score += delta
	stats.Score = player.Score

	p := *player
	return &AnswerQuestionOutput{
		Question: s.game.Categories[pos.category].Questions[pos.question].CopyWith(),
		Player:   &p,
		Delta:    delta,
	}, nil
}

// PassQuestion closes a question nobody answered
func (s *Session) PassQuestion(input *PassQuestionInput) error {
	if input == nil {
		return ErrNilConfig
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	pos := position{category: input.CategoryIndex, question: input.QuestionIndex}
	q, err := s.question(pos)
	if err != nil {
		return err
	}
	if q.IsAnswered {
		return ErrQuestionAlreadyAnswered
	}

	s.game.Categories[pos.category].Questions[pos.question] = q.CopyWith(
		models.WithAnswered(true),
		models.WithoutRespondent(),
	)
	return nil
}

// Remaining returns the number of questions still open
func (s *Session) Remaining() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, c := range s.game.Categories {
		for _, q := range c.Questions {
			if !q.IsAnswered {
				n++
			}
		}
	}
	return n
}

// Standings returns the leaderboard, highest score first. Ties keep join order.
func (s *Session) Standings() *models.Leaderboard {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := make([]*models.PlayerStats, 0, len(s.order))
	for _, id := range s.order {
		st := *s.stats[id]
		stats = append(stats, &st)
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Score > stats[j].Score
	})

	return &models.Leaderboard{
		GameID:      s.game.ID,
		PlayerStats: stats,
	}
}
