package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/KirkDiggler/jeopardy/internal/common/clock"
	"github.com/KirkDiggler/jeopardy/internal/common/uuid"
	"github.com/KirkDiggler/jeopardy/internal/dice"
	"github.com/KirkDiggler/jeopardy/internal/models"
	gameRepo "github.com/KirkDiggler/jeopardy/internal/repositories/game"
	"github.com/KirkDiggler/jeopardy/internal/services/board"
	boardMocks "github.com/KirkDiggler/jeopardy/internal/services/board/mocks"
	"github.com/KirkDiggler/jeopardy/internal/services/play"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HandlerTestSuite struct {
	suite.Suite
	repo   gameRepo.Repository
	router *gin.Engine
}

func (s *HandlerTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

func (s *HandlerTestSuite) SetupTest() {
	s.repo = gameRepo.NewMemory(&gameRepo.MemoryConfig{})

	boardService, err := board.New(&board.Config{
		GameRepo:   s.repo,
		DiceRoller: dice.New(&dice.Config{Seed: 42}),
		Clock:      clock.New(),
	})
	s.Require().NoError(err)

	sessions, err := play.NewManager(&play.ManagerConfig{
		BoardService:  boardService,
		UUIDGenerator: uuid.New(),
	})
	s.Require().NoError(err)

	h, err := New(&Config{BoardService: boardService, Sessions: sessions})
	s.Require().NoError(err)

	s.router = gin.New()
	h.Register(s.router)
}

func (s *HandlerTestSuite) TearDownTest() {
	s.Require().NoError(s.repo.Dispose())
}

func (s *HandlerTestSuite) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *HandlerTestSuite) decode(rec *httptest.ResponseRecorder, v interface{}) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), v))
}

// createBoard creates a game with one category of two questions
func (s *HandlerTestSuite) createBoard(teacherID, title string) *models.Game {
	rec := s.do(http.MethodPost, "/games", gin.H{"teacherId": teacherID, "title": title})
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var game models.Game
	s.decode(rec, &game)

	rec = s.do(http.MethodPost, "/games/"+game.ID+"/categories", gin.H{
		"name": "Planets",
		"questions": []gin.H{
			{"question": "Largest planet", "answer": "Jupiter", "points": 100},
			{"question": "Red planet", "answer": "Mars", "points": 200},
		},
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.decode(rec, &game)

	return &game
}

func (s *HandlerTestSuite) TestCreateAndGetGame() {
	rec := s.do(http.MethodPost, "/games", gin.H{"teacherId": "teacher-1"})
	s.Require().Equal(http.StatusCreated, rec.Code)

	var created models.Game
	s.decode(rec, &created)
	s.NotEmpty(created.ID)
	s.Equal(models.DefaultGameTitle, created.Title)
	s.Empty(created.Categories)

	rec = s.do(http.MethodGet, "/games/"+created.ID, nil)
	s.Require().Equal(http.StatusOK, rec.Code)

	var fetched models.Game
	s.decode(rec, &fetched)
	s.Equal(created.ID, fetched.ID)
	s.Equal("teacher-1", fetched.TeacherID)
}

func (s *HandlerTestSuite) TestCreateGame_RequiresTeacher() {
	rec := s.do(http.MethodPost, "/games", gin.H{"title": "Orphan"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestGetGame_NotFound() {
	rec := s.do(http.MethodGet, "/games/missing", nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestSaveGame_Validation() {
	game := s.createBoard("teacher-1", "Science")
	game.Categories[0].Questions[0].Points = -1

	rec := s.do(http.MethodPut, "/games/"+game.ID, game)
	s.Require().Equal(http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Fields []board.FieldError `json:"fields"`
	}
	s.decode(rec, &body)
	s.Require().Len(body.Fields, 1)
	s.Equal("gte", body.Fields[0].Rule)
}

func (s *HandlerTestSuite) TestSaveGame_UsesPathID() {
	game := s.createBoard("teacher-1", "Science")
	game.Title = "Astronomy"
	id := game.ID
	game.ID = "ignored"

	rec := s.do(http.MethodPut, "/games/"+id, game)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var saved models.Game
	s.decode(rec, &saved)
	s.Equal(id, saved.ID)
	s.Equal("Astronomy", saved.Title)
}

func (s *HandlerTestSuite) TestUpdateQuestion() {
	game := s.createBoard("teacher-1", "Science")

	rec := s.do(http.MethodPatch, "/games/"+game.ID+"/categories/0/questions/1", gin.H{"answer": "The red planet"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var saved models.Game
	s.decode(rec, &saved)
	s.Equal("The red planet", saved.Categories[0].Questions[1].Answer)
	s.Equal(200, saved.Categories[0].Questions[1].Points)

	rec = s.do(http.MethodPatch, "/games/"+game.ID+"/categories/0/questions/9", gin.H{"answer": "x"})
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodPatch, "/games/"+game.ID+"/categories/first/questions/0", gin.H{"answer": "x"})
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *HandlerTestSuite) TestFinalRound() {
	game := s.createBoard("teacher-1", "Science")

	rec := s.do(http.MethodPut, "/games/"+game.ID+"/final-round", gin.H{
		"category": "Space", "question": "Closest star", "answer": "The Sun",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var saved models.Game
	s.decode(rec, &saved)
	s.Require().NotNil(saved.FinalJeopardy)

	rec = s.do(http.MethodDelete, "/games/"+game.ID+"/final-round", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	saved = models.Game{}
	s.decode(rec, &saved)
	s.Nil(saved.FinalJeopardy)
}

func (s *HandlerTestSuite) TestPlaceDailyDoubles() {
	game := s.createBoard("teacher-1", "Science")

	rec := s.do(http.MethodPost, "/games/"+game.ID+"/daily-doubles", nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var saved models.Game
	s.decode(rec, &saved)
	count := 0
	for _, q := range saved.Categories[0].Questions {
		if q.IsDailyDouble {
			count++
		}
	}
	s.Equal(1, count)

	rec = s.do(http.MethodPost, "/games/"+game.ID+"/daily-doubles", gin.H{"count": 3})
	s.Equal(http.StatusConflict, rec.Code)
}

func (s *HandlerTestSuite) TestListings() {
	first := s.createBoard("teacher-1", "Science")
	s.createBoard("teacher-1", "History")
	s.createBoard("teacher-2", "Music")

	rec := s.do(http.MethodPut, "/games/"+first.ID+"/visibility", gin.H{"isPublic": true})
	s.Require().Equal(http.StatusNoContent, rec.Code)

	var list gamesResponse
	rec = s.do(http.MethodGet, "/teachers/teacher-1/games", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	s.decode(rec, &list)
	s.Require().Len(list.Games, 2)
	// the visibility change made Science the most recently updated
	s.Equal("Science", list.Games[0].Title)

	rec = s.do(http.MethodGet, "/games/public", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	list = gamesResponse{}
	s.decode(rec, &list)
	s.Require().Len(list.Games, 1)
	s.Equal(first.ID, list.Games[0].ID)

	rec = s.do(http.MethodGet, "/games/search?q=JUPITER&teacher=teacher-2", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	list = gamesResponse{}
	s.decode(rec, &list)
	s.Require().Len(list.Games, 1)
	s.Equal("Music", list.Games[0].Title)
}

func (s *HandlerTestSuite) TestSetVisibility_RequiresFlag() {
	game := s.createBoard("teacher-1", "Science")

	rec := s.do(http.MethodPut, "/games/"+game.ID+"/visibility", gin.H{})
	s.Equal(http.StatusBadRequest, rec.Code)

	rec = s.do(http.MethodPut, "/games/missing/visibility", gin.H{"isPublic": true})
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *HandlerTestSuite) TestDeleteGame() {
	game := s.createBoard("teacher-1", "Science")

	rec := s.do(http.MethodDelete, "/games/"+game.ID, nil)
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, "/games/"+game.ID, nil)
	s.Equal(http.StatusNotFound, rec.Code)

	// deleting again is a no-op by default
	rec = s.do(http.MethodDelete, "/games/"+game.ID, nil)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *HandlerTestSuite) TestLiveSession() {
	game := s.createBoard("teacher-1", "Science")

	rec := s.do(http.MethodPost, "/games/"+game.ID+"/sessions", nil)
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var session sessionResponse
	s.decode(rec, &session)
	s.Equal(2, session.Remaining)
	base := "/sessions/" + session.SessionID

	rec = s.do(http.MethodPost, base+"/players", gin.H{"name": "Alice"})
	s.Require().Equal(http.StatusCreated, rec.Code)
	var alice models.Player
	s.decode(rec, &alice)

	rec = s.do(http.MethodPut, base+"/players/"+alice.ID, gin.H{"name": "Alicia"})
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodPost, base+"/answers", gin.H{"categoryIndex": 0, "questionIndex": 1, "playerId": alice.ID, "correct": true})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodPost, base+"/answers", gin.H{"categoryIndex": 0, "questionIndex": 1, "playerId": alice.ID, "correct": true})
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, base+"/passes", gin.H{"categoryIndex": 0, "questionIndex": 0})
	s.Require().Equal(http.StatusNoContent, rec.Code)

	rec = s.do(http.MethodGet, base+"/standings", nil)
	s.Require().Equal(http.StatusOK, rec.Code)
	var standings models.Leaderboard
	s.decode(rec, &standings)
	s.Require().Len(standings.PlayerStats, 1)
	s.Equal("Alicia", standings.PlayerStats[0].PlayerName)
	s.Equal(200, standings.PlayerStats[0].Score)

	rec = s.do(http.MethodPost, base+"/finish", gin.H{"saveProgress": true})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	rec = s.do(http.MethodGet, base, nil)
	s.Equal(http.StatusNotFound, rec.Code)

	rec = s.do(http.MethodGet, "/games/"+game.ID, nil)
	var stored models.Game
	s.decode(rec, &stored)
	s.True(stored.Categories[0].Questions[0].IsAnswered)
	s.Require().NotNil(stored.Categories[0].Questions[1].AnsweredBy)
	s.Equal(alice.ID, *stored.Categories[0].Questions[1].AnsweredBy)
}

type streamFrame struct {
	Type    string         `json:"type"`
	Payload []*models.Game `json:"payload"`
}

func (s *HandlerTestSuite) TestStreamTeacherGames() {
	server := httptest.NewServer(s.router)
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/teachers/teacher-1/games/stream"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	s.Require().NoError(err)
	defer conn.Close()

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))

	var frame streamFrame
	s.Require().NoError(conn.ReadJSON(&frame))
	s.Equal(MessageTypeGames, frame.Type)
	s.Empty(frame.Payload)

	rec := s.do(http.MethodPost, "/games", gin.H{"teacherId": "teacher-1", "title": "Science"})
	s.Require().Equal(http.StatusCreated, rec.Code)

	frame = streamFrame{}
	s.Require().NoError(conn.ReadJSON(&frame))
	s.Require().Len(frame.Payload, 1)
	s.Equal("Science", frame.Payload[0].Title)

	// disposing the store ends the stream with a close frame
	s.Require().NoError(s.repo.Dispose())
	_, _, err = conn.ReadMessage()
	s.True(websocket.IsCloseError(err, websocket.CloseGoingAway), "unexpected error: %v", err)
}

func (s *HandlerTestSuite) TestStreamAfterDispose() {
	s.Require().NoError(s.repo.Dispose())

	rec := s.do(http.MethodGet, "/teachers/teacher-1/games/stream", nil)
	s.Equal(http.StatusServiceUnavailable, rec.Code)
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}

func TestWriteError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "store failure", err: &gameRepo.StoreError{Op: "get game", Err: errors.New("connection refused")}, status: http.StatusBadGateway},
		{name: "malformed data", err: &models.MalformedDataError{Entity: "game", Field: "title", Reason: "missing"}, status: http.StatusUnprocessableEntity},
		{name: "not found", err: board.ErrGameNotFound, status: http.StatusNotFound},
		{name: "disposed", err: gameRepo.ErrDisposed, status: http.StatusServiceUnavailable},
		{name: "unknown", err: errors.New("boom"), status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockBoard := boardMocks.NewMockService(ctrl)
			mockBoard.EXPECT().GetGame(gomock.Any(), &board.GetGameInput{GameID: "game-1"}).Return(nil, tt.err)

			sessions, err := play.NewManager(&play.ManagerConfig{BoardService: mockBoard, UUIDGenerator: uuid.New()})
			if err != nil {
				t.Fatal(err)
			}
			h, err := New(&Config{BoardService: mockBoard, Sessions: sessions})
			if err != nil {
				t.Fatal(err)
			}
			router := gin.New()
			h.Register(router)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/games/game-1", nil))

			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (body %s)", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}
