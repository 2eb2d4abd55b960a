package game

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	clockMocks "github.com/KirkDiggler/jeopardy/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/jeopardy/internal/common/uuid/mocks"
	"github.com/KirkDiggler/jeopardy/internal/models"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const emissionTimeout = 2 * time.Second

// RepositoryContractSuite holds the behaviour every Repository implementation
// must share. Implementation suites embed it and set newRepo in SetupTest.
type RepositoryContractSuite struct {
	suite.Suite
	ctx       context.Context
	mockCtrl  *gomock.Controller
	mockClock *clockMocks.MockClock
	mockUUID  *uuidMocks.MockUUID
	testNow   time.Time
	nextID    int

	newRepo func(policy Policy) Repository
	repo    Repository
	repos   []Repository
}

func (s *RepositoryContractSuite) setupDeps() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)
	s.testNow = time.Date(2025, 4, 5, 10, 0, 0, 0, time.UTC)
	s.nextID = 0
	s.repos = nil

	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time {
		return s.testNow
	}).AnyTimes()
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		s.nextID++
		return fmt.Sprintf("game-%d", s.nextID)
	}).AnyTimes()
}

// open builds a repository with the given policy and disposes it after the test
func (s *RepositoryContractSuite) open(policy Policy) Repository {
	repo := s.newRepo(policy)
	s.repos = append(s.repos, repo)
	return repo
}

func (s *RepositoryContractSuite) TearDownTest() {
	for _, repo := range s.repos {
		s.NoError(repo.Dispose())
	}
}

func (s *RepositoryContractSuite) advance(d time.Duration) {
	s.testNow = s.testNow.Add(d)
}

func (s *RepositoryContractSuite) sampleGame(teacherID, title string) *models.Game {
	game := models.NewGame(teacherID, time.Time{})
	game.Title = title
	game.Categories = []*models.Category{
		{
			Name: "Planets",
			Questions: []*models.Question{
				{Text: "The red planet", Answer: "What is Mars?", Points: 200},
				{Text: "The ringed planet", Answer: "What is Saturn?", Points: 400, IsDailyDouble: true},
			},
		},
		{
			Name: "Elements",
			Questions: []*models.Question{
				{Text: "Symbol O", Answer: "What is oxygen?", Points: 200},
			},
		},
	}
	game.FinalJeopardy = &models.FinalRound{
		Category: "Explorers",
		Question: "First on the moon",
		Answer:   "Who is Neil Armstrong?",
	}
	return game
}

func (s *RepositoryContractSuite) create(game *models.Game) string {
	out, err := s.repo.CreateGame(s.ctx, &CreateGameInput{Game: game})
	s.Require().NoError(err)
	s.Require().NotNil(out)
	return out.GameID
}

func (s *RepositoryContractSuite) get(id string) *models.Game {
	out, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: id})
	s.Require().NoError(err)
	s.Require().True(out.Found, "game %s not found", id)
	return out.Game
}

func (s *RepositoryContractSuite) ids(games []*models.Game) []string {
	ids := make([]string, 0, len(games))
	for _, g := range games {
		ids = append(ids, g.ID)
	}
	return ids
}

func (s *RepositoryContractSuite) nextEmission(sub *Subscription) []*models.Game {
	select {
	case games, ok := <-sub.Updates():
		s.Require().True(ok, "subscription closed unexpectedly")
		return games
	case err := <-sub.Errors():
		s.FailNow("subscription error", err.Error())
	case <-time.After(emissionTimeout):
		s.FailNow("timed out waiting for emission")
	}
	return nil
}

func (s *RepositoryContractSuite) requireClosed(sub *Subscription) {
	select {
	case _, ok := <-sub.Updates():
		s.Require().False(ok, "expected subscription to be closed")
	case <-time.After(emissionTimeout):
		s.FailNow("timed out waiting for subscription to close")
	}
}

func (s *RepositoryContractSuite) TestCreateAndGetGame() {
	game := s.sampleGame("teacher-1", "Science Review")

	id := s.create(game)
	s.Equal("game-1", id)
	s.Equal("", game.ID, "input game must not be modified")

	stored := s.get(id)
	s.Equal(id, stored.ID)
	s.Equal("Science Review", stored.Title)
	s.Equal("teacher-1", stored.TeacherID)
	s.Equal(game.Categories, stored.Categories)
	s.Equal(game.FinalJeopardy, stored.FinalJeopardy)
	s.True(s.testNow.Equal(stored.CreatedAt))
	s.True(s.testNow.Equal(stored.UpdatedAt))
	s.False(stored.IsPublic)
}

func (s *RepositoryContractSuite) TestCreateKeepsProvidedTimestamps() {
	game := s.sampleGame("teacher-1", "Imported")
	game.CreatedAt = s.testNow.Add(-48 * time.Hour)
	game.UpdatedAt = s.testNow.Add(-24 * time.Hour)

	stored := s.get(s.create(game))
	s.True(game.CreatedAt.Equal(stored.CreatedAt))
	s.True(game.UpdatedAt.Equal(stored.UpdatedAt))
}

func (s *RepositoryContractSuite) TestCreateGeneratesDistinctIDs() {
	first := s.create(s.sampleGame("teacher-1", "One"))
	second := s.create(s.sampleGame("teacher-1", "Two"))
	s.NotEqual(first, second)
}

func (s *RepositoryContractSuite) TestGetMissingGame() {
	out, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.Require().NoError(err)
	s.False(out.Found)
	s.Nil(out.Game)
}

func (s *RepositoryContractSuite) TestReturnedGamesAreIndependent() {
	id := s.create(s.sampleGame("teacher-1", "Original"))

	first := s.get(id)
	first.Title = "Mutated"
	first.Categories[0].Questions[0].Points = 9999

	second := s.get(id)
	s.Equal("Original", second.Title)
	s.Equal(200, second.Categories[0].Questions[0].Points)
}

func (s *RepositoryContractSuite) TestUpdateGame() {
	id := s.create(s.sampleGame("teacher-1", "Draft"))
	createdAt := s.testNow

	s.advance(time.Hour)
	edited := s.get(id)
	edited.Title = "Final"
	edited.Categories = edited.Categories[:1]
	edited.Categories[0].Questions[0] = edited.Categories[0].Questions[0].CopyWith(
		models.WithAnswered(true),
		models.WithAnsweredBy("player-1"),
	)
	edited.FinalJeopardy = nil
	edited.CreatedAt = time.Time{}

	s.Require().NoError(s.repo.UpdateGame(s.ctx, &UpdateGameInput{GameID: id, Game: edited}))

	stored := s.get(id)
	s.Equal("Final", stored.Title)
	s.Len(stored.Categories, 1)
	s.True(stored.Categories[0].Questions[0].IsAnswered)
	s.Require().NotNil(stored.Categories[0].Questions[0].AnsweredBy)
	s.Equal("player-1", *stored.Categories[0].Questions[0].AnsweredBy)
	s.Nil(stored.FinalJeopardy)
	s.True(createdAt.Equal(stored.CreatedAt), "creation time is kept")
	s.True(s.testNow.Equal(stored.UpdatedAt), "update time is refreshed")
}

func (s *RepositoryContractSuite) TestUpdateMissingGameFails() {
	err := s.repo.UpdateGame(s.ctx, &UpdateGameInput{
		GameID: "missing",
		Game:   s.sampleGame("teacher-1", "Ghost"),
	})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrGameNotFound))

	out, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: "missing"})
	s.Require().NoError(err)
	s.False(out.Found)
}

func (s *RepositoryContractSuite) TestUpsertPolicyCreatesMissingGame() {
	s.repo = s.open(Policy{UpsertOnUpdate: true})

	err := s.repo.UpdateGame(s.ctx, &UpdateGameInput{
		GameID: "chosen-id",
		Game:   s.sampleGame("teacher-1", "Upserted"),
	})
	s.Require().NoError(err)

	stored := s.get("chosen-id")
	s.Equal("Upserted", stored.Title)

	games, err := s.repo.GetTeacherGames(s.ctx, &GetTeacherGamesInput{TeacherID: "teacher-1"})
	s.Require().NoError(err)
	s.Equal([]string{"chosen-id"}, s.ids(games.Games))
}

func (s *RepositoryContractSuite) TestDeleteGame() {
	id := s.create(s.sampleGame("teacher-1", "Doomed"))
	s.Require().NoError(s.repo.TogglePublicStatus(s.ctx, &TogglePublicStatusInput{GameID: id, IsPublic: true}))

	s.Require().NoError(s.repo.DeleteGame(s.ctx, &DeleteGameInput{GameID: id}))

	out, err := s.repo.GetGame(s.ctx, &GetGameInput{GameID: id})
	s.Require().NoError(err)
	s.False(out.Found)

	teacherGames, err := s.repo.GetTeacherGames(s.ctx, &GetTeacherGamesInput{TeacherID: "teacher-1"})
	s.Require().NoError(err)
	s.Empty(teacherGames.Games)

	publicGames, err := s.repo.GetPublicGames(s.ctx, &GetPublicGamesInput{})
	s.Require().NoError(err)
	s.Empty(publicGames.Games)
}

func (s *RepositoryContractSuite) TestDeleteMissingGameIsNoOp() {
	s.NoError(s.repo.DeleteGame(s.ctx, &DeleteGameInput{GameID: "missing"}))
}

func (s *RepositoryContractSuite) TestStrictDeletePolicy() {
	s.repo = s.open(Policy{StrictDelete: true})

	err := s.repo.DeleteGame(s.ctx, &DeleteGameInput{GameID: "missing"})
	s.True(errors.Is(err, ErrGameNotFound))
}

func (s *RepositoryContractSuite) TestTeacherGamesOrderedByUpdateTime() {
	base := s.testNow
	a := s.sampleGame("teacher-1", "A")
	a.UpdatedAt = base.Add(1 * time.Minute)
	b := s.sampleGame("teacher-1", "B")
	b.UpdatedAt = base.Add(3 * time.Minute)
	c := s.sampleGame("teacher-1", "C")
	c.UpdatedAt = base.Add(2 * time.Minute)
	other := s.sampleGame("teacher-2", "Other")

	idA := s.create(a)
	idB := s.create(b)
	idC := s.create(c)
	s.create(other)

	out, err := s.repo.GetTeacherGames(s.ctx, &GetTeacherGamesInput{TeacherID: "teacher-1"})
	s.Require().NoError(err)
	s.Equal([]string{idB, idC, idA}, s.ids(out.Games))
}

func (s *RepositoryContractSuite) TestUpdateMovesGameToFront() {
	first := s.create(s.sampleGame("teacher-1", "First"))
	s.advance(time.Minute)
	second := s.create(s.sampleGame("teacher-1", "Second"))

	s.advance(time.Minute)
	game := s.get(first)
	s.Require().NoError(s.repo.UpdateGame(s.ctx, &UpdateGameInput{GameID: first, Game: game}))

	out, err := s.repo.GetTeacherGames(s.ctx, &GetTeacherGamesInput{TeacherID: "teacher-1"})
	s.Require().NoError(err)
	s.Equal([]string{first, second}, s.ids(out.Games))
}

func (s *RepositoryContractSuite) TestTeacherWithoutGames() {
	out, err := s.repo.GetTeacherGames(s.ctx, &GetTeacherGamesInput{TeacherID: "nobody"})
	s.Require().NoError(err)
	s.NotNil(out.Games)
	s.Empty(out.Games)
}

func (s *RepositoryContractSuite) TestTogglePublicStatusChangesOnlyVisibility() {
	id := s.create(s.sampleGame("teacher-1", "Shared"))
	before := s.get(id)

	s.advance(time.Hour)
	s.Require().NoError(s.repo.TogglePublicStatus(s.ctx, &TogglePublicStatusInput{GameID: id, IsPublic: true}))

	after := s.get(id)
	s.True(after.IsPublic)
	s.Equal(before.Title, after.Title)
	s.Equal(before.TeacherID, after.TeacherID)
	s.Equal(before.Categories, after.Categories)
	s.Equal(before.FinalJeopardy, after.FinalJeopardy)
	s.True(before.CreatedAt.Equal(after.CreatedAt))
	s.True(s.testNow.Equal(after.UpdatedAt))
}

func (s *RepositoryContractSuite) TestPublicGames() {
	shared := s.create(s.sampleGame("teacher-1", "Shared"))
	s.create(s.sampleGame("teacher-1", "Private"))
	otherShared := s.create(s.sampleGame("teacher-2", "Also shared"))

	s.Require().NoError(s.repo.TogglePublicStatus(s.ctx, &TogglePublicStatusInput{GameID: shared, IsPublic: true}))
	s.Require().NoError(s.repo.TogglePublicStatus(s.ctx, &TogglePublicStatusInput{GameID: otherShared, IsPublic: true}))

	out, err := s.repo.GetPublicGames(s.ctx, &GetPublicGamesInput{})
	s.Require().NoError(err)
	s.ElementsMatch([]string{shared, otherShared}, s.ids(out.Games))

	s.Require().NoError(s.repo.TogglePublicStatus(s.ctx, &TogglePublicStatusInput{GameID: shared, IsPublic: false}))

	out, err = s.repo.GetPublicGames(s.ctx, &GetPublicGamesInput{})
	s.Require().NoError(err)
	s.Equal([]string{otherShared}, s.ids(out.Games))
}

func (s *RepositoryContractSuite) TestToggleMissingGame() {
	err := s.repo.TogglePublicStatus(s.ctx, &TogglePublicStatusInput{GameID: "missing", IsPublic: true})
	s.True(errors.Is(err, ErrGameNotFound))
}

func (s *RepositoryContractSuite) TestSearchGames() {
	science := s.create(s.sampleGame("teacher-1", "Science Review"))
	history := s.sampleGame("teacher-2", "History Night")
	history.Categories = []*models.Category{{
		Name: "Rome",
		Questions: []*models.Question{
			{Text: "First emperor", Answer: "Who is Augustus?", Points: 200},
		},
	}}
	history.FinalJeopardy = nil
	historyID := s.create(history)

	cases := []struct {
		name      string
		query     string
		teacherID string
		expected  []string
	}{
		{"title", "science", "", []string{science}},
		{"category name", "rome", "", []string{historyID}},
		{"question text", "RED PLANET", "", []string{science}},
		{"answer text", "augustus", "", []string{historyID}},
		{"final round", "armstrong", "", []string{science}},
		{"teacher filter", "review", "teacher-2", []string{}},
		{"no match", "zebra", "", []string{}},
	}

	for _, tc := range cases {
		out, err := s.repo.SearchGames(s.ctx, &SearchGamesInput{Query: tc.query, TeacherID: tc.teacherID})
		s.Require().NoError(err, tc.name)
		s.Equal(tc.expected, s.ids(out.Games), tc.name)
	}

	out, err := s.repo.SearchGames(s.ctx, &SearchGamesInput{})
	s.Require().NoError(err)
	s.ElementsMatch([]string{science, historyID}, s.ids(out.Games))
}

func (s *RepositoryContractSuite) TestStreamTeacherGames() {
	sub, err := s.repo.StreamTeacherGames(s.ctx, &StreamTeacherGamesInput{TeacherID: "teacher-1"})
	s.Require().NoError(err)
	defer sub.Close()

	s.Empty(s.nextEmission(sub), "initial emission is the current list")

	first := s.create(s.sampleGame("teacher-1", "First"))
	s.Equal([]string{first}, s.ids(s.nextEmission(sub)))

	s.create(s.sampleGame("teacher-2", "Someone else"))
	s.advance(time.Minute)
	second := s.create(s.sampleGame("teacher-1", "Second"))
	s.Equal([]string{second, first}, s.ids(s.nextEmission(sub)))

	s.Require().NoError(s.repo.DeleteGame(s.ctx, &DeleteGameInput{GameID: first}))
	s.Equal([]string{second}, s.ids(s.nextEmission(sub)))
}

func (s *RepositoryContractSuite) TestStreamEmitsOncePerChange() {
	id := s.create(s.sampleGame("teacher-1", "Busy"))

	sub, err := s.repo.StreamTeacherGames(s.ctx, &StreamTeacherGamesInput{TeacherID: "teacher-1"})
	s.Require().NoError(err)
	defer sub.Close()
	s.Len(s.nextEmission(sub), 1)

	for i := 0; i < 3; i++ {
		s.advance(time.Minute)
		s.Require().NoError(s.repo.TogglePublicStatus(s.ctx, &TogglePublicStatusInput{GameID: id, IsPublic: i%2 == 0}))
	}

	for i := 0; i < 3; i++ {
		s.Len(s.nextEmission(sub), 1)
	}
}

func (s *RepositoryContractSuite) TestCloseStopsEmissions() {
	sub, err := s.repo.StreamTeacherGames(s.ctx, &StreamTeacherGamesInput{TeacherID: "teacher-1"})
	s.Require().NoError(err)
	s.nextEmission(sub)

	s.NoError(sub.Close())
	s.NoError(sub.Close())

	s.create(s.sampleGame("teacher-1", "After close"))
	s.requireClosed(sub)
}

func (s *RepositoryContractSuite) TestContextCancelEndsSubscription() {
	ctx, cancel := context.WithCancel(s.ctx)
	sub, err := s.repo.StreamTeacherGames(ctx, &StreamTeacherGamesInput{TeacherID: "teacher-1"})
	s.Require().NoError(err)
	s.nextEmission(sub)

	cancel()
	s.requireClosed(sub)
}

func (s *RepositoryContractSuite) TestDisposeClosesSubscriptions() {
	first, err := s.repo.StreamTeacherGames(s.ctx, &StreamTeacherGamesInput{TeacherID: "teacher-1"})
	s.Require().NoError(err)
	second, err := s.repo.StreamTeacherGames(s.ctx, &StreamTeacherGamesInput{TeacherID: "teacher-2"})
	s.Require().NoError(err)
	s.nextEmission(first)

	s.Require().NoError(s.repo.Dispose())
	s.Require().NoError(s.repo.Dispose())

	s.requireClosed(first)
	s.requireClosed(second)

	_, err = s.repo.StreamTeacherGames(s.ctx, &StreamTeacherGamesInput{TeacherID: "teacher-1"})
	s.True(errors.Is(err, ErrDisposed))
}

func (s *RepositoryContractSuite) TestConcurrentUpdatesLastWriteWins() {
	const writers = 8
	const rounds = 5

	id := s.create(s.sampleGame("teacher-1", "Shared"))
	created := s.get(id).CreatedAt

	sub, err := s.repo.StreamTeacherGames(s.ctx, &StreamTeacherGamesInput{TeacherID: "teacher-1"})
	s.Require().NoError(err)
	defer sub.Close()
	s.Len(s.nextEmission(sub), 1)

	var wg sync.WaitGroup
	errs := make(chan error, writers*rounds)
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				game := s.sampleGame("teacher-1", fmt.Sprintf("Writer %d round %d", w, i))
				errs <- s.repo.UpdateGame(s.ctx, &UpdateGameInput{GameID: id, Game: game})
			}
		}(w)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}

	for i := 0; i < writers*rounds; i++ {
		s.Len(s.nextEmission(sub), 1)
	}

	stored := s.get(id)
	s.Contains(stored.Title, "Writer")
	s.True(created.Equal(stored.CreatedAt))
}
