package api

import (
	"net/http"
	"strconv"

	"github.com/KirkDiggler/jeopardy/internal/models"
	"github.com/KirkDiggler/jeopardy/internal/services/board"
	"github.com/gin-gonic/gin"
)

type createGameRequest struct {
	TeacherID string `json:"teacherId" binding:"required"`
	Title     string `json:"title"`
}

type visibilityRequest struct {
	IsPublic *bool `json:"isPublic" binding:"required"`
}

type updateQuestionRequest struct {
	Text          *string `json:"question"`
	Answer        *string `json:"answer"`
	Points        *int    `json:"points"`
	IsDailyDouble *bool   `json:"isDailyDouble"`
}

type dailyDoublesRequest struct {
	Count int `json:"count"`
}

type gamesResponse struct {
	Games []*models.Game `json:"games"`
}

func (h *Handler) CreateGame(c *gin.Context) {
	var req createGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.boardService.CreateGame(c.Request.Context(), &board.CreateGameInput{
		TeacherID: req.TeacherID,
		Title:     req.Title,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, out.Game)
}

func (h *Handler) GetGame(c *gin.Context) {
	out, err := h.boardService.GetGame(c.Request.Context(), &board.GetGameInput{
		GameID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Game)
}

// SaveGame replaces a board with the request body. The ID in the path wins
// over any ID in the body.
func (h *Handler) SaveGame(c *gin.Context) {
	var game models.Game
	if err := c.ShouldBindJSON(&game); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	game.ID = c.Param("id")

	out, err := h.boardService.SaveGame(c.Request.Context(), &board.SaveGameInput{
		Game: &game,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Game)
}

func (h *Handler) DeleteGame(c *gin.Context) {
	err := h.boardService.DeleteGame(c.Request.Context(), &board.DeleteGameInput{
		GameID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) SetVisibility(c *gin.Context) {
	var req visibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.boardService.SetVisibility(c.Request.Context(), &board.SetVisibilityInput{
		GameID:   c.Param("id"),
		IsPublic: *req.IsPublic,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListTeacherGames(c *gin.Context) {
	out, err := h.boardService.ListTeacherGames(c.Request.Context(), &board.ListTeacherGamesInput{
		TeacherID: c.Param("teacherID"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gamesResponse{Games: out.Games})
}

func (h *Handler) ListPublicGames(c *gin.Context) {
	out, err := h.boardService.ListPublicGames(c.Request.Context(), &board.ListPublicGamesInput{})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gamesResponse{Games: out.Games})
}

func (h *Handler) SearchGames(c *gin.Context) {
	out, err := h.boardService.SearchGames(c.Request.Context(), &board.SearchGamesInput{
		Query:     c.Query("q"),
		TeacherID: c.Query("teacher"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gamesResponse{Games: out.Games})
}

func (h *Handler) AddCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.boardService.AddCategory(c.Request.Context(), &board.AddCategoryInput{
		GameID:   c.Param("id"),
		Category: &category,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Game)
}

func (h *Handler) UpdateQuestion(c *gin.Context) {
	categoryIndex, err := strconv.Atoi(c.Param("category"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "category must be an index"})
		return
	}
	questionIndex, err := strconv.Atoi(c.Param("question"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question must be an index"})
		return
	}

	var req updateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.boardService.UpdateQuestion(c.Request.Context(), &board.UpdateQuestionInput{
		GameID:        c.Param("id"),
		CategoryIndex: categoryIndex,
		QuestionIndex: questionIndex,
		Text:          req.Text,
		Answer:        req.Answer,
		Points:        req.Points,
		IsDailyDouble: req.IsDailyDouble,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Game)
}

func (h *Handler) SetFinalRound(c *gin.Context) {
	var final models.FinalRound
	if err := c.ShouldBindJSON(&final); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := h.boardService.SetFinalRound(c.Request.Context(), &board.SetFinalRoundInput{
		GameID:     c.Param("id"),
		FinalRound: &final,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Game)
}

func (h *Handler) ClearFinalRound(c *gin.Context) {
	out, err := h.boardService.SetFinalRound(c.Request.Context(), &board.SetFinalRoundInput{
		GameID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Game)
}

func (h *Handler) PlaceDailyDoubles(c *gin.Context) {
	var req dailyDoublesRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	out, err := h.boardService.PlaceDailyDoubles(c.Request.Context(), &board.PlaceDailyDoublesInput{
		GameID: c.Param("id"),
		Count:  req.Count,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Game)
}
