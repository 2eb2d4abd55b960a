package api

import (
	"net/http"

	"github.com/KirkDiggler/jeopardy/internal/models"
	"github.com/KirkDiggler/jeopardy/internal/services/play"
	"github.com/gin-gonic/gin"
)

type sessionResponse struct {
	SessionID string           `json:"sessionId"`
	Game      *models.Game     `json:"game"`
	Players   []*models.Player `json:"players"`
	Remaining int              `json:"remaining"`
}

type finishRequest struct {
	SaveProgress bool `json:"saveProgress"`
}

func newSessionResponse(session *play.Session) sessionResponse {
	return sessionResponse{
		SessionID: session.ID(),
		Game:      session.Game(),
		Players:   session.Players(),
		Remaining: session.Remaining(),
	}
}

// session looks up the session named in the path, writing the error response
// when it is missing
func (h *Handler) session(c *gin.Context) (*play.Session, bool) {
	session, err := h.sessions.Get(c.Param("sessionID"))
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return session, true
}

func (h *Handler) StartSession(c *gin.Context) {
	session, err := h.sessions.Start(c.Request.Context(), &play.StartSessionInput{
		GameID: c.Param("id"),
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newSessionResponse(session))
}

func (h *Handler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, newSessionResponse(session))
}

func (h *Handler) AddPlayer(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req play.AddPlayerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := session.AddPlayer(&req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, out.Player)
}

func (h *Handler) RenamePlayer(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req play.RenamePlayerInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	req.PlayerID = c.Param("playerID")

	if err := session.RenamePlayer(&req); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) AnswerQuestion(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req play.AnswerQuestionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := session.AnswerQuestion(&req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question": out.Question,
		"player":   out.Player,
		"delta":    out.Delta,
	})
}

func (h *Handler) PassQuestion(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req play.PassQuestionInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := session.PassQuestion(&req); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) Standings(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, session.Standings())
}

func (h *Handler) FinishSession(c *gin.Context) {
	var req finishRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	out, err := h.sessions.Finish(c.Request.Context(), &play.FinishSessionInput{
		SessionID:    c.Param("sessionID"),
		SaveProgress: req.SaveProgress,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, out.Leaderboard)
}
