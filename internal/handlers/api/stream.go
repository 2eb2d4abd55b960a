package api

import (
	"context"
	"log"
	"time"

	"github.com/KirkDiggler/jeopardy/internal/services/board"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// Message is a frame sent on the game stream
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Stream message types
const (
	MessageTypeGames = "games"
	MessageTypeError = "error"
)

// StreamTeacherGames upgrades to a WebSocket and sends the teacher's game
// list on connect and after every change, until either side goes away.
func (h *Handler) StreamTeacherGames(c *gin.Context) {
	teacherID := c.Param("teacherID")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// subscribe before upgrading so a failure can still be reported over HTTP
	sub, err := h.boardService.WatchTeacherGames(ctx, &board.WatchTeacherGamesInput{
		TeacherID: teacherID,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	defer sub.Close()

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed for teacher %s: %v", teacherID, err)
		return
	}
	defer conn.Close()

	log.Printf("Streaming games for teacher %s", teacherID)

	// the client never sends anything we need; reading detects when it leaves
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case games, ok := <-sub.Updates():
			if !ok {
				closeStream(conn, websocket.CloseGoingAway, "stream ended")
				return
			}
			if err := writeMessage(conn, Message{Type: MessageTypeGames, Payload: games}); err != nil {
				log.Printf("Error writing games for teacher %s: %v", teacherID, err)
				return
			}
		case err := <-sub.Errors():
			if err := writeMessage(conn, Message{Type: MessageTypeError, Payload: err.Error()}); err != nil {
				log.Printf("Error writing stream error for teacher %s: %v", teacherID, err)
				return
			}
		case <-ctx.Done():
			log.Printf("Stream closed for teacher %s", teacherID)
			return
		}
	}
}

func writeMessage(conn *websocket.Conn, msg Message) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return conn.WriteJSON(msg)
}

func closeStream(conn *websocket.Conn, code int, text string) {
	deadline := time.Now().Add(writeWait)
	if err := conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(code, text), deadline); err != nil {
		log.Printf("Error closing stream: %v", err)
	}
}
