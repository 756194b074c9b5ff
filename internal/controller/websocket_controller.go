package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/gofiber/websocket/v2"

	"github.com/ishani-t/chessplayer-backend/internal/service"
	"github.com/ishani-t/chessplayer-backend/internal/ws"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection is called when a new WebSocket connection is established.
// It registers the connection with the game, then serves the read loop
// until the peer goes away. All writes go through the ws.Conn wrapper,
// which serializes them against the game's broadcasts.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	playerID, ok := c.Locals("playerID").(string)
	if !ok || playerID == "" {
		c.Close()
		return
	}

	conn := ws.NewConn(c)
	if err := wsc.gameService.RegisterConnection(gameID, playerID, conn); err != nil {
		log.Printf("ws: register %s on game %s: %v", playerID, gameID, err)
		c.Close()
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			break
		}

		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(conn, "malformed message")
			continue
		}

		if err := wsc.handleMessage(gameID, playerID, msg); err != nil {
			wsc.sendError(conn, err.Error())
		}
	}

	wsc.gameService.UnregisterConnection(gameID, playerID, conn)
}

func (wsc *WebSocketController) handleMessage(gameID, playerID string, msg ws.Message) error {
	switch msg.Type {
	case ws.MessageTypeMove:
		var req moveRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		mv, err := req.toMove()
		if err != nil {
			return err
		}
		return wsc.gameService.HandleMove(gameID, playerID, mv)

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendError(c *ws.Conn, errorMsg string) {
	payload, err := json.Marshal(ws.ErrorPayload{Message: errorMsg})
	if err != nil {
		return
	}
	if err := c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeError,
		Payload: payload,
	}); err != nil {
		log.Printf("ws: send error message: %v", err)
	}
}
