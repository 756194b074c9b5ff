package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ishani-t/chessplayer-backend/internal/model"
	"github.com/ishani-t/chessplayer-backend/internal/ws"
)

// GameService is the facade the controllers talk to.
type GameService struct {
	gameManager *GameManager
}

func NewGameService(gameManager *GameManager) *GameService {
	return &GameService{
		gameManager: gameManager,
	}
}

func (gs *GameService) CreateGame() (string, error) {
	gameID := uuid.New().String()

	if err := gs.gameManager.CreateGame(gameID); err != nil {
		return "", fmt.Errorf("failed to create game: %w", err)
	}

	return gameID, nil
}

func (gs *GameService) JoinGame(gameID string, playerID string) (model.Side, error) {
	return gs.gameManager.AddPlayerToGame(gameID, playerID)
}

func (gs *GameService) GetGameState(gameID string) (model.GameState, error) {
	return gs.gameManager.GetGameState(gameID)
}

// InspectSquare reports what sits on an algebraic square of a game.
func (gs *GameService) InspectSquare(gameID string, square string) (model.SquareInfo, error) {
	sq, err := model.ParseSquare(square)
	if err != nil {
		return model.SquareInfo{}, err
	}

	return gs.gameManager.InspectSquare(gameID, sq)
}

func (gs *GameService) HandleMove(gameID string, playerID string, mv model.Move) error {
	return gs.gameManager.MakeMove(gameID, playerID, mv)
}

func (gs *GameService) JoinMatchmaking(playerID string) error {
	return gs.gameManager.JoinMatchmaking(playerID)
}

func (gs *GameService) WaitForMatch(playerID string, timeout time.Duration) (model.MatchFoundEvent, error) {
	return gs.gameManager.WaitForMatch(playerID, timeout)
}

func (gs *GameService) RegisterConnection(gameID string, playerID string, conn *ws.Conn) error {
	return gs.gameManager.RegisterConnection(gameID, playerID, conn)
}

func (gs *GameService) UnregisterConnection(gameID string, playerID string, conn *ws.Conn) {
	gs.gameManager.UnregisterConnection(gameID, playerID, conn)
}
