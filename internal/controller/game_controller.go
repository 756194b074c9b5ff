package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ishani-t/chessplayer-backend/internal/model"
	"github.com/ishani-t/chessplayer-backend/internal/service"
)

type GameController struct {
	gameService *service.GameService
	waitTimeout time.Duration
}

func NewGameController(gameService *service.GameService, waitTimeout time.Duration) *GameController {
	return &GameController{
		gameService: gameService,
		waitTimeout: waitTimeout,
	}
}

// moveRequest accepts a move as coordinate text ("e2e4", "e7e8q") or as
// structured squares. Text wins when both are present.
type moveRequest struct {
	Move      string          `json:"move"`
	From      *model.Square   `json:"from"`
	To        *model.Square   `json:"to"`
	Promotion model.PieceType `json:"promotion"`
}

func (r moveRequest) toMove() (model.Move, error) {
	if r.Move != "" {
		return model.ParseMove(r.Move)
	}
	if r.From == nil || r.To == nil {
		return model.Move{}, errors.New("move requires coordinate text or from and to squares")
	}
	return model.Move{From: *r.From, To: *r.To, Promotion: r.Promotion}, nil
}

func (gc *GameController) CreateGame(c *fiber.Ctx) error {
	gameID, err := gc.gameService.CreateGame()
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game created",
		"gameId":  gameID,
	})
}

func (gc *GameController) JoinGame(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	side, err := gc.gameService.JoinGame(gameID, playerID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Game joined",
		"side":    side,
	})
}

func (gc *GameController) GetGameState(c *fiber.Ctx) error {
	gameID := c.Params("gameId")

	gameState, err := gc.gameService.GetGameState(gameID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(gameState)
}

func (gc *GameController) GetSquare(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	square := c.Params("square")

	info, err := gc.gameService.InspectSquare(gameID, square)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(info)
}

func (gc *GameController) MakeMove(c *fiber.Ctx) error {
	gameID := c.Params("gameId")
	playerID := c.Locals("playerID").(string)

	var req moveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}
	mv, err := req.toMove()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if err := gc.gameService.HandleMove(gameID, playerID, mv); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "applied",
		"move":   mv.String(),
	})
}

func (gc *GameController) JoinMatchmaking(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	if err := gc.gameService.JoinMatchmaking(playerID); err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"status": "queued",
	})
}

// WaitForMatch long-polls until matchmaking finds an opponent.
func (gc *GameController) WaitForMatch(c *fiber.Ctx) error {
	playerID := c.Locals("playerID").(string)

	ev, err := gc.gameService.WaitForMatch(playerID, gc.waitTimeout)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(ev)
}

func errorResponse(c *fiber.Ctx, err error) error {
	return c.Status(statusFor(err)).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrGameNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrGameExists),
		errors.Is(err, model.ErrGameFull),
		errors.Is(err, model.ErrAlreadyQueued),
		errors.Is(err, service.ErrWaitReplaced):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrMatchTimeout):
		return fiber.StatusRequestTimeout
	case errors.Is(err, model.ErrNotYourTurn),
		errors.Is(err, model.ErrNotAuthorized):
		return fiber.StatusForbidden
	case errors.Is(err, model.ErrOffBoard),
		errors.Is(err, model.ErrBadPieceType),
		errors.Is(err, model.ErrBadPromotion),
		errors.Is(err, model.ErrNoPiece),
		errors.Is(err, model.ErrWrongSide),
		errors.Is(err, model.ErrSquareOccupied):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
