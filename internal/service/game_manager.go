// service/game_manager.go
package service

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ishani-t/chessplayer-backend/internal/model"
	"github.com/ishani-t/chessplayer-backend/internal/ws"
)

// GameManager owns every live game plus the matchmaking queue. Games
// synchronize themselves, so the manager lock only guards its maps.
type GameManager struct {
	games            map[string]*model.Game
	queue            *model.Queue
	matchingChannels map[string]chan model.MatchFoundEvent
	pendingMatches   map[string]model.MatchFoundEvent
	clockBudget      time.Duration
	mu               sync.RWMutex
}

func NewGameManager(clockBudget, matchInterval time.Duration) *GameManager {
	gm := &GameManager{
		games:            make(map[string]*model.Game),
		queue:            model.NewQueue(),
		matchingChannels: make(map[string]chan model.MatchFoundEvent),
		pendingMatches:   make(map[string]model.MatchFoundEvent),
		clockBudget:      clockBudget,
	}

	// Start matchmaking processor
	go gm.processMatchmaking(matchInterval)

	return gm
}

func (gm *GameManager) CreateGame(gameID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if _, exists := gm.games[gameID]; exists {
		return ErrGameExists
	}

	gm.games[gameID] = model.NewGame(gameID, gm.clockBudget)
	return nil
}

func (gm *GameManager) GetGame(gameID string) (*model.Game, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()

	game, exists := gm.games[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}

	return game, nil
}

func (gm *GameManager) AddPlayerToGame(gameID string, playerID string) (model.Side, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.White, err
	}

	return game.AddPlayer(playerID)
}

func (gm *GameManager) GetGameState(gameID string) (model.GameState, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.GameState{}, err
	}

	return game.GetState(), nil
}

func (gm *GameManager) InspectSquare(gameID string, sq model.Square) (model.SquareInfo, error) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return model.SquareInfo{}, err
	}

	return game.Inspect(sq)
}

func (gm *GameManager) MakeMove(gameID string, playerID string, mv model.Move) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.MakeMove(playerID, mv)
}

func (gm *GameManager) RegisterConnection(gameID string, playerID string, conn *ws.Conn) error {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return err
	}

	return game.RegisterConnection(playerID, conn)
}

func (gm *GameManager) UnregisterConnection(gameID string, playerID string, conn *ws.Conn) {
	game, err := gm.GetGame(gameID)
	if err != nil {
		return
	}

	game.UnregisterConnection(playerID, conn)
}

func (gm *GameManager) JoinMatchmaking(playerID string) error {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	return gm.queue.AddPlayer(model.Player{ID: playerID})
}

// RegisterMatchmakingChannel installs the channel a waiter listens on.
// Any channel the player registered before is closed so its waiter
// returns instead of hanging.
func (gm *GameManager) RegisterMatchmakingChannel(playerID string, ch chan model.MatchFoundEvent) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	gm.registerWaiterLocked(playerID, ch)
}

func (gm *GameManager) registerWaiterLocked(playerID string, ch chan model.MatchFoundEvent) {
	if existing, exists := gm.matchingChannels[playerID]; exists {
		delete(gm.matchingChannels, playerID)
		close(existing)
	}

	gm.matchingChannels[playerID] = ch
}

// UnregisterMatchmakingChannel removes the player's channel, but only if
// it is still the one the caller registered; a newer wait keeps its own.
func (gm *GameManager) UnregisterMatchmakingChannel(playerID string, ch chan model.MatchFoundEvent) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if gm.matchingChannels[playerID] == ch {
		delete(gm.matchingChannels, playerID)
	}
}

// WaitForMatch blocks until matchmaking pairs the player, a newer wait
// from the same player takes over, or the timeout passes. A match that
// fired while the player had no wait in flight is delivered right away.
func (gm *GameManager) WaitForMatch(playerID string, timeout time.Duration) (model.MatchFoundEvent, error) {
	ch := make(chan model.MatchFoundEvent, 1)
	if ev, ok := gm.claimMatchOrRegister(playerID, ch); ok {
		return ev, nil
	}
	defer gm.UnregisterMatchmakingChannel(playerID, ch)

	select {
	case ev, ok := <-ch:
		if !ok {
			return model.MatchFoundEvent{}, ErrWaitReplaced
		}
		return ev, nil
	case <-time.After(timeout):
		return model.MatchFoundEvent{}, ErrMatchTimeout
	}
}

// claimMatchOrRegister hands back a match held for the player, or
// registers ch to receive the next one.
func (gm *GameManager) claimMatchOrRegister(playerID string, ch chan model.MatchFoundEvent) (model.MatchFoundEvent, bool) {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	if ev, ok := gm.pendingMatches[playerID]; ok {
		delete(gm.pendingMatches, playerID)
		return ev, true
	}

	gm.registerWaiterLocked(playerID, ch)
	return model.MatchFoundEvent{}, false
}

func (gm *GameManager) processMatchmaking(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		gm.tryMatch()
	}
}

// tryMatch pairs the two longest-waiting players into a fresh game and
// notifies their waiting channels.
func (gm *GameManager) tryMatch() {
	gm.mu.Lock()
	defer gm.mu.Unlock()

	player1, player2, ok := gm.queue.GetNextPair()
	if !ok {
		return
	}

	gameID := uuid.New().String()
	game := model.NewGame(gameID, gm.clockBudget)

	side1, err := game.AddPlayer(player1.ID)
	if err != nil {
		log.Printf("matchmaking: seat %s: %v", player1.ID, err)
		return
	}
	side2, err := game.AddPlayer(player2.ID)
	if err != nil {
		log.Printf("matchmaking: seat %s: %v", player2.ID, err)
		return
	}
	gm.games[gameID] = game

	gm.notifyMatch(player1.ID, model.MatchFoundEvent{GameID: gameID, Side: side1})
	gm.notifyMatch(player2.ID, model.MatchFoundEvent{GameID: gameID, Side: side2})
}

// notifyMatch hands the event to the player's waiting channel. With no
// waiter in flight the event is held for the player's next wait, so a
// pairing that lands between two polls is not lost. Callers hold gm.mu.
func (gm *GameManager) notifyMatch(playerID string, ev model.MatchFoundEvent) {
	ch, ok := gm.matchingChannels[playerID]
	if !ok {
		gm.pendingMatches[playerID] = ev
		log.Printf("matchmaking: no waiter for %s, holding game %s", playerID, ev.GameID)
		return
	}

	select {
	case ch <- ev:
		delete(gm.matchingChannels, playerID)
		close(ch)
	default:
		gm.pendingMatches[playerID] = ev
		log.Printf("matchmaking: waiter for %s not ready, holding game %s", playerID, ev.GameID)
	}
}
