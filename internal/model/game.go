package model

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/websocket/v2"

	"github.com/ishani-t/chessplayer-backend/internal/ws"
)

// GameConnections are the live websocket connections of one game. The
// ws.Conn wrapper serializes writes; broadcasts fire from move and
// registration goroutines while error replies come from the read loop.
type GameConnections struct {
	connections map[string]*ws.Conn // playerID -> connection
	mu          sync.RWMutex
}

func NewGameConnections() *GameConnections {
	return &GameConnections{
		connections: make(map[string]*ws.Conn),
	}
}

// Game owns a single board and its observers. All access to the position
// goes through the game's mutex; the BoardState itself has exactly one
// owner.
type Game struct {
	ID          string
	mu          sync.Mutex
	board       *BoardState
	history     []MoveRecord
	captured    CapturedPieces
	lastPly     *Ply
	seats       Seats
	connections *GameConnections
	whiteClock  *Clock
	blackClock  *Clock
}

// GameState is the full client-facing snapshot of a game.
type GameState struct {
	Board          *BoardState    `json:"boardState"`
	FEN            string         `json:"fen"`
	MoveHistory    []MoveRecord   `json:"moveHistory"`
	CapturedPieces CapturedPieces `json:"capturedPieces"`
	LastPly        *Ply           `json:"lastPly"`
	Players        Seats          `json:"players"`
}

// CapturedPieces lists the pieces each side has lost, in capture order.
type CapturedPieces struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

func (c *CapturedPieces) add(owner Side, p Piece) {
	if owner == Black {
		c.Black = append(c.Black, p)
		return
	}
	c.White = append(c.White, p)
}

func NewGame(id string, clockBudget time.Duration) *Game {
	return &Game{
		ID:          id,
		board:       NewBoardState(),
		history:     make([]MoveRecord, 0),
		connections: NewGameConnections(),
		whiteClock:  NewClock(clockBudget),
		blackClock:  NewClock(clockBudget),
	}
}

// AddPlayer seats playerID on the first free side, white before black.
// A player already seated gets their held seat back rather than the
// other one.
func (g *Game) AddPlayer(playerID string) (Side, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if seat, ok := g.seatFor(playerID); ok {
		return seat, nil
	}
	if g.seats.White.PlayerID == "" {
		g.seats.White.PlayerID = playerID
		return White, nil
	}
	if g.seats.Black.PlayerID == "" {
		g.seats.Black.PlayerID = playerID
		return Black, nil
	}
	return White, ErrGameFull
}

func (g *Game) GetState() GameState {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.snapshotState()
}

// Inspect is the piece-at-square read, served under the game lock.
func (g *Game) Inspect(sq Square) (SquareInfo, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.board.Inspect(sq)
}

func (g *Game) IsPlayerInGame(playerID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, ok := g.seatFor(playerID)
	return ok
}

func (g *Game) CanSpectate() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.canSpectate()
}

func (g *Game) canSpectate() bool {
	return g.seats.White.PlayerID == "" || g.seats.Black.PlayerID == ""
}

func (g *Game) seatFor(playerID string) (Side, bool) {
	if playerID != "" && g.seats.White.PlayerID == playerID {
		return White, true
	}
	if playerID != "" && g.seats.Black.PlayerID == playerID {
		return Black, true
	}
	return White, false
}

// MakeMove applies a move on behalf of playerID. The player must hold the
// seat of the side to move; everything else is the board's business.
func (g *Game) MakeMove(playerID string, mv Move) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	mover := g.board.ToMove
	if seat, ok := g.seatFor(playerID); !ok || seat != mover {
		return ErrNotYourTurn
	}

	ply, err := g.board.ApplyMove(mv)
	if err != nil {
		return err
	}

	g.clock(mover).Stop()
	g.clock(mover.Other()).Start()

	if mover == White {
		g.history = append(g.history, MoveRecord{WhitePly: ply})
	} else if n := len(g.history); n > 0 {
		g.history[n-1].BlackPly = ply
	}
	if ply.Captured != nil {
		g.captured.add(mover.Other(), *ply.Captured)
	}
	g.lastPly = &ply

	go g.broadcastState()
	return nil
}

func (g *Game) clock(s Side) *Clock {
	if s == Black {
		return g.blackClock
	}
	return g.whiteClock
}

// snapshotState copies everything the client sees so the snapshot stays
// stable once the lock is released.
func (g *Game) snapshotState() GameState {
	state := GameState{
		Board:       g.board.Clone(),
		FEN:         g.board.FEN(),
		MoveHistory: append([]MoveRecord(nil), g.history...),
		CapturedPieces: CapturedPieces{
			White: append([]Piece(nil), g.captured.White...),
			Black: append([]Piece(nil), g.captured.Black...),
		},
		Players: g.seats,
	}
	if g.lastPly != nil {
		lp := *g.lastPly
		state.LastPly = &lp
	}
	state.Players.White.TimeLeft = int(g.whiteClock.GetTimeLeft().Milliseconds() / 100)
	state.Players.Black.TimeLeft = int(g.blackClock.GetTimeLeft().Milliseconds() / 100)
	return state
}

// RegisterConnection attaches a websocket to the game. Seated players and
// spectators are welcome; a second connection for the same player is
// turned away in favor of the existing one.
func (g *Game) RegisterConnection(playerID string, conn *ws.Conn) error {
	g.mu.Lock()
	_, seated := g.seatFor(playerID)
	authorized := seated || g.canSpectate()
	g.mu.Unlock()

	if !authorized {
		return ErrNotAuthorized
	}

	g.connections.mu.Lock()
	if _, exists := g.connections.connections[playerID]; exists {
		g.connections.mu.Unlock()
		conn.WriteMessage(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "connection already exists"),
		)
		conn.Close()
		return nil
	}
	g.connections.connections[playerID] = conn
	g.connections.mu.Unlock()

	go g.broadcastState()
	return nil
}

// UnregisterConnection detaches the player's websocket, but only if conn is
// the one on record; a turned-away duplicate must not evict the original.
func (g *Game) UnregisterConnection(playerID string, conn *ws.Conn) {
	g.connections.mu.Lock()
	defer g.connections.mu.Unlock()

	if g.connections.connections[playerID] == conn {
		delete(g.connections.connections, playerID)
	}
}

// broadcastState pushes the current snapshot to every connection, dropping
// the ones that fail to take it.
func (g *Game) broadcastState() {
	payload, err := json.Marshal(g.GetState())
	if err != nil {
		log.Printf("game %s: marshal state: %v", g.ID, err)
		return
	}
	msg := ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: json.RawMessage(payload),
	}

	g.connections.mu.RLock()
	conns := make(map[string]*ws.Conn, len(g.connections.connections))
	for playerID, conn := range g.connections.connections {
		conns[playerID] = conn
	}
	g.connections.mu.RUnlock()

	var failed []string
	for playerID, conn := range conns {
		if err := conn.WriteJSON(msg); err != nil {
			log.Printf("game %s: send state to %s: %v", g.ID, playerID, err)
			failed = append(failed, playerID)
		}
	}
	if len(failed) > 0 {
		g.connections.mu.Lock()
		for _, playerID := range failed {
			if g.connections.connections[playerID] == conns[playerID] {
				delete(g.connections.connections, playerID)
			}
		}
		g.connections.mu.Unlock()
	}
}
