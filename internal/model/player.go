package model

// Player is a participant known by ID. Seat assignment happens on the game.
type Player struct {
	ID string
}

// SeatInfo is the client-facing view of one seat. TimeLeft is in tenths of
// a second.
type SeatInfo struct {
	PlayerID string `json:"playerId"`
	TimeLeft int    `json:"timeLeft"`
}

// Seats holds the two player seats of a game.
type Seats struct {
	White SeatInfo `json:"white"`
	Black SeatInfo `json:"black"`
}

// MatchFoundEvent tells a queued player which game to join and which side
// they were dealt.
type MatchFoundEvent struct {
	GameID string `json:"gameId"`
	Side   Side   `json:"side"`
}
