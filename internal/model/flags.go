package model

// CastlingRights tracks which castling moves are still available, per side
// and wing. A right, once forfeited, never returns.
type CastlingRights struct {
	WhiteKingside  bool `json:"whiteKingside"`
	WhiteQueenside bool `json:"whiteQueenside"`
	BlackKingside  bool `json:"blackKingside"`
	BlackQueenside bool `json:"blackQueenside"`
}

func (c *CastlingRights) forfeitAll(s Side) {
	c.forfeit(s, true)
	c.forfeit(s, false)
}

func (c *CastlingRights) forfeit(s Side, kingside bool) {
	switch {
	case s == White && kingside:
		c.WhiteKingside = false
	case s == White:
		c.WhiteQueenside = false
	case kingside:
		c.BlackKingside = false
	default:
		c.BlackQueenside = false
	}
}

func (c CastlingRights) none() bool {
	return !c.WhiteKingside && !c.WhiteQueenside && !c.BlackKingside && !c.BlackQueenside
}

// Flags is the castling/en-passant pair that rides along with the board.
// EnPassant is the passed-over square of the last pawn double-step, or nil
// when no en-passant capture is available.
type Flags struct {
	Castling  CastlingRights `json:"castling"`
	EnPassant *Square        `json:"enPassant"`
}

func newFlags() Flags {
	return Flags{
		Castling: CastlingRights{
			WhiteKingside:  true,
			WhiteQueenside: true,
			BlackKingside:  true,
			BlackQueenside: true,
		},
	}
}
