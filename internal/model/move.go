package model

import "fmt"

// Move is a requested displacement: from-square, to-square and an optional
// promotion code for a pawn arriving on its last row.
type Move struct {
	From      Square    `json:"from"`
	To        Square    `json:"to"`
	Promotion PieceType `json:"promotion,omitempty"`
}

// String renders the move as square pair plus promotion code, e.g. "e2e4"
// or "e7e8q".
func (m Move) String() string {
	return m.From.String() + m.To.String() + string(m.Promotion)
}

// ParseMove is the inverse of Move.String.
func ParseMove(str string) (Move, error) {
	if len(str) != 4 && len(str) != 5 {
		return Move{}, fmt.Errorf("%w: move %q", ErrOffBoard, str)
	}
	from, err := ParseSquare(str[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParseSquare(str[2:4])
	if err != nil {
		return Move{}, err
	}
	mv := Move{From: from, To: to}
	if len(str) == 5 {
		mv.Promotion = PieceType(str[4:])
		switch mv.Promotion {
		case Queen, Rook, Bishop, Knight:
		default:
			return Move{}, fmt.Errorf("%w: %q", ErrBadPromotion, str)
		}
	}
	return mv, nil
}

// CastleRookMove reports the rook displacement that accompanied a castling
// king move.
type CastleRookMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Ply records one applied half-move, as it happened.
type Ply struct {
	Piece          Piece           `json:"piece"` // as it stood before the move
	From           Square          `json:"from"`
	To             Square          `json:"to"`
	Captured       *Piece          `json:"captured"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Promotion      PieceType       `json:"promotion,omitempty"`
	Notation       string          `json:"notation"`
}

// MoveRecord pairs the two plies of one numbered move. White's ply opens
// the record, black's completes it.
type MoveRecord struct {
	WhitePly Ply `json:"whitePly"`
	BlackPly Ply `json:"blackPly"`
}
