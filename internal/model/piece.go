package model

// PieceType is the single-character code of a piece kind. The side a piece
// plays for is never part of the code; it is implied by which of the two
// board collections holds the piece.
type PieceType string

const (
	King   PieceType = "k"
	Queen  PieceType = "q"
	Rook   PieceType = "r"
	Bishop PieceType = "b"
	Knight PieceType = "n"
	Pawn   PieceType = "p"
)

func (p PieceType) Valid() bool {
	switch p {
	case King, Queen, Rook, Bishop, Knight, Pawn:
		return true
	}
	return false
}

// notation returns the letter used in move history, empty for pawns.
func (p PieceType) notation() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// Piece is a positioned unit: a square plus a type code.
type Piece struct {
	Square
	Type PieceType `json:"type"`
}
