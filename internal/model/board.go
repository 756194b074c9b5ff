package model

// Board holds the two piece collections. There is no positional grid: a
// piece's location is carried on the piece, and a piece's side is which of
// the two lists it sits in. No square is ever held by both lists at once.
type Board struct {
	White []Piece `json:"white"`
	Black []Piece `json:"black"`
}

// newBoard lays out the standard starting position, back rank first, pawns
// after, left to right. White sits on rows 7 and 8, black on rows 1 and 2.
func newBoard() Board {
	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

	var b Board
	for x := 1; x <= 8; x++ {
		b.Black = append(b.Black, Piece{Square{X: x, Y: 1}, backRank[x-1]})
		b.White = append(b.White, Piece{Square{X: x, Y: 8}, backRank[x-1]})
	}
	for x := 1; x <= 8; x++ {
		b.Black = append(b.Black, Piece{Square{X: x, Y: 2}, Pawn})
		b.White = append(b.White, Piece{Square{X: x, Y: 7}, Pawn})
	}
	return b
}

func (b *Board) pieces(s Side) *[]Piece {
	if s == Black {
		return &b.Black
	}
	return &b.White
}

func (b *Board) indexAt(s Side, sq Square) int {
	for i, p := range *b.pieces(s) {
		if p.Square == sq {
			return i
		}
	}
	return -1
}

// PieceAt reports the piece occupying sq and the side owning it. The caller
// is expected to pass a valid square; empty squares report ok == false.
func (b *Board) PieceAt(sq Square) (Piece, Side, bool) {
	if i := b.indexAt(White, sq); i >= 0 {
		return b.White[i], White, true
	}
	if i := b.indexAt(Black, sq); i >= 0 {
		return b.Black[i], Black, true
	}
	return Piece{}, White, false
}

// removeAt takes the piece on sq out of s's collection, keeping the
// collection's order.
func (b *Board) removeAt(s Side, sq Square) (Piece, bool) {
	i := b.indexAt(s, sq)
	if i < 0 {
		return Piece{}, false
	}
	ps := b.pieces(s)
	removed := (*ps)[i]
	*ps = append((*ps)[:i], (*ps)[i+1:]...)
	return removed, true
}

func (b *Board) clone() Board {
	return Board{
		White: append([]Piece(nil), b.White...),
		Black: append([]Piece(nil), b.Black...),
	}
}

// SquareInfo is the answer to a piece-at-square lookup.
type SquareInfo struct {
	Square   Square     `json:"square"`
	Occupied bool       `json:"occupied"`
	Side     *Side      `json:"side,omitempty"`
	Piece    *PieceType `json:"piece,omitempty"`
}
