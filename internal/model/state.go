package model

import "fmt"

// BoardState is the authoritative position: the two piece collections, the
// side to move and the castling/en-passant flags. It stores and mutates the
// position but never judges chess legality; movement rules, check and game
// termination belong to the rules layer driving it.
type BoardState struct {
	ToMove Side  `json:"toMove"`
	Board  Board `json:"board"`
	Flags  Flags `json:"flags"`
}

// NewBoardState returns the standard starting position: 16 pieces per side,
// white to move, all four castling rights, no en-passant target.
func NewBoardState() *BoardState {
	return &BoardState{
		ToMove: White,
		Board:  newBoard(),
		Flags:  newFlags(),
	}
}

func (s *BoardState) Clone() *BoardState {
	out := &BoardState{
		ToMove: s.ToMove,
		Board:  s.Board.clone(),
		Flags:  s.Flags,
	}
	if s.Flags.EnPassant != nil {
		ep := *s.Flags.EnPassant
		out.Flags.EnPassant = &ep
	}
	return out
}

// Inspect answers the piece-at-square read. Off-board squares are rejected.
func (s *BoardState) Inspect(sq Square) (SquareInfo, error) {
	if !sq.Valid() {
		return SquareInfo{}, fmt.Errorf("%w: (%d,%d)", ErrOffBoard, sq.X, sq.Y)
	}
	info := SquareInfo{Square: sq}
	if p, side, ok := s.Board.PieceAt(sq); ok {
		info.Occupied = true
		info.Side = &side
		info.Piece = &p.Type
	}
	return info, nil
}

// ApplyMove moves the side to move's piece from mv.From to mv.To, removes
// whatever opposing piece the move captures, updates the castling and
// en-passant flags, and flips the side to move exactly once. The returned
// Ply says what happened.
//
// Only structural validity is enforced here: squares on the board, a piece
// of the side to move on the from-square, destination free of the mover's
// own pieces, a sane promotion code. Whether the displacement is a legal
// chess move is not this layer's question.
func (s *BoardState) ApplyMove(mv Move) (Ply, error) {
	if !mv.From.Valid() || !mv.To.Valid() {
		return Ply{}, fmt.Errorf("%w: from (%d,%d) to (%d,%d)", ErrOffBoard, mv.From.X, mv.From.Y, mv.To.X, mv.To.Y)
	}

	mover := s.ToMove
	idx := s.Board.indexAt(mover, mv.From)
	if idx < 0 {
		if _, _, ok := s.Board.PieceAt(mv.From); ok {
			return Ply{}, fmt.Errorf("%w: %s", ErrWrongSide, mv.From)
		}
		return Ply{}, fmt.Errorf("%w: %s", ErrNoPiece, mv.From)
	}
	if s.Board.indexAt(mover, mv.To) >= 0 {
		return Ply{}, fmt.Errorf("%w: %s", ErrSquareOccupied, mv.To)
	}

	piece := (*s.Board.pieces(mover))[idx]
	if err := checkPromotion(piece, mv, mover); err != nil {
		return Ply{}, err
	}

	// A king moving two columns castles; resolve the rook displacement
	// before touching anything so a bad castle rejects cleanly.
	var rookMove *CastleRookMove
	var rookIdx int
	if piece.Type == King && abs(mv.From.X-mv.To.X) == 2 {
		var err error
		rookMove, rookIdx, err = s.castleRook(mover, mv)
		if err != nil {
			return Ply{}, err
		}
	}

	ply := Ply{
		Piece:          piece,
		From:           mv.From,
		To:             mv.To,
		CastleRookMove: rookMove,
		Promotion:      mv.Promotion,
	}

	// Capture: a piece already on the target square, or the pawn passed
	// over by the last double-step.
	if victim, ok := s.Board.removeAt(mover.Other(), mv.To); ok {
		ply.Captured = &victim
	} else if piece.Type == Pawn && s.Flags.EnPassant != nil &&
		mv.To == *s.Flags.EnPassant && mv.From.X != mv.To.X {
		behind := Square{X: mv.To.X, Y: mv.To.Y + 1}
		if mover == Black {
			behind = Square{X: mv.To.X, Y: mv.To.Y - 1}
		}
		if victim, ok := s.Board.removeAt(mover.Other(), behind); ok {
			ply.Captured = &victim
		}
	}

	moved := &(*s.Board.pieces(mover))[idx]
	moved.Square = mv.To
	if mv.Promotion != "" {
		moved.Type = mv.Promotion
	}
	if rookMove != nil {
		(*s.Board.pieces(mover))[rookIdx].Square = rookMove.To
	}

	// Castling rights: a king move forfeits both wings, a rook leaving its
	// corner forfeits that wing, and so does capturing a rook on its corner.
	switch piece.Type {
	case King:
		s.Flags.Castling.forfeitAll(mover)
	case Rook:
		if kingside, ok := rookWing(mover, mv.From); ok {
			s.Flags.Castling.forfeit(mover, kingside)
		}
	}
	if ply.Captured != nil && ply.Captured.Type == Rook {
		if kingside, ok := rookWing(mover.Other(), ply.Captured.Square); ok {
			s.Flags.Castling.forfeit(mover.Other(), kingside)
		}
	}

	// En passant window: open on a pawn double-step, closed by everything else.
	s.Flags.EnPassant = nil
	if piece.Type == Pawn {
		switch mv.To.Y - mv.From.Y {
		case 2:
			s.Flags.EnPassant = &Square{X: mv.To.X, Y: mv.To.Y - 1}
		case -2:
			s.Flags.EnPassant = &Square{X: mv.To.X, Y: mv.To.Y + 1}
		}
	}

	s.ToMove = mover.Other()
	ply.Notation = notate(ply)
	return ply, nil
}

// castleRook locates the rook a castling king move drags along. The rook
// must stand on its corner and its target square must be empty, otherwise
// the displacement would corrupt the board.
func (s *BoardState) castleRook(mover Side, mv Move) (*CastleRookMove, int, error) {
	var rm CastleRookMove
	switch mv.To.X {
	case 3:
		rm = CastleRookMove{From: Square{X: 1, Y: mv.From.Y}, To: Square{X: 4, Y: mv.From.Y}}
	case 7:
		rm = CastleRookMove{From: Square{X: 8, Y: mv.From.Y}, To: Square{X: 6, Y: mv.From.Y}}
	default:
		return nil, 0, nil
	}

	idx := s.Board.indexAt(mover, rm.From)
	if idx < 0 || (*s.Board.pieces(mover))[idx].Type != Rook {
		return nil, 0, fmt.Errorf("%w: no rook on %s to castle with", ErrNoPiece, rm.From)
	}
	if _, _, occupied := s.Board.PieceAt(rm.To); occupied {
		return nil, 0, fmt.Errorf("%w: rook target %s", ErrSquareOccupied, rm.To)
	}
	return &rm, idx, nil
}

func checkPromotion(piece Piece, mv Move, mover Side) error {
	lastRow := 1
	if mover == Black {
		lastRow = 8
	}
	promoting := piece.Type == Pawn && mv.To.Y == lastRow

	switch {
	case promoting && mv.Promotion == "":
		return fmt.Errorf("%w: pawn reaching %s needs a promotion code", ErrBadPromotion, mv.To)
	case promoting:
		switch mv.Promotion {
		case Queen, Rook, Bishop, Knight:
		default:
			return fmt.Errorf("%w: %q", ErrBadPromotion, mv.Promotion)
		}
	case mv.Promotion != "":
		return fmt.Errorf("%w: move %s%s does not promote", ErrBadPromotion, mv.From, mv.To)
	}
	return nil
}

// rookWing says which castling wing a rook on sq guards for side s, if any.
func rookWing(s Side, sq Square) (kingside bool, ok bool) {
	homeY := 8
	if s == Black {
		homeY = 1
	}
	if sq.Y != homeY {
		return false, false
	}
	switch sq.X {
	case 8:
		return true, true
	case 1:
		return false, true
	}
	return false, false
}

func notate(ply Ply) string {
	if ply.CastleRookMove != nil {
		if ply.To.X == 7 {
			return "O-O"
		}
		return "O-O-O"
	}
	prefix := ply.Piece.Type.notation()
	capture := ""
	if ply.Captured != nil {
		capture = "x"
		if ply.Piece.Type == Pawn {
			prefix = ply.From.file()
		}
	}
	out := prefix + capture + ply.To.String()
	if ply.Promotion != "" {
		out += "=" + ply.Promotion.notation()
	}
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
