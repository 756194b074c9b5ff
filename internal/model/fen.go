package model

import (
	"fmt"
	"strings"
)

// StartFEN is the standard starting position as FEN.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN renders the position in Forsyth-Edwards notation. The board carries
// no move counters (the side-to-move flag is the sole turn-order state), so
// the halfmove and fullmove fields are emitted as "0 1".
func (s *BoardState) FEN() string {
	var fen strings.Builder
	for y := 1; y <= 8; y++ {
		if y > 1 {
			fen.WriteByte('/')
		}
		blanks := 0
		for x := 1; x <= 8; x++ {
			p, side, ok := s.Board.PieceAt(Square{X: x, Y: y})
			if !ok {
				blanks++
				continue
			}
			if blanks > 0 {
				fen.WriteByte(byte('0' + blanks))
				blanks = 0
			}
			fen.WriteString(fenLetter(p.Type, side))
		}
		if blanks > 0 {
			fen.WriteByte(byte('0' + blanks))
		}
	}

	active := "w"
	if s.ToMove == Black {
		active = "b"
	}

	castling := ""
	if s.Flags.Castling.WhiteKingside {
		castling += "K"
	}
	if s.Flags.Castling.WhiteQueenside {
		castling += "Q"
	}
	if s.Flags.Castling.BlackKingside {
		castling += "k"
	}
	if s.Flags.Castling.BlackQueenside {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}

	enPassant := "-"
	if s.Flags.EnPassant != nil {
		enPassant = s.Flags.EnPassant.String()
	}

	return fmt.Sprintf("%s %s %s %s 0 1", fen.String(), active, castling, enPassant)
}

// ParseFEN reads a 4- or 6-field FEN string. Clock fields, when present,
// are ignored.
func ParseFEN(fen string) (*BoardState, error) {
	fields := strings.Fields(fen)
	if len(fields) != 4 && len(fields) != 6 {
		return nil, fmt.Errorf("invalid fen: %d fields", len(fields))
	}

	rows := strings.Split(fields[0], "/")
	if len(rows) != 8 {
		return nil, fmt.Errorf("invalid fen: %d rows", len(rows))
	}

	state := &BoardState{}
	for y := 1; y <= 8; y++ {
		x := 1
		for _, r := range rows[y-1] {
			switch {
			case r >= '1' && r <= '8':
				x += int(r - '0')
			default:
				if x > 8 {
					return nil, fmt.Errorf("invalid fen: row %d overflows", y)
				}
				side := Black
				code := PieceType(r)
				if r >= 'A' && r <= 'Z' {
					side = White
					code = PieceType(r + ('a' - 'A'))
				}
				if !code.Valid() {
					return nil, fmt.Errorf("%w: %q", ErrBadPieceType, string(r))
				}
				piece := Piece{Square{X: x, Y: y}, code}
				*state.Board.pieces(side) = append(*state.Board.pieces(side), piece)
				x++
			}
		}
		if x != 9 {
			return nil, fmt.Errorf("invalid fen: row %d has %d columns", y, x-1)
		}
	}

	switch fields[1] {
	case "w":
		state.ToMove = White
	case "b":
		state.ToMove = Black
	default:
		return nil, fmt.Errorf("invalid fen: active color %q", fields[1])
	}

	if fields[2] != "-" {
		for _, r := range fields[2] {
			switch r {
			case 'K':
				state.Flags.Castling.WhiteKingside = true
			case 'Q':
				state.Flags.Castling.WhiteQueenside = true
			case 'k':
				state.Flags.Castling.BlackKingside = true
			case 'q':
				state.Flags.Castling.BlackQueenside = true
			default:
				return nil, fmt.Errorf("invalid fen: castling %q", fields[2])
			}
		}
	}

	if fields[3] != "-" {
		sq, err := ParseSquare(fields[3])
		if err != nil {
			return nil, fmt.Errorf("invalid fen: en passant %q", fields[3])
		}
		state.Flags.EnPassant = &sq
	}

	return state, nil
}

func fenLetter(p PieceType, s Side) string {
	if s == White {
		return strings.ToUpper(string(p))
	}
	return string(p)
}
