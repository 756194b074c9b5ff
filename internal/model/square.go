package model

import "fmt"

// Square identifies a board square. X is the column counted from the left,
// Y the row counted from the top, both in [1,8]: (1,1) is the top-left
// corner a8, (8,8) is the bottom-right corner h1.
type Square struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (s Square) Valid() bool {
	return s.X >= 1 && s.X <= 8 && s.Y >= 1 && s.Y <= 8
}

// String renders the square in algebraic notation, e.g. (5,7) -> "e2".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%d", 'a'+s.X-1, 9-s.Y)
}

// file is the column letter alone, used by pawn capture notation.
func (s Square) file() string {
	return fmt.Sprintf("%c", 'a'+s.X-1)
}

// ParseSquare reads algebraic notation back into coordinates.
func ParseSquare(str string) (Square, error) {
	if len(str) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrOffBoard, str)
	}
	sq := Square{
		X: int(str[0]-'a') + 1,
		Y: 9 - int(str[1]-'0'),
	}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("%w: %q", ErrOffBoard, str)
	}
	return sq, nil
}
