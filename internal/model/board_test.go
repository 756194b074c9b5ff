package model

import "testing"

func TestNewBoardLayout(t *testing.T) {
	b := newBoard()

	if len(b.White) != 16 || len(b.Black) != 16 {
		t.Fatalf("expected 16 pieces per side, got %d white and %d black", len(b.White), len(b.Black))
	}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for x := 1; x <= 8; x++ {
		p, side, ok := b.PieceAt(Square{X: x, Y: 1})
		if !ok || side != Black || p.Type != backRank[x-1] {
			t.Fatalf("top row column %d: got %q for %s, want black %q", x, p.Type, side, backRank[x-1])
		}
		p, side, ok = b.PieceAt(Square{X: x, Y: 2})
		if !ok || side != Black || p.Type != Pawn {
			t.Fatalf("row 2 column %d: got %q for %s, want black pawn", x, p.Type, side)
		}
		p, side, ok = b.PieceAt(Square{X: x, Y: 7})
		if !ok || side != White || p.Type != Pawn {
			t.Fatalf("row 7 column %d: got %q for %s, want white pawn", x, p.Type, side)
		}
		p, side, ok = b.PieceAt(Square{X: x, Y: 8})
		if !ok || side != White || p.Type != backRank[x-1] {
			t.Fatalf("bottom row column %d: got %q for %s, want white %q", x, p.Type, side, backRank[x-1])
		}
	}

	for y := 3; y <= 6; y++ {
		for x := 1; x <= 8; x++ {
			if _, _, ok := b.PieceAt(Square{X: x, Y: y}); ok {
				t.Fatalf("expected empty square at (%d,%d)", x, y)
			}
		}
	}
}

func TestBoardCornersAndRoyalty(t *testing.T) {
	b := newBoard()

	tests := []struct {
		name  string
		coord string
		side  Side
		piece PieceType
	}{
		{name: "a8 black rook", coord: "a8", side: Black, piece: Rook},
		{name: "h8 black rook", coord: "h8", side: Black, piece: Rook},
		{name: "a1 white rook", coord: "a1", side: White, piece: Rook},
		{name: "h1 white rook", coord: "h1", side: White, piece: Rook},
		{name: "e1 white king", coord: "e1", side: White, piece: King},
		{name: "d1 white queen", coord: "d1", side: White, piece: Queen},
		{name: "e8 black king", coord: "e8", side: Black, piece: King},
		{name: "d8 black queen", coord: "d8", side: Black, piece: Queen},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			sq, err := ParseSquare(tt.coord)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.coord, err)
			}
			p, side, ok := b.PieceAt(sq)
			if !ok {
				t.Fatalf("no piece on %s", tt.coord)
			}
			if side != tt.side || p.Type != tt.piece {
				t.Fatalf("%s holds %s %q, want %s %q", tt.coord, side, p.Type, tt.side, tt.piece)
			}
		})
	}
}

func TestRemoveAtKeepsOrder(t *testing.T) {
	b := newBoard()

	queenSquare := Square{X: 4, Y: 8}
	removed, ok := b.removeAt(White, queenSquare)
	if !ok || removed.Type != Queen {
		t.Fatalf("removed %q (ok=%v), want the queen", removed.Type, ok)
	}
	if len(b.White) != 15 {
		t.Fatalf("white has %d pieces after removal", len(b.White))
	}
	if _, _, occupied := b.PieceAt(queenSquare); occupied {
		t.Fatalf("queen square still occupied after removal")
	}
	if b.White[2].Type != Bishop || b.White[3].Type != King {
		t.Fatalf("removal disturbed collection order: got %q then %q", b.White[2].Type, b.White[3].Type)
	}

	if _, ok := b.removeAt(White, queenSquare); ok {
		t.Fatalf("second removal from the same square succeeded")
	}
}
