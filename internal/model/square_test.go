package model

import (
	"errors"
	"testing"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Square
	}{
		{name: "top left corner", in: "a8", want: Square{X: 1, Y: 1}},
		{name: "bottom right corner", in: "h1", want: Square{X: 8, Y: 8}},
		{name: "white pawn rank", in: "e2", want: Square{X: 5, Y: 7}},
		{name: "center", in: "d5", want: Square{X: 4, Y: 4}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("parse %q = %+v, want %+v", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Fatalf("round trip of %q gave %q", tt.in, got.String())
			}
		})
	}
}

func TestParseSquareRejectsOffBoard(t *testing.T) {
	for _, in := range []string{"", "e", "e22", "i1", "a0", "a9", "z5"} {
		if _, err := ParseSquare(in); !errors.Is(err, ErrOffBoard) {
			t.Fatalf("parse %q: got %v, want off-board error", in, err)
		}
	}
}

func TestSquareValid(t *testing.T) {
	valid := []Square{{X: 1, Y: 1}, {X: 8, Y: 8}, {X: 4, Y: 5}}
	for _, sq := range valid {
		if !sq.Valid() {
			t.Fatalf("square %+v reported invalid", sq)
		}
	}

	invalid := []Square{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 9, Y: 1}, {X: 1, Y: 9}, {X: -3, Y: 4}}
	for _, sq := range invalid {
		if sq.Valid() {
			t.Fatalf("square %+v reported valid", sq)
		}
		if sq.String() != "-" {
			t.Fatalf("invalid square rendered as %q", sq.String())
		}
	}
}
