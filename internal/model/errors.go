package model

import "errors"

var (
	ErrOffBoard       = errors.New("square off board")
	ErrBadPieceType   = errors.New("unknown piece type")
	ErrBadPromotion   = errors.New("bad promotion")
	ErrNoPiece        = errors.New("no piece on square")
	ErrWrongSide      = errors.New("piece belongs to the side not on move")
	ErrSquareOccupied = errors.New("square occupied")
	ErrGameFull       = errors.New("game is full")
	ErrNotYourTurn    = errors.New("not your turn")
	ErrNotAuthorized  = errors.New("not authorized to join this game")
	ErrAlreadyQueued  = errors.New("player already in queue")
)
