package service

import "errors"

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameExists   = errors.New("game already exists")
	ErrMatchTimeout = errors.New("no match found before timeout")
	ErrWaitReplaced = errors.New("matchmaking wait replaced by a newer request")
)
