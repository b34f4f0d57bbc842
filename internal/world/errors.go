package world

import "errors"

var (
	ErrPlayerExists   = errors.New("player already online")
	ErrPlayerNotFound = errors.New("player not found")
)
