package ws

import "errors"

var (
	errHandshake   = errors.New("expected find_game or join_game")
	errMatchFull   = errors.New("match is full")
	errUnknownGame = errors.New("unknown game id")
)
