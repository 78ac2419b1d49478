package game

import "errors"

// Error taxonomy for room and game operations. Every one of these is
// recoverable by the requester: the gateway reports it back on the
// originating connection as a room-error event and shared state is untouched.
var (
	ErrRoomNotFound         = errors.New("room not found")
	ErrRoomExists           = errors.New("room already exists")
	ErrRoomFull             = errors.New("room is full")
	ErrNotHost              = errors.New("only the host may do that")
	ErrCannotKickSelf       = errors.New("host cannot kick itself")
	ErrPlayerNotFound       = errors.New("player not found")
	ErrNotEnoughPlayers     = errors.New("need at least two players to start")
	ErrGameInProgress       = errors.New("game already in progress")
	ErrInvalidWordSelection = errors.New("invalid word selection")
)
