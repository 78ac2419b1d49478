package game

import (
	"log"

	"github.com/akitaca/sketchdash/internal/events"
)

// RoomConnection is a player's live presence in a room. Out is owned by the
// session's write pump; Write never blocks room processing on a slow client.
type RoomConnection struct {
	PlayerID string
	Out      chan events.Event
}

// Write pushes an event onto the connection's outbound channel, dropping it
// if the channel is full or closed.
func (c *RoomConnection) Write(ev events.Event) {
	select {
	case c.Out <- ev:
	default:
		log.Printf("room conn: out channel for player %s full or closed, dropped %q", c.PlayerID, ev.Type)
	}
}
