package game

import (
	"time"

	"github.com/akitaca/sketchdash/internal/events"
)

// ReplayFor builds the ordered event sequence that brings a rejoining player
// back up to date: the room snapshot, the chat log, the canvas so far, and the
// current round state including the hint the player is entitled to. The
// gateway writes these to the rejoined connection only.
func (r *Registry) ReplayFor(code, playerID string) []events.Event {
	room, ok := r.Get(code)
	if !ok {
		return nil
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	evs := []events.Event{{
		Type: events.EventRoomJoined,
		Data: events.RoomJoinedData{RoomCode: code, Room: room.Snapshot()},
	}}
	for _, msg := range room.Messages {
		evs = append(evs, events.Event{Type: events.EventNewChatMessage, Data: msg})
	}
	for _, action := range room.Drawings {
		evs = append(evs, events.Event{Type: events.EventNewDrawingAction, Data: action})
	}

	g := room.Game
	if room.Phase != PhasePlaying || g == nil {
		return evs
	}
	evs = append(evs, events.Event{
		Type: events.EventGameStateUpdated,
		Data: g.snapshotFor(playerID, room.CurrentRound),
	})
	if g.SubState == SubStateDrawing && !g.Revealed && playerID != g.CurrentDrawerID {
		evs = append(evs, events.Event{
			Type: events.EventHintUpdated,
			Data: events.HintUpdatedData{HintText: HintFor(g.CurrentWord, g.elapsedFraction(time.Now()))},
		})
	}
	return evs
}
