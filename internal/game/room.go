package game

import (
	"sync"
	"time"

	"github.com/akitaca/sketchdash/internal/events"
	"github.com/akitaca/sketchdash/internal/models"
)

// MaxPlayers is the room capacity ceiling.
const MaxPlayers = 6

// RoomPhase is the room lifecycle phase.
type RoomPhase string

const (
	PhaseWaiting  RoomPhase = "waiting"
	PhasePlaying  RoomPhase = "playing"
	PhaseFinished RoomPhase = "finished"
)

// Room is a code-addressed game session. It exclusively owns its game state,
// message log and drawing buffer; no other room references them.
//
// Players is ordered: insertion order on join doubles as the turn rotation
// order. The room is deleted when the last player leaves, so Players is never
// empty while the room exists.
//
// All exported fields are guarded by Mu. Unexported methods assume the caller
// holds Mu.
type Room struct {
	Code         string
	HostID       string
	Players      []*models.Player
	Phase        RoomPhase
	CurrentRound int
	Settings     models.RoomSettings
	UsedWords    map[string]struct{}
	Messages     []models.ChatMessage
	Drawings     []models.DrawingAction
	CreatedAt    time.Time

	// Game is non-nil while Phase is playing, and retains its last snapshot
	// after the room finishes so the final scoreboard can still be rendered.
	Game *GameState

	Connections map[string]*RoomConnection

	Mu sync.Mutex
}

func newRoom(code string, host models.Player, settings models.RoomSettings) *Room {
	host.IsReady = true // the host is ready by default
	return &Room{
		Code:        code,
		HostID:      host.ID,
		Players:     []*models.Player{&host},
		Phase:       PhaseWaiting,
		Settings:    settings,
		UsedWords:   make(map[string]struct{}),
		CreatedAt:   time.Now(),
		Connections: make(map[string]*RoomConnection),
	}
}

func (room *Room) findPlayer(id string) (int, *models.Player) {
	for i, p := range room.Players {
		if p.ID == id {
			return i, p
		}
	}
	return -1, nil
}

// nonDrawerCount is the number of guessers for the active round.
func (room *Room) nonDrawerCount() int {
	if room.Game == nil {
		return 0
	}
	n := 0
	for _, p := range room.Players {
		if p.ID != room.Game.CurrentDrawerID {
			n++
		}
	}
	return n
}

// broadcast sends ev to every connection in the room. Sends are non-blocking,
// so holding Mu while broadcasting is safe.
func (room *Room) broadcast(ev events.Event) {
	for _, c := range room.Connections {
		c.Write(ev)
	}
}

// broadcastExcept sends ev to everyone but the named player.
func (room *Room) broadcastExcept(playerID string, ev events.Event) {
	for id, c := range room.Connections {
		if id != playerID {
			c.Write(ev)
		}
	}
}

// sendTo sends ev to a single player if they are connected.
func (room *Room) sendTo(playerID string, ev events.Event) {
	if c, ok := room.Connections[playerID]; ok {
		c.Write(ev)
	}
}

// Snapshot builds the shared room view, folding game scores into the roster.
func (room *Room) Snapshot() events.RoomSnapshot {
	players := make([]events.PlayerSnapshot, 0, len(room.Players))
	for _, p := range room.Players {
		ps := events.PlayerSnapshot{Player: *p}
		if room.Game != nil {
			ps.Score = room.Game.Scores[p.ID]
		}
		players = append(players, ps)
	}
	return events.RoomSnapshot{
		Code:          room.Code,
		HostID:        room.HostID,
		Players:       players,
		Phase:         string(room.Phase),
		CurrentRound:  room.CurrentRound,
		MaxRounds:     room.Settings.MaxRounds,
		RoundDuration: room.Settings.RoundDuration,
		Difficulty:    room.Settings.Difficulty,
		CreatedAt:     room.CreatedAt.UnixMilli(),
	}
}

func (room *Room) broadcastRoomUpdate() {
	room.broadcast(events.Event{Type: events.EventRoomUpdated, Data: room.Snapshot()})
}

// broadcastGame sends a per-player game snapshot under the given event type.
// Snapshots are personalized because word options are visible to the drawer
// only.
func (room *Room) broadcastGame(evType events.EventType) {
	if room.Game == nil {
		return
	}
	for id, c := range room.Connections {
		c.Write(events.Event{Type: evType, Data: room.Game.snapshotFor(id, room.CurrentRound)})
	}
}
