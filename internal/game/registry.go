package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/akitaca/sketchdash/internal/events"
	"github.com/akitaca/sketchdash/internal/models"
)

// GameSummary is the final scoreboard of a finished game, handed to the
// OnGameFinished hook for export.
type GameSummary struct {
	RoomCode   string                  `json:"roomCode"`
	FinishedAt int64                   `json:"finishedAt"`
	Rounds     int                     `json:"rounds"`
	Scores     map[string]int          `json:"scores"`
	Players    []events.PlayerSnapshot `json:"players"`
}

// Registry owns every active room and the timers armed for them. It is
// constructed once at process start and injected into the gateway; tests
// build as many independent registries as they need.
//
// The registry map and the timer map are the only shared mutable structures
// in the process. Per-room state is serialized by the room's own mutex, so
// rooms never block each other.
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*Room

	timersMu sync.Mutex
	timers   map[string]*roomTimers

	// SelectionTimeout is how long the drawer has to pick a word before the
	// first option is chosen automatically.
	SelectionTimeout time.Duration

	// GraceDelay is the pause between the answer reveal and the next round.
	GraceDelay time.Duration

	// OnGameFinished, when set, receives the final scoreboard of every game
	// that runs to completion. Called on its own goroutine; must not touch
	// room state.
	OnGameFinished func(summary GameSummary)
}

// NewRegistry returns an empty registry with production timing defaults.
func NewRegistry() *Registry {
	return &Registry{
		rooms:            make(map[string]*Room),
		timers:           make(map[string]*roomTimers),
		SelectionTimeout: 15 * time.Second,
		GraceDelay:       2 * time.Second,
	}
}

// Get returns the room for code, if it exists.
func (r *Registry) Get(code string) (*Room, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	room, ok := r.rooms[code]
	return room, ok
}

// ActiveRooms reports the number of live rooms, for the health endpoint.
func (r *Registry) ActiveRooms() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.rooms)
}

// CreateRoom registers a new room in the waiting phase with the host as its
// sole, ready-by-default player.
func (r *Registry) CreateRoom(code string, host models.Player, settings models.RoomSettings, conn *RoomConnection) (*Room, error) {
	settings.Normalize()
	fillProfileDefaults(&host)

	r.mu.Lock()
	if _, exists := r.rooms[code]; exists {
		r.mu.Unlock()
		return nil, ErrRoomExists
	}
	room := newRoom(code, host, settings)
	room.Connections[host.ID] = conn
	r.rooms[code] = room
	r.mu.Unlock()

	log.Printf("room %s created by %s (%s)", code, host.Nickname, host.ID)

	room.Mu.Lock()
	room.broadcastRoomUpdate()
	room.Mu.Unlock()
	return room, nil
}

// JoinRoom adds a player to the room, or re-binds the connection if the id is
// already present. The rejoined return distinguishes the idempotent replay
// path so the gateway can resend current state instead of announcing a join.
func (r *Registry) JoinRoom(code string, player models.Player, conn *RoomConnection) (room *Room, rejoined bool, err error) {
	room, ok := r.Get(code)
	if !ok {
		return nil, false, ErrRoomNotFound
	}
	fillProfileDefaults(&player)

	room.Mu.Lock()
	defer room.Mu.Unlock()

	if _, existing := room.findPlayer(player.ID); existing != nil {
		// Reconnect: replace the live connection, no duplicate insertion.
		room.Connections[player.ID] = conn
		return room, true, nil
	}
	if len(room.Players) >= MaxPlayers {
		return nil, false, ErrRoomFull
	}

	p := player
	p.IsReady = false
	room.Players = append(room.Players, &p)
	room.Connections[p.ID] = conn

	log.Printf("room %s: %s (%s) joined", code, p.Nickname, p.ID)

	room.broadcast(events.Event{Type: events.EventPlayerJoined, Data: events.PlayerJoinedData{
		UserID:   p.ID,
		Nickname: p.Nickname,
		Avatar:   p.Avatar,
	}})
	room.broadcastRoomUpdate()
	return room, false, nil
}

// LeaveRoom removes the player from the room. A missing room or player is a
// silent no-op, which also makes the gateway's disconnect sweep safe against
// stale membership hints.
func (r *Registry) LeaveRoom(code, playerID string) {
	room, ok := r.Get(code)
	if !ok {
		return
	}
	room.Mu.Lock()
	r.removePlayerLocked(room, playerID, events.Event{
		Type: events.EventPlayerLeft,
		Data: events.PlayerLeftData{UserID: playerID},
	})
	room.Mu.Unlock()
}

// KickPlayer removes targetID on the host's request. The kicked connection
// receives a dedicated kicked-from-room event before the roster broadcast.
func (r *Registry) KickPlayer(code, requesterID, targetID string) error {
	room, ok := r.Get(code)
	if !ok {
		return ErrRoomNotFound
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	if requesterID != room.HostID {
		return ErrNotHost
	}
	if requesterID == targetID {
		return ErrCannotKickSelf
	}
	if _, p := room.findPlayer(targetID); p == nil {
		return ErrPlayerNotFound
	}

	room.sendTo(targetID, events.Event{Type: events.EventKickedFromRoom, Data: events.KickedFromRoomData{RoomCode: code}})
	r.removePlayerLocked(room, targetID, events.Event{
		Type: events.EventPlayerKicked,
		Data: events.PlayerKickedData{PlayerID: targetID},
	})
	return nil
}

// SetReady flips the player's ready flag. Unknown rooms or players are
// silently ignored.
func (r *Registry) SetReady(code, playerID string, isReady bool) {
	room, ok := r.Get(code)
	if !ok {
		return
	}
	room.Mu.Lock()
	defer room.Mu.Unlock()

	_, p := room.findPlayer(playerID)
	if p == nil {
		return
	}
	p.IsReady = isReady
	room.broadcast(events.Event{Type: events.EventPlayerReady, Data: events.PlayerReadyData{
		UserID:  playerID,
		IsReady: isReady,
	}})
	room.broadcastRoomUpdate()
}

// removePlayerLocked takes the player out of the roster, broadcasts the given
// departure event, transfers the host role if needed, deletes the room when
// it empties, and keeps an in-flight round consistent. Caller holds room.Mu.
func (r *Registry) removePlayerLocked(room *Room, playerID string, departure events.Event) {
	idx, p := room.findPlayer(playerID)
	if p == nil {
		return
	}
	room.Players = append(room.Players[:idx], room.Players[idx+1:]...)
	delete(room.Connections, playerID)

	room.broadcast(departure)

	if len(room.Players) == 0 {
		r.mu.Lock()
		delete(r.rooms, room.Code)
		r.mu.Unlock()
		r.cancelTimers(room.Code)
		log.Printf("room %s deleted (last player left)", room.Code)
		return
	}

	if room.HostID == playerID {
		room.HostID = room.Players[0].ID
		log.Printf("room %s: host transferred to %s", room.Code, room.HostID)
	}

	if room.Phase == PhasePlaying && room.Game != nil && !room.Game.Revealed {
		if room.Game.CurrentDrawerID == playerID {
			// The drawer is gone; nothing left to guess at.
			r.endRoundLocked(room, false)
		} else if room.Game.SubState == SubStateDrawing && r.allGuessedLocked(room) {
			r.endRoundLocked(room, true)
		}
	}

	room.broadcastRoomUpdate()
}

func fillProfileDefaults(p *models.Player) {
	if p.Nickname == "" {
		short := p.ID
		if len(short) > 4 {
			short = short[:4]
		}
		p.Nickname = fmt.Sprintf("Player-%s", short)
	}
	if p.Avatar == "" {
		p.Avatar = "👤"
	}
}
