package events

import (
	"github.com/akitaca/sketchdash/internal/models"
	"github.com/akitaca/sketchdash/internal/words"
)

// EventType enumerates every outbound event.
type EventType string

const (
	EventUserConnected    EventType = "user-connected"
	EventRoomCreated      EventType = "room-created"
	EventRoomJoined       EventType = "room-joined"
	EventRoomError        EventType = "room-error"
	EventRoomUpdated      EventType = "room-updated"
	EventPlayerJoined     EventType = "player-joined"
	EventPlayerReady      EventType = "player-ready"
	EventPlayerLeft       EventType = "player-left"
	EventPlayerKicked     EventType = "player-kicked"
	EventKickedFromRoom   EventType = "kicked-from-room"
	EventGameStarted      EventType = "game-started"
	EventNewRound         EventType = "new-round"
	EventGameStateUpdated EventType = "game-state-updated"
	EventWordSelected     EventType = "word-selected"
	EventHintUpdated      EventType = "hint-updated"
	EventAnswerRevealed   EventType = "answer-revealed"
	EventNewChatMessage   EventType = "new-chat-message"
	EventNewDrawingAction EventType = "new-drawing-action"
	EventGameEnded        EventType = "game-ended"
)

// Event is the outbound envelope. Data is always one of the payload structs
// below, matched to Type.
type Event struct {
	Type EventType `json:"type"`
	Data any       `json:"data,omitempty"`
}

// PlayerSnapshot is a Player with the game score folded in for presentation.
type PlayerSnapshot struct {
	models.Player
	Score int `json:"score"`
}

// RoomSnapshot is the full shared view of a room, broadcast after every
// roster or lifecycle mutation.
type RoomSnapshot struct {
	Code          string           `json:"code"`
	HostID        string           `json:"hostId"`
	Players       []PlayerSnapshot `json:"players"`
	Phase         string           `json:"phase"`
	CurrentRound  int              `json:"currentRound"`
	MaxRounds     int              `json:"maxRounds"`
	RoundDuration int              `json:"roundDuration"`
	Difficulty    string           `json:"difficulty"`
	CreatedAt     int64            `json:"createdAt"`
}

// GameSnapshot is the shared view of the active round. The current word is
// never present; it reaches the drawer through a word-selected event and
// everyone else through the authoritative reveal. WordOptions is populated
// only in the snapshot sent to the drawer during word selection.
type GameSnapshot struct {
	CurrentDrawerID    string           `json:"currentDrawerId"`
	CurrentRound       int              `json:"currentRound"`
	RoundStartTime     int64            `json:"roundStartTime"` // unix ms
	RoundDuration      int              `json:"roundDuration"`  // seconds
	Scores             map[string]int   `json:"scores"`
	GuessedBy          []string         `json:"guessedBy"`
	WordSelectionState string           `json:"wordSelectionState"`
	WordOptions        []words.WordItem `json:"wordOptions,omitempty"`
}

type UserConnectedData struct {
	UserID string `json:"userId"`
}

type RoomCreatedData struct {
	RoomCode string `json:"roomCode"`
}

type RoomJoinedData struct {
	RoomCode string       `json:"roomCode"`
	Room     RoomSnapshot `json:"room"`
}

type RoomErrorData struct {
	Message string `json:"message"`
}

type PlayerJoinedData struct {
	UserID   string `json:"userId"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

type PlayerReadyData struct {
	UserID  string `json:"userId"`
	IsReady bool   `json:"isReady"`
}

type PlayerLeftData struct {
	UserID string `json:"userId"`
}

type PlayerKickedData struct {
	PlayerID string `json:"playerId"`
}

type KickedFromRoomData struct {
	RoomCode string `json:"roomCode"`
}

// WordSelectedData is sent in two shapes: the drawer receives Word, everyone
// else only the metadata.
type WordSelectedData struct {
	DrawerID   string `json:"drawerId"`
	Word       string `json:"word,omitempty"`
	Difficulty string `json:"difficulty,omitempty"`
	Category   string `json:"category,omitempty"`
	WordLength int    `json:"wordLength"`
}

type HintUpdatedData struct {
	HintText string `json:"hintText"`
}

type AnswerRevealedData struct {
	Word    string `json:"word"`
	Correct bool   `json:"correct"`
}
