package events

import (
	"encoding/json"
	"fmt"

	"github.com/akitaca/sketchdash/internal/models"
)

// CommandType enumerates every inbound client command. The set is closed:
// anything else is rejected at the gateway boundary.
type CommandType string

const (
	CmdCreateRoom  CommandType = "create-room"
	CmdJoinRoom    CommandType = "join-room"
	CmdReadyGame   CommandType = "ready-game"
	CmdKickPlayer  CommandType = "kick-player"
	CmdStartGame   CommandType = "start-game"
	CmdSelectWord  CommandType = "select-word"
	CmdSendChat    CommandType = "send-chat-message"
	CmdSendDrawing CommandType = "send-drawing-action"
	CmdLeaveRoom   CommandType = "leave-room"
)

// Command is the wire envelope for inbound messages. Payload stays raw until
// the dispatcher decodes it into the shape matching Type.
type Command struct {
	Type    CommandType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

type CreateRoomPayload struct {
	RoomCode      string   `json:"roomCode"`
	HostID        string   `json:"hostId"`
	Nickname      string   `json:"nickname"`
	Avatar        string   `json:"avatar"`
	MaxRounds     int      `json:"maxRounds,omitempty"`
	RoundDuration int      `json:"roundDuration,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	CustomWords   []string `json:"customWords,omitempty"`
}

type JoinRoomPayload struct {
	RoomCode string `json:"roomCode"`
	UserID   string `json:"userId"`
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
}

type ReadyGamePayload struct {
	RoomCode string `json:"roomCode"`
	UserID   string `json:"userId"`
	IsReady  bool   `json:"isReady"`
}

type KickPlayerPayload struct {
	RoomCode string `json:"roomCode"`
	HostID   string `json:"hostId"`
	PlayerID string `json:"playerId"`
}

type StartGamePayload struct {
	RoomCode string `json:"roomCode"`
}

type SelectWordPayload struct {
	RoomCode string `json:"roomCode"`
	UserID   string `json:"userId"`
	Word     string `json:"word"`
}

type SendChatPayload struct {
	RoomCode string             `json:"roomCode"`
	Message  models.ChatMessage `json:"message"`
}

type SendDrawingPayload struct {
	RoomCode string               `json:"roomCode"`
	Action   models.DrawingAction `json:"action"`
}

type LeaveRoomPayload struct {
	RoomCode string `json:"roomCode"`
	UserID   string `json:"userId"`
}

// DecodePayload unmarshals the raw payload into dst, wrapping any JSON error
// with the command type for log context.
func (c Command) DecodePayload(dst any) error {
	if len(c.Payload) == 0 {
		return fmt.Errorf("command %q: empty payload", c.Type)
	}
	if err := json.Unmarshal(c.Payload, dst); err != nil {
		return fmt.Errorf("command %q: %w", c.Type, err)
	}
	return nil
}
