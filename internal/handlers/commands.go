// internal/handlers/commands.go
package handlers

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/akitaca/sketchdash/internal/events"
	"github.com/akitaca/sketchdash/internal/game"
	"github.com/akitaca/sketchdash/internal/models"
)

const roomCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// generateRoomCode returns a 6-character shareable code. Ambiguous characters
// (0/O, 1/I) are excluded from the alphabet.
func generateRoomCode() string {
	var b strings.Builder
	for i := 0; i < 6; i++ {
		b.WriteByte(roomCodeAlphabet[rand.Intn(len(roomCodeAlphabet))])
	}
	return b.String()
}

// handleCommand dispatches one inbound command. Validation failures are
// reported back on the originating session only; shared room state is never
// touched by a rejected command.
func (gs *GameServer) handleCommand(sess *session, cmd events.Command) {
	switch cmd.Type {
	case events.CmdCreateRoom:
		gs.handleCreateRoom(sess, cmd)
	case events.CmdJoinRoom:
		gs.handleJoinRoom(sess, cmd)
	case events.CmdReadyGame:
		gs.handleReadyGame(sess, cmd)
	case events.CmdKickPlayer:
		gs.handleKickPlayer(sess, cmd)
	case events.CmdStartGame:
		gs.handleStartGame(sess, cmd)
	case events.CmdSelectWord:
		gs.handleSelectWord(sess, cmd)
	case events.CmdSendChat:
		gs.handleSendChat(sess, cmd)
	case events.CmdSendDrawing:
		gs.handleSendDrawing(sess, cmd)
	case events.CmdLeaveRoom:
		gs.handleLeaveRoom(sess, cmd)
	default:
		sess.sendError(fmt.Sprintf("unknown command type: %s", cmd.Type))
	}
}

func (gs *GameServer) handleCreateRoom(sess *session, cmd events.Command) {
	var p events.CreateRoomPayload
	if err := cmd.DecodePayload(&p); err != nil {
		sess.sendError(err.Error())
		return
	}
	hostID := p.HostID
	if hostID == "" {
		hostID = sess.id
	}
	host := models.Player{ID: hostID, Nickname: p.Nickname, Avatar: p.Avatar}
	settings := models.RoomSettings{
		MaxRounds:     p.MaxRounds,
		RoundDuration: p.RoundDuration,
		Difficulty:    p.Difficulty,
		CustomWords:   p.CustomWords,
	}
	conn := &game.RoomConnection{PlayerID: hostID, Out: sess.out}

	code := p.RoomCode
	var err error
	if code != "" {
		_, err = gs.Registry.CreateRoom(code, host, settings, conn)
	} else {
		// Generated codes can collide; retry with a fresh one.
		for attempt := 0; attempt < 5; attempt++ {
			code = generateRoomCode()
			if _, err = gs.Registry.CreateRoom(code, host, settings, conn); err == nil {
				break
			}
		}
	}
	if err != nil {
		sess.sendError(err.Error())
		return
	}

	sess.bindRoom(code, hostID)
	sess.send(events.Event{Type: events.EventRoomCreated, Data: events.RoomCreatedData{RoomCode: code}})
	for _, ev := range gs.Registry.ReplayFor(code, hostID) {
		sess.send(ev)
	}
}

func (gs *GameServer) handleJoinRoom(sess *session, cmd events.Command) {
	var p events.JoinRoomPayload
	if err := cmd.DecodePayload(&p); err != nil {
		sess.sendError(err.Error())
		return
	}
	userID := p.UserID
	if userID == "" {
		userID = sess.id
	}
	player := models.Player{ID: userID, Nickname: p.Nickname, Avatar: p.Avatar}
	conn := &game.RoomConnection{PlayerID: userID, Out: sess.out}

	_, rejoined, err := gs.Registry.JoinRoom(p.RoomCode, player, conn)
	if err != nil {
		sess.sendError(err.Error())
		return
	}
	sess.bindRoom(p.RoomCode, userID)
	if rejoined {
		gs.Logger.Infof("session %s: player %s rejoined room %s, replaying state", sess.id, userID, p.RoomCode)
	}

	// Fresh joiners and rejoiners alike get the room brought up to date:
	// snapshot, chat log, canvas and current round state.
	for _, ev := range gs.Registry.ReplayFor(p.RoomCode, userID) {
		sess.send(ev)
	}
}

func (gs *GameServer) handleReadyGame(sess *session, cmd events.Command) {
	var p events.ReadyGamePayload
	if err := cmd.DecodePayload(&p); err != nil {
		sess.sendError(err.Error())
		return
	}
	userID := p.UserID
	if userID == "" {
		userID, _ = sess.playerIn(p.RoomCode)
	}
	gs.Registry.SetReady(p.RoomCode, userID, p.IsReady)
}

func (gs *GameServer) handleKickPlayer(sess *session, cmd events.Command) {
	var p events.KickPlayerPayload
	if err := cmd.DecodePayload(&p); err != nil {
		sess.sendError(err.Error())
		return
	}
	requester := p.HostID
	if requester == "" {
		requester, _ = sess.playerIn(p.RoomCode)
	}
	if err := gs.Registry.KickPlayer(p.RoomCode, requester, p.PlayerID); err != nil {
		sess.sendError(err.Error())
	}
}

func (gs *GameServer) handleStartGame(sess *session, cmd events.Command) {
	var p events.StartGamePayload
	if err := cmd.DecodePayload(&p); err != nil {
		sess.sendError(err.Error())
		return
	}
	requester, ok := sess.playerIn(p.RoomCode)
	if !ok {
		sess.sendError("not joined to that room")
		return
	}
	if err := gs.Registry.StartGame(p.RoomCode, requester); err != nil {
		sess.sendError(err.Error())
	}
}

func (gs *GameServer) handleSelectWord(sess *session, cmd events.Command) {
	var p events.SelectWordPayload
	if err := cmd.DecodePayload(&p); err != nil {
		sess.sendError(err.Error())
		return
	}
	userID := p.UserID
	if userID == "" {
		userID, _ = sess.playerIn(p.RoomCode)
	}
	if err := gs.Registry.SelectWord(p.RoomCode, userID, p.Word); err != nil {
		sess.sendError(err.Error())
	}
}

func (gs *GameServer) handleSendChat(sess *session, cmd events.Command) {
	if !sess.chatLimiter.Allow() {
		sess.sendError("too many chat messages, slow down")
		return
	}
	var p events.SendChatPayload
	if err := cmd.DecodePayload(&p); err != nil {
		sess.sendError(err.Error())
		return
	}
	if p.Message.UserID == "" {
		p.Message.UserID, _ = sess.playerIn(p.RoomCode)
	}
	if strings.TrimSpace(p.Message.Text) == "" {
		return
	}
	gs.Registry.HandleChat(p.RoomCode, p.Message)
}

func (gs *GameServer) handleSendDrawing(sess *session, cmd events.Command) {
	// Dropped silently under load; strokes are not worth an error round-trip.
	if !sess.drawLimiter.Allow() {
		return
	}
	var p events.SendDrawingPayload
	if err := cmd.DecodePayload(&p); err != nil {
		sess.sendError(err.Error())
		return
	}
	playerID, ok := sess.playerIn(p.RoomCode)
	if !ok {
		sess.sendError("not joined to that room")
		return
	}
	gs.Registry.HandleDrawing(p.RoomCode, playerID, p.Action)
}

func (gs *GameServer) handleLeaveRoom(sess *session, cmd events.Command) {
	var p events.LeaveRoomPayload
	if err := cmd.DecodePayload(&p); err != nil {
		sess.sendError(err.Error())
		return
	}
	userID := p.UserID
	if userID == "" {
		userID, _ = sess.playerIn(p.RoomCode)
	}
	gs.Registry.LeaveRoom(p.RoomCode, userID)
	sess.unbindRoom(p.RoomCode)
}
