// internal/handlers/room_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/akitaca/sketchdash/internal/events"
	"github.com/akitaca/sketchdash/internal/middleware"
)

// session is one client's websocket presence. A session may be joined to
// several rooms at once; rooms maps room code to the player id the session
// registered under, so a dropped connection can be swept out of every room.
type session struct {
	id     string
	remote string
	out    chan events.Event

	mu    sync.Mutex
	rooms map[string]string

	// Per-session rate limiters for the high-frequency command classes.
	chatLimiter *rate.Limiter
	drawLimiter *rate.Limiter
}

func newSession(remote string) *session {
	return &session{
		id:          uuid.NewString(),
		remote:      remote,
		out:         make(chan events.Event, 64),
		rooms:       make(map[string]string),
		chatLimiter: rate.NewLimiter(rate.Limit(2), 5),
		drawLimiter: rate.NewLimiter(rate.Limit(60), 120),
	}
}

// send queues an event for this session only, dropping it if the client is
// too far behind.
func (s *session) send(ev events.Event) {
	select {
	case s.out <- ev:
	default:
	}
}

func (s *session) sendError(msg string) {
	s.send(events.Event{Type: events.EventRoomError, Data: events.RoomErrorData{Message: msg}})
}

func (s *session) bindRoom(code, playerID string) {
	s.mu.Lock()
	s.rooms[code] = playerID
	s.mu.Unlock()
}

// playerIn returns the player id this session registered in the given room.
func (s *session) playerIn(code string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, ok := s.rooms[code]
	return id, ok
}

func (s *session) unbindRoom(code string) {
	s.mu.Lock()
	delete(s.rooms, code)
	s.mu.Unlock()
}

// memberships snapshots the (room code, player id) pairs for cleanup.
func (s *session) memberships() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]string, len(s.rooms))
	for code, id := range s.rooms {
		out[code] = id
	}
	return out
}

// RoomWSHandler sets up the game websocket flow: one connection per client,
// commands in, room events out.
func RoomWSHandler(logger *logrus.Logger, gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"sketchdash"},
			OriginPatterns: []string{"*"}, // Adjust in production
		})
		if err != nil {
			logger.Warnf("websocket accept error: %v", err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "handler finished")

		if c.Subprotocol() != "sketchdash" {
			c.Close(BadSubprotocolError, "client must speak the sketchdash subprotocol")
			return
		}

		sess := newSession(r.RemoteAddr)
		gs.online.Add(1)
		defer gs.online.Add(-1)
		middleware.LogWebSocketConnect(logger, sess.remote, sess.id)

		sess.send(events.Event{Type: events.EventUserConnected, Data: events.UserConnectedData{UserID: sess.id}})

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		go writePump(ctx, c, sess, logger)
		readErr := readPump(ctx, c, gs, sess, logger)

		// Sweep the session out of every room it was joined to.
		for code, playerID := range sess.memberships() {
			gs.Registry.LeaveRoom(code, playerID)
		}
		middleware.LogWebSocketDisconnect(logger, sess.remote, sess.id, readErr)
	}
}

// readPump handles incoming commands until the connection closes.
func readPump(ctx context.Context, c *websocket.Conn, gs *GameServer, sess *session, logger *logrus.Logger) error {
	for {
		typ, msg, err := c.Read(ctx)
		if err != nil {
			closeStatus := websocket.CloseStatus(err)
			if closeStatus == websocket.StatusNormalClosure || closeStatus == websocket.StatusGoingAway {
				return nil
			}
			if strings.Contains(err.Error(), "context canceled") {
				return nil
			}
			return err
		}
		if typ != websocket.MessageText {
			logger.Warnf("session %s: ignoring non-text message type %d", sess.id, typ)
			continue
		}

		var cmd events.Command
		if err := json.Unmarshal(msg, &cmd); err != nil {
			logger.Warnf("session %s: invalid json: %v", sess.id, err)
			sess.sendError("invalid JSON format")
			continue
		}
		gs.handleCommand(sess, cmd)
	}
}

// writePump drains the session's outbound channel onto the wire and keeps the
// connection alive with periodic pings.
func writePump(ctx context.Context, c *websocket.Conn, sess *session, logger *logrus.Logger) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-sess.out:
			data, err := json.Marshal(ev)
			if err != nil {
				logger.Warnf("session %s: failed to marshal outgoing %q: %v", sess.id, ev.Type, err)
				continue
			}
			writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			err = c.Write(writeCtx, websocket.MessageText, data)
			cancel()
			if err != nil {
				logger.Warnf("session %s: write failed: %v", sess.id, err)
				return
			}
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
			err := c.Ping(pingCtx)
			cancel()
			if err != nil {
				logger.Warnf("session %s: ping failed, assuming disconnect: %v", sess.id, err)
				return
			}
		}
	}
}
