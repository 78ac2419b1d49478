// internal/handlers/game_server.go
package handlers

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/akitaca/sketchdash/internal/game"
)

// ResultSink receives the final scoreboard of every completed game. Satisfied
// by cache.Publisher; a nil sink disables export.
type ResultSink interface {
	PublishGameResult(ctx context.Context, summary game.GameSummary) error
}

// GameServer is the high-level struct tying the room registry to the
// transport: it owns the online-user counter and the result export hook.
type GameServer struct {
	Registry *game.Registry
	Logger   *logrus.Logger

	results ResultSink
	online  atomic.Int64
}

// NewGameServer wires a registry to the gateway. results may be nil.
func NewGameServer(logger *logrus.Logger, registry *game.Registry, results ResultSink) *GameServer {
	gs := &GameServer{
		Registry: registry,
		Logger:   logger,
		results:  results,
	}
	registry.OnGameFinished = gs.exportResult
	return gs
}

// OnlineUsers is the number of currently open websocket sessions.
func (gs *GameServer) OnlineUsers() int64 {
	return gs.online.Load()
}

func (gs *GameServer) exportResult(summary game.GameSummary) {
	if gs.results == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := gs.results.PublishGameResult(ctx, summary); err != nil {
		gs.Logger.Warnf("failed to publish result for room %s: %v", summary.RoomCode, err)
	}
}
