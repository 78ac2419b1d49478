// internal/handlers/health.go
package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

type healthResponse struct {
	Status      string `json:"status"`
	OnlineUsers int64  `json:"onlineUsers"`
	ActiveRooms int    `json:"activeRooms"`
	Timestamp   int64  `json:"timestamp"`
}

// HealthHandler reports process status plus live user and room counts.
// Informational only, not part of the game protocol.
func HealthHandler(gs *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(healthResponse{
			Status:      "ok",
			OnlineUsers: gs.OnlineUsers(),
			ActiveRooms: gs.Registry.ActiveRooms(),
			Timestamp:   time.Now().UnixMilli(),
		})
	}
}
