// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"

	"github.com/akitaca/sketchdash/internal/cache"
	"github.com/akitaca/sketchdash/internal/game"
	"github.com/akitaca/sketchdash/internal/handlers"
	"github.com/akitaca/sketchdash/internal/middleware"
)

func main() {
	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	// Optional result export; the server runs fine without Redis.
	publisher, err := cache.NewPublisherFromEnv()
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if publisher == nil {
		logger.Info("REDIS_ADDR not set, game result export disabled")
	}

	registry := game.NewRegistry()
	srv := handlers.NewGameServer(logger, registry, publisher)

	mux := http.NewServeMux()

	mux.Handle("/", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.HealthHandler(srv),
	)))

	// game websocket
	mux.Handle("/ws", middleware.LogMiddleware(logger)(http.HandlerFunc(
		handlers.RoomWSHandler(logger, srv),
	)))

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}
	logger.Infof("Running on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
