// internal/cache/redis.go
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/akitaca/sketchdash/internal/config"
	"github.com/akitaca/sketchdash/internal/game"
)

// DefaultQueueName is the Redis list (queue) name finished-game results are
// pushed to for out-of-process leaderboard consumers.
var DefaultQueueName = "sketchdash_results"

// Publisher pushes finished-game scoreboards onto a Redis queue. It is
// optional: a nil *Publisher is a valid no-op sink.
type Publisher struct {
	rdb   *redis.Client
	queue string
}

// NewPublisherFromEnv builds a Publisher from environment variables:
//   - REDIS_ADDR (unset disables publishing entirely; (nil, nil) is returned)
//   - REDIS_DB (optional, default 0)
//   - LEADERBOARD_QUEUE_NAME (optional, default DefaultQueueName)
func NewPublisherFromEnv() (*Publisher, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   config.GetInt("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	return &Publisher{
		rdb:   rdb,
		queue: config.Get("LEADERBOARD_QUEUE_NAME", DefaultQueueName),
	}, nil
}

// PublishGameResult serializes the summary to JSON and pushes it onto the
// results queue. Best-effort: the game flow never depends on the outcome.
func (p *Publisher) PublishGameResult(ctx context.Context, summary game.GameSummary) error {
	if p == nil {
		return nil
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal game summary: %w", err)
	}
	if err := p.rdb.RPush(ctx, p.queue, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", p.queue, err)
	}
	return nil
}

// Close releases the underlying Redis connection.
func (p *Publisher) Close() error {
	if p == nil {
		return nil
	}
	return p.rdb.Close()
}
