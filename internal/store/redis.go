// internal/store/redis.go
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skourtis/kryfo/internal/models"
)

const lobbyKeyPrefix = "kryfo:lobby:"

// Redis keeps lobby snapshots as JSON strings in Redis. Suited to the
// polling-heavy heartbeat traffic; set LOBBY_TTL to let abandoned lobbies
// expire on their own.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis initializes a client with environment variables:
//   - REDIS_ADDR (default "localhost:6379")
//   - REDIS_DB (optional, default 0)
//   - LOBBY_TTL (optional Go duration; 0 = keep forever)
func NewRedis(ctx context.Context) (*Redis, error) {
	addr := getEnv("REDIS_ADDR", "localhost:6379")
	dbIdx := getEnvInt("REDIS_DB", 0)

	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   dbIdx,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	var ttl time.Duration
	if raw := os.Getenv("LOBBY_TTL"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid LOBBY_TTL %q: %w", raw, err)
		}
		ttl = d
	}

	return &Redis{rdb: rdb, ttl: ttl}, nil
}

func (r *Redis) Load(ctx context.Context, code string) (*models.Lobby, error) {
	data, err := r.rdb.Get(ctx, lobbyKeyPrefix+code).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load lobby %s: %w", code, err)
	}

	var lobby models.Lobby
	if err := json.Unmarshal(data, &lobby); err != nil {
		return nil, fmt.Errorf("decode lobby %s: %w", code, err)
	}
	return &lobby, nil
}

func (r *Redis) Save(ctx context.Context, lobby *models.Lobby) error {
	data, err := json.Marshal(lobby)
	if err != nil {
		return fmt.Errorf("encode lobby %s: %w", lobby.Code, err)
	}
	if err := r.rdb.Set(ctx, lobbyKeyPrefix+lobby.Code, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("save lobby %s: %w", lobby.Code, err)
	}
	return nil
}

func (r *Redis) Exists(ctx context.Context, code string) (bool, error) {
	n, err := r.rdb.Exists(ctx, lobbyKeyPrefix+code).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}

// getEnv is a helper to read an environment variable or return a default value.
func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

// getEnvInt is a helper to parse an environment variable as integer, else a default value.
func getEnvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
