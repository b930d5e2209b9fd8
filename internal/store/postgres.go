// internal/store/postgres.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skourtis/kryfo/internal/models"
)

const lobbyTable = "lobbies"

// Postgres persists each lobby as a JSONB snapshot keyed by code.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects using DATABASE_URL, or the POSTGRES_USER /
// POSTGRES_PASSWORD / PG_HOST / PG_PORT / PG_DATABASE variables when unset,
// and ensures the lobbies table exists.
func NewPostgres(ctx context.Context) (*Postgres, error) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s",
			os.Getenv("POSTGRES_USER"),
			os.Getenv("POSTGRES_PASSWORD"),
			os.Getenv("PG_HOST"),
			os.Getenv("PG_PORT"),
			os.Getenv("PG_DATABASE"),
		)
	}

	config, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("create pgx pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	p := &Postgres{pool: pool}
	if err := p.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *Postgres) ensureSchema(ctx context.Context) error {
	q := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		code TEXT PRIMARY KEY,
		data JSONB NOT NULL
	)`, lobbyTable)
	if _, err := p.pool.Exec(ctx, q); err != nil {
		return fmt.Errorf("ensure %s table: %w", lobbyTable, err)
	}
	return nil
}

func (p *Postgres) Load(ctx context.Context, code string) (*models.Lobby, error) {
	q := fmt.Sprintf(`SELECT data FROM %s WHERE code = $1`, lobbyTable)

	var data []byte
	err := p.pool.QueryRow(ctx, q, code).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
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

func (p *Postgres) Save(ctx context.Context, lobby *models.Lobby) error {
	data, err := json.Marshal(lobby)
	if err != nil {
		return fmt.Errorf("encode lobby %s: %w", lobby.Code, err)
	}

	q := fmt.Sprintf(`
	INSERT INTO %s (code, data)
	VALUES ($1, $2)
	ON CONFLICT (code) DO UPDATE SET data = EXCLUDED.data`, lobbyTable)
	if _, err := p.pool.Exec(ctx, q, lobby.Code, data); err != nil {
		return fmt.Errorf("save lobby %s: %w", lobby.Code, err)
	}
	return nil
}

func (p *Postgres) Exists(ctx context.Context, code string) (bool, error) {
	q := fmt.Sprintf(`SELECT 1 FROM %s WHERE code = $1 LIMIT 1`, lobbyTable)

	var tmp int
	err := p.pool.QueryRow(ctx, q, code).Scan(&tmp)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
