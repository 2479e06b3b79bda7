package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/scythe504/partydeck-backend/internal"
)

const publicListLimit = 50

const schema = `
CREATE TABLE IF NOT EXISTS games (
	room_id    TEXT PRIMARY KEY,
	state      JSONB NOT NULL,
	visibility TEXT NOT NULL,
	status     TEXT NOT NULL,
	created_at BIGINT NOT NULL,
	updated_at BIGINT NOT NULL
);
CREATE INDEX IF NOT EXISTS games_public_idx ON games (visibility, status);
`

// Postgres keeps the authoritative copy of every room. The whole state
// document goes into one JSONB column; visibility and status are lifted out
// for the public listing and the reaper.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres schema: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Get(ctx context.Context, roomID string) (*internal.GameState, error) {
	var raw []byte
	err := p.pool.QueryRow(ctx,
		`SELECT state FROM games WHERE room_id = $1`, roomID).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("room %s: %w", roomID, internal.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get room %s: %w", roomID, err)
	}
	var s internal.GameState
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("decode room %s: %w", roomID, err)
	}
	return &s, nil
}

func (p *Postgres) Put(ctx context.Context, state *internal.GameState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode room %s: %w", state.RoomID, err)
	}
	_, err = p.pool.Exec(ctx, `
		INSERT INTO games (room_id, state, visibility, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (room_id) DO UPDATE SET
			state = EXCLUDED.state,
			visibility = EXCLUDED.visibility,
			status = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at`,
		state.RoomID, raw, string(state.Settings.Visibility), string(state.Status),
		state.CreatedAt, state.LastActivity)
	if err != nil {
		return fmt.Errorf("put room %s: %w", state.RoomID, err)
	}
	return nil
}

func (p *Postgres) Delete(ctx context.Context, roomID string) error {
	if _, err := p.pool.Exec(ctx, `DELETE FROM games WHERE room_id = $1`, roomID); err != nil {
		return fmt.Errorf("delete room %s: %w", roomID, err)
	}
	return nil
}

func (p *Postgres) ListPublicActive(ctx context.Context) ([]*internal.GameState, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT state FROM games
		WHERE visibility = $1 AND status NOT IN ($2, $3)
		ORDER BY created_at DESC
		LIMIT $4`,
		string(internal.VisibilityPublic),
		string(internal.PartyFinished), string(internal.PartyLobby),
		publicListLimit)
	if err != nil {
		return nil, fmt.Errorf("list public: %w", err)
	}
	defer rows.Close()

	var out []*internal.GameState
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("list public: %w", err)
		}
		var s internal.GameState
		if err := json.Unmarshal(raw, &s); err != nil {
			log.Warn().Err(err).Msg("skipping undecodable game row")
			continue
		}
		out = append(out, &s)
	}
	return out, rows.Err()
}

func (p *Postgres) Cleanup(ctx context.Context, now time.Time) (int, error) {
	finishedCutoff := now.Add(-FinishedExpiry).UnixMilli()
	inactiveCutoff := now.Add(-InactiveExpiry).UnixMilli()

	tag, err := p.pool.Exec(ctx, `
		DELETE FROM games
		WHERE (status = $1 AND updated_at < $2) OR updated_at < $3`,
		string(internal.PartyFinished), finishedCutoff, inactiveCutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup: %w", err)
	}
	return int(tag.RowsAffected()), nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}
