package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/scythe504/partydeck-backend/internal"
)

func newPostgresStore(t *testing.T) *Postgres {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("partydeck"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pg, err := NewPostgres(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(pg.Close)
	return pg
}

func TestPostgresRoundTrip(t *testing.T) {
	pg := newPostgresStore(t)
	ctx := context.Background()
	now := time.Now().UnixMilli()

	_, err := pg.Get(ctx, "NOPE")
	assert.ErrorIs(t, err, internal.ErrNotFound)

	s := testState("AB12", internal.VisibilityPublic, internal.PartyPlaying, now)
	s.Chat = []internal.ChatMessage{{ID: "m1", PlayerID: "alice", Text: "hi", Scope: internal.ChatParty}}
	require.NoError(t, pg.Put(ctx, s))

	got, err := pg.Get(ctx, "AB12")
	require.NoError(t, err)
	assert.Equal(t, "AB12", got.RoomID)
	assert.Equal(t, "Alice", got.Players["alice"].Name)
	require.Len(t, got.Chat, 1)
	assert.Equal(t, "hi", got.Chat[0].Text)

	// Upsert replaces in place.
	s.Players["alice"].Wins = 3
	require.NoError(t, pg.Put(ctx, s))
	got, err = pg.Get(ctx, "AB12")
	require.NoError(t, err)
	assert.Equal(t, 3, got.Players["alice"].Wins)

	require.NoError(t, pg.Delete(ctx, "AB12"))
	_, err = pg.Get(ctx, "AB12")
	assert.ErrorIs(t, err, internal.ErrNotFound)
}

func TestPostgresListAndCleanup(t *testing.T) {
	pg := newPostgresStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, pg.Put(ctx, testState("PUB1", internal.VisibilityPublic, internal.PartyPlaying, now.UnixMilli())))
	require.NoError(t, pg.Put(ctx, testState("PRIV", internal.VisibilityPrivate, internal.PartyPlaying, now.UnixMilli())))
	require.NoError(t, pg.Put(ctx, testState("DONE", internal.VisibilityPublic, internal.PartyFinished,
		now.Add(-FinishedExpiry-time.Minute).UnixMilli())))
	require.NoError(t, pg.Put(ctx, testState("IDLE", internal.VisibilityPrivate, internal.PartyPlaying,
		now.Add(-InactiveExpiry-time.Minute).UnixMilli())))

	got, err := pg.ListPublicActive(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "PUB1", got[0].RoomID)

	n, err := pg.Cleanup(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	_, err = pg.Get(ctx, "PUB1")
	assert.NoError(t, err)
	_, err = pg.Get(ctx, "DONE")
	assert.ErrorIs(t, err, internal.ErrNotFound)
}
