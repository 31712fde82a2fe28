package shared

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeQuerier struct {
	execSQL  []string
	execArgs [][]any
	execErr  error
}

func (q *fakeQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.execSQL = append(q.execSQL, sql)
	q.execArgs = append(q.execArgs, args)
	return pgconn.CommandTag{}, q.execErr
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (q *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func TestCheckAndInsert(t *testing.T) {
	q := &fakeQuerier{}
	store := NewIdempotencyStore(q)
	ctx := context.Background()

	require.Error(t, store.CheckAndInsert(ctx, "", "sales"))
	require.Error(t, store.CheckAndInsert(ctx, "key", ""))

	require.NoError(t, store.CheckAndInsert(ctx, "key", "sales"))
	require.Len(t, q.execSQL, 1)
	require.Contains(t, q.execSQL[0], "INSERT INTO idempotency_keys")
}

func TestCheckAndInsertDuplicate(t *testing.T) {
	q := &fakeQuerier{execErr: &pgconn.PgError{Code: "23505"}}
	store := NewIdempotencyStore(q)

	err := store.CheckAndInsert(context.Background(), "key", "sales")
	require.ErrorIs(t, err, ErrIdempotencyConflict)
}

func TestCleanupDeletesExpiredKeys(t *testing.T) {
	q := &fakeQuerier{}
	store := NewIdempotencyStore(q)

	require.NoError(t, store.Cleanup(context.Background(), 24*time.Hour))
	require.Len(t, q.execSQL, 1)
	require.Contains(t, q.execSQL[0], "DELETE FROM idempotency_keys")

	cutoff, ok := q.execArgs[0][0].(time.Time)
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(-24*time.Hour), cutoff, time.Minute)
}
