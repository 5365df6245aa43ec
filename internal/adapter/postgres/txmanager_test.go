package postgres_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	postgres "github.com/recallapp/recall-backend/internal/adapter/postgres"
	"github.com/recallapp/recall-backend/internal/adapter/postgres/testhelper"
)

func TestTxManager_CommitOnSuccess(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	user := testhelper.SeedUser(t, pool)
	tm := postgres.NewTxManager(pool)

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		_, err := q.Exec(ctx, `UPDATE users SET name = 'committed' WHERE id = $1`, user.ID)
		return err
	})
	require.NoError(t, err)

	var name string
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT name FROM users WHERE id = $1`, user.ID).Scan(&name))
	require.Equal(t, "committed", name)
}

func TestTxManager_RollbackOnError(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	user := testhelper.SeedUser(t, pool)
	tm := postgres.NewTxManager(pool)

	boom := errors.New("boom")
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, pool)
		if _, err := q.Exec(ctx, `UPDATE users SET name = 'rolled back' WHERE id = $1`, user.ID); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var name string
	require.NoError(t, pool.QueryRow(context.Background(),
		`SELECT name FROM users WHERE id = $1`, user.ID).Scan(&name))
	require.Equal(t, user.Name, name)
}
