package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit() error {
	f.committed = true

	return f.commitErr
}

func (f *fakeTx) Rollback() error {
	f.rolledBack = true

	return nil
}

func TestRunTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		tx := &fakeTx{}

		err := runTx(tx, func(*fakeTx) error { return nil })

		assert.NoError(t, err)
		assert.True(t, tx.committed)
		assert.False(t, tx.rolledBack)
	})

	t.Run("rolls back on error", func(t *testing.T) {
		tx := &fakeTx{}
		boom := errors.New("delete failed")

		err := runTx(tx, func(*fakeTx) error { return boom })

		assert.ErrorIs(t, err, boom)
		assert.True(t, tx.rolledBack)
		assert.False(t, tx.committed)
	})

	t.Run("rolls back on panic and repanics", func(t *testing.T) {
		tx := &fakeTx{}

		assert.PanicsWithValue(t, "cascade exploded", func() {
			_ = runTx(tx, func(*fakeTx) error { panic("cascade exploded") })
		})

		assert.True(t, tx.rolledBack)
		assert.False(t, tx.committed)
	})

	t.Run("commit failure", func(t *testing.T) {
		tx := &fakeTx{commitErr: errors.New("connection reset")}

		err := runTx(tx, func(*fakeTx) error { return nil })

		assert.ErrorContains(t, err, "failed to commit transaction")
	})
}

func TestReader(t *testing.T) {
	read, write := &sqlx.DB{}, &sqlx.DB{}
	conn := &Connection{Read: read, Write: write}
	ctx := context.Background()

	assert.Same(t, read, conn.Reader(ctx))
	assert.False(t, ReadsPrimary(ctx))

	primary := ReadPrimary(ctx)

	assert.Same(t, write, conn.Reader(primary))
	assert.True(t, ReadsPrimary(primary))
}
