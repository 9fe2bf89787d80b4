package db_test

import (
	"context"
	"errors"
	"testing"

	"gasvision/internal/infra/db"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandle_OpensOnceAndReuses(t *testing.T) {
	opens := 0
	h := db.NewHandle(func(ctx context.Context) (int, error) {
		opens++
		return 42, nil
	}, nil)

	for i := 0; i < 3; i++ {
		v, err := h.Acquire(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 42, v)
	}
	assert.Equal(t, 1, opens)
}

func TestHandle_FailureIsNotCached(t *testing.T) {
	calls := 0
	h := db.NewHandle(func(ctx context.Context) (string, error) {
		calls++
		if calls == 1 {
			return "", errors.New("connection refused")
		}
		return "conn", nil
	}, nil)

	_, err := h.Acquire(context.Background())
	assert.Error(t, err)

	v, err := h.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "conn", v)
	assert.Equal(t, 2, calls)
}

func TestHandle_Close(t *testing.T) {
	closed := 0
	h := db.NewHandle(func(ctx context.Context) (int, error) {
		return 1, nil
	}, func(ctx context.Context, v int) error {
		closed++
		return nil
	})

	_, err := h.Acquire(context.Background())
	require.NoError(t, err)

	require.NoError(t, h.Close(context.Background()))
	require.NoError(t, h.Close(context.Background()))
	assert.Equal(t, 1, closed)

	_, err = h.Acquire(context.Background())
	assert.ErrorIs(t, err, db.ErrHandleClosed)
}

func TestHandle_CloseBeforeOpenSkipsCloser(t *testing.T) {
	h := db.NewHandle(func(ctx context.Context) (int, error) {
		return 1, nil
	}, func(ctx context.Context, v int) error {
		t.Fatal("closer called without open")
		return nil
	})
	assert.NoError(t, h.Close(context.Background()))
}
