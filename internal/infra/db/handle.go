package db

import (
	"context"
	"errors"
	"sync"
)

var ErrHandleClosed = errors.New("handle closed")

// Handle はプロセスで1つだけ持つ接続。
// 最初のAcquireで開いて、以降は同じものを返す。
// 開くのに失敗したときは保持しないので、次のAcquireでもう一度開く。
type Handle[T any] struct {
	mu     sync.Mutex
	opener func(ctx context.Context) (T, error)
	closer func(ctx context.Context, v T) error
	v      T
	ready  bool
	closed bool
}

func NewHandle[T any](opener func(ctx context.Context) (T, error), closer func(ctx context.Context, v T) error) *Handle[T] {
	return &Handle[T]{opener: opener, closer: closer}
}

func (h *Handle[T]) Acquire(ctx context.Context) (T, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var zero T
	if h.closed {
		return zero, ErrHandleClosed
	}
	if h.ready {
		return h.v, nil
	}

	v, err := h.opener(ctx)
	if err != nil {
		return zero, err
	}
	h.v = v
	h.ready = true
	return v, nil
}

// Close は開いていれば閉じる。2回目以降は何もしない。
func (h *Handle[T]) Close(ctx context.Context) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true
	if !h.ready || h.closer == nil {
		return nil
	}
	return h.closer(ctx, h.v)
}
