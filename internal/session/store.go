package session

import "context"

// セッションIDごとの状態の置き場所
type Store interface {
	Get(ctx context.Context, id string) (State, bool, error)
	Put(ctx context.Context, id string, st State) error
}
