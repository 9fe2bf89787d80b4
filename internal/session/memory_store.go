package session

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

// MemoryStore はプロセス内に持つ。再起動で消える。
// 最後のアクセスからttlで期限切れになる。
type MemoryStore struct {
	items *cache.Cache
	ttl   time.Duration
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		items: cache.New(ttl, ttl*2),
		ttl:   ttl,
	}
}

func (s *MemoryStore) Get(_ context.Context, id string) (State, bool, error) {
	v, ok := s.items.Get(id)
	if !ok {
		return State{}, false, nil
	}
	st, ok := v.(State)
	if !ok {
		return State{}, false, nil
	}
	return st.Clone(), true, nil
}

func (s *MemoryStore) Put(_ context.Context, id string, st State) error {
	s.items.Set(id, st.Clone(), s.ttl)
	return nil
}
