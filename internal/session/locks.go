package session

import "sync"

// Locks はセッションIDごとの排他。読み込みから保存までを1リクエストずつにする。
// プロセス内だけで効く。
type Locks struct {
	mu   sync.Mutex
	held map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func NewLocks() *Locks {
	return &Locks{held: map[string]*lockEntry{}}
}

// Lock はidの排他を取り、解放する関数を返す。
func (l *Locks) Lock(id string) func() {
	l.mu.Lock()
	e, ok := l.held[id]
	if !ok {
		e = &lockEntry{}
		l.held[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()

	return func() {
		e.mu.Unlock()

		l.mu.Lock()
		e.refs--
		//誰も待っていなければ消す
		if e.refs == 0 {
			delete(l.held, id)
		}
		l.mu.Unlock()
	}
}

