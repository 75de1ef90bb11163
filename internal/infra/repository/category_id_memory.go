package repository

import (
	"context"
	"sync"
)

// プロセス内だけで安定するslug→id採番。
// 再起動やプロセス間では順序が変わりうるので本番はDB/Redis実装を使う。
type MemoryCategoryIDStore struct {
	mu   sync.Mutex
	next int64
	ids  map[string]int64
}

// DI
func NewMemoryCategoryIDStore() *MemoryCategoryIDStore {
	return &MemoryCategoryIDStore{next: 1, ids: map[string]int64{}}
}

func (s *MemoryCategoryIDStore) IDFor(_ context.Context, slug string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := s.ids[slug]; ok {
		return id, nil
	}
	id := s.next
	s.next++
	s.ids[slug] = id
	return id, nil
}
