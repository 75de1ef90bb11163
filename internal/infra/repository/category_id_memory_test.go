package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCategoryIDStore_SequentialAndStable(t *testing.T) {
	s := NewMemoryCategoryIDStore()
	ctx := context.Background()

	a, err := s.IDFor(ctx, "beauty")
	require.NoError(t, err)
	b, err := s.IDFor(ctx, "fragrances")
	require.NoError(t, err)
	assert.Equal(t, int64(1), a)
	assert.Equal(t, int64(2), b)

	again, err := s.IDFor(ctx, "beauty")
	require.NoError(t, err)
	assert.Equal(t, a, again)
}

func TestMemoryCategoryIDStore_ConcurrentAssignNoDuplicates(t *testing.T) {
	s := NewMemoryCategoryIDStore()
	slugs := []string{"a", "b", "c", "d", "e", "f", "g", "h"}

	var wg sync.WaitGroup
	ids := make([][]int64, 4)
	for w := 0; w < 4; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			out := make([]int64, len(slugs))
			for i, slug := range slugs {
				id, err := s.IDFor(context.Background(), slug)
				assert.NoError(t, err)
				out[i] = id
			}
			ids[w] = out
		}(w)
	}
	wg.Wait()

	// 全ワーカーが同じslugに同じidを観測する
	for w := 1; w < 4; w++ {
		assert.Equal(t, ids[0], ids[w])
	}
	seen := map[int64]bool{}
	for _, id := range ids[0] {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
}
