package cache

import (
	"context"
	"log"
	"sync"

	"golang.org/x/sync/singleflight"

	"storefront/internal/repository"
)

// upstream総商品数が取れないときの表示用フォールバック
const FallbackTotal = 100

// upstreamの総商品数を1度だけ覚えるキャッシュ。
// 一覧fetchの副産物（Observe）を優先し、observe前にGetされたときだけ
// limit=1の最小fetchを投げる。失敗はフォールバック値で、覚えない。
type CountCache struct {
	catalog repository.CatalogRepository

	group singleflight.Group

	mu    sync.RWMutex
	known bool
	total int64
}

// DI
func NewCountCache(catalog repository.CatalogRepository) *CountCache {
	return &CountCache{catalog: catalog}
}

// Observe は一覧レスポンスで見えた総数を記録する。最初の1回だけ有効。
func (c *CountCache) Observe(total int64) {
	if total <= 0 {
		return
	}
	c.mu.Lock()
	if !c.known {
		c.known = true
		c.total = total
	}
	c.mu.Unlock()
}

// Get は総商品数を返す。エラーは返さない。
func (c *CountCache) Get(ctx context.Context) int64 {
	c.mu.RLock()
	if c.known {
		total := c.total
		c.mu.RUnlock()
		return total
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do("total", func() (any, error) {
		page, err := c.catalog.List(ctx, repository.CatalogQuery{Limit: 1})
		if err != nil {
			return int64(0), err
		}
		return page.Total, nil
	})
	if err != nil {
		log.Printf("count cache: total fetch failed, using fallback: %v", err)
		return FallbackTotal
	}

	total := v.(int64)
	c.Observe(total)
	if total <= 0 {
		return FallbackTotal
	}
	return total
}
