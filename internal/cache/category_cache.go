package cache

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"storefront/internal/domain/model"
	"storefront/internal/repository"
)

const DefaultCategoryTTL = 5 * time.Minute

// upstreamカテゴリ一覧のキャッシュ。
// 同時アクセスはsingleflightで1回のfetchに相乗りし、TTL切れは次のアクセスで更新する。
// slug→idの対応はCategoryIDStoreに委譲するので、再fetchしてもidは変わらない。
type CategoryCache struct {
	catalog repository.CatalogRepository
	ids     repository.CategoryIDStore
	ttl     time.Duration

	group singleflight.Group

	mu         sync.RWMutex
	ready      bool
	fetchedAt  time.Time
	categories []model.Category
	bySlug     map[string]model.Category
	slugByID   map[int64]string
}

// DI
func NewCategoryCache(catalog repository.CatalogRepository, ids repository.CategoryIDStore, ttl time.Duration) *CategoryCache {
	if ttl <= 0 {
		ttl = DefaultCategoryTTL
	}
	return &CategoryCache{catalog: catalog, ids: ids, ttl: ttl}
}

// Categories は正規化済みカテゴリ一覧を返す。
// fetch失敗時は空リストを返して状態を空に戻す（次のアクセスが再試行する）。
func (c *CategoryCache) Categories(ctx context.Context) []model.Category {
	c.mu.RLock()
	if c.ready && time.Since(c.fetchedAt) < c.ttl {
		out := make([]model.Category, len(c.categories))
		copy(out, c.categories)
		c.mu.RUnlock()
		return out
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do("categories", func() (any, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		log.Printf("category cache: fetch failed: %v", err)
		c.mu.Lock()
		c.ready = false
		c.categories = nil
		c.mu.Unlock()
		return []model.Category{}
	}
	return v.([]model.Category)
}

func (c *CategoryCache) fetch(ctx context.Context) ([]model.Category, error) {
	raw, err := c.catalog.Categories(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	categories := make([]model.Category, 0, len(raw))
	bySlug := make(map[string]model.Category, len(raw))
	slugByID := make(map[int64]string, len(raw))

	for _, rc := range raw {
		id, err := c.ids.IDFor(ctx, rc.Slug)
		if err != nil {
			return nil, err
		}
		cat := model.Category{
			ID:        id,
			Name:      rc.Name,
			Slug:      rc.Slug,
			ImageURL:  rc.URL,
			CreatedAt: now,
			UpdatedAt: now,
		}
		categories = append(categories, cat)
		bySlug[rc.Slug] = cat
		slugByID[id] = rc.Slug
	}

	c.mu.Lock()
	c.ready = true
	c.fetchedAt = now
	c.categories = categories
	c.bySlug = bySlug
	c.slugByID = slugByID
	c.mu.Unlock()

	out := make([]model.Category, len(categories))
	copy(out, categories)
	return out, nil
}

// SlugByID はキャッシュ済みのid→slug対応を引く。
// 未キャッシュなら一覧を埋めてから引き直す。
func (c *CategoryCache) SlugByID(ctx context.Context, id int64) (string, bool) {
	c.mu.RLock()
	slug, ok := c.slugByID[id]
	c.mu.RUnlock()
	if ok {
		return slug, true
	}

	c.Categories(ctx)

	c.mu.RLock()
	slug, ok = c.slugByID[id]
	c.mu.RUnlock()
	return slug, ok
}

// BySlug はslugからカテゴリを引く。一覧に無いslug（商品側にだけ現れた等）は
// idストアで採番した最小限のカテゴリを返す。
func (c *CategoryCache) BySlug(ctx context.Context, slug string) model.Category {
	c.mu.RLock()
	cat, ok := c.bySlug[slug]
	c.mu.RUnlock()
	if ok {
		return cat
	}

	c.Categories(ctx)

	c.mu.RLock()
	cat, ok = c.bySlug[slug]
	c.mu.RUnlock()
	if ok {
		return cat
	}

	id, err := c.ids.IDFor(ctx, slug)
	if err != nil {
		log.Printf("category cache: id assignment for %q failed: %v", slug, err)
		return model.Category{Slug: slug, Name: slug}
	}
	return model.Category{ID: id, Slug: slug, Name: slug}
}
