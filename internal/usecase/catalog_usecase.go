package usecase

import (
	"context"
	"log"
	"net/http"
	"strconv"
	"strings"

	"storefront/internal/cache"
	"storefront/internal/domain/model"
	"storefront/internal/filter"
	"storefront/internal/pagination"
	repo "storefront/internal/repository"
	"storefront/internal/validator"
)

// CatalogUsecase は商品一覧・詳細・カテゴリの業務ロジック。
// upstreamのカタログAPIを正規化し、upstreamが出来ない絞り込みを手元で行う。
type CatalogUsecase struct {
	catalog      repo.CatalogRepository
	favoriteRepo repo.FavoriteRepository
	categories   *cache.CategoryCache
	counts       *cache.CountCache
}

// DI
func NewCatalogUsecase(
	catalog repo.CatalogRepository,
	favoriteRepo repo.FavoriteRepository,
	categories *cache.CategoryCache,
	counts *cache.CountCache,
) *CatalogUsecase {
	return &CatalogUsecase{
		catalog:      catalog,
		favoriteRepo: favoriteRepo,
		categories:   categories,
		counts:       counts,
	}
}

type ProductListOutput struct {
	Items      []model.Product    `json:"items"`
	Total      int64              `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
	PageWindow []pagination.Entry `json:"pageWindow"`
}

// ListProducts は一覧取得。upstream障害では空ページを返し、エラーにしない
// （一覧画面は何があっても描画できること）。
func (u *CatalogUsecase) ListProducts(ctx context.Context, clientToken string, state model.FilterState) (ProductListOutput, error) {
	if err := validator.ValidateFilter(state); err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, err.Error())
	}

	q := repo.CatalogQuery{
		Limit:  state.PageSize,
		Skip:   (state.Page - 1) * state.PageSize,
		Search: strings.TrimSpace(state.Search),
	}

	// カテゴリ指定はidからslugへ引き直してupstreamに渡す
	if state.CategoryID != "" && state.CategoryID != "0" {
		id, err := strconv.ParseInt(state.CategoryID, 10, 64)
		if err != nil {
			// 数値でないカテゴリidは定義上何にもマッチしない
			return u.emptyPage(state), nil
		}
		slug, ok := u.categories.SlugByID(ctx, id)
		if !ok {
			return u.emptyPage(state), nil
		}
		q.CategorySlug = slug
	}

	page, err := u.catalog.List(ctx, q)
	if err != nil {
		log.Printf("catalog list degraded to empty page: %v", err)
		return u.emptyPage(state), nil
	}

	u.counts.Observe(page.Total)

	items := make([]model.Product, 0, len(page.Products))
	for _, cp := range page.Products {
		items = append(items, u.toProduct(ctx, cp))
	}

	items = filter.Apply(items, state, u.favoriteIDs(ctx, clientToken, state))

	totalPages := 0
	if page.Total > 0 {
		totalPages = int((page.Total + int64(state.PageSize) - 1) / int64(state.PageSize))
	}

	return ProductListOutput{
		Items:      items,
		Total:      page.Total,
		Page:       state.Page,
		PageSize:   state.PageSize,
		TotalPages: totalPages,
		PageWindow: pagination.Window(state.Page, totalPages, pagination.DefaultMaxButtons),
	}, nil
}

func (u *CatalogUsecase) GetProduct(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	cp, err := u.catalog.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewHTTPError(http.StatusNotFound, "product not found")
	}
	if err != nil {
		return model.Product{}, NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}

	return u.toProduct(ctx, cp), nil
}

// Categories は正規化済みカテゴリ一覧。upstream障害時は空リスト。
func (u *CatalogUsecase) Categories(ctx context.Context) []model.Category {
	return u.categories.Categories(ctx)
}

// TotalProductCount はupstreamの総商品数（障害時はフォールバック値）
func (u *CatalogUsecase) TotalProductCount(ctx context.Context) int64 {
	return u.counts.Get(ctx)
}

// upstreamの生レコードを正規化する。評価欠落はnilのまま渡す。
func (u *CatalogUsecase) toProduct(ctx context.Context, cp repo.CatalogProduct) model.Product {
	return model.Product{
		ID:                 cp.ID,
		Title:              cp.Title,
		Description:        cp.Description,
		Price:              cp.Price,
		DiscountPercentage: cp.DiscountPercentage,
		Rating:             cp.Rating,
		Stock:              cp.Stock,
		Brand:              cp.Brand,
		Thumbnail:          cp.Thumbnail,
		Images:             cp.Images,
		Category:           u.categories.BySlug(ctx, cp.Category),
	}
}

// お気に入りフィルタが要るときだけDBを引く。失敗は空集合に落とす。
func (u *CatalogUsecase) favoriteIDs(ctx context.Context, clientToken string, state model.FilterState) map[int64]struct{} {
	if !state.ShowFavoritesOnly || clientToken == "" {
		return nil
	}
	ids, err := u.favoriteRepo.IDs(ctx, clientToken)
	if err != nil {
		log.Printf("favorite lookup degraded to empty set: %v", err)
		return nil
	}
	return ids
}

func (u *CatalogUsecase) emptyPage(state model.FilterState) ProductListOutput {
	return ProductListOutput{
		Items:      []model.Product{},
		Total:      0,
		Page:       state.Page,
		PageSize:   state.PageSize,
		TotalPages: 0,
		PageWindow: []pagination.Entry{},
	}
}
