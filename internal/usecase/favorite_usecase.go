package usecase

import (
	"context"
	"net/http"
	"sort"

	repo "storefront/internal/repository"
)

// FavoriteUsecase は /favorites の業務ロジック。
// 匿名クライアントトークン単位でお気に入りを持つ。
type FavoriteUsecase struct {
	favoriteRepo repo.FavoriteRepository
	catalog      repo.CatalogRepository
}

// DI
func NewFavoriteUsecase(favoriteRepo repo.FavoriteRepository, catalog repo.CatalogRepository) *FavoriteUsecase {
	return &FavoriteUsecase{favoriteRepo: favoriteRepo, catalog: catalog}
}

type FavoriteListOutput struct {
	ProductIDs []int64 `json:"product_ids"`
}

func (u *FavoriteUsecase) List(ctx context.Context, clientToken string) (FavoriteListOutput, error) {
	if clientToken == "" {
		return FavoriteListOutput{}, NewHTTPError(http.StatusUnauthorized, "missing client token")
	}

	set, err := u.favoriteRepo.IDs(ctx, clientToken)
	if err != nil {
		return FavoriteListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	ids := make([]int64, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return FavoriteListOutput{ProductIDs: ids}, nil
}

func (u *FavoriteUsecase) Add(ctx context.Context, clientToken string, productID int64) error {
	if clientToken == "" {
		return NewHTTPError(http.StatusUnauthorized, "missing client token")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	// 実在しない商品は登録しない
	if _, err := u.catalog.FindByID(ctx, productID); err != nil {
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusBadRequest, "invalid product_id")
		}
		return NewHTTPError(http.StatusBadGateway, "catalog unavailable")
	}

	if err := u.favoriteRepo.Add(ctx, clientToken, productID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

func (u *FavoriteUsecase) Remove(ctx context.Context, clientToken string, productID int64) error {
	if clientToken == "" {
		return NewHTTPError(http.StatusUnauthorized, "missing client token")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	err := u.favoriteRepo.Remove(ctx, clientToken, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
