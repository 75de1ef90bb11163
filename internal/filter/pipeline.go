package filter

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"storefront/internal/domain/model"
)

// Apply は一覧ビューのフィルタを固定順で適用し、新しいスライスを返す。
// 入力は変更しない。順番: カテゴリ → 価格 → 評価 → お気に入り → 検索 → 並び替え。
func Apply(products []model.Product, state model.FilterState, favoriteIDs map[int64]struct{}) []model.Product {
	out := make([]model.Product, len(products))
	copy(out, products)

	out = byCategory(out, state.CategoryID)
	out = byPrice(out, state.MinPrice, state.MaxPrice)
	out = byRating(out, state.MinRating)
	if state.ShowFavoritesOnly {
		out = byFavorites(out, favoriteIDs)
	}
	out = bySearch(out, state.Search)

	sortProducts(out, state.SortField, state.SortDirection)
	return out
}

func byCategory(in []model.Product, categoryID string) []model.Product {
	if categoryID == "" || categoryID == "0" {
		return in
	}
	id, err := strconv.ParseInt(categoryID, 10, 64)
	if err != nil {
		// 数値でないカテゴリidは何にもマッチしない
		return in[:0]
	}
	out := in[:0]
	for _, p := range in {
		if p.Category.ID == id {
			out = append(out, p)
		}
	}
	return out
}

func byPrice(in []model.Product, min, max *float64) []model.Product {
	if min == nil && max == nil {
		return in
	}
	out := in[:0]
	for _, p := range in {
		if min != nil && p.Price < *min {
			continue
		}
		if max != nil && p.Price > *max {
			continue
		}
		out = append(out, p)
	}
	return out
}

func byRating(in []model.Product, minRating float64) []model.Product {
	if minRating <= 0 {
		return in
	}
	out := in[:0]
	for _, p := range in {
		// 評価未設定の商品は評価フィルタで除外
		if p.Rating == nil || *p.Rating < minRating {
			continue
		}
		out = append(out, p)
	}
	return out
}

func byFavorites(in []model.Product, favoriteIDs map[int64]struct{}) []model.Product {
	out := in[:0]
	for _, p := range in {
		if _, ok := favoriteIDs[p.ID]; ok {
			out = append(out, p)
		}
	}
	return out
}

func bySearch(in []model.Product, term string) []model.Product {
	term = strings.TrimSpace(term)
	if term == "" {
		return in
	}
	needle := strings.ToLower(term)
	out := in[:0]
	for _, p := range in {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			out = append(out, p)
		}
	}
	return out
}

func sortProducts(in []model.Product, field model.SortField, dir model.SortDirection) {
	if field == model.SortDefault || field == "" {
		// "default"は入力順をそのまま維持する
		return
	}
	desc := dir == model.SortDesc

	var less func(a, b model.Product) bool
	switch field {
	case model.SortPrice:
		less = func(a, b model.Product) bool { return a.Price < b.Price }
	case model.SortRating:
		less = func(a, b model.Product) bool { return ratingOf(a) < ratingOf(b) }
	case model.SortTitle:
		col := collate.New(language.Und, collate.Loose)
		less = func(a, b model.Product) bool { return col.CompareString(a.Title, b.Title) < 0 }
	default:
		return
	}

	sort.SliceStable(in, func(i, j int) bool {
		if desc {
			return less(in[j], in[i])
		}
		return less(in[i], in[j])
	})
}

func ratingOf(p model.Product) float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}
