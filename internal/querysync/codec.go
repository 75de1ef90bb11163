package querysync

import (
	"net/url"
	"strconv"

	"storefront/internal/domain/model"
)

// URLクエリのキー。UIのURL契約と1:1。
const (
	keyPage          = "page"
	keyPageSize      = "pageSize"
	keySearch        = "search"
	keyCategory      = "category"
	keyMinPrice      = "minPrice"
	keyMaxPrice      = "maxPrice"
	keyMinRating     = "minRating"
	keyShowFavorites = "showFavorites"
	keySortField     = "sortOption"
	keySortDirection = "sortDirection"
)

// Parse はURLクエリをフィルタ状態に復元する。
// 壊れた値は黙ってデフォルトに落とす（URL手打ちでも画面は壊さない）。
func Parse(values url.Values) model.FilterState {
	state := model.DefaultFilter()

	if v := values.Get(keyPage); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			state.Page = n
		}
	}
	if v := values.Get(keyPageSize); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			state.PageSize = n
		}
	}
	state.Search = values.Get(keySearch)
	if v := values.Get(keyCategory); v != "" && v != "0" {
		state.CategoryID = v
	}
	if v := values.Get(keyMinPrice); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			state.MinPrice = &f
		}
	}
	if v := values.Get(keyMaxPrice); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			state.MaxPrice = &f
		}
	}
	if v := values.Get(keyMinRating); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			state.MinRating = f
		}
	}
	if v := values.Get(keyShowFavorites); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			state.ShowFavoritesOnly = b
		}
	}
	if v := values.Get(keySortField); v != "" {
		switch model.SortField(v) {
		case model.SortDefault, model.SortPrice, model.SortTitle, model.SortRating:
			state.SortField = model.SortField(v)
		}
	}
	if v := values.Get(keySortDirection); v != "" {
		switch model.SortDirection(v) {
		case model.SortAsc, model.SortDesc:
			state.SortDirection = model.SortDirection(v)
		}
	}
	return state
}

// Encode はフィルタ状態をURLクエリに落とす。
// デフォルト値のキーは出さない（共有されるURLを短く保つ）。
func Encode(state model.FilterState) url.Values {
	values := url.Values{}
	def := model.DefaultFilter()

	if state.Page != def.Page {
		values.Set(keyPage, strconv.Itoa(state.Page))
	}
	if state.PageSize != def.PageSize {
		values.Set(keyPageSize, strconv.Itoa(state.PageSize))
	}
	if state.Search != "" {
		values.Set(keySearch, state.Search)
	}
	if state.CategoryID != "" && state.CategoryID != "0" {
		values.Set(keyCategory, state.CategoryID)
	}
	if state.MinPrice != nil {
		values.Set(keyMinPrice, strconv.FormatFloat(*state.MinPrice, 'f', -1, 64))
	}
	if state.MaxPrice != nil {
		values.Set(keyMaxPrice, strconv.FormatFloat(*state.MaxPrice, 'f', -1, 64))
	}
	if state.MinRating > 0 {
		values.Set(keyMinRating, strconv.FormatFloat(state.MinRating, 'f', -1, 64))
	}
	if state.ShowFavoritesOnly {
		values.Set(keyShowFavorites, "true")
	}
	if state.SortField != def.SortField && state.SortField != "" {
		values.Set(keySortField, string(state.SortField))
	}
	if state.SortDirection != def.SortDirection && state.SortDirection != "" {
		values.Set(keySortDirection, string(state.SortDirection))
	}
	return values
}
