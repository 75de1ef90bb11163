package querysync

import "storefront/internal/domain/model"

// フィルタ状態への1更新。ページ送り以外の変更はpageを1に戻す。
type Change struct {
	apply      func(*model.FilterState)
	pagination bool
}

// Apply は変更を順に適用した新しい状態を返す（後勝ち）。
// ページ送り単独以外の組み合わせではpageが1にリセットされる。
func Apply(state model.FilterState, changes ...Change) model.FilterState {
	if len(changes) == 0 {
		return state
	}
	reset := false
	for _, c := range changes {
		c.apply(&state)
		if !c.pagination {
			reset = true
		}
	}
	if reset {
		state.Page = 1
	}
	return state
}

func SetPage(page int) Change {
	return Change{pagination: true, apply: func(s *model.FilterState) { s.Page = page }}
}

// ページサイズ変更は結果の区切り直しなのでリセット対象
func SetPageSize(size int) Change {
	return Change{apply: func(s *model.FilterState) { s.PageSize = size }}
}

func SetSearch(term string) Change {
	return Change{apply: func(s *model.FilterState) { s.Search = term }}
}

func SetCategory(id string) Change {
	return Change{apply: func(s *model.FilterState) {
		if id == "0" {
			id = ""
		}
		s.CategoryID = id
	}}
}

func SetPriceRange(min, max *float64) Change {
	return Change{apply: func(s *model.FilterState) {
		s.MinPrice = min
		s.MaxPrice = max
	}}
}

func SetMinRating(rating float64) Change {
	return Change{apply: func(s *model.FilterState) { s.MinRating = rating }}
}

func SetShowFavorites(on bool) Change {
	return Change{apply: func(s *model.FilterState) { s.ShowFavoritesOnly = on }}
}

func SetSort(field model.SortField, dir model.SortDirection) Change {
	return Change{apply: func(s *model.FilterState) {
		s.SortField = field
		s.SortDirection = dir
	}}
}

// Reset は全フィルタをデフォルトへ戻す
func Reset() Change {
	return Change{apply: func(s *model.FilterState) { *s = model.DefaultFilter() }}
}
