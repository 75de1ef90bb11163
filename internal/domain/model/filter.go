package model

// 並び替え対象のフィールド
type SortField string

const (
	SortDefault SortField = "default" // upstreamの並びを維持
	SortPrice   SortField = "price"
	SortTitle   SortField = "title"
	SortRating  SortField = "rating"
)

type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

const DefaultPageSize = 12

// 一覧ビューのフィルタ状態。URLクエリと1:1で対応する。
type FilterState struct {
	Search            string
	CategoryID        string // 数値文字列。"" / "0" は全カテゴリ
	MinPrice          *float64
	MaxPrice          *float64
	MinRating         float64
	ShowFavoritesOnly bool
	Page              int
	PageSize          int
	SortField         SortField
	SortDirection     SortDirection
}

// フィルタ無しのデフォルト状態
func DefaultFilter() FilterState {
	return FilterState{
		Page:          1,
		PageSize:      DefaultPageSize,
		SortField:     SortDefault,
		SortDirection: SortAsc,
	}
}
