package repository

import "context"

// upstreamカタログAPIへの問い合わせ条件
type CatalogQuery struct {
	Limit        int
	Skip         int
	Search       string // 設定時は検索エンドポイントへ
	CategorySlug string // 設定時はカテゴリ別エンドポイントへ
}

// upstreamの生レコード。正規化前の形。
type CatalogProduct struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             *float64 `json:"rating"`
	Stock              int64    `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"` // slug文字列
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

// upstreamのカテゴリ。slug文字列のみの形式と
// {slug,name,url}オブジェクト形式の両方がある。
type CatalogCategory struct {
	Slug string
	Name string
	URL  string
}

// 一覧レスポンス1ページ分
type CatalogPage struct {
	Products []CatalogProduct
	Total    int64
	Skip     int
	Limit    int
}

type CatalogRepository interface {
	List(ctx context.Context, q CatalogQuery) (CatalogPage, error)
	FindByID(ctx context.Context, id int64) (CatalogProduct, error)
	Categories(ctx context.Context) ([]CatalogCategory, error)
}
