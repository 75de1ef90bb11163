package model

// 正規化済みの商品。upstreamのレコードをカタログ側で変換したもの。
// DBには保存しない（カート・お気に入りはidのみ参照）。
type Product struct {
	ID                 int64    `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             *float64 `json:"rating"` // upstream欠落時はnilのまま
	Stock              int64    `json:"stock"`
	Brand              string   `json:"brand,omitempty"`
	Thumbnail          string   `json:"thumbnail,omitempty"`
	Images             []string `json:"images,omitempty"`
	Category           Category `json:"category"`
}
