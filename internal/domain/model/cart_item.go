package model

import "time"

// カートの明細
// 追加時点の価格とタイトルを必ず保存（upstream側が変わっても明細は動かない）。
type CartItem struct {
	ID                int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID            int64     `gorm:"not null;index" json:"cart_id"`
	ProductID         int64     `gorm:"not null;index" json:"product_id"`
	Quantity          int64     `gorm:"not null" json:"quantity"`
	UnitPriceSnapshot float64   `gorm:"not null;column:unit_price_snapshot" json:"unit_price_snapshot"`
	TitleSnapshot     string    `gorm:"type:varchar(255);not null;column:title_snapshot" json:"title_snapshot"`
	CreatedAt         time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
