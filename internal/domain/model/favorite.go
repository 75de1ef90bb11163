package model

import "time"

// お気に入り。匿名クライアント（client token）単位で持つ。
type Favorite struct {
	ID          int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientToken string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_fav_token_product" json:"-"`
	ProductID   int64     `gorm:"not null;uniqueIndex:idx_fav_token_product" json:"product_id"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
