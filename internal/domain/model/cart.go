package model

import "time"

type CartStatus string

const (
	CartStatusActive    CartStatus = "ACTIVE"
	CartStatusAbandoned CartStatus = "ABANDONED"
)

// 1クライアントトークンにつきACTIVEは1つ
type Cart struct {
	ID          int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	ClientToken string     `gorm:"type:varchar(64);not null;index" json:"-"`
	Status      CartStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	CreatedAt   time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
