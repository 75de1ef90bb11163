package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/domain/model"
)

// DBシーケンスでidを採番するslug→idストア。
// プロセスをまたいでも同じslugは同じidになる。
type CategoryIDGormStore struct {
	db *gorm.DB
}

// DI
func NewCategoryIDGormStore(db *gorm.DB) *CategoryIDGormStore {
	return &CategoryIDGormStore{db: db}
}

func (s *CategoryIDGormStore) IDFor(ctx context.Context, slug string) (int64, error) {
	var row model.CategorySlug

	err := s.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&row).Error
	if err == nil {
		return row.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	// 未採番なら挿入。並行挿入で負けたら読み直す。
	row = model.CategorySlug{Slug: slug}
	if err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error; err != nil {
		return 0, err
	}
	if row.ID != 0 {
		return row.ID, nil
	}

	if err := s.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&row).Error; err != nil {
		return 0, err
	}
	return row.ID, nil
}
