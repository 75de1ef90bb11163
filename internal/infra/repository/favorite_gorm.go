package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront/internal/domain/model"
	repo "storefront/internal/repository"
)

type FavoriteGormRepository struct {
	db *gorm.DB
}

// DI
func NewFavoriteGormRepository(db *gorm.DB) *FavoriteGormRepository {
	return &FavoriteGormRepository{db: db}
}

// クライアントのお気に入り商品idを集合で返す
func (r *FavoriteGormRepository) IDs(ctx context.Context, clientToken string) (map[int64]struct{}, error) {
	var productIDs []int64

	if err := r.db.WithContext(ctx).
		Model(&model.Favorite{}).
		Where("client_token = ?", clientToken).
		Pluck("product_id", &productIDs).Error; err != nil {
		return nil, err
	}

	set := make(map[int64]struct{}, len(productIDs))
	for _, id := range productIDs {
		set[id] = struct{}{}
	}
	return set, nil
}

// 追加。既に登録済みなら何もしない
func (r *FavoriteGormRepository) Add(ctx context.Context, clientToken string, productID int64) error {
	fav := model.Favorite{
		ClientToken: clientToken,
		ProductID:   productID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fav).Error
}

func (r *FavoriteGormRepository) Remove(ctx context.Context, clientToken string, productID int64) error {
	res := r.db.WithContext(ctx).
		Where("client_token = ? AND product_id = ?", clientToken, productID).
		Delete(&model.Favorite{})

	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}
