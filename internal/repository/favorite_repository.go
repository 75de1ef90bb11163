package repository

import "context"

type FavoriteRepository interface {
	// クライアントのお気に入り商品id集合
	IDs(ctx context.Context, clientToken string) (map[int64]struct{}, error)
	Add(ctx context.Context, clientToken string, productID int64) error
	Remove(ctx context.Context, clientToken string, productID int64) error
}
