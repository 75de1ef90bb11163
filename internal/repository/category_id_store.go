package repository

import "context"

// slug→数値idの採番表。同じslugには必ず同じidを返し、
// 採番済みのエントリをキャッシュの更新で消してはならない。
type CategoryIDStore interface {
	IDFor(ctx context.Context, slug string) (int64, error)
}
