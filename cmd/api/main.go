package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/domain/model"
	"storefront/internal/handler"
	"storefront/internal/infra/db"
	infraRepo "storefront/internal/infra/repository"
	"storefront/internal/repository"
	"storefront/internal/server"
	"storefront/internal/upstream"
	"storefront/internal/usecase"
)

func main() {
	// .envは無くてもよい（本番は環境変数で渡す）
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using environment: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		panic(err)
	}
	if err := gormDB.AutoMigrate(
		&model.CategorySlug{},
		&model.Favorite{},
		&model.Cart{},
		&model.CartItem{},
	); err != nil {
		panic(err)
	}

	//Repository（GORM実装）生成
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	favoriteRepo := infraRepo.NewFavoriteGormRepository(gormDB)

	// カテゴリid採番はRedisがあればRedis、無ければPostgres
	var idStore repository.CategoryIDStore
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		idStore = infraRepo.NewCategoryIDRedisStore(client)
	} else {
		idStore = infraRepo.NewCategoryIDGormStore(gormDB)
	}

	//upstreamカタログとキャッシュ
	catalog := upstream.NewClient(cfg.UpstreamBaseURL)
	categoryCache := cache.NewCategoryCache(catalog, idStore, cfg.CategoryTTL)
	countCache := cache.NewCountCache(catalog)

	//Usecase生成
	catalogUC := usecase.NewCatalogUsecase(catalog, favoriteRepo, categoryCache, countCache)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo, catalog)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, catalog)

	//Handler生成
	handlers := server.Handlers{
		Product:  handler.NewProductHandler(catalogUC),
		Favorite: handler.NewFavoriteHandler(favoriteUC),
		Cart:     handler.NewCartHandler(cartUC),
	}

	//Server起動
	addr := ":" + cfg.Port
	if cfg.Port[0] == ':' {
		addr = cfg.Port
	}

	if err := server.Start(addr, cfg.FEURL, handlers); err != nil {
		panic(err)
	}
}
