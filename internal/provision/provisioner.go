package provision

import (
	"context"
	"fmt"

	"minishop/internal/config"
	"minishop/internal/domain/model"
	"minishop/internal/infra/db"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// 実行結果
type Result struct {
	DatabaseCreated bool
	Categories      int64
	Products        int64
}

// DB作成 → 接続 → スキーマ → seed
// 何度実行しても同じ状態になる。
func Run(ctx context.Context, cfg config.Config, log zerolog.Logger) (Result, error) {
	created, err := db.EnsureDatabase(ctx, cfg, log)
	if err != nil {
		return Result{}, fmt.Errorf("ensure database: %w", err)
	}

	gormDB, err := db.Connect(cfg, log)
	if err != nil {
		return Result{}, fmt.Errorf("connect: %w", err)
	}
	defer func() { _ = db.Close(gormDB) }()

	res, err := Apply(ctx, gormDB, log)
	if err != nil {
		return Result{}, err
	}
	res.DatabaseCreated = created
	return res, nil
}

// スキーマとseedを1トランザクションで入れる。途中で失敗したら何も残らない
func Apply(ctx context.Context, gormDB *gorm.DB, log zerolog.Logger) (Result, error) {
	err := gormDB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		log.Info().Msg("migrating schema")
		if err := tx.AutoMigrate(model.All()...); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}

		log.Info().Msg("seeding")
		return seed(tx, log)
	})
	if err != nil {
		log.Error().Err(err).Msg("provisioning rolled back")
		return Result{}, err
	}

	// 接続確認も兼ねて件数を出す
	var res Result
	if err := gormDB.WithContext(ctx).Model(&model.Category{}).Count(&res.Categories).Error; err != nil {
		return Result{}, fmt.Errorf("count categories: %w", err)
	}
	if err := gormDB.WithContext(ctx).Model(&model.Product{}).Count(&res.Products).Error; err != nil {
		return Result{}, fmt.Errorf("count products: %w", err)
	}
	log.Info().
		Int64("categories", res.Categories).
		Int64("products", res.Products).
		Msg("provisioning done")
	return res, nil
}

func seed(tx *gorm.DB, log zerolog.Logger) error {
	// カテゴリ：nameが既にあれば何もしない
	for _, name := range seedCategories {
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&model.Category{Name: name})
		if res.Error != nil {
			return fmt.Errorf("seed category %s: %w", name, res.Error)
		}
		if res.RowsAffected > 0 {
			log.Debug().Str("category", name).Msg("category inserted")
		}
	}

	// 商品：(name, category) で既存なら何もしない
	for _, sp := range seedProducts {
		var cat model.Category
		if err := tx.Where("name = ?", sp.Category).First(&cat).Error; err != nil {
			return fmt.Errorf("lookup category %s: %w", sp.Category, err)
		}

		p := model.Product{}
		err := tx.Where(model.Product{Name: sp.Name, CategoryID: cat.ID}).
			Attrs(model.Product{
				Description: sp.Description,
				Price:       sp.Price,
				Stock:       sp.Stock,
			}).
			FirstOrCreate(&p).Error
		if err != nil {
			return fmt.Errorf("seed product %s: %w", sp.Name, err)
		}
		log.Debug().Str("product", sp.Name).Int64("id", p.ID).Msg("product ready")
	}
	return nil
}
