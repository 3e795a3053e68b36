package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"minishop/internal/config"
	"minishop/internal/handler"
	"minishop/internal/infra/db"
	infraRepo "minishop/internal/infra/repository"
	"minishop/internal/logger"
	"minishop/internal/server"
	"minishop/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func main() {
	if err := run(); err != nil {
		l := zerolog.New(os.Stderr).With().Timestamp().Logger()
		l.Error().Err(err).Msg("api stopped")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg)

	//DB接続（スキーマは dbctl init で作る）
	gormDB, err := db.Connect(cfg, log)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close(gormDB) }()

	e := newServer(cfg, log, gormDB)

	//Server起動（SIGINT/SIGTERMで停止）
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Start(ctx, e, cfg.Addr(), log)
}

// Repository → Usecase → Handler を組み立てる
func newServer(cfg config.Config, log zerolog.Logger, gormDB *gorm.DB) *echo.Echo {
	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	reportRepo := infraRepo.NewReportGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	hasher := usecase.NewBcryptPasswordHasher(cfg.BcryptCost)
	userUC := usecase.NewUserUsecase(userRepo, hasher, usecase.SystemClock{})
	categoryUC := usecase.NewCategoryUsecase(categoryRepo)
	productUC := usecase.NewProductUsecase(productRepo, categoryRepo)
	orderUC := usecase.NewOrderUsecase(txm, orderRepo)
	reportUC := usecase.NewReportUsecase(reportRepo)

	//Handler生成
	return server.New(log, server.Handlers{
		Health:     handler.NewHealthHandler(),
		Users:      handler.NewUserHandler(userUC),
		Categories: handler.NewCategoryHandler(categoryUC),
		Products:   handler.NewProductHandler(productUC),
		Orders:     handler.NewOrderHandler(orderUC),
		Reports:    handler.NewReportHandler(reportUC),
	})
}
