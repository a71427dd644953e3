package main

import (
	"context"

	"restaurant/internal/config"
	"restaurant/internal/infra/db"
	infraRepo "restaurant/internal/infra/repository"
	"restaurant/internal/infra/storage"
	"restaurant/internal/logging"
	"restaurant/internal/server"
	"restaurant/internal/usecase"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

// 設定・ロガー・DBを用意する
func boot(ctx context.Context) (config.Config, *logrus.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	gdb, err := db.Connect(ctx, cfg.DB, log)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	log.WithField("driver", cfg.DB.Driver).Info("database connected")
	return cfg, log, gdb, nil
}

func newAuthUsecase(cfg config.Config, gdb *gorm.DB) *usecase.AuthUsecase {
	userRepo := infraRepo.NewUserGormRepository(gdb)
	tokens := usecase.NewTokenService(cfg.JWTSecret, cfg.TokenTTL, usecase.SystemClock{})

	//bcrypt（会員登録：Hash / ログイン：Verify）
	return usecase.NewAuthUsecase(
		userRepo,
		usecase.NewBcryptPasswordHasher(cfg.BcryptCost),
		usecase.NewBcryptPasswordVerifier(),
		tokens,
	)
}

// DI
func buildServerDeps(ctx context.Context, cfg config.Config, log *logrus.Logger, gdb *gorm.DB) (server.Deps, error) {
	var (
		images    usecase.ImageStore
		uploadDir string
	)
	switch cfg.Storage.Driver {
	case "s3":
		s3Store, err := storage.NewS3Store(ctx, cfg.Storage)
		if err != nil {
			return server.Deps{}, err
		}
		images = s3Store
	default:
		local, err := storage.NewLocalStore(cfg.Storage.UploadDir, cfg.Storage.PublicPath)
		if err != nil {
			return server.Deps{}, err
		}
		images = local
		uploadDir = local.Root()
	}

	//Repository（GORM実装）生成
	menuRepo := infraRepo.NewMenuGormRepository(gdb)
	orderRepo := infraRepo.NewOrderGormRepository(gdb)
	orderItemRepo := infraRepo.NewOrderItemGormRepository(gdb)
	contactRepo := infraRepo.NewContactGormRepository(gdb)
	txm := infraRepo.NewTxManagerGorm(gdb)

	return server.Deps{
		Config:      cfg,
		Logger:      log,
		DB:          gdb,
		Auth:        newAuthUsecase(cfg, gdb),
		Menu:        usecase.NewMenuUsecase(menuRepo, images, &uuidGenerator{}, cfg.Storage.MaxBytes),
		Orders:      usecase.NewOrderUsecase(txm, orderRepo, orderItemRepo),
		AdminOrders: usecase.NewAdminOrderUsecase(txm, orderRepo, orderItemRepo),
		Contact:     usecase.NewContactUsecase(contactRepo),
		UploadDir:   uploadDir,
	}, nil
}
