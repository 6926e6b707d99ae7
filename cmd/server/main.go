package main

import (
	"bucketlist/internal/config"
	"bucketlist/internal/handlers"
	"bucketlist/internal/middleware"
	"bucketlist/internal/repo"
	"bucketlist/internal/service"
	"net/http"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	bucketlistRepo := repo.NewBucketlistRepository(gormDB)
	itemRepo := repo.NewItemRepository(gormDB)

	userService := service.NewUserService(userRepo, cfg.AuthSecret, cfg.TokenTTL)
	bucketlistService := service.NewBucketlistService(bucketlistRepo)
	itemService := service.NewItemService(bucketlistRepo, itemRepo)

	h := handlers.NewHandler(userService, bucketlistService, itemService, sugar)

	sugar.Infow(
		"Starting server",
		"addr", cfg.RunAddress,
	)

	sugar.Infow("Config",
		"RunAddress", cfg.RunAddress,
		"DatabaseDSN", cfg.DatabaseDSN,
		"TokenTTL", cfg.TokenTTL,
	)

	if err := http.ListenAndServe(cfg.RunAddress, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
