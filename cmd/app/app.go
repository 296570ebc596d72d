package app

import (
	"context"
	"log"
	"rentservice/internal/config"
	"rentservice/internal/database"
	"rentservice/internal/repository"
	"rentservice/internal/service"
	"rentservice/internal/storage"
)

func App(cfg *config.Config) (*database.DB, *repository.Repository, *service.Service) {
	// connection DB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}

	// connection MinIO
	minioClient, err := storage.NewMinIOClient(cfg)
	if err != nil {
		log.Fatalf("Не удалось инициализировать MinIO: %v", err)
	}

	// enabling dependencies
	repo := repository.NewRepository(db.DB)

	services := service.NewService(repo, cfg, minioClient)

	// creating the admin on first start
	if err := services.User.SeedAdminUser(context.Background()); err != nil {
		log.Fatalf("Не удалось создать пользователя admin: %v", err)
	}

	return db, repo, services
}
