package app

import (
	"context"
	"log/slog"

	httpapp "nevod_store/internal/app/http"
	"nevod_store/internal/config"
	"nevod_store/internal/repository"
	catalogservice "nevod_store/internal/services/catalog_service"
	contentservice "nevod_store/internal/services/content_service"
	galleryservice "nevod_store/internal/services/gallery_service"
	filestorage "nevod_store/internal/storage/filestorage"
	redisapp "nevod_store/internal/storage/redis"
	httprouters "nevod_store/internal/transport/http"
)

type App struct {
	HTTPServer *httpapp.Server

	repo  *repository.Repository
	redis *redisapp.Client
	log   *slog.Logger
}

func New(log *slog.Logger, cfg *config.Config) *App {
	repo, err := repository.NewRepository(context.Background(), cfg.DSN)
	if err != nil {
		panic(err)
	}

	files, err := filestorage.NewLocalFileStorage(
		cfg.FileStorage.BaseDir,
		cfg.FileStorage.BaseURL,
		cfg.FileStorage.MaxSize,
	)
	if err != nil {
		panic(err)
	}

	redisClient := redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
	listingCache := repository.NewRedisListingCache(redisClient)

	galleryService := galleryservice.NewGalleryService(log, repo.Gallery, files)
	catalogService := catalogservice.NewCatalogService(log, repo.Catalog, files, listingCache)
	contentService := contentservice.NewContentService(log, repo.Content, files)

	routers := httprouters.NewRouter(log, galleryService, catalogService, contentService)

	server := httpapp.New(log, cfg.SessionSecret, cfg.HTTP.Host, cfg.HTTP.Port, routers)

	return &App{
		HTTPServer: server,
		repo:       repo,
		redis:      redisClient,
		log:        log,
	}
}

func (a *App) Stop() {
	if err := a.HTTPServer.Stop(); err != nil {
		a.log.Error("failed to stop http server", slog.String("error", err.Error()))
	}

	if err := a.redis.Close(); err != nil {
		a.log.Error("failed to close redis client", slog.String("error", err.Error()))
	}

	a.repo.Close()
}
