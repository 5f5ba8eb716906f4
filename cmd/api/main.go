package main

import (
	"context"
	"log"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"gameshelf/internal/adapter/api"
	"gameshelf/internal/adapter/api/handler"
	apimiddleware "gameshelf/internal/adapter/api/middleware"
	"gameshelf/internal/adapter/api/router"
	adapterrepo "gameshelf/internal/adapter/repository"
	"gameshelf/internal/domain/repository"
	"gameshelf/internal/usecase"
	"gameshelf/pkg/config"
	"gameshelf/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// The backend is chosen once here; everything downstream sees only
	// the repository interface.
	var repo repository.Repository
	var gormRepo *adapterrepo.GormRepository

	switch cfg.Repository {
	case config.RepositoryDatabase:
		db, err := adapterrepo.OpenDatabase(cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		gormRepo = adapterrepo.NewGormRepository(db)
		repo = gormRepo

		count, err := gormRepo.GetNumberOfGames(ctx)
		if err != nil {
			log.Fatalf("Failed to query database: %v", err)
		}
		if count == 0 {
			if err := populate(ctx, repo, cfg.DataPath); err != nil {
				log.Fatalf("Failed to populate database: %v", err)
			}
		}
	case config.RepositoryMemory:
		repo = adapterrepo.NewMemoryRepository()
		if err := populate(ctx, repo, cfg.DataPath); err != nil {
			log.Fatalf("Failed to populate repository: %v", err)
		}
	default:
		log.Fatalf("Unknown repository backend %q", cfg.Repository)
	}

	browseUseCase := usecase.NewBrowseUseCase(repo)
	genreUseCase := usecase.NewGenreUseCase(repo)
	homeUseCase := usecase.NewHomeUseCase(repo)
	searchUseCase := usecase.NewSearchUseCase(repo)
	authUseCase := usecase.NewAuthUseCase(repo, cfg.JWTSecret, cfg.JWTExpiry)
	profileUseCase := usecase.NewProfileUseCase(repo)
	utilitiesUseCase := usecase.NewUtilitiesUseCase(repo)

	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	if gormRepo != nil {
		// Start each request on a fresh session so stale entity state
		// never crosses request boundaries.
		e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				gormRepo.Reset()
				return next(c)
			}
		})
	}

	authMiddleware := apimiddleware.NewAuthMiddleware(cfg.JWTSecret)

	router.Setup(e, router.Handlers{
		Game:    handler.NewGameHandler(browseUseCase, homeUseCase),
		Genre:   handler.NewGenreHandler(genreUseCase, utilitiesUseCase),
		Search:  handler.NewSearchHandler(searchUseCase),
		Auth:    handler.NewAuthHandler(authUseCase),
		Profile: handler.NewProfileHandler(profileUseCase, authUseCase),
	}, authMiddleware)

	logger.Info("Starting server on port %s with %s repository", cfg.ServerPort, cfg.Repository)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

func populate(ctx context.Context, repo repository.Repository, dataPath string) error {
	if _, err := os.Stat(dataPath); err != nil {
		logger.Warn("Data path %s not found, starting with an empty catalog", dataPath)
		return nil
	}
	return adapterrepo.Populate(ctx, repo, dataPath)
}
