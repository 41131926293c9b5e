package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/galleria-app/galleria/internal/config"
	"github.com/galleria-app/galleria/internal/db"
	"github.com/galleria-app/galleria/internal/repository"
	"github.com/galleria-app/galleria/internal/service"
	"github.com/galleria-app/galleria/internal/storage"
)

type App struct {
	Cfg              *config.Config
	DB               *sqlx.DB
	ImageService     *service.ImageService
	CategoryService  *service.CategoryService
	CharacterService *service.CharacterService
	GuideService     *service.GuideService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	categoryRepository := repository.NewCategoryRepository(database)
	characterRepository := repository.NewCharacterRepository(database)

	// Storage
	imageStorage, err := storage.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}

	// Services
	imageService := service.NewImageService(imageStorage)
	categoryService := service.NewCategoryService(categoryRepository)
	characterService := service.NewCharacterService(characterRepository, imageService)
	guideService := service.NewGuideService(cfg.ContentPath)

	return &App{
		Cfg:              cfg,
		DB:               database,
		ImageService:     imageService,
		CategoryService:  categoryService,
		CharacterService: characterService,
		GuideService:     guideService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
