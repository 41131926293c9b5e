package routes

import (
	"net/http"

	"github.com/galleria-app/galleria/internal/app"
	"github.com/galleria-app/galleria/internal/handler"
	"github.com/galleria-app/galleria/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	category := handler.NewCategoryHandler(app.CategoryService)
	character := handler.NewCharacterHandler(app.CharacterService)
	themes := handler.NewThemeHandler()
	guide := handler.NewGuideHandler(app.GuideService)
	health := handler.NewHealthHandler(app.DB)

	mux := http.NewServeMux()

	// Health
	mux.HandleFunc("GET /healthz", health.Health)

	// Categories
	mux.HandleFunc("GET /api/categories", category.List)
	mux.HandleFunc("POST /api/categories", category.Create)
	mux.HandleFunc("DELETE /api/categories/{id}", category.Delete)

	// Characters
	mux.HandleFunc("GET /api/characters", character.List)
	mux.HandleFunc("POST /api/characters", character.Create)
	mux.HandleFunc("PUT /api/characters/{id}", character.Update)
	mux.HandleFunc("DELETE /api/characters/{id}", character.Delete)

	// Themes (data-driven gallery skins)
	mux.HandleFunc("GET /api/themes", themes.List)
	mux.HandleFunc("GET /api/themes/{slug}", themes.Show)

	// Guide pages
	mux.HandleFunc("GET /api/pages", guide.List)
	mux.HandleFunc("GET /api/pages/{slug}", guide.Show)

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.RequestLogging,
	)
}
