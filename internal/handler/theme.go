package handler

import (
	"net/http"

	"github.com/galleria-app/galleria/internal/respond"
	"github.com/galleria-app/galleria/internal/theme"
)

type ThemeHandler struct{}

func NewThemeHandler() *ThemeHandler {
	return &ThemeHandler{}
}

func (h *ThemeHandler) List(w http.ResponseWriter, r *http.Request) {
	respond.OK(w, theme.All())
}

func (h *ThemeHandler) Show(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	t, ok := theme.BySlug(slug)
	if !ok {
		respond.NotFound(w, "Theme not found")
		return
	}

	respond.OK(w, t)
}
