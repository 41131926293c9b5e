package handler

import (
	"log/slog"
	"net/http"

	"github.com/galleria-app/galleria/internal/respond"
	"github.com/galleria-app/galleria/internal/service"
)

type GuideHandler struct {
	guideService *service.GuideService
}

func NewGuideHandler(guideService *service.GuideService) *GuideHandler {
	return &GuideHandler{
		guideService: guideService,
	}
}

func (h *GuideHandler) List(w http.ResponseWriter, r *http.Request) {
	pages, err := h.guideService.Pages()
	if err != nil {
		slog.Error("failed to load guide pages", "error", err)
		respond.NotFound(w, "Pages not available")
		return
	}

	respond.OK(w, pages)
}

func (h *GuideHandler) Show(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	page, err := h.guideService.Page(slug)
	if err != nil {
		slog.Debug("guide page lookup failed", "slug", slug, "error", err)
		respond.NotFound(w, "Page not found")
		return
	}

	respond.OK(w, page)
}
