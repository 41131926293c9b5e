package handler

import (
	"net/http"

	"github.com/galleria-app/galleria/internal/respond"
	"github.com/galleria-app/galleria/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.Categories()
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.OK(w, categories)
}

func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")

	category, err := h.categoryService.Create(name)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.Created(w, category)
}

func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.categoryService.Delete(id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.NoContent(w)
}
