package handler

import (
	"errors"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/galleria-app/galleria/internal/apperr"
	"github.com/galleria-app/galleria/internal/repository"
	"github.com/galleria-app/galleria/internal/respond"
	"github.com/galleria-app/galleria/internal/service"
)

// maxUploadMemory bounds the in-memory portion of multipart parsing; larger
// parts spill to temp files. The 5MB image limit itself is enforced by
// validation, not here.
const maxUploadMemory = 10 << 20

type CharacterHandler struct {
	characterService *service.CharacterService
}

func NewCharacterHandler(characterService *service.CharacterService) *CharacterHandler {
	return &CharacterHandler{
		characterService: characterService,
	}
}

func (h *CharacterHandler) List(w http.ResponseWriter, r *http.Request) {
	characters, err := h.characterService.Characters()
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.OK(w, characters)
}

func (h *CharacterHandler) Create(w http.ResponseWriter, r *http.Request) {
	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		respond.Error(w, apperr.Validation("Failed to parse form"))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respond.Error(w, apperr.Validation("No file provided"))
		return
	}
	defer closeUpload(file)

	name := r.FormValue("name")
	categoryID := r.FormValue("categoryId")

	character, err := h.characterService.Create(name, categoryID, file, header)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.Created(w, character)
}

func (h *CharacterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := r.ParseMultipartForm(maxUploadMemory)
	if err != nil {
		respond.Error(w, apperr.Validation("Failed to parse form"))
		return
	}

	// The image is optional on update; a missing file part means keep the
	// current one.
	var file multipart.File
	var header *multipart.FileHeader
	file, header, err = r.FormFile("image")
	if err != nil {
		if !errors.Is(err, http.ErrMissingFile) {
			respond.Error(w, apperr.Validation("No file provided"))
			return
		}
		file, header = nil, nil
	} else {
		defer closeUpload(file)
	}

	name := r.FormValue("name")
	categoryID := r.FormValue("categoryId")

	err = h.characterService.Update(id, name, categoryID, file, header)
	if err != nil {
		if errors.Is(err, repository.ErrCharacterNotFound) {
			respond.NotFound(w, "Character not found")
			return
		}
		respond.Error(w, err)
		return
	}

	respond.NoContent(w)
}

func (h *CharacterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	err := h.characterService.Delete(id)
	if err != nil {
		if errors.Is(err, repository.ErrCharacterNotFound) {
			respond.NotFound(w, "Character not found")
			return
		}
		respond.Error(w, err)
		return
	}

	respond.NoContent(w)
}

func closeUpload(file multipart.File) {
	err := file.Close()
	if err != nil {
		slog.Error("failed to close uploaded file", "error", err)
	}
}
