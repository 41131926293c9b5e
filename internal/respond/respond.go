// Package respond centralizes JSON responses so every handler speaks the
// same envelope: {"data": ...} on success, {"error": "..."} on failure.
package respond

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/galleria-app/galleria/internal/apperr"
)

type dataEnvelope struct {
	Data any `json:"data"`
}

type errorEnvelope struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, dataEnvelope{Data: data})
}

func Created(w http.ResponseWriter, data any) {
	JSON(w, http.StatusCreated, dataEnvelope{Data: data})
}

func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func NotFound(w http.ResponseWriter, message string) {
	JSON(w, http.StatusNotFound, errorEnvelope{Error: message})
}

// Error maps the app's error taxonomy to HTTP. Validation failures are the
// caller's fault (400); remote-service failures surface the backend's
// message with a 502 so the UI can show it inline and offer a retry.
func Error(w http.ResponseWriter, err error) {
	var ve *apperr.ValidationError
	if errors.As(err, &ve) {
		JSON(w, http.StatusBadRequest, errorEnvelope{Error: ve.Message})
		return
	}

	var re *apperr.RemoteServiceError
	if errors.As(err, &re) {
		slog.Error("remote service error", "op", re.Op, "error", re.Cause)
		JSON(w, http.StatusBadGateway, errorEnvelope{Error: re.Error()})
		return
	}

	slog.Error("unexpected error", "error", err)
	JSON(w, http.StatusInternalServerError, errorEnvelope{Error: "internal server error"})
}
