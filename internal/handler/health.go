package handler

import (
	"net/http"

	"github.com/jmoiron/sqlx"

	"github.com/galleria-app/galleria/internal/respond"
)

type HealthHandler struct {
	db *sqlx.DB
}

func NewHealthHandler(db *sqlx.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	err := h.db.PingContext(r.Context())
	if err != nil {
		respond.JSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded"})
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
