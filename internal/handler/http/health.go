package http

import (
	"net/http"

	"github.com/legaldoc-app/legaldoc-server/internal/utils"
	"github.com/legaldoc-app/legaldoc-server/models"
)

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthResponse{Status: "ok"}, http.StatusOK)
}
