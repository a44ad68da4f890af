package http

import (
	"net/http"

	"github.com/cardfolio/cardfolio/internal/utils"
	"github.com/cardfolio/cardfolio/models"
)

const serverName = "cardfolio"

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteEnvelope(w, http.StatusOK, "cardfolio API is running", nil)
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteEnvelope(w, http.StatusOK, "ok", nil)
}

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	utils.WriteEnvelope(w, http.StatusOK, "server info", models.ServerInfo{
		Name:    serverName,
		Version: h.appCfg.Version,
	})
}
