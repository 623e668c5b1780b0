package handler

import (
	"net/http"

	"github.com/vfg2006/bizmetrics-api/internal/usecases/insighting"
)

// QuickInsight ignora o corpo da requisição, inclusive quando malformado
func QuickInsight(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.QuickInsight(r.Context()))
	}
}

func DeepAnalysis(service insighting.Insighter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.DeepAnalysis(r.Context()))
	}
}
