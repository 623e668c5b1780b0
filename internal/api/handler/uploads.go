package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/bizmetrics-api/internal/domain"
	"github.com/vfg2006/bizmetrics-api/internal/usecases/metricsing"
	"github.com/vfg2006/bizmetrics-api/pkg/apiErrors"
	"github.com/vfg2006/bizmetrics-api/pkg/log"
	"github.com/vfg2006/bizmetrics-api/pkg/utils"
)

type UploadListResponse struct {
	Uploads []*domain.UploadEntry `json:"uploads"`
	Count   int                   `json:"count"`
}

// ListUploads lista o arquivo histórico. Filtros: ?since=YYYY-MM-DD e ?limit=N
func ListUploads(service metricsing.UploadHistory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var since *time.Time
		if raw := query.Get("since"); raw != "" {
			parsed, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inválida, use o formato YYYY-MM-DD", raw)
				return
			}
			since = parsed
		}

		limit := 0
		if raw := query.Get("limit"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Limite inválido", raw)
				return
			}
			limit = parsed
		}

		entries, err := service.ListUploads(r.Context(), since, limit)
		if err != nil {
			handleArchiveError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, UploadListResponse{Uploads: entries, Count: len(entries)})
	}
}

func GetUpload(service metricsing.UploadHistory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do upload não fornecido", nil)
			return
		}

		entry, err := service.GetUpload(r.Context(), id)
		if err != nil {
			handleArchiveError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, entry)
	}
}

func handleArchiveError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, metricsing.ErrArchiveDisabled):
		apiErrors.WriteError(w, apiErrors.ErrArchiveDisabled, "Arquivo de uploads desabilitado", nil)
	case errors.Is(err, metricsing.ErrUploadNotFound):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Upload não encontrado", nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("Erro ao consultar arquivo de uploads")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar arquivo de uploads", nil)
	}
}
