package handler

import (
	"net/http"

	"github.com/vfg2006/bizmetrics-api/internal/usecases/metricsing"
)

// GetDashboardMetrics retorna o último upload aceito ou os dados de exemplo. Sempre 200.
func GetDashboardMetrics(service metricsing.MetricsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.GetMetrics(r.Context()))
	}
}
