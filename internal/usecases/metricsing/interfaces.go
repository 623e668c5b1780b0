package metricsing

import (
	"context"
	"time"

	"github.com/vfg2006/bizmetrics-api/internal/domain"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Uploader executa o pipeline de upload: interpretar, validar e armazenar
type Uploader interface {
	Upload(ctx context.Context, file domain.UploadedFile) (*domain.UploadResult, error)
}

// MetricsReader devolve as métricas exibidas no dashboard
type MetricsReader interface {
	// GetMetrics retorna o último upload aceito ou os dados de exemplo
	GetMetrics(ctx context.Context) *domain.Metrics
}

// UploadHistory consulta o arquivo histórico de uploads
type UploadHistory interface {
	ListUploads(ctx context.Context, since *time.Time, limit int) ([]*domain.UploadEntry, error)
	GetUpload(ctx context.Context, id string) (*domain.UploadEntry, error)
}

// MetricsService é a interface completa usada pela API
type MetricsService interface {
	Uploader
	MetricsReader
	UploadHistory
}

// EventPublisher publica avisos de métricas atualizadas
type EventPublisher interface {
	PublishMetricsUpdated(ctx context.Context, event *domain.MetricsUpdatedEvent) error
}
