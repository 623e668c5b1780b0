package metricsing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/bizmetrics-api/infrastructure/memory"
	"github.com/vfg2006/bizmetrics-api/infrastructure/repository"
	"github.com/vfg2006/bizmetrics-api/internal/config"
	"github.com/vfg2006/bizmetrics-api/internal/domain"
	"github.com/vfg2006/bizmetrics-api/pkg/log"
	"github.com/vfg2006/bizmetrics-api/pkg/utils"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

type Service struct {
	parser    *Parser
	store     memory.MetricsStore
	archive   repository.UploadArchiveRepository
	publisher EventPublisher
	now       func() time.Time
	newID     func() (string, error)
}

func NewService(cfg *config.Config, store memory.MetricsStore) *Service {
	return &Service{
		parser: NewParser(cfg.Upload.StrictValidation),
		store:  store,
		now:    time.Now,
		newID:  utils.GenerateID,
	}
}

// WithArchive habilita o registro de cada upload aceito no arquivo histórico
func (s *Service) WithArchive(archive repository.UploadArchiveRepository) *Service {
	s.archive = archive
	return s
}

// WithPublisher habilita a publicação de eventos depois de cada upload aceito
func (s *Service) WithPublisher(publisher EventPublisher) *Service {
	s.publisher = publisher
	return s
}

// Upload interpreta o arquivo e, se válido, substitui as métricas armazenadas.
// Em caso de erro o armazenamento não é alterado.
func (s *Service) Upload(ctx context.Context, file domain.UploadedFile) (*domain.UploadResult, error) {
	logger := log.ForContext(ctx).WithFields(log.Fields{
		"file_name":  file.Name,
		"size_bytes": file.Size,
	})

	metrics, err := s.parser.Parse(file.Content)
	if err != nil {
		var uploadErr *UploadError
		if errors.As(err, &uploadErr) {
			uploadErr.FileName = file.Name
		}
		logger.WithError(err).Warn("upload: arquivo rejeitado")
		return nil, err
	}

	uploadID, err := s.newID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar ID do upload")
	}

	s.store.Set(metrics)

	logger.WithField("upload_id", uploadID).Info("upload: métricas armazenadas")

	s.archiveUpload(ctx, uploadID, file, metrics)
	s.publishUpdate(ctx, uploadID, file, metrics)

	return &domain.UploadResult{
		UploadID: uploadID,
		Metrics:  metrics,
	}, nil
}

func (s *Service) GetMetrics(ctx context.Context) *domain.Metrics {
	if metrics, ok := s.store.Get(); ok {
		return metrics
	}

	log.ForContext(ctx).Debug("metrics: nenhum upload aceito, usando dados de exemplo")
	return domain.FallbackMetrics(s.now())
}

// ListUploads lista os uploads arquivados, mais recentes primeiro.
// limit fora de (0, MaxListLimit] vira o padrão ou o máximo.
func (s *Service) ListUploads(ctx context.Context, since *time.Time, limit int) ([]*domain.UploadEntry, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}

	switch {
	case limit <= 0:
		limit = DefaultListLimit
	case limit > MaxListLimit:
		limit = MaxListLimit
	}

	entries, err := s.archive.List(ctx, repository.UploadFilter{Since: since, Limit: uint64(limit)})
	if err != nil {
		return nil, errors.Wrap(err, "erro ao listar uploads")
	}

	return entries, nil
}

func (s *Service) GetUpload(ctx context.Context, id string) (*domain.UploadEntry, error) {
	if s.archive == nil {
		return nil, ErrArchiveDisabled
	}

	entry, err := s.archive.GetByID(ctx, id)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao buscar upload %s", id)
	}
	if entry == nil {
		return nil, ErrUploadNotFound
	}

	return entry, nil
}

// archiveUpload registra o upload; falhas são apenas logadas porque o armazenamento já foi substituído
func (s *Service) archiveUpload(ctx context.Context, uploadID string, file domain.UploadedFile, metrics *domain.Metrics) {
	if s.archive == nil {
		return
	}

	logger := log.ForContext(ctx).WithField("upload_id", uploadID)

	payload, err := codec.Marshal(metrics)
	if err != nil {
		logger.WithError(err).Error("upload: erro ao serializar métricas para o arquivo histórico")
		return
	}

	err = s.archive.Save(ctx, &domain.UploadEntry{
		ID:         uploadID,
		FileName:   file.Name,
		SizeBytes:  file.Size,
		Payload:    payload,
		ReceivedAt: metrics.LastUpdated,
	})
	if err != nil {
		logger.WithError(err).Error("upload: erro ao registrar no arquivo histórico")
	}
}

func (s *Service) publishUpdate(ctx context.Context, uploadID string, file domain.UploadedFile, metrics *domain.Metrics) {
	if s.publisher == nil {
		return
	}

	err := s.publisher.PublishMetricsUpdated(ctx, &domain.MetricsUpdatedEvent{
		UploadID:    uploadID,
		FileName:    file.Name,
		SizeBytes:   file.Size,
		LastUpdated: metrics.LastUpdated,
		KPIs:        metrics.KPIs,
	})
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("upload_id", uploadID).Error("upload: erro ao publicar evento de métricas atualizadas")
	}
}
