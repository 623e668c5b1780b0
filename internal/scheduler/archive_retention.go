package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/bizmetrics-api/infrastructure/repository"
	"github.com/vfg2006/bizmetrics-api/internal/config"
)

// ArchiveRetentionConfig representa a configuração da limpeza do arquivo histórico
type ArchiveRetentionConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
}

// ArchiveRetentionService remove periodicamente os uploads arquivados mais antigos que a retenção
type ArchiveRetentionService struct {
	scheduler           *gocron.Scheduler
	config              ArchiveRetentionConfig
	archiveRepo         repository.UploadArchiveRepository
	now                 func() time.Time
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDeleted         int64
	lastError           string
}

func NewArchiveRetentionService(archiveRepo repository.UploadArchiveRepository, cfg *config.Config) *ArchiveRetentionService {
	retentionConfig := ArchiveRetentionConfig{
		CronSchedule:  cfg.ArchiveRetention.CronSchedule,  // Default: 2h da manhã todos os dias
		RetentionDays: cfg.ArchiveRetention.RetentionDays, // Default: 30 dias
		SyncEnabled:   cfg.ArchiveRetention.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":  retentionConfig.CronSchedule,
		"retention_days": retentionConfig.RetentionDays,
		"sync_enabled":   retentionConfig.SyncEnabled,
	}).Info("Configuração da limpeza do arquivo de uploads carregada")

	return &ArchiveRetentionService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      retentionConfig,
		archiveRepo: archiveRepo,
		now:         time.Now,
	}
}

// Start agenda a limpeza; não faz nada quando desabilitada por configuração
func (s *ArchiveRetentionService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Limpeza do arquivo de uploads desabilitada por configuração")
		return nil
	}

	if s.config.RetentionDays <= 0 {
		return fmt.Errorf("retenção inválida: %d dias", s.config.RetentionDays)
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de limpeza do arquivo de uploads")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Prune(ctx); err != nil {
			logrus.WithError(err).Error("Erro na limpeza do arquivo de uploads")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza do arquivo de uploads: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de limpeza do arquivo de uploads")
		s.scheduler.Stop()
	}()

	return nil
}

// Prune remove os uploads recebidos antes de now - RetentionDays.
// Retorna zero sem erro quando outra execução já está em andamento.
func (s *ArchiveRetentionService) Prune(ctx context.Context) (int64, error) {
	startedAt, ok := s.claimRun()
	if !ok {
		logrus.Warn("Limpeza do arquivo de uploads já está em execução")
		return 0, nil
	}

	return s.prune(ctx, startedAt)
}

// TriggerManualSync inicia manualmente uma limpeza em segundo plano.
// A execução é reservada antes do retorno, então true garante que a limpeza vai rodar.
func (s *ArchiveRetentionService) TriggerManualSync() bool {
	startedAt, ok := s.claimRun()
	if !ok {
		logrus.Info("Limpeza do arquivo de uploads já em andamento, ignorando solicitação manual")
		return false
	}

	logrus.Info("Iniciando limpeza manual do arquivo de uploads")
	go func() {
		if _, err := s.prune(context.Background(), startedAt); err != nil {
			logrus.WithError(err).Error("Erro na limpeza manual do arquivo de uploads")
		}
	}()

	return true
}

// claimRun marca uma execução como em andamento; falso se já houver outra
func (s *ArchiveRetentionService) claimRun() (time.Time, bool) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return time.Time{}, false
	}

	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return s.lastSyncStartedAt, true
}

// prune executa a remoção de uma execução já reservada por claimRun
func (s *ArchiveRetentionService) prune(ctx context.Context, startedAt time.Time) (int64, error) {
	cutoff := startedAt.AddDate(0, 0, -s.config.RetentionDays)

	deleted, err := s.archiveRepo.DeleteOlderThan(ctx, cutoff)

	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	s.syncRunning = false
	s.lastSyncCompletedAt = s.now()

	if err != nil {
		s.lastError = err.Error()
		return 0, fmt.Errorf("erro ao remover uploads antigos: %w", err)
	}

	s.lastError = ""
	s.lastDeleted = deleted

	logrus.WithFields(logrus.Fields{
		"cutoff":  cutoff.Format(time.RFC3339),
		"deleted": deleted,
	}).Info("Limpeza do arquivo de uploads concluída")

	return deleted, nil
}

// GetStatus retorna o status atual do agendador
func (s *ArchiveRetentionService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"retention_days":         s.config.RetentionDays,
		"running":                s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_deleted":           s.lastDeleted,
		"last_error":             s.lastError,
	}
}
