// Package memory contém os armazenamentos em memória do processo
package memory

import (
	"sync"

	"github.com/vfg2006/bizmetrics-api/internal/domain"
)

// MetricsStore guarda o último conjunto de métricas aceito
type MetricsStore interface {
	Set(metrics *domain.Metrics)
	Get() (*domain.Metrics, bool)
}

// metricsStore é um slot único protegido por RWMutex: o último Set a terminar vence
type metricsStore struct {
	mu      sync.RWMutex
	metrics *domain.Metrics
}

func NewMetricsStore() MetricsStore {
	return &metricsStore{}
}

func (s *metricsStore) Set(metrics *domain.Metrics) {
	snapshot := metrics.Clone()

	s.mu.Lock()
	s.metrics = snapshot
	s.mu.Unlock()
}

// Get devolve uma cópia do slot; falso enquanto nenhum upload foi aceito
func (s *metricsStore) Get() (*domain.Metrics, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.metrics == nil {
		return nil, false
	}

	return s.metrics.Clone(), true
}
