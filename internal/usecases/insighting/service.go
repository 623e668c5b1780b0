// Package insighting gera as análises exibidas no painel de insights do dashboard
package insighting

import (
	"context"
	"time"

	"github.com/vfg2006/bizmetrics-api/internal/domain"
	"github.com/vfg2006/bizmetrics-api/pkg/log"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

const (
	QuickInsightText = "Revenue growth is strong, profit margin remains healthy, and May showed a notable sales surge. " +
		"Consider increasing marketing in Q3 to leverage positive trends."

	DeepAnalysisText = "Comprehensive report: Revenue grew by 18%, costs remained stable, customer retention improved by 5%. " +
		"Recommend further investment in top-performing regions and review underperforming product lines."
)

// Insighter produz as análises. Os textos são fixos e não dependem das métricas armazenadas.
type Insighter interface {
	QuickInsight(ctx context.Context) *domain.QuickInsight
	DeepAnalysis(ctx context.Context) *domain.DeepAnalysis
}

type Service struct {
	now func() time.Time
}

func NewService() *Service {
	return &Service{now: time.Now}
}

func (s *Service) QuickInsight(ctx context.Context) *domain.QuickInsight {
	log.ForContext(ctx).Debug("analysis: gerando insight rápido")

	return &domain.QuickInsight{
		Success:      true,
		Insights:     QuickInsightText,
		AnalysisType: domain.AnalysisTypeQuickInsight,
		Timestamp:    s.now().UnixMilli(),
	}
}

func (s *Service) DeepAnalysis(ctx context.Context) *domain.DeepAnalysis {
	log.ForContext(ctx).Debug("analysis: gerando análise completa")

	return &domain.DeepAnalysis{
		Success:      true,
		Report:       DeepAnalysisText,
		AnalysisType: domain.AnalysisTypeComprehensive,
		GeneratedAt:  s.now().UTC(),
	}
}
