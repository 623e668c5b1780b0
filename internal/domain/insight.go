package domain

import "time"

const (
	AnalysisTypeQuickInsight  = "quick_insight"
	AnalysisTypeComprehensive = "comprehensive"
)

// QuickInsight é a resposta do endpoint de insight rápido
type QuickInsight struct {
	Success      bool   `json:"success"`
	Insights     string `json:"insights"`
	AnalysisType string `json:"analysis_type"`
	Timestamp    int64  `json:"timestamp"` // Unix em milissegundos
}

// DeepAnalysis é a resposta do endpoint de análise completa
type DeepAnalysis struct {
	Success      bool      `json:"success"`
	Report       string    `json:"report"`
	AnalysisType string    `json:"analysis_type"`
	GeneratedAt  time.Time `json:"generated_at"`
}
