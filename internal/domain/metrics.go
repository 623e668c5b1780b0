// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"encoding/json"
	"time"

	jsoniter "github.com/json-iterator/go"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// MonthsPerSeries é a quantidade de meses exibida pelos gráficos do dashboard
const MonthsPerSeries = 6

// MonthLabels são os rótulos fixos usados pelo formulário e pelos dados de exemplo
var MonthLabels = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

// Metrics é o conjunto de métricas aceito no último upload.
// Revenue, Costs e KPIs guardam o JSON exatamente como enviado pelo cliente.
type Metrics struct {
	Revenue     json.RawMessage `json:"revenue"`
	Costs       json.RawMessage `json:"costs"`
	KPIs        json.RawMessage `json:"kpis"`
	LastUpdated time.Time       `json:"last_updated"`
}

// Series é a visão tipada de uma série mensal (receita ou custos)
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// KPIs é a visão tipada do resumo de indicadores
type KPIs struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCosts   float64 `json:"total_costs"`
	ProfitMargin float64 `json:"profit_margin"`
	GrowthRate   float64 `json:"growth_rate"`
}

// MetricsView é a leitura tipada de um Metrics
type MetricsView struct {
	Revenue     Series
	Costs       Series
	KPIs        KPIs
	LastUpdated time.Time
}

// Clone devolve uma cópia profunda, sem compartilhar os buffers JSON
func (m *Metrics) Clone() *Metrics {
	if m == nil {
		return nil
	}

	return &Metrics{
		Revenue:     cloneRaw(m.Revenue),
		Costs:       cloneRaw(m.Costs),
		KPIs:        cloneRaw(m.KPIs),
		LastUpdated: m.LastUpdated,
	}
}

// View decodifica as seções em tipos concretos.
// Falha quando o conteúdo enviado não tem o formato documentado.
func (m *Metrics) View() (*MetricsView, error) {
	view := &MetricsView{LastUpdated: m.LastUpdated}

	if err := codec.Unmarshal(m.Revenue, &view.Revenue); err != nil {
		return nil, err
	}
	if err := codec.Unmarshal(m.Costs, &view.Costs); err != nil {
		return nil, err
	}
	if err := codec.Unmarshal(m.KPIs, &view.KPIs); err != nil {
		return nil, err
	}

	return view, nil
}

// NewMetrics monta um Metrics a partir das visões tipadas
func NewMetrics(revenue, costs Series, kpis KPIs, lastUpdated time.Time) (*Metrics, error) {
	revenueJSON, err := codec.Marshal(revenue)
	if err != nil {
		return nil, err
	}
	costsJSON, err := codec.Marshal(costs)
	if err != nil {
		return nil, err
	}
	kpisJSON, err := codec.Marshal(kpis)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		Revenue:     revenueJSON,
		Costs:       costsJSON,
		KPIs:        kpisJSON,
		LastUpdated: lastUpdated.UTC(),
	}, nil
}

// FallbackMetrics retorna os dados de exemplo exibidos antes do primeiro upload
func FallbackMetrics(now time.Time) *Metrics {
	metrics, err := NewMetrics(
		Series{
			Labels: append([]string(nil), MonthLabels...),
			Values: []float64{12000, 15000, 18000, 20000, 22000, 30000},
		},
		Series{
			Labels: append([]string(nil), MonthLabels...),
			Values: []float64{8000, 9000, 11000, 12000, 13000, 14000},
		},
		KPIs{
			TotalRevenue: 117000,
			TotalCosts:   67000,
			ProfitMargin: 42.7,
			GrowthRate:   18.3,
		},
		now,
	)
	if err != nil {
		// tipos fixos, o Marshal não falha
		panic(err)
	}

	return metrics
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}
