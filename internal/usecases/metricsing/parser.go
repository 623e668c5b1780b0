package metricsing

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/bizmetrics-api/internal/domain"
	"github.com/vfg2006/bizmetrics-api/pkg/apiErrors"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

const parseErrorPrefix = "failed to parse JSON file"

var requiredSections = []string{"revenue", "costs", "kpis"}

var kpiFields = []string{"total_revenue", "total_costs", "profit_margin", "growth_rate"}

// Parser transforma o conteúdo de um arquivo enviado em um Metrics
type Parser struct {
	strict bool
	now    func() time.Time
}

// NewParser cria um parser. Em modo estrito o formato das séries e dos KPIs
// também é conferido; fora dele apenas a presença das seções.
func NewParser(strict bool) *Parser {
	return &Parser{
		strict: strict,
		now:    time.Now,
	}
}

// Parse decodifica o buffer como texto UTF-8 e interpreta o JSON.
// O resultado contém apenas revenue, costs e kpis, com last_updated no horário atual.
func (p *Parser) Parse(content []byte) (*domain.Metrics, error) {
	// Sequências inválidas viram U+FFFD, como na decodificação UTF-8 do navegador
	text := []byte(strings.ToValidUTF8(string(content), "\uFFFD"))

	if !codec.Valid(text) {
		return nil, errors.Wrap(NewUploadError(ErrInvalidJSON, apiErrors.ErrProcessingFailed), parseErrorPrefix)
	}

	var document map[string]json.RawMessage
	if err := codec.Unmarshal(text, &document); err != nil {
		// Objeto que não decodifica (ex.: bytes após o fechamento) é JSON inválido
		if trimmed := bytes.TrimSpace(text); len(trimmed) > 0 && trimmed[0] == '{' {
			return nil, errors.Wrap(NewUploadError(ErrInvalidJSON, apiErrors.ErrProcessingFailed), parseErrorPrefix)
		}
		// Documento válido mas que não é objeto: nenhuma seção pode estar presente
		document = nil
	}

	var missing []string
	for _, section := range requiredSections {
		raw, ok := document[section]
		if !ok || isEmptyValue(raw) {
			missing = append(missing, section)
		}
	}

	if len(missing) > 0 {
		return nil, errors.Wrap(NewUploadError(ErrMissingRequiredFields, apiErrors.ErrProcessingFailed, missing...), parseErrorPrefix)
	}

	if p.strict {
		if problems := checkShape(document); len(problems) > 0 {
			return nil, errors.Wrap(NewUploadError(ErrInvalidShape, apiErrors.ErrProcessingFailed, problems...), parseErrorPrefix)
		}
	}

	return &domain.Metrics{
		Revenue:     document["revenue"],
		Costs:       document["costs"],
		KPIs:        document["kpis"],
		LastUpdated: p.now().UTC(),
	}, nil
}

// isEmptyValue trata null, false, 0 e "" como seção ausente
func isEmptyValue(raw json.RawMessage) bool {
	value := bytes.TrimSpace(raw)

	switch string(value) {
	case "", "null", "false", `""`:
		return true
	}

	if isNumber(value) {
		n, err := strconv.ParseFloat(string(value), 64)
		return err == nil && n == 0
	}

	return false
}

func isNumber(raw []byte) bool {
	value := bytes.TrimSpace(raw)
	if len(value) == 0 {
		return false
	}
	c := value[0]
	return c == '-' || (c >= '0' && c <= '9')
}

func checkShape(document map[string]json.RawMessage) []string {
	var problems []string

	problems = append(problems, checkSeries("revenue", document["revenue"])...)
	problems = append(problems, checkSeries("costs", document["costs"])...)
	problems = append(problems, checkKPIs(document["kpis"])...)

	return problems
}

func checkSeries(name string, raw json.RawMessage) []string {
	var series struct {
		Labels []json.RawMessage `json:"labels"`
		Values []json.RawMessage `json:"values"`
	}

	if err := codec.Unmarshal(raw, &series); err != nil {
		return []string{fmt.Sprintf("%s: expected an object with labels and values arrays", name)}
	}

	var problems []string

	if len(series.Labels) != domain.MonthsPerSeries {
		problems = append(problems, fmt.Sprintf("%s.labels: expected %d entries, got %d", name, domain.MonthsPerSeries, len(series.Labels)))
	}
	for i, label := range series.Labels {
		if trimmed := bytes.TrimSpace(label); len(trimmed) == 0 || trimmed[0] != '"' {
			problems = append(problems, fmt.Sprintf("%s.labels[%d]: not a string", name, i))
		}
	}

	if len(series.Values) != domain.MonthsPerSeries {
		problems = append(problems, fmt.Sprintf("%s.values: expected %d entries, got %d", name, domain.MonthsPerSeries, len(series.Values)))
	}
	for i, value := range series.Values {
		if !isNumber(value) {
			problems = append(problems, fmt.Sprintf("%s.values[%d]: not a number", name, i))
		}
	}

	return problems
}

func checkKPIs(raw json.RawMessage) []string {
	var kpis map[string]json.RawMessage
	if err := codec.Unmarshal(raw, &kpis); err != nil {
		return []string{"kpis: expected an object"}
	}

	var problems []string
	for _, field := range kpiFields {
		value, ok := kpis[field]
		if !ok {
			problems = append(problems, fmt.Sprintf("kpis.%s: missing", field))
			continue
		}
		if !isNumber(value) {
			problems = append(problems, fmt.Sprintf("kpis.%s: not a number", field))
		}
	}

	return problems
}
