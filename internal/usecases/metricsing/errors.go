package metricsing

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Erros do parser
	ErrInvalidJSON           = errors.New("invalid JSON")
	ErrMissingRequiredFields = errors.New("invalid JSON structure - missing required fields")
	ErrInvalidShape          = errors.New("invalid metrics shape")

	// Erros do arquivo histórico
	ErrArchiveDisabled = errors.New("upload archive is disabled")
	ErrUploadNotFound  = errors.New("upload not found")
)

// UploadError é um erro com contexto adicional para o pipeline de upload
type UploadError struct {
	Err      error    // Erro base
	Code     string   // Código de erro para API
	FileName string   // Nome do arquivo envolvido (quando aplicável)
	Problems []string // Problemas de validação encontrados
}

// Error implementa a interface error
func (e *UploadError) Error() string {
	if len(e.Problems) > 0 {
		return fmt.Sprintf("%s: %s", e.Err.Error(), strings.Join(e.Problems, "; "))
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *UploadError) Unwrap() error {
	return e.Err
}

// NewUploadError cria um novo UploadError
func NewUploadError(err error, code string, problems ...string) *UploadError {
	return &UploadError{
		Err:      err,
		Code:     code,
		Problems: problems,
	}
}

// IsValidationError verifica se o erro foi causado pelo conteúdo enviado
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidJSON) ||
		errors.Is(err, ErrMissingRequiredFields) ||
		errors.Is(err, ErrInvalidShape)
}
