package domain

import "time"

// IssueCode identifica o tipo de defeito estrutural encontrado em uma tabela
type IssueCode string

const (
	// Defeitos de faixa, por agrupamento de zona/CEP
	IssueInvalidRange IssueCode = "INVALID_RANGE"
	IssueGap          IssueCode = "GAP"
	IssueOverlap      IssueCode = "OVERLAP"
	IssueMissingZone  IssueCode = "MISSING_ZONE"

	// Defeitos de forma, independentes de agrupamento
	IssueMissingColumn IssueCode = "MISSING_COLUMN"
	IssueBadPostalCode IssueCode = "BAD_POSTAL_CODE"
	IssueBadValue      IssueCode = "BAD_VALUE"
)

// ValidationIssue é um defeito acionável: carrega linha, campo e valores
// ofensores suficientes para o dono dos dados corrigir a planilha
type ValidationIssue struct {
	Code   IssueCode `json:"code"`
	Zone   string    `json:"zone,omitempty"`
	Row    int       `json:"row,omitempty"` // índice da linha no conjunto normalizado, base 1
	Field  string    `json:"field,omitempty"`
	FromKg float64   `json:"from_kg,omitempty"`
	ToKg   float64   `json:"to_kg,omitempty"`
	Detail string    `json:"detail,omitempty"`
}

// ValidationResult é o veredito de auditoria de uma tabela.
// Não é uma exceção: sempre retorna a lista completa de defeitos.
type ValidationResult struct {
	TableID   string            `json:"table_id"`
	Status    ValidationStatus  `json:"status"`
	Issues    []ValidationIssue `json:"issues"`
	CheckedAt time.Time         `json:"checked_at"`
}

// Valid indica ausência total de defeitos
func (r *ValidationResult) Valid() bool {
	return len(r.Issues) == 0
}
