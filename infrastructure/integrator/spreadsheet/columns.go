package spreadsheet

import (
	"strconv"
	"strings"
)

// Campos canônicos de uma linha tabular de preços
const (
	FieldPostalStart  = "postal_start"
	FieldPostalEnd    = "postal_end"
	FieldWeightMin    = "weight_min"
	FieldWeightMax    = "weight_max"
	FieldPrice        = "price"
	FieldExpressPrice = "express_price"
	FieldLeadTime     = "lead_time_days"
	FieldZone         = "zone"
)

// headerAliases mapeia cabeçalhos aceitos (já minúsculos) para o campo
// canônico. As planilhas da operação alternam entre a convenção
// MAIÚSCULA_COM_UNDERSCORE e a minúscula; o lookup é feito após
// normalizar o cabeçalho, então as duas convenções caem aqui.
var headerAliases = map[string]string{
	"cep_inicio":     FieldPostalStart,
	"cep_inicial":    FieldPostalStart,
	"cep_fim":        FieldPostalEnd,
	"cep_final":      FieldPostalEnd,
	"peso_min":       FieldWeightMin,
	"peso_inicial":   FieldWeightMin,
	"peso_de":        FieldWeightMin,
	"peso_max":       FieldWeightMax,
	"peso_final":     FieldWeightMax,
	"peso_ate":       FieldWeightMax,
	"preco":          FieldPrice,
	"valor":          FieldPrice,
	"preco_expresso": FieldExpressPrice,
	"valor_expresso": FieldExpressPrice,
	"prazo":          FieldLeadTime,
	"prazo_dias":     FieldLeadTime,
	"zona":           FieldZone,
	"regiao":         FieldZone,
}

// normalizeHeader limpa um cabeçalho de coluna para o lookup na tabela
// de aliases: minúsculas, sem espaços nas pontas, espaços internos
// viram underscore e acentos comuns são reduzidos
func normalizeHeader(header string) string {
	h := strings.ToLower(strings.TrimSpace(header))
	h = strings.ReplaceAll(h, " ", "_")

	replacer := strings.NewReplacer(
		"ç", "c",
		"ã", "a",
		"á", "a",
		"é", "e",
		"ê", "e",
		"í", "i",
		"ó", "o",
		"õ", "o",
	)

	return replacer.Replace(h)
}

// resolveColumns resolve a linha de cabeçalho uma única vez, devolvendo
// o índice de cada campo canônico encontrado
func resolveColumns(header []string) map[string]int {
	columns := make(map[string]int)

	for idx, raw := range header {
		field, ok := headerAliases[normalizeHeader(raw)]
		if !ok {
			continue
		}

		// A primeira ocorrência vence; colunas duplicadas são ignoradas
		if _, exists := columns[field]; !exists {
			columns[field] = idx
		}
	}

	return columns
}

func hasColumns(columns map[string]int, fields ...string) bool {
	for _, field := range fields {
		if _, ok := columns[field]; !ok {
			return false
		}
	}
	return true
}

// cellValue retorna a célula do campo, ou vazio se a linha é curta
func cellValue(row []string, columns map[string]int, field string) string {
	idx, ok := columns[field]
	if !ok || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// parseDecimal aceita tanto ponto quanto vírgula como separador decimal
// ("12,50" e "12.50" são equivalentes nas planilhas da operação)
func parseDecimal(value string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	return strconv.ParseFloat(cleaned, 64)
}
