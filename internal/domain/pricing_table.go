package domain

import "time"

// SourceKind identifica o tipo físico de uma fonte de preços
type SourceKind string

const (
	SourceRemoteSpreadsheet SourceKind = "remote_spreadsheet"
	SourceUploadedFile      SourceKind = "uploaded_file"
	SourceBuiltin           SourceKind = "builtin"
)

// ValidationStatus é o estado de validação estrutural de uma tabela
type ValidationStatus string

const (
	ValidationPending ValidationStatus = "pending"
	ValidationValid   ValidationStatus = "valid"
	ValidationInvalid ValidationStatus = "invalid"
)

// CommercialRules são regras comerciais opcionais por tabela,
// aplicadas após o match da faixa de peso
type CommercialRules struct {
	// Divisor do peso cubado (ex.: 6000). Peso cobrado = max(real, cubado)
	VolumetricDivisor *float64 `json:"volumetric_divisor,omitempty"`
	// Dimensão máxima por eixo, em centímetros
	MaxDimensionCm *float64 `json:"max_dimension_cm,omitempty"`
	// Excedente de peso: acima do limiar, cobra-se a taxa por kg adicional
	SurchargeThresholdKg *float64 `json:"surcharge_threshold_kg,omitempty"`
	SurchargeRatePerKg   *float64 `json:"surcharge_rate_per_kg,omitempty"`
	// Ad valorem: percentual sobre o valor declarado da mercadoria
	InsurancePercent *float64 `json:"insurance_percent,omitempty"`
}

// PricingTable é uma fonte de preços cadastrada no registro.
// Tabelas são desativadas, nunca removidas, quando substituídas.
type PricingTable struct {
	ID               string           `json:"id"`
	Name             string           `json:"name"`
	Kind             SourceKind       `json:"kind"`
	Location         string           `json:"location"` // URL ou chave de storage
	Active           bool             `json:"active"`
	ValidationStatus ValidationStatus `json:"validation_status"`
	LastValidatedAt  *time.Time       `json:"last_validated_at,omitempty"`
	// Position é a ordem de cadastro, usada como desempate determinístico
	Position int              `json:"position"`
	Rules    *CommercialRules `json:"rules,omitempty"`
}
