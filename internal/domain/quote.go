package domain

// Fatores de derivação do tier expresso quando a tabela só traz o econômico
const (
	ExpressPriceFactor   = 1.6
	ExpressDaysReduction = 2
)

// QuoteRequest são os parâmetros de uma cotação. CEP, peso e quantidade
// são obrigatórios; dimensões e valor declarado habilitam as regras
// comerciais da tabela (peso cubado, ad valorem)
type QuoteRequest struct {
	PostalCode    string  `json:"postal_code"`
	WeightKg      float64 `json:"weight_kg"`
	Quantity      int     `json:"quantity"`
	LengthCm      float64 `json:"length_cm,omitempty"`
	WidthCm       float64 `json:"width_cm,omitempty"`
	HeightCm      float64 `json:"height_cm,omitempty"`
	DeclaredValue float64 `json:"declared_value,omitempty"`
}

// HasDimensions indica se as três dimensões foram informadas
func (r *QuoteRequest) HasDimensions() bool {
	return r.LengthCm > 0 && r.WidthCm > 0 && r.HeightCm > 0
}

// Quote é o resultado resolvido de uma cotação. Derivado, nunca persistido;
// vive apenas no cache de cotações durante a sessão.
type Quote struct {
	Reference     string  `json:"reference"`
	PostalCode    string  `json:"postal_code"`
	ZoneLabel     string  `json:"zone_label,omitempty"`
	TableID       string  `json:"table_id"`
	TableName     string  `json:"table_name"`
	EconomicPrice float64 `json:"economic_price"`
	ExpressPrice  float64 `json:"express_price"`
	EconomicDays  int     `json:"economic_days"`
	ExpressDays   int     `json:"express_days"`
	// BilledWeightKg é o peso efetivamente cobrado (real ou cubado)
	BilledWeightKg float64 `json:"billed_weight_kg"`
	Quantity       int     `json:"quantity"`
}
