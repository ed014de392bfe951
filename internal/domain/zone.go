package domain

// ZoneType classifica uma zona de atendimento
type ZoneType string

const (
	ZoneTypeCapital  ZoneType = "capital"
	ZoneTypeInterior ZoneType = "interior"
)

// Zone representa uma zona tarifária do diretório interno.
// As faixas de CEP entre zonas não se sobrepõem; todo prefixo
// atendido resolve para exatamente uma zona.
type Zone struct {
	Code         string   `json:"code"`
	Name         string   `json:"name"`
	State        string   `json:"state"`
	Type         ZoneType `json:"type"`
	PostalStart  string   `json:"postal_start"`
	PostalEnd    string   `json:"postal_end"`
	EconomicDays int      `json:"economic_days"`
	ExpressDays  int      `json:"express_days"`
}

// Contains verifica se um CEP normalizado (8 dígitos) pertence à faixa da zona.
// A comparação lexicográfica é equivalente à numérica para strings zero-padded.
func (z *Zone) Contains(postalCode string) bool {
	return postalCode >= z.PostalStart && postalCode <= z.PostalEnd
}
