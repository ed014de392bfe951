package spreadsheet

import (
	"context"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/confixenvios/freight-quote-api/infrastructure/integrator/spreadsheet/sheetclient"
	"github.com/confixenvios/freight-quote-api/internal/config"
	"github.com/confixenvios/freight-quote-api/internal/domain"
	"github.com/confixenvios/freight-quote-api/pkg/utils"
)

// SheetIntegrator materializa as linhas de uma tabela de preços mantida
// em planilha remota. Fonte sem dados utilizáveis devolve um RowSet
// vazio; erro só acontece em falha real de I/O ou formato corrompido.
type SheetIntegrator interface {
	FetchRows(ctx context.Context, table *domain.PricingTable) (*domain.RowSet, error)
}

type Service struct {
	cfg    *config.Config
	client sheetclient.Client
}

func New(cfg *config.Config, client sheetclient.Client) SheetIntegrator {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

func (s *Service) FetchRows(ctx context.Context, table *domain.PricingTable) (*domain.RowSet, error) {
	workbook, err := s.client.FetchWorkbook(ctx, table.Location)
	if err != nil {
		return nil, err
	}

	rowSet := Classify(workbook.Sheets)

	strategy := "single"
	if rowSet.Joined() {
		strategy = "joined"
	}

	logrus.WithFields(logrus.Fields{
		"table_id": table.ID,
		"sheets":   len(workbook.Sheets),
		"strategy": strategy,
		"rows":     len(rowSet.Rows()),
	}).Debug("Planilha remota normalizada")

	return rowSet, nil
}

// Classify resolve a estrutura de um workbook uma única vez, tentando
// duas estratégias em ordem: (1) uma aba autocontida com faixas de CEP
// e de peso; (2) o join de uma aba de cobertura (CEP -> zona) com uma
// aba de preços (zona + peso -> preço). Sem match, devolve um conjunto
// vazio — dado ausente não é erro.
func Classify(sheets []sheetclient.Sheet) *domain.RowSet {
	// Estratégia 1: aba autocontida
	for _, sheet := range sheets {
		if tiers := ParseSingleSheet(sheet.Rows); len(tiers) > 0 {
			return &domain.RowSet{Single: tiers}
		}
	}

	// Estratégia 2: cobertura + preços por zona, unidas pelo rótulo
	var coverage []*domain.ZoneCoverage
	var prices []*domain.PriceTier

	for _, sheet := range sheets {
		if coverage == nil {
			if rows := ParseCoverageSheet(sheet.Rows); len(rows) > 0 {
				coverage = rows
				continue
			}
		}

		if prices == nil {
			if rows := ParseZonePriceSheet(sheet.Rows); len(rows) > 0 {
				prices = rows
			}
		}
	}

	if len(coverage) > 0 && len(prices) > 0 {
		return &domain.RowSet{Coverage: coverage, Prices: prices}
	}

	return &domain.RowSet{}
}

// ParseSingleSheet lê uma aba autocontida. A normalização é tolerante:
// células numéricas ilegíveis viram zero e seguem no conjunto, para que
// a auditoria estrutural consiga apontá-las ao dono dos dados.
func ParseSingleSheet(rows [][]string) []*domain.PriceTier {
	if len(rows) < 2 {
		return nil
	}

	columns := resolveColumns(rows[0])
	if !hasColumns(columns, FieldPostalStart, FieldPostalEnd, FieldWeightMin, FieldWeightMax, FieldPrice) {
		return nil
	}

	tiers := make([]*domain.PriceTier, 0, len(rows)-1)

	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		tier := &domain.PriceTier{
			PostalStart: utils.NormalizeCEP(cellValue(row, columns, FieldPostalStart)),
			PostalEnd:   utils.NormalizeCEP(cellValue(row, columns, FieldPostalEnd)),
			WeightMin:   parseDecimalOrZero(cellValue(row, columns, FieldWeightMin)),
			WeightMax:   parseDecimalOrZero(cellValue(row, columns, FieldWeightMax)),
			Price:       parseDecimalOrZero(cellValue(row, columns, FieldPrice)),
			ZoneLabel:   cellValue(row, columns, FieldZone),
		}

		tier.ExpressPrice = parseDecimalOrZero(cellValue(row, columns, FieldExpressPrice))
		tier.LeadTimeDays = parseIntOrZero(cellValue(row, columns, FieldLeadTime))

		tiers = append(tiers, tier)
	}

	return tiers
}

// ParseCoverageSheet lê uma aba de cobertura (faixa de CEP -> zona).
// A ausência da coluna de preço distingue cobertura de aba autocontida.
func ParseCoverageSheet(rows [][]string) []*domain.ZoneCoverage {
	if len(rows) < 2 {
		return nil
	}

	columns := resolveColumns(rows[0])
	if !hasColumns(columns, FieldPostalStart, FieldPostalEnd, FieldZone) {
		return nil
	}
	if hasColumns(columns, FieldPrice) {
		return nil
	}

	coverage := make([]*domain.ZoneCoverage, 0, len(rows)-1)

	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		entry := &domain.ZoneCoverage{
			PostalStart: utils.NormalizeCEP(cellValue(row, columns, FieldPostalStart)),
			PostalEnd:   utils.NormalizeCEP(cellValue(row, columns, FieldPostalEnd)),
			ZoneLabel:   cellValue(row, columns, FieldZone),
		}

		if entry.ZoneLabel == "" {
			continue
		}

		coverage = append(coverage, entry)
	}

	return coverage
}

// ParseZonePriceSheet lê uma aba de preços por zona (zona + faixa de
// peso -> preço), sem colunas de CEP.
func ParseZonePriceSheet(rows [][]string) []*domain.PriceTier {
	if len(rows) < 2 {
		return nil
	}

	columns := resolveColumns(rows[0])
	if !hasColumns(columns, FieldZone, FieldWeightMin, FieldWeightMax, FieldPrice) {
		return nil
	}
	if hasColumns(columns, FieldPostalStart) {
		return nil
	}

	tiers := make([]*domain.PriceTier, 0, len(rows)-1)

	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		tier := &domain.PriceTier{
			ZoneLabel: cellValue(row, columns, FieldZone),
			WeightMin: parseDecimalOrZero(cellValue(row, columns, FieldWeightMin)),
			WeightMax: parseDecimalOrZero(cellValue(row, columns, FieldWeightMax)),
			Price:     parseDecimalOrZero(cellValue(row, columns, FieldPrice)),
		}

		tier.ExpressPrice = parseDecimalOrZero(cellValue(row, columns, FieldExpressPrice))
		tier.LeadTimeDays = parseIntOrZero(cellValue(row, columns, FieldLeadTime))

		if tier.ZoneLabel == "" {
			continue
		}

		tiers = append(tiers, tier)
	}

	return tiers
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

func parseDecimalOrZero(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := parseDecimal(value)
	if err != nil {
		return 0
	}

	return parsed
}

func parseIntOrZero(value string) int {
	if value == "" {
		return 0
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		// Planilhas às vezes trazem o prazo como "4.0"
		if f, ferr := parseDecimal(value); ferr == nil {
			return int(f)
		}
		return 0
	}

	return parsed
}
