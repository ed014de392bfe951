package validating

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/confixenvios/freight-quote-api/infrastructure/integrator/spreadsheet"
	"github.com/confixenvios/freight-quote-api/infrastructure/integrator/upload"
	"github.com/confixenvios/freight-quote-api/infrastructure/repository"
	"github.com/confixenvios/freight-quote-api/internal/config"
	"github.com/confixenvios/freight-quote-api/internal/domain"
	"github.com/confixenvios/freight-quote-api/pkg/utils"
)

// Service implementa a interface Validator
type Service struct {
	cfg             *config.Config
	tableRepository repository.PricingTableRepository
	zoneRepository  repository.ZoneRepository
	tierRepository  repository.PriceTierRepository
	sheetIntegrator spreadsheet.SheetIntegrator
	fileIntegrator  upload.FileIntegrator
}

// NewService cria uma nova instância do auditor de tabelas
func NewService(
	cfg *config.Config,
	tableRepo repository.PricingTableRepository,
	zoneRepo repository.ZoneRepository,
	tierRepo repository.PriceTierRepository,
	sheetIntegrator spreadsheet.SheetIntegrator,
	fileIntegrator upload.FileIntegrator,
) Validator {
	return &Service{
		cfg:             cfg,
		tableRepository: tableRepo,
		zoneRepository:  zoneRepo,
		tierRepository:  tierRepo,
		sheetIntegrator: sheetIntegrator,
		fileIntegrator:  fileIntegrator,
	}
}

// Validate audita uma tabela e persiste o veredito no registro.
// O resultado nunca é exceção: toda a lista de defeitos é devolvida
// de uma vez para o dono dos dados corrigir a fonte em uma passada.
func (s *Service) Validate(ctx context.Context, tableID string) (*domain.ValidationResult, error) {
	table, err := s.tableRepository.GetByID(tableID)
	if err != nil {
		return nil, err
	}

	if table == nil {
		return nil, ErrTableNotFound
	}

	rowSet, err := s.fetchRows(ctx, table)
	if err != nil {
		return nil, err
	}

	issues := Audit(rowSet)

	result := &domain.ValidationResult{
		TableID:   table.ID,
		Status:    domain.ValidationValid,
		Issues:    issues,
		CheckedAt: time.Now(),
	}
	if !result.Valid() {
		result.Status = domain.ValidationInvalid
	}

	if err := s.tableRepository.UpdateValidation(table.ID, result.Status, issues); err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"table_id":   table.ID,
		"table_name": table.Name,
		"status":     result.Status,
		"issues":     len(issues),
	}).Info("Auditoria estrutural da tabela concluída")

	return result, nil
}

// ValidateAll audita todas as tabelas ativas. Falha em uma tabela não
// interrompe as demais.
func (s *Service) ValidateAll(ctx context.Context) error {
	tables, err := s.tableRepository.ListActive()
	if err != nil {
		return err
	}

	for _, table := range tables {
		if _, err := s.Validate(ctx, table.ID); err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"table_id":   table.ID,
				"table_name": table.Name,
			}).Error("Erro ao auditar tabela de preços")
		}
	}

	return nil
}

func (s *Service) fetchRows(ctx context.Context, table *domain.PricingTable) (*domain.RowSet, error) {
	switch table.Kind {
	case domain.SourceRemoteSpreadsheet:
		return s.sheetIntegrator.FetchRows(ctx, table)
	case domain.SourceUploadedFile:
		return s.fileIntegrator.FetchRows(ctx, table)
	default:
		return s.builtinRows()
	}
}

// builtinRows projeta a malha relacional na mesma forma tabular das
// planilhas, para que a auditoria use um único conjunto de regras
func (s *Service) builtinRows() (*domain.RowSet, error) {
	zones, err := s.zoneRepository.ListZones()
	if err != nil {
		return nil, err
	}

	tiers, err := s.tierRepository.ListAll()
	if err != nil {
		return nil, err
	}

	rowSet := &domain.RowSet{}

	for _, zone := range zones {
		rowSet.Coverage = append(rowSet.Coverage, &domain.ZoneCoverage{
			PostalStart: zone.PostalStart,
			PostalEnd:   zone.PostalEnd,
			ZoneLabel:   zone.Code,
		})
	}

	rowSet.Prices = tiers

	return rowSet, nil
}

// indexedTier preserva a posição da linha no conjunto normalizado
// (base 1) para que o defeito aponte a linha ofensora
type indexedTier struct {
	row  int
	tier *domain.PriceTier
}

// Audit aplica as regras estruturais sobre um conjunto normalizado:
// forma das colunas e células, consistência das zonas referenciadas e
// contiguidade das faixas de peso entre o piso e o teto do negócio.
func Audit(rowSet *domain.RowSet) []domain.ValidationIssue {
	if rowSet.Empty() {
		return []domain.ValidationIssue{{
			Code:   domain.IssueMissingColumn,
			Detail: "nenhuma aba com as colunas obrigatórias foi encontrada",
		}}
	}

	issues := make([]domain.ValidationIssue, 0)

	issues = append(issues, auditShape(rowSet)...)
	issues = append(issues, auditZones(rowSet)...)

	for zone, group := range groupTiers(rowSet) {
		issues = append(issues, auditWeightRanges(zone, group)...)
	}

	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Zone != issues[j].Zone {
			return issues[i].Zone < issues[j].Zone
		}
		return issues[i].Row < issues[j].Row
	})

	return issues
}

// auditShape valida as células independentes de agrupamento
func auditShape(rowSet *domain.RowSet) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	if rowSet.Joined() {
		for i, coverage := range rowSet.Coverage {
			if !utils.IsValidCEP(coverage.PostalStart) {
				issues = append(issues, badPostal(i+1, "postal_start", coverage.ZoneLabel))
			}
			if !utils.IsValidCEP(coverage.PostalEnd) {
				issues = append(issues, badPostal(i+1, "postal_end", coverage.ZoneLabel))
			}
		}
	}

	for i, row := range rowSet.Rows() {
		if !rowSet.Joined() {
			if !utils.IsValidCEP(row.PostalStart) {
				issues = append(issues, badPostal(i+1, "postal_start", row.ZoneLabel))
			}
			if !utils.IsValidCEP(row.PostalEnd) {
				issues = append(issues, badPostal(i+1, "postal_end", row.ZoneLabel))
			}
		}

		if row.Price <= 0 {
			issues = append(issues, domain.ValidationIssue{
				Code:   domain.IssueBadValue,
				Zone:   row.ZoneLabel,
				Row:    i + 1,
				Field:  "price",
				Detail: "preço ausente ou não positivo",
			})
		}
	}

	return issues
}

func badPostal(row int, field, zone string) domain.ValidationIssue {
	return domain.ValidationIssue{
		Code:   domain.IssueBadPostalCode,
		Zone:   zone,
		Row:    row,
		Field:  field,
		Detail: "CEP fora do formato de 8 dígitos",
	}
}

// auditZones confere, na variante de duas abas, que toda zona
// referenciada na aba de preços existe na cobertura
func auditZones(rowSet *domain.RowSet) []domain.ValidationIssue {
	if !rowSet.Joined() {
		return nil
	}

	known := make(map[string]bool)
	for _, coverage := range rowSet.Coverage {
		known[coverage.ZoneLabel] = true
	}

	var issues []domain.ValidationIssue
	reported := make(map[string]bool)

	for i, row := range rowSet.Prices {
		if known[row.ZoneLabel] || reported[row.ZoneLabel] {
			continue
		}

		reported[row.ZoneLabel] = true
		issues = append(issues, domain.ValidationIssue{
			Code:   domain.IssueMissingZone,
			Zone:   row.ZoneLabel,
			Row:    i + 1,
			Detail: "zona referenciada nos preços não existe na cobertura",
		})
	}

	return issues
}

// groupTiers agrupa as linhas de preço pela zona; na variante
// autocontida sem rótulo, o par de CEPs faz o papel da zona
func groupTiers(rowSet *domain.RowSet) map[string][]*indexedTier {
	groups := make(map[string][]*indexedTier)

	for i, row := range rowSet.Rows() {
		key := row.ZoneLabel
		if key == "" {
			key = row.PostalStart + "-" + row.PostalEnd
		}

		groups[key] = append(groups[key], &indexedTier{row: i + 1, tier: row})
	}

	return groups
}

// auditWeightRanges confere cada grupo de faixas: limites individuais
// coerentes e cobertura contígua do piso ao teto de peso
func auditWeightRanges(zone string, group []*indexedTier) []domain.ValidationIssue {
	var issues []domain.ValidationIssue

	valid := make([]*indexedTier, 0, len(group))

	for _, entry := range group {
		tier := entry.tier
		if tier.WeightMin < 0 || tier.WeightMax <= 0 || tier.WeightMin > tier.WeightMax {
			issues = append(issues, domain.ValidationIssue{
				Code:   domain.IssueInvalidRange,
				Zone:   zone,
				Row:    entry.row,
				FromKg: tier.WeightMin,
				ToKg:   tier.WeightMax,
				Detail: "faixa de peso com limites incoerentes",
			})
			continue
		}

		valid = append(valid, entry)
	}

	if len(valid) == 0 {
		return issues
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].tier.WeightMin < valid[j].tier.WeightMin
	})

	first := valid[0].tier
	if first.WeightMin > domain.MinTierWeightKg+domain.WeightEpsilon {
		issues = append(issues, domain.ValidationIssue{
			Code:   domain.IssueGap,
			Zone:   zone,
			Row:    valid[0].row,
			FromKg: domain.MinTierWeightKg,
			ToKg:   first.WeightMin,
			Detail: "cobertura não começa no piso de peso",
		})
	}

	for i := 1; i < len(valid); i++ {
		prev := valid[i-1].tier
		next := valid[i].tier

		switch {
		case next.WeightMin-prev.WeightMax > domain.WeightEpsilon:
			issues = append(issues, domain.ValidationIssue{
				Code:   domain.IssueGap,
				Zone:   zone,
				Row:    valid[i].row,
				FromKg: prev.WeightMax,
				ToKg:   next.WeightMin,
				Detail: "lacuna entre faixas de peso consecutivas",
			})
		case prev.WeightMax-next.WeightMin > domain.WeightEpsilon:
			issues = append(issues, domain.ValidationIssue{
				Code:   domain.IssueOverlap,
				Zone:   zone,
				Row:    valid[i].row,
				FromKg: next.WeightMin,
				ToKg:   prev.WeightMax,
				Detail: "sobreposição entre faixas de peso consecutivas",
			})
		}
	}

	last := valid[len(valid)-1].tier
	if last.WeightMax < domain.MaxTierWeightKg-domain.WeightEpsilon {
		issues = append(issues, domain.ValidationIssue{
			Code:   domain.IssueGap,
			Zone:   zone,
			Row:    valid[len(valid)-1].row,
			FromKg: last.WeightMax,
			ToKg:   domain.MaxTierWeightKg,
			Detail: "cobertura não alcança o teto de peso",
		})
	}

	return issues
}
