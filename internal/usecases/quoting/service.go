package quoting

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/confixenvios/freight-quote-api/infrastructure/integrator/spreadsheet"
	"github.com/confixenvios/freight-quote-api/infrastructure/integrator/upload"
	"github.com/confixenvios/freight-quote-api/infrastructure/repository"
	"github.com/confixenvios/freight-quote-api/internal/config"
	"github.com/confixenvios/freight-quote-api/internal/domain"
	"github.com/confixenvios/freight-quote-api/pkg/utils"
)

// Service implementa a interface Quoter
type Service struct {
	cfg             *config.Config
	tableRepository repository.PricingTableRepository
	zoneRepository  repository.ZoneRepository
	tierRepository  repository.PriceTierRepository
	sheetIntegrator spreadsheet.SheetIntegrator
	fileIntegrator  upload.FileIntegrator
	cache           *QuoteCache
}

// NewService cria uma nova instância do motor de cotação
func NewService(
	cfg *config.Config,
	tableRepo repository.PricingTableRepository,
	zoneRepo repository.ZoneRepository,
	tierRepo repository.PriceTierRepository,
	sheetIntegrator spreadsheet.SheetIntegrator,
	fileIntegrator upload.FileIntegrator,
) Quoter {
	return &Service{
		cfg:             cfg,
		tableRepository: tableRepo,
		zoneRepository:  zoneRepo,
		tierRepository:  tierRepo,
		sheetIntegrator: sheetIntegrator,
		fileIntegrator:  fileIntegrator,
		cache:           NewQuoteCache(cfg),
	}
}

// candidate é o resultado de uma fonte antes da redução ao melhor preço
type candidate struct {
	table          *domain.PricingTable
	zoneLabel      string
	economicPrice  float64
	expressPrice   float64 // 0 = derivar do econômico
	economicDays   int
	billedWeightKg float64
}

// nearMiss registra uma fonte que cobre o CEP mas não o peso pedido
type nearMiss struct {
	zoneLabel string
	ranges    []domain.WeightRange
}

// Quote resolve uma cotação consultando todas as fontes ativas em
// paralelo, cada uma sob seu próprio timeout, e reduz os candidatos ao
// de menor preço. Fonte lenta ou quebrada é absorvida: a cotação segue
// com as que responderam.
func (s *Service) Quote(ctx context.Context, req *domain.QuoteRequest) (*domain.Quote, error) {
	if err := s.validateRequest(req); err != nil {
		return nil, err
	}

	postalCode := utils.NormalizeCEP(req.PostalCode)

	cacheKey := s.cache.Key(postalCode, req.WeightKg, req.Quantity)
	if cached, found := s.cache.Get(cacheKey); found {
		logrus.WithFields(logrus.Fields{
			"postal_code": postalCode,
			"weight_kg":   req.WeightKg,
		}).Debug("Cotação resolvida pelo cache")
		return cached, nil
	}

	tables, err := s.tableRepository.ListActive()
	if err != nil {
		return nil, err
	}

	candidates, misses := s.fanOut(ctx, tables, req, postalCode)

	best := reduce(candidates)
	if best == nil {
		// Última linha de defesa: a malha relacional builtin, mesmo
		// sem uma tabela builtin cadastrada no registro
		var miss *nearMiss
		best, miss, err = s.resolveBuiltinFallback(req, postalCode)
		if err != nil {
			return nil, err
		}
		if miss != nil {
			misses = append(misses, miss)
		}
	}

	if best == nil {
		return nil, s.noCoverageError(postalCode, misses)
	}

	quote, err := s.buildQuote(req, postalCode, best)
	if err != nil {
		return nil, err
	}

	s.cache.Put(cacheKey, quote)

	return quote, nil
}

// FlushCache descarta as cotações em cache
func (s *Service) FlushCache() {
	s.cache.Flush()
}

func (s *Service) validateRequest(req *domain.QuoteRequest) error {
	if req.Quantity <= 0 {
		req.Quantity = 1
	}

	if req.WeightKg <= 0 {
		return ErrInvalidWeight
	}

	if req.WeightKg > domain.MaxTierWeightKg {
		return ErrWeightExceeded
	}

	if !utils.IsValidCEP(utils.NormalizeCEP(req.PostalCode)) {
		return ErrInvalidDestination
	}

	return nil
}

// fanOut consulta cada tabela validada em sua própria goroutine. Erros
// e timeouts por fonte viram warning no log, nunca erro da cotação.
func (s *Service) fanOut(ctx context.Context, tables []*domain.PricingTable, req *domain.QuoteRequest, postalCode string) ([]*candidate, []*nearMiss) {
	sourceTimeout := time.Duration(s.cfg.Quoting.SourceTimeoutSeconds) * time.Second

	var (
		wg         sync.WaitGroup
		mutex      sync.Mutex
		candidates []*candidate
		misses     []*nearMiss
	)

	for _, table := range tables {
		// A malha builtin é a rede de segurança da cotação e não fica
		// atrás do portão de auditoria
		if table.ValidationStatus != domain.ValidationValid && table.Kind != domain.SourceBuiltin {
			continue
		}

		wg.Add(1)

		go func(table *domain.PricingTable) {
			defer wg.Done()

			sourceCtx, cancel := context.WithTimeout(ctx, sourceTimeout)
			defer cancel()

			result, miss, err := s.resolveSource(sourceCtx, table, req, postalCode)
			if err != nil {
				logrus.WithError(err).WithFields(logrus.Fields{
					"table_id":   table.ID,
					"table_name": table.Name,
					"kind":       table.Kind,
				}).Warn("Fonte de preços falhou durante a cotação")
				return
			}

			mutex.Lock()
			defer mutex.Unlock()

			if result != nil {
				candidates = append(candidates, result)
			}
			if miss != nil {
				misses = append(misses, miss)
			}
		}(table)
	}

	wg.Wait()

	return candidates, misses
}

// resolveSource resolve uma cotação em uma única fonte. Devolve o
// candidato, ou um near-miss quando a fonte cobre o CEP mas não o peso.
func (s *Service) resolveSource(ctx context.Context, table *domain.PricingTable, req *domain.QuoteRequest, postalCode string) (*candidate, *nearMiss, error) {
	if table.Kind == domain.SourceBuiltin {
		return s.resolveBuiltin(table, req, postalCode)
	}

	billedWeight, ok := s.billedWeight(req, table)
	if !ok {
		// Dimensões acima do limite desta transportadora; a fonte
		// simplesmente não concorre
		return nil, nil, nil
	}

	var rowSet *domain.RowSet
	var err error

	switch table.Kind {
	case domain.SourceRemoteSpreadsheet:
		rowSet, err = s.sheetIntegrator.FetchRows(ctx, table)
	case domain.SourceUploadedFile:
		rowSet, err = s.fileIntegrator.FetchRows(ctx, table)
	default:
		return nil, nil, nil
	}

	if err != nil {
		return nil, nil, err
	}

	tier, zoneLabel, err := Lookup(rowSet, postalCode, billedWeight, s.cfg.Quoting.StrictTierMatch)
	if err != nil {
		return nil, nil, err
	}

	if tier == nil {
		if zoneLabel != "" {
			return nil, &nearMiss{zoneLabel: zoneLabel, ranges: AvailableRanges(rowSet, postalCode)}, nil
		}
		return nil, nil, nil
	}

	return s.priceCandidate(req, table, tier, zoneLabel, billedWeight), nil, nil
}

// resolveBuiltin resolve na malha relacional: CEP -> zona -> faixa
func (s *Service) resolveBuiltin(table *domain.PricingTable, req *domain.QuoteRequest, postalCode string) (*candidate, *nearMiss, error) {
	billedWeight, ok := s.billedWeight(req, table)
	if !ok {
		return nil, nil, nil
	}

	zone, err := s.zoneRepository.FindByPostalCode(postalCode)
	if err != nil {
		return nil, nil, err
	}

	if zone == nil {
		return nil, nil, nil
	}

	tier, err := s.tierRepository.FindTier(zone.Code, billedWeight)
	if err != nil {
		return nil, nil, err
	}

	if tier == nil {
		tiers, err := s.tierRepository.ListByZone(zone.Code)
		if err != nil {
			return nil, nil, err
		}

		miss := &nearMiss{zoneLabel: zone.Name}
		for _, t := range tiers {
			miss.ranges = append(miss.ranges, domain.WeightRange{MinKg: t.WeightMin, MaxKg: t.WeightMax})
		}

		return nil, miss, nil
	}

	if tier.LeadTimeDays == 0 {
		tier.LeadTimeDays = zone.EconomicDays
	}

	result := s.priceCandidate(req, table, tier, zone.Name, billedWeight)

	return result, nil, nil
}

// resolveBuiltinFallback cobre instalações sem tabela builtin cadastrada
func (s *Service) resolveBuiltinFallback(req *domain.QuoteRequest, postalCode string) (*candidate, *nearMiss, error) {
	fallback := &domain.PricingTable{
		ID:   "builtin",
		Name: "Tabela padrão",
		Kind: domain.SourceBuiltin,
		// Depois de todas as fontes cadastradas
		Position: int(^uint(0) >> 1),
	}

	return s.resolveBuiltin(fallback, req, postalCode)
}

// billedWeight aplica o peso cubado da tabela, quando configurado.
// Devolve ok=false quando as dimensões excedem o limite da tabela.
func (s *Service) billedWeight(req *domain.QuoteRequest, table *domain.PricingTable) (float64, bool) {
	weight := req.WeightKg

	rules := table.Rules
	if rules == nil || !req.HasDimensions() {
		return weight, true
	}

	if rules.MaxDimensionCm != nil {
		limit := *rules.MaxDimensionCm
		if req.LengthCm > limit || req.WidthCm > limit || req.HeightCm > limit {
			return 0, false
		}
	}

	if rules.VolumetricDivisor != nil && *rules.VolumetricDivisor > 0 {
		cubed := req.LengthCm * req.WidthCm * req.HeightCm / *rules.VolumetricDivisor
		if cubed > weight {
			weight = cubed
		}
	}

	return weight, true
}

// priceCandidate aplica as regras comerciais da tabela e o multiplicador
// de quantidade sobre o preço da faixa
func (s *Service) priceCandidate(req *domain.QuoteRequest, table *domain.PricingTable, tier *domain.PriceTier, zoneLabel string, billedWeight float64) *candidate {
	economic := tier.Price
	express := tier.ExpressPrice

	if rules := table.Rules; rules != nil {
		if rules.SurchargeThresholdKg != nil && rules.SurchargeRatePerKg != nil && billedWeight > *rules.SurchargeThresholdKg {
			surcharge := (billedWeight - *rules.SurchargeThresholdKg) * *rules.SurchargeRatePerKg
			economic += surcharge
			if express > 0 {
				express += surcharge
			}
		}

		if rules.InsurancePercent != nil && req.DeclaredValue > 0 {
			insurance := req.DeclaredValue * *rules.InsurancePercent / 100
			economic += insurance
			if express > 0 {
				express += insurance
			}
		}
	}

	economic *= float64(req.Quantity)
	if express > 0 {
		express *= float64(req.Quantity)
	}

	return &candidate{
		table:          table,
		zoneLabel:      zoneLabel,
		economicPrice:  economic,
		expressPrice:   express,
		economicDays:   tier.LeadTimeDays,
		billedWeightKg: billedWeight,
	}
}

// reduce escolhe o melhor candidato: menor preço econômico; empate
// resolve pelo menor prazo e, persistindo, pela ordem de cadastro
func reduce(candidates []*candidate) *candidate {
	var best *candidate

	for _, c := range candidates {
		if best == nil {
			best = c
			continue
		}

		switch {
		case c.economicPrice < best.economicPrice:
			best = c
		case c.economicPrice == best.economicPrice && c.economicDays < best.economicDays:
			best = c
		case c.economicPrice == best.economicPrice && c.economicDays == best.economicDays &&
			c.table.Position < best.table.Position:
			best = c
		}
	}

	return best
}

// buildQuote monta a cotação final, derivando o tier expresso quando a
// tabela só publica o econômico
func (s *Service) buildQuote(req *domain.QuoteRequest, postalCode string, best *candidate) (*domain.Quote, error) {
	reference, err := utils.GenerateID()
	if err != nil {
		return nil, ErrGenerateReference
	}

	economic := utils.RoundWithTwoDecimalPlace(best.economicPrice)

	express := best.expressPrice
	if express == 0 {
		express = economic * domain.ExpressPriceFactor
	}
	express = utils.RoundWithTwoDecimalPlace(express)

	expressDays := best.economicDays - domain.ExpressDaysReduction
	if expressDays < 1 {
		expressDays = 1
	}

	return &domain.Quote{
		Reference:      reference,
		PostalCode:     postalCode,
		ZoneLabel:      best.zoneLabel,
		TableID:        best.table.ID,
		TableName:      best.table.Name,
		EconomicPrice:  economic,
		ExpressPrice:   express,
		EconomicDays:   best.economicDays,
		ExpressDays:    expressDays,
		BilledWeightKg: best.billedWeightKg,
		Quantity:       req.Quantity,
	}, nil
}

// noCoverageError monta o diagnóstico de sem-cobertura usando o melhor
// near-miss disponível (o que identificou uma zona)
func (s *Service) noCoverageError(postalCode string, misses []*nearMiss) error {
	err := &NoCoverageError{PostalCode: postalCode}

	for _, miss := range misses {
		if miss.zoneLabel != "" {
			err.ZoneLabel = miss.zoneLabel
			err.AvailableRanges = miss.ranges
			break
		}
	}

	return err
}
