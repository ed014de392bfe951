package quoting

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	sheetmocks "github.com/confixenvios/freight-quote-api/infrastructure/integrator/spreadsheet/mocks"
	uploadmocks "github.com/confixenvios/freight-quote-api/infrastructure/integrator/upload/mocks"
	"github.com/confixenvios/freight-quote-api/infrastructure/repository/mocks"
	"github.com/confixenvios/freight-quote-api/internal/config"
	"github.com/confixenvios/freight-quote-api/internal/domain"
)

func testConfig() *config.Config {
	return &config.Config{
		Quoting: config.Quoting{
			SourceTimeoutSeconds: 2,
			CacheTTLMinutes:      5,
			StrictTierMatch:      false,
		},
	}
}

func newTestService(t *testing.T) (*Service, *mocks.MockPricingTableRepository, *mocks.MockZoneRepository, *mocks.MockPriceTierRepository, *sheetmocks.MockSheetIntegrator) {
	t.Helper()

	ctrl := gomock.NewController(t)

	tableRepo := mocks.NewMockPricingTableRepository(ctrl)
	zoneRepo := mocks.NewMockZoneRepository(ctrl)
	tierRepo := mocks.NewMockPriceTierRepository(ctrl)
	sheetIntegrator := sheetmocks.NewMockSheetIntegrator(ctrl)
	fileIntegrator := uploadmocks.NewMockFileIntegrator(ctrl)

	service := NewService(testConfig(), tableRepo, zoneRepo, tierRepo, sheetIntegrator, fileIntegrator).(*Service)

	return service, tableRepo, zoneRepo, tierRepo, sheetIntegrator
}

func builtinTable() *domain.PricingTable {
	return &domain.PricingTable{
		ID:               "Tb1a2c",
		Name:             "Tabela padrão",
		Kind:             domain.SourceBuiltin,
		Active:           true,
		ValidationStatus: domain.ValidationValid,
		Position:         3,
	}
}

func TestService_Quote_BuiltinSource(t *testing.T) {
	service, tableRepo, zoneRepo, tierRepo, _ := newTestService(t)

	tableRepo.EXPECT().ListActive().Return([]*domain.PricingTable{builtinTable()}, nil)

	zoneRepo.EXPECT().FindByPostalCode("74000000").Return(&domain.Zone{
		Code:         "GOC",
		Name:         "Goiânia",
		State:        "GO",
		Type:         domain.ZoneTypeCapital,
		PostalStart:  "74000000",
		PostalEnd:    "74999999",
		EconomicDays: 4,
		ExpressDays:  2,
	}, nil)

	tierRepo.EXPECT().FindTier("GOC", 2.0).Return(&domain.PriceTier{
		ZoneLabel:    "GOC",
		WeightMin:    1.0,
		WeightMax:    5.0,
		Price:        18.50,
		LeadTimeDays: 4,
	}, nil)

	quote, err := service.Quote(context.Background(), &domain.QuoteRequest{
		PostalCode: "74000-000",
		WeightKg:   2,
		Quantity:   2,
	})

	assert.NoError(t, err)
	assert.NotNil(t, quote)
	assert.Equal(t, "74000000", quote.PostalCode)
	assert.Equal(t, 37.00, quote.EconomicPrice)
	assert.Equal(t, 59.20, quote.ExpressPrice)
	assert.Equal(t, 4, quote.EconomicDays)
	assert.Equal(t, 2, quote.ExpressDays)
	assert.Equal(t, "Goiânia", quote.ZoneLabel)
	assert.Equal(t, 2, quote.Quantity)
	assert.NotEmpty(t, quote.Reference)
}

func TestService_Quote_BuiltinIgnoresValidationGate(t *testing.T) {
	service, tableRepo, zoneRepo, tierRepo, _ := newTestService(t)

	// Mesmo reprovada na auditoria, a malha builtin segue cotando: ela é
	// a rede de segurança quando nenhuma outra fonte responde
	builtin := builtinTable()
	builtin.ValidationStatus = domain.ValidationInvalid

	tableRepo.EXPECT().ListActive().Return([]*domain.PricingTable{builtin}, nil)
	zoneRepo.EXPECT().FindByPostalCode("74000000").Return(&domain.Zone{
		Code: "GOC", Name: "Goiânia", PostalStart: "74000000", PostalEnd: "74999999", EconomicDays: 4,
	}, nil)
	tierRepo.EXPECT().FindTier("GOC", 2.0).Return(&domain.PriceTier{
		ZoneLabel: "GOC", WeightMin: 1.0, WeightMax: 5.0, Price: 18.50, LeadTimeDays: 4,
	}, nil)

	quote, err := service.Quote(context.Background(), &domain.QuoteRequest{
		PostalCode: "74000000",
		WeightKg:   2,
		Quantity:   1,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Tb1a2c", quote.TableID)
	assert.Equal(t, 18.50, quote.EconomicPrice)
}

func TestService_Quote_RequestValidation(t *testing.T) {
	tests := []struct {
		name        string
		request     *domain.QuoteRequest
		expectedErr error
	}{
		{
			name:        "Peso acima do teto de 30 kg",
			request:     &domain.QuoteRequest{PostalCode: "74000000", WeightKg: 30.5, Quantity: 1},
			expectedErr: ErrWeightExceeded,
		},
		{
			name:        "Peso não positivo",
			request:     &domain.QuoteRequest{PostalCode: "74000000", WeightKg: 0, Quantity: 1},
			expectedErr: ErrInvalidWeight,
		},
		{
			name:        "CEP com menos de 8 dígitos úteis",
			request:     &domain.QuoteRequest{PostalCode: "abc", WeightKg: 2, Quantity: 1},
			expectedErr: ErrInvalidDestination,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _, _, _ := newTestService(t)

			quote, err := service.Quote(context.Background(), tt.request)

			assert.Nil(t, quote)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestService_Quote_CacheHit(t *testing.T) {
	service, tableRepo, zoneRepo, tierRepo, _ := newTestService(t)

	// As fontes devem ser consultadas exatamente uma vez; a segunda
	// cotação idêntica resolve pelo cache
	tableRepo.EXPECT().ListActive().Return([]*domain.PricingTable{builtinTable()}, nil).Times(1)
	zoneRepo.EXPECT().FindByPostalCode("74000000").Return(&domain.Zone{
		Code: "GOC", Name: "Goiânia", PostalStart: "74000000", PostalEnd: "74999999", EconomicDays: 4,
	}, nil).Times(1)
	tierRepo.EXPECT().FindTier("GOC", 2.0).Return(&domain.PriceTier{
		ZoneLabel: "GOC", WeightMin: 1.0, WeightMax: 5.0, Price: 18.50, LeadTimeDays: 4,
	}, nil).Times(1)

	req := &domain.QuoteRequest{PostalCode: "74000000", WeightKg: 2, Quantity: 2}

	first, err := service.Quote(context.Background(), req)
	assert.NoError(t, err)

	second, err := service.Quote(context.Background(), req)
	assert.NoError(t, err)

	assert.Equal(t, first.Reference, second.Reference)
	assert.Equal(t, first.EconomicPrice, second.EconomicPrice)
}

func TestService_Quote_FlushCacheForcesRequote(t *testing.T) {
	service, tableRepo, zoneRepo, tierRepo, _ := newTestService(t)

	tableRepo.EXPECT().ListActive().Return([]*domain.PricingTable{builtinTable()}, nil).Times(2)
	zoneRepo.EXPECT().FindByPostalCode("74000000").Return(&domain.Zone{
		Code: "GOC", Name: "Goiânia", PostalStart: "74000000", PostalEnd: "74999999", EconomicDays: 4,
	}, nil).Times(2)
	tierRepo.EXPECT().FindTier("GOC", 2.0).Return(&domain.PriceTier{
		ZoneLabel: "GOC", WeightMin: 1.0, WeightMax: 5.0, Price: 18.50, LeadTimeDays: 4,
	}, nil).Times(2)

	req := &domain.QuoteRequest{PostalCode: "74000000", WeightKg: 2, Quantity: 1}

	_, err := service.Quote(context.Background(), req)
	assert.NoError(t, err)

	service.FlushCache()

	_, err = service.Quote(context.Background(), req)
	assert.NoError(t, err)
}

func spreadsheetTable(id string, position int) *domain.PricingTable {
	return &domain.PricingTable{
		ID:               id,
		Name:             "Transportadora " + id,
		Kind:             domain.SourceRemoteSpreadsheet,
		Location:         "https://planilhas.example.com.br/" + id + ".xlsx",
		Active:           true,
		ValidationStatus: domain.ValidationValid,
		Position:         position,
	}
}

func singleRowSet(price float64, leadDays int) *domain.RowSet {
	return &domain.RowSet{
		Single: []*domain.PriceTier{
			{
				PostalStart:  "01000000",
				PostalEnd:    "05999999",
				WeightMin:    0.1,
				WeightMax:    30.0,
				Price:        price,
				LeadTimeDays: leadDays,
				ZoneLabel:    "SP Capital",
			},
		},
	}
}

func TestService_Quote_PicksLowestPrice(t *testing.T) {
	service, tableRepo, _, _, sheetIntegrator := newTestService(t)

	tableA := spreadsheetTable("TbAAAA", 1)
	tableB := spreadsheetTable("TbBBBB", 2)

	tableRepo.EXPECT().ListActive().Return([]*domain.PricingTable{tableA, tableB}, nil)
	sheetIntegrator.EXPECT().FetchRows(gomock.Any(), tableA).Return(singleRowSet(25.90, 3), nil)
	sheetIntegrator.EXPECT().FetchRows(gomock.Any(), tableB).Return(singleRowSet(21.40, 5), nil)

	quote, err := service.Quote(context.Background(), &domain.QuoteRequest{
		PostalCode: "01310100",
		WeightKg:   3,
		Quantity:   1,
	})

	assert.NoError(t, err)
	assert.Equal(t, "TbBBBB", quote.TableID)
	assert.Equal(t, 21.40, quote.EconomicPrice)
}

func TestService_Quote_TieBreaks(t *testing.T) {
	tests := []struct {
		name       string
		rowSetA    *domain.RowSet
		rowSetB    *domain.RowSet
		expectedID string
	}{
		{
			name:       "Empate de preço resolve pelo menor prazo",
			rowSetA:    singleRowSet(21.40, 6),
			rowSetB:    singleRowSet(21.40, 3),
			expectedID: "TbBBBB",
		},
		{
			name:       "Empate total resolve pela ordem de cadastro",
			rowSetA:    singleRowSet(21.40, 4),
			rowSetB:    singleRowSet(21.40, 4),
			expectedID: "TbAAAA",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, tableRepo, _, _, sheetIntegrator := newTestService(t)

			tableA := spreadsheetTable("TbAAAA", 1)
			tableB := spreadsheetTable("TbBBBB", 2)

			tableRepo.EXPECT().ListActive().Return([]*domain.PricingTable{tableA, tableB}, nil)
			sheetIntegrator.EXPECT().FetchRows(gomock.Any(), tableA).Return(tt.rowSetA, nil)
			sheetIntegrator.EXPECT().FetchRows(gomock.Any(), tableB).Return(tt.rowSetB, nil)

			quote, err := service.Quote(context.Background(), &domain.QuoteRequest{
				PostalCode: "01310100",
				WeightKg:   3,
				Quantity:   1,
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedID, quote.TableID)
		})
	}
}

func TestService_Quote_SourceFailureIsAbsorbed(t *testing.T) {
	service, tableRepo, _, _, sheetIntegrator := newTestService(t)

	tableA := spreadsheetTable("TbAAAA", 1)
	tableB := spreadsheetTable("TbBBBB", 2)

	tableRepo.EXPECT().ListActive().Return([]*domain.PricingTable{tableA, tableB}, nil)
	sheetIntegrator.EXPECT().FetchRows(gomock.Any(), tableA).Return(nil, errors.New("planilha indisponível"))
	sheetIntegrator.EXPECT().FetchRows(gomock.Any(), tableB).Return(singleRowSet(21.40, 5), nil)

	quote, err := service.Quote(context.Background(), &domain.QuoteRequest{
		PostalCode: "01310100",
		WeightKg:   3,
		Quantity:   1,
	})

	assert.NoError(t, err)
	assert.Equal(t, "TbBBBB", quote.TableID)
}

func TestService_Quote_SkipsInvalidTables(t *testing.T) {
	service, tableRepo, zoneRepo, _, _ := newTestService(t)

	invalid := spreadsheetTable("TbBAD1", 1)
	invalid.ValidationStatus = domain.ValidationInvalid

	tableRepo.EXPECT().ListActive().Return([]*domain.PricingTable{invalid}, nil)

	// Sem candidatos, o motor cai na malha builtin
	zoneRepo.EXPECT().FindByPostalCode("01310100").Return(nil, nil)

	quote, err := service.Quote(context.Background(), &domain.QuoteRequest{
		PostalCode: "01310100",
		WeightKg:   3,
		Quantity:   1,
	})

	assert.Nil(t, quote)
	assert.True(t, IsNoCoverage(err))
}

func TestService_Quote_NoCoverageDiagnostics(t *testing.T) {
	service, tableRepo, zoneRepo, tierRepo, sheetIntegrator := newTestService(t)

	table := spreadsheetTable("TbAAAA", 1)

	// A fonte cobre o CEP mas só até 10 kg
	rowSet := &domain.RowSet{
		Single: []*domain.PriceTier{
			{PostalStart: "01000000", PostalEnd: "05999999", WeightMin: 0.1, WeightMax: 10.0, Price: 19.90, LeadTimeDays: 3, ZoneLabel: "SP Capital"},
		},
	}

	tableRepo.EXPECT().ListActive().Return([]*domain.PricingTable{table}, nil)
	sheetIntegrator.EXPECT().FetchRows(gomock.Any(), table).Return(rowSet, nil)
	zoneRepo.EXPECT().FindByPostalCode("01310100").Return(&domain.Zone{Code: "SPC", Name: "São Paulo Capital"}, nil)
	tierRepo.EXPECT().FindTier("SPC", 15.0).Return(nil, nil)
	tierRepo.EXPECT().ListByZone("SPC").Return(nil, nil)

	quote, err := service.Quote(context.Background(), &domain.QuoteRequest{
		PostalCode: "01310100",
		WeightKg:   15,
		Quantity:   1,
	})

	assert.Nil(t, quote)

	var noCoverage *NoCoverageError
	assert.ErrorAs(t, err, &noCoverage)
	assert.Equal(t, "SP Capital", noCoverage.ZoneLabel)
	assert.Equal(t, []domain.WeightRange{{MinKg: 0.1, MaxKg: 10.0}}, noCoverage.AvailableRanges)
}

func TestService_Quote_CommercialRules(t *testing.T) {
	volumetricDivisor := 6000.0
	surchargeThreshold := 2.0
	surchargeRate := 1.50
	insurancePercent := 1.0

	service, tableRepo, _, _, sheetIntegrator := newTestService(t)

	table := spreadsheetTable("TbAAAA", 1)
	table.Rules = &domain.CommercialRules{
		VolumetricDivisor:    &volumetricDivisor,
		SurchargeThresholdKg: &surchargeThreshold,
		SurchargeRatePerKg:   &surchargeRate,
		InsurancePercent:     &insurancePercent,
	}

	tableRepo.EXPECT().ListActive().Return([]*domain.PricingTable{table}, nil)
	sheetIntegrator.EXPECT().FetchRows(gomock.Any(), table).Return(singleRowSet(20.00, 3), nil)

	// Peso cubado: 30x40x50/6000 = 10 kg > 1 kg real
	// Excedente: (10 - 2) * 1,50 = 12,00 | Ad valorem: 200 * 1% = 2,00
	quote, err := service.Quote(context.Background(), &domain.QuoteRequest{
		PostalCode:    "01310100",
		WeightKg:      1,
		Quantity:      1,
		LengthCm:      30,
		WidthCm:       40,
		HeightCm:      50,
		DeclaredValue: 200,
	})

	assert.NoError(t, err)
	assert.Equal(t, 34.00, quote.EconomicPrice)
	assert.Equal(t, 10.0, quote.BilledWeightKg)
}
