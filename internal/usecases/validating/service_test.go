package validating

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	sheetmocks "github.com/confixenvios/freight-quote-api/infrastructure/integrator/spreadsheet/mocks"
	uploadmocks "github.com/confixenvios/freight-quote-api/infrastructure/integrator/upload/mocks"
	"github.com/confixenvios/freight-quote-api/infrastructure/repository/mocks"
	"github.com/confixenvios/freight-quote-api/internal/config"
	"github.com/confixenvios/freight-quote-api/internal/domain"
)

func singleTier(min, max, price float64) *domain.PriceTier {
	return &domain.PriceTier{
		PostalStart: "01000000",
		PostalEnd:   "05999999",
		WeightMin:   min,
		WeightMax:   max,
		Price:       price,
	}
}

func issueCodes(issues []domain.ValidationIssue) []domain.IssueCode {
	codes := make([]domain.IssueCode, 0, len(issues))
	for _, issue := range issues {
		codes = append(codes, issue.Code)
	}
	return codes
}

func TestAudit_WeightRangeContiguity(t *testing.T) {
	tests := []struct {
		name          string
		rowSet        *domain.RowSet
		expectedCodes []domain.IssueCode
	}{
		{
			name: "Grade contígua do piso ao teto passa sem defeitos",
			rowSet: &domain.RowSet{Single: []*domain.PriceTier{
				singleTier(0.1, 5.0, 12.00),
				singleTier(5.0, 10.0, 18.00),
				singleTier(10.0, 30.0, 29.00),
			}},
			expectedCodes: []domain.IssueCode{},
		},
		{
			name: "Lacuna entre faixas consecutivas",
			rowSet: &domain.RowSet{Single: []*domain.PriceTier{
				singleTier(0.1, 5.0, 12.00),
				singleTier(7.0, 30.0, 29.00),
			}},
			expectedCodes: []domain.IssueCode{domain.IssueGap},
		},
		{
			name: "Sobreposição entre faixas consecutivas",
			rowSet: &domain.RowSet{Single: []*domain.PriceTier{
				singleTier(0.1, 10.0, 12.00),
				singleTier(8.0, 30.0, 29.00),
			}},
			expectedCodes: []domain.IssueCode{domain.IssueOverlap},
		},
		{
			name: "Cobertura que não começa no piso",
			rowSet: &domain.RowSet{Single: []*domain.PriceTier{
				singleTier(1.0, 30.0, 12.00),
			}},
			expectedCodes: []domain.IssueCode{domain.IssueGap},
		},
		{
			name: "Cobertura que não alcança o teto",
			rowSet: &domain.RowSet{Single: []*domain.PriceTier{
				singleTier(0.1, 10.0, 12.00),
			}},
			expectedCodes: []domain.IssueCode{domain.IssueGap},
		},
		{
			name: "Faixa com limites invertidos",
			rowSet: &domain.RowSet{Single: []*domain.PriceTier{
				singleTier(5.0, 0.5, 12.00),
				singleTier(0.1, 30.0, 29.00),
			}},
			expectedCodes: []domain.IssueCode{domain.IssueInvalidRange},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			issues := Audit(tt.rowSet)

			assert.ElementsMatch(t, tt.expectedCodes, issueCodes(issues))
		})
	}
}

func TestAudit_GapCarriesOffendingBounds(t *testing.T) {
	rowSet := &domain.RowSet{Single: []*domain.PriceTier{
		singleTier(0.1, 5.0, 12.00),
		singleTier(7.0, 30.0, 29.00),
	}}

	issues := Audit(rowSet)

	assert.Len(t, issues, 1)
	assert.Equal(t, domain.IssueGap, issues[0].Code)
	assert.Equal(t, 5.0, issues[0].FromKg)
	assert.Equal(t, 7.0, issues[0].ToKg)
	assert.Equal(t, 2, issues[0].Row)
}

func TestAudit_ShapeDefects(t *testing.T) {
	rowSet := &domain.RowSet{Single: []*domain.PriceTier{
		{PostalStart: "0131010", PostalEnd: "05999999", WeightMin: 0.1, WeightMax: 30.0, Price: 12.00},
		{PostalStart: "01000000", PostalEnd: "05999999", WeightMin: 0.1, WeightMax: 30.0, Price: 0},
	}}

	issues := Audit(rowSet)

	assert.Contains(t, issueCodes(issues), domain.IssueBadPostalCode)
	assert.Contains(t, issueCodes(issues), domain.IssueBadValue)
}

func TestAudit_EmptyRowSet(t *testing.T) {
	issues := Audit(&domain.RowSet{})

	assert.Len(t, issues, 1)
	assert.Equal(t, domain.IssueMissingColumn, issues[0].Code)
}

func TestAudit_JoinedVariantMissingZone(t *testing.T) {
	rowSet := &domain.RowSet{
		Coverage: []*domain.ZoneCoverage{
			{PostalStart: "01000000", PostalEnd: "05999999", ZoneLabel: "ZONA1"},
		},
		Prices: []*domain.PriceTier{
			{ZoneLabel: "ZONA1", WeightMin: 0.1, WeightMax: 30.0, Price: 17.00},
			{ZoneLabel: "ZONA9", WeightMin: 0.1, WeightMax: 30.0, Price: 23.00},
		},
	}

	issues := Audit(rowSet)

	assert.Len(t, issues, 1)
	assert.Equal(t, domain.IssueMissingZone, issues[0].Code)
	assert.Equal(t, "ZONA9", issues[0].Zone)
}

func TestService_Validate_PersistsVerdict(t *testing.T) {
	ctrl := gomock.NewController(t)

	tableRepo := mocks.NewMockPricingTableRepository(ctrl)
	zoneRepo := mocks.NewMockZoneRepository(ctrl)
	tierRepo := mocks.NewMockPriceTierRepository(ctrl)
	sheetIntegrator := sheetmocks.NewMockSheetIntegrator(ctrl)
	fileIntegrator := uploadmocks.NewMockFileIntegrator(ctrl)

	service := NewService(&config.Config{}, tableRepo, zoneRepo, tierRepo, sheetIntegrator, fileIntegrator)

	table := &domain.PricingTable{
		ID:       "TbAAAA",
		Name:     "Transportadora Aliança",
		Kind:     domain.SourceRemoteSpreadsheet,
		Location: "https://planilhas.example.com.br/alianca.xlsx",
		Active:   true,
	}

	rowSet := &domain.RowSet{Single: []*domain.PriceTier{
		singleTier(0.1, 5.0, 12.00),
		singleTier(7.0, 30.0, 29.00),
	}}

	tableRepo.EXPECT().GetByID("TbAAAA").Return(table, nil)
	sheetIntegrator.EXPECT().FetchRows(gomock.Any(), table).Return(rowSet, nil)
	tableRepo.EXPECT().
		UpdateValidation("TbAAAA", domain.ValidationInvalid, gomock.Len(1)).
		Return(nil)

	result, err := service.Validate(context.Background(), "TbAAAA")

	assert.NoError(t, err)
	assert.Equal(t, domain.ValidationInvalid, result.Status)
	assert.False(t, result.Valid())
	assert.Equal(t, domain.IssueGap, result.Issues[0].Code)
}

func TestService_Validate_TableNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)

	tableRepo := mocks.NewMockPricingTableRepository(ctrl)

	service := NewService(&config.Config{}, tableRepo, nil, nil, nil, nil)

	tableRepo.EXPECT().GetByID("TbMISS").Return(nil, nil)

	result, err := service.Validate(context.Background(), "TbMISS")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrTableNotFound)
}

func TestService_Validate_BuiltinProjectsRelationalRows(t *testing.T) {
	ctrl := gomock.NewController(t)

	tableRepo := mocks.NewMockPricingTableRepository(ctrl)
	zoneRepo := mocks.NewMockZoneRepository(ctrl)
	tierRepo := mocks.NewMockPriceTierRepository(ctrl)

	service := NewService(&config.Config{}, tableRepo, zoneRepo, tierRepo, nil, nil)

	table := &domain.PricingTable{ID: "TbBLT1", Name: "Tabela padrão", Kind: domain.SourceBuiltin, Active: true}

	tableRepo.EXPECT().GetByID("TbBLT1").Return(table, nil)
	zoneRepo.EXPECT().ListZones().Return([]*domain.Zone{
		{Code: "GOC", Name: "Goiânia", PostalStart: "74000000", PostalEnd: "74999999", EconomicDays: 4},
	}, nil)
	tierRepo.EXPECT().ListAll().Return([]*domain.PriceTier{
		{ZoneLabel: "GOC", WeightMin: 0.1, WeightMax: 30.0, Price: 18.50, LeadTimeDays: 4},
	}, nil)
	tableRepo.EXPECT().UpdateValidation("TbBLT1", domain.ValidationValid, gomock.Len(0)).Return(nil)

	result, err := service.Validate(context.Background(), "TbBLT1")

	assert.NoError(t, err)
	assert.Equal(t, domain.ValidationValid, result.Status)
	assert.True(t, result.Valid())
}
