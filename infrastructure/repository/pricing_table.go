package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/confixenvios/freight-quote-api/infrastructure/database/postgres"
	"github.com/confixenvios/freight-quote-api/internal/domain"
)

const pricingTablesTable = "pricing_tables t"

// PricingTableRepository é o registro de fontes de preço cadastradas.
// O motor de cotação só lê; quem escreve o veredito de validação é o
// fluxo administrativo/auditoria.
type PricingTableRepository interface {
	GetByID(tableID string) (*domain.PricingTable, error)
	ListActive() ([]*domain.PricingTable, error)
	UpdateValidation(tableID string, status domain.ValidationStatus, issues []domain.ValidationIssue) error
	GetValidation(tableID string) (*domain.ValidationResult, error)
}

type pricingTableRepository struct {
	conn *postgres.Connection
}

func NewPricingTableRepository(conn *postgres.Connection) PricingTableRepository {
	return &pricingTableRepository{
		conn: conn,
	}
}

const pricingTableColumns = "t.id, t.name, t.kind, t.location, t.active, t.validation_status, " +
	"t.last_validated_at, t.position, t.volumetric_divisor, t.max_dimension_cm, " +
	"t.surcharge_threshold_kg, t.surcharge_rate_per_kg, t.insurance_percent"

func (p *pricingTableRepository) GetByID(tableID string) (*domain.PricingTable, error) {
	tableSQL, tableArgs, err := squirrel.
		Select(pricingTableColumns).
		From(pricingTablesTable).
		Where(squirrel.Eq{"t.id": tableID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.conn.Query(tableSQL, tableArgs...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}

	return p.deserializeTable(rows)
}

func (p *pricingTableRepository) ListActive() ([]*domain.PricingTable, error) {
	// A posição de cadastro define a ordem estável usada no desempate
	tablesSQL, tablesArgs, err := squirrel.
		Select(pricingTableColumns).
		From(pricingTablesTable).
		Where(squirrel.Eq{"t.active": true}).
		OrderBy("t.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.conn.Query(tablesSQL, tablesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	tables := make([]*domain.PricingTable, 0)

	for rows.Next() {
		table, err := p.deserializeTable(rows)
		if err != nil {
			return nil, err
		}

		tables = append(tables, table)
	}

	return tables, rows.Err()
}

func (p *pricingTableRepository) deserializeTable(rows *sql.Rows) (*domain.PricingTable, error) {
	table := &domain.PricingTable{}

	var (
		lastValidatedAt    sql.NullTime
		volumetricDivisor  sql.NullFloat64
		maxDimensionCm     sql.NullFloat64
		surchargeThreshold sql.NullFloat64
		surchargeRatePerKg sql.NullFloat64
		insurancePercent   sql.NullFloat64
	)

	if err := rows.Scan(
		&table.ID,
		&table.Name,
		&table.Kind,
		&table.Location,
		&table.Active,
		&table.ValidationStatus,
		&lastValidatedAt,
		&table.Position,
		&volumetricDivisor,
		&maxDimensionCm,
		&surchargeThreshold,
		&surchargeRatePerKg,
		&insurancePercent,
	); err != nil {
		return nil, err
	}

	if lastValidatedAt.Valid {
		table.LastValidatedAt = &lastValidatedAt.Time
	}

	rules := &domain.CommercialRules{}
	hasRules := false

	if volumetricDivisor.Valid {
		rules.VolumetricDivisor = &volumetricDivisor.Float64
		hasRules = true
	}
	if maxDimensionCm.Valid {
		rules.MaxDimensionCm = &maxDimensionCm.Float64
		hasRules = true
	}
	if surchargeThreshold.Valid {
		rules.SurchargeThresholdKg = &surchargeThreshold.Float64
		hasRules = true
	}
	if surchargeRatePerKg.Valid {
		rules.SurchargeRatePerKg = &surchargeRatePerKg.Float64
		hasRules = true
	}
	if insurancePercent.Valid {
		rules.InsurancePercent = &insurancePercent.Float64
		hasRules = true
	}

	if hasRules {
		table.Rules = rules
	}

	return table, nil
}

// GetValidation recupera o último veredito de auditoria persistido
func (p *pricingTableRepository) GetValidation(tableID string) (*domain.ValidationResult, error) {
	validationSQL, validationArgs, err := squirrel.
		Select("t.id, t.validation_status, t.validation_issues, t.last_validated_at").
		From(pricingTablesTable).
		Where(squirrel.Eq{"t.id": tableID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := p.conn.QueryRow(validationSQL, validationArgs...)

	result := &domain.ValidationResult{}

	var issuesJSON []byte
	var checkedAt sql.NullTime

	if err := row.Scan(&result.TableID, &result.Status, &issuesJSON, &checkedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	if checkedAt.Valid {
		result.CheckedAt = checkedAt.Time
	}

	if len(issuesJSON) > 0 {
		if err := json.Unmarshal(issuesJSON, &result.Issues); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func (p *pricingTableRepository) UpdateValidation(tableID string, status domain.ValidationStatus, issues []domain.ValidationIssue) error {
	issuesJSON, err := json.Marshal(issues)
	if err != nil {
		return err
	}

	updateSQL, updateArgs, err := squirrel.
		Update("pricing_tables").
		Set("validation_status", status).
		Set("validation_issues", issuesJSON).
		Set("last_validated_at", time.Now()).
		Where(squirrel.Eq{"id": tableID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	_, err = p.conn.Exec(updateSQL, updateArgs...)
	return err
}
