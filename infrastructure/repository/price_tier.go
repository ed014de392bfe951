package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/confixenvios/freight-quote-api/infrastructure/database/postgres"
	"github.com/confixenvios/freight-quote-api/internal/domain"
)

const priceTiersTable = "price_tiers pt"

// PriceTierRepository é o armazenamento relacional de faixas de preço
// da fonte builtin, indexadas por código de zona
type PriceTierRepository interface {
	FindTier(zoneCode string, weightKg float64) (*domain.PriceTier, error)
	ListByZone(zoneCode string) ([]*domain.PriceTier, error)
	ListAll() ([]*domain.PriceTier, error)
}

type priceTierRepository struct {
	conn *postgres.Connection
}

func NewPriceTierRepository(conn *postgres.Connection) PriceTierRepository {
	return &priceTierRepository{
		conn: conn,
	}
}

func (p *priceTierRepository) FindTier(zoneCode string, weightKg float64) (*domain.PriceTier, error) {
	// Em dados malformados mais de uma faixa pode conter o peso;
	// a ordenação por weight_min garante o desempate determinístico
	tierSQL, tierArgs, err := squirrel.
		Select("pt.zone_code, pt.weight_min, pt.weight_max, pt.price, pt.express_price, pt.lead_time_days").
		From(priceTiersTable).
		Where(squirrel.Eq{"pt.zone_code": zoneCode}).
		Where(squirrel.LtOrEq{"pt.weight_min": weightKg}).
		Where(squirrel.GtOrEq{"pt.weight_max": weightKg}).
		OrderBy("pt.weight_min ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := p.conn.QueryRow(tierSQL, tierArgs...)

	tier, err := p.deserializeTier(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return tier, nil
}

func (p *priceTierRepository) deserializeTier(row *sql.Row) (*domain.PriceTier, error) {
	tier := &domain.PriceTier{}
	var expressPrice sql.NullFloat64

	if err := row.Scan(
		&tier.ZoneLabel,
		&tier.WeightMin,
		&tier.WeightMax,
		&tier.Price,
		&expressPrice,
		&tier.LeadTimeDays,
	); err != nil {
		return nil, err
	}

	if expressPrice.Valid {
		tier.ExpressPrice = expressPrice.Float64
	}

	return tier, nil
}

func (p *priceTierRepository) ListByZone(zoneCode string) ([]*domain.PriceTier, error) {
	return p.listTiers(squirrel.Eq{"pt.zone_code": zoneCode})
}

func (p *priceTierRepository) ListAll() ([]*domain.PriceTier, error) {
	return p.listTiers(nil)
}

func (p *priceTierRepository) listTiers(whereClause map[string]interface{}) ([]*domain.PriceTier, error) {
	queryBuilder := squirrel.
		Select("pt.zone_code, pt.weight_min, pt.weight_max, pt.price, pt.express_price, pt.lead_time_days").
		From(priceTiersTable).
		OrderBy("pt.zone_code ASC", "pt.weight_min ASC").
		PlaceholderFormat(squirrel.Dollar)

	if whereClause != nil {
		queryBuilder = queryBuilder.Where(whereClause)
	}

	tiersSQL, tiersArgs, err := queryBuilder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.conn.Query(tiersSQL, tiersArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	tiers := make([]*domain.PriceTier, 0)

	for rows.Next() {
		tier := &domain.PriceTier{}
		var expressPrice sql.NullFloat64

		if err := rows.Scan(
			&tier.ZoneLabel,
			&tier.WeightMin,
			&tier.WeightMax,
			&tier.Price,
			&expressPrice,
			&tier.LeadTimeDays,
		); err != nil {
			return nil, err
		}

		if expressPrice.Valid {
			tier.ExpressPrice = expressPrice.Float64
		}

		tiers = append(tiers, tier)
	}

	return tiers, rows.Err()
}
