package repository

import (
	"database/sql"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"

	"github.com/confixenvios/freight-quote-api/infrastructure/database/postgres"
	"github.com/confixenvios/freight-quote-api/internal/domain"
)

const zonesTable = "zones z"

// ZoneRepository é o diretório interno de zonas tarifárias.
// FindByPostalCode retorna (nil, nil) quando o CEP não é atendido:
// ausência de cobertura é um resultado legítimo, não um erro.
type ZoneRepository interface {
	FindByPostalCode(postalCode string) (*domain.Zone, error)
	ListZones() ([]*domain.Zone, error)
}

type zoneRepository struct {
	conn *postgres.Connection
}

func NewZoneRepository(conn *postgres.Connection) ZoneRepository {
	return &zoneRepository{
		conn: conn,
	}
}

func (z *zoneRepository) FindByPostalCode(postalCode string) (*domain.Zone, error) {
	zoneSQL, zoneArgs, err := squirrel.
		Select("z.code, z.name, z.state, z.type, z.postal_start, z.postal_end, z.economic_days, z.express_days").
		From(zonesTable).
		Where(squirrel.LtOrEq{"z.postal_start": postalCode}).
		Where(squirrel.GtOrEq{"z.postal_end": postalCode}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := z.conn.QueryRow(zoneSQL, zoneArgs...)

	zone, err := z.deserializeZone(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return zone, nil
}

func (z *zoneRepository) deserializeZone(row *sql.Row) (*domain.Zone, error) {
	zone := &domain.Zone{}

	if err := row.Scan(
		&zone.Code,
		&zone.Name,
		&zone.State,
		&zone.Type,
		&zone.PostalStart,
		&zone.PostalEnd,
		&zone.EconomicDays,
		&zone.ExpressDays,
	); err != nil {
		return nil, err
	}

	return zone, nil
}

func (z *zoneRepository) ListZones() ([]*domain.Zone, error) {
	zonesSQL, zonesArgs, err := squirrel.
		Select("z.code, z.name, z.state, z.type, z.postal_start, z.postal_end, z.economic_days, z.express_days").
		From(zonesTable).
		OrderBy("z.postal_start ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := z.conn.Query(zonesSQL, zonesArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, err
	}
	defer rows.Close()

	zones := make([]*domain.Zone, 0)

	for rows.Next() {
		zone := &domain.Zone{}

		if err := rows.Scan(
			&zone.Code,
			&zone.Name,
			&zone.State,
			&zone.Type,
			&zone.PostalStart,
			&zone.PostalEnd,
			&zone.EconomicDays,
			&zone.ExpressDays,
		); err != nil {
			return nil, err
		}

		zones = append(zones, zone)
	}

	return zones, rows.Err()
}
