package upload

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"github.com/confixenvios/freight-quote-api/infrastructure/integrator/spreadsheet"
	"github.com/confixenvios/freight-quote-api/internal/config"
	"github.com/confixenvios/freight-quote-api/internal/domain"
)

// FileIntegrator materializa as linhas de uma tabela mantida em arquivo
// enviado pela operação (.xlsx ou .csv), guardado no diretório de uploads
type FileIntegrator interface {
	FetchRows(ctx context.Context, table *domain.PricingTable) (*domain.RowSet, error)
}

type Service struct {
	cfg *config.Config
}

func New(cfg *config.Config) FileIntegrator {
	return &Service{
		cfg: cfg,
	}
}

func (s *Service) FetchRows(_ context.Context, table *domain.PricingTable) (*domain.RowSet, error) {
	path := filepath.Join(s.cfg.Upload.Dir, filepath.Clean(table.Location))

	var rowSet *domain.RowSet
	var err error

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		rowSet, err = s.readWorkbook(path)
	case ".csv":
		rowSet, err = s.readCSV(path)
	default:
		return nil, errors.Errorf("formato de arquivo não suportado: %s", table.Location)
	}

	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"table_id": table.ID,
		"file":     table.Location,
		"rows":     len(rowSet.Rows()),
	}).Debug("Arquivo enviado normalizado")

	return rowSet, nil
}

func (s *Service) readWorkbook(path string) (*domain.RowSet, error) {
	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o arquivo %s", path)
	}
	defer file.Close()

	var sheets []sheetRows

	for _, name := range file.GetSheetList() {
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler a aba %q", name)
		}
		sheets = append(sheets, sheetRows{rows: rows})
	}

	// Arquivos enviados seguem a variante autocontida; a primeira aba
	// com as colunas esperadas vence
	for _, sheet := range sheets {
		if tiers := spreadsheet.ParseSingleSheet(sheet.rows); len(tiers) > 0 {
			return &domain.RowSet{Single: tiers}, nil
		}
	}

	return &domain.RowSet{}, nil
}

type sheetRows struct {
	rows [][]string
}

func (s *Service) readCSV(path string) (*domain.RowSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o arquivo %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.Comma = detectDelimiter(path)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o CSV %s", path)
	}

	return &domain.RowSet{Single: spreadsheet.ParseSingleSheet(records)}, nil
}

// detectDelimiter espia a primeira linha do arquivo: CSVs exportados
// de Excel em locale brasileiro costumam vir separados por ponto e vírgula
func detectDelimiter(path string) rune {
	file, err := os.Open(path)
	if err != nil {
		return ','
	}
	defer file.Close()

	buf := make([]byte, 1024)
	n, _ := file.Read(buf)
	line := string(buf[:n])

	if idx := strings.IndexByte(line, '\n'); idx >= 0 {
		line = line[:idx]
	}

	if strings.Count(line, ";") > strings.Count(line, ",") {
		return ';'
	}

	return ','
}
