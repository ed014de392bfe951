package sheetclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/confixenvios/freight-quote-api/internal/config"
)

// Sheet é uma aba nomeada já materializada em linhas de células
type Sheet struct {
	Name string
	Rows [][]string
}

// Workbook é o conteúdo completo de uma planilha remota
type Workbook struct {
	Sheets []Sheet
}

// Client busca o conteúdo bruto de uma planilha remota e enumera
// todas as suas abas
type Client interface {
	FetchWorkbook(ctx context.Context, location string) (*Workbook, error)
}

type SheetClient struct {
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Spreadsheet.FetchTimeoutSeconds) * time.Second

	return &SheetClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *SheetClient) FetchWorkbook(ctx context.Context, location string) (*Workbook, error) {
	data, err := c.fetchContent(ctx, location)
	if err != nil {
		return nil, err
	}

	file, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrapf(err, "conteúdo de %s não é uma planilha válida", location)
	}
	defer file.Close()

	workbook := &Workbook{}

	for _, name := range file.GetSheetList() {
		rows, err := file.GetRows(name)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler a aba %q", name)
		}

		workbook.Sheets = append(workbook.Sheets, Sheet{
			Name: name,
			Rows: rows,
		})
	}

	return workbook, nil
}

func (c *SheetClient) fetchContent(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar requisição da planilha")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao baixar planilha de %s", location)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("planilha %s indisponível: status %s", location, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler conteúdo da planilha")
	}

	return data, nil
}
