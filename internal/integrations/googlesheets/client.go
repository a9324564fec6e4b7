package googlesheets

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/m04kA/SMC-TennisBooking/internal/infra/sheet"
)

const (
	valueInputRaw  = "RAW"
	insertRows     = "INSERT_ROWS"
	dimensionRows  = "ROWS"
	defaultTimeout = 10 * time.Second
)

// Client лист Google Sheets как построчное хранилище
type Client struct {
	srv           *sheets.Service
	spreadsheetID string
	sheetName     string
	sheetID       int64
	timeout       time.Duration
	log           Logger
}

// NewClient создает клиента Sheets API
// Дополнительные опции нужны для тестов (endpoint, отключение авторизации)
func NewClient(ctx context.Context, cfg Config, log Logger, opts ...option.ClientOption) (*Client, error) {
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("%w: spreadsheet id is required", ErrInternal)
	}

	clientOpts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if cfg.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	clientOpts = append(clientOpts, opts...)

	srv, err := sheets.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create sheets service: %v", ErrInternal, err)
	}

	sheetName := cfg.SheetName
	if sheetName == "" {
		sheetName = "Sheet1"
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		srv:           srv,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     sheetName,
		sheetID:       cfg.SheetID,
		timeout:       timeout,
		log:           log,
	}, nil
}

// ReadRows читает все заполненные строки листа
func (c *Client) ReadRows(ctx context.Context) ([][]string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.srv.Spreadsheets.Values.Get(c.spreadsheetID, c.sheetName).
		MajorDimension(dimensionRows).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: values.get %s: %v", ErrRequest, c.sheetName, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		row := make([]string, len(raw))
		for j, cell := range raw {
			if cell != nil {
				row[j] = fmt.Sprint(cell)
			}
		}
		rows[i] = row
	}

	return rows, nil
}

// AppendRow добавляет строку после последней заполненной (значения записываются как есть)
func (c *Client) AppendRow(ctx context.Context, row []string) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}

	_, err := c.srv.Spreadsheets.Values.Append(c.spreadsheetID, c.sheetName, &sheets.ValueRange{
		MajorDimension: dimensionRows,
		Values:         [][]interface{}{cells},
	}).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertRows).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("%w: values.append %s: %v", ErrRequest, c.sheetName, err)
	}

	return nil
}

// DeleteRow удаляет строку по позиции (с 1)
// Количество строк проверяется перед удалением, чтобы не удалить пустую строку за пределами данных
func (c *Client) DeleteRow(ctx context.Context, position int) error {
	rows, err := c.ReadRows(ctx)
	if err != nil {
		return err
	}
	if position < 1 || position > len(rows) {
		return fmt.Errorf("%w: position=%d, rows=%d", sheet.ErrRowOutOfRange, position, len(rows))
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{
			{
				DeleteDimension: &sheets.DeleteDimensionRequest{
					// Нулевые SheetId и StartIndex иначе не попадут в JSON
					Range: &sheets.DimensionRange{
						SheetId:         c.sheetID,
						Dimension:       dimensionRows,
						StartIndex:      int64(position - 1),
						EndIndex:        int64(position),
						ForceSendFields: []string{"SheetId", "StartIndex"},
					},
				},
			},
		},
	}

	if _, err := c.srv.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("%w: batchUpdate deleteDimension row=%d: %v", ErrRequest, position, err)
	}

	c.log.Info("googlesheets: deleted row %d from %s", position, c.sheetName)
	return nil
}
