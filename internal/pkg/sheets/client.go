package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

// rawInput stores values verbatim; USER_ENTERED would reformat timestamps.
const rawInput = "RAW"

// Client is a Table backed by one tab of a Google spreadsheet.
type Client struct {
	values        *gsheets.SpreadsheetsValuesService
	spreadsheetID string
	sheetName     string
	width         int
}

// NewClient authenticates with a service-account key file.
func NewClient(ctx context.Context, credentialsPath, spreadsheetID, sheetName string, width int) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet id is required")
	}
	srv, err := gsheets.NewService(ctx,
		option.WithCredentialsFile(credentialsPath),
		option.WithScopes(gsheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets service: %w", err)
	}
	return NewClientWithService(srv, spreadsheetID, sheetName, width), nil
}

// NewClientWithService wraps an existing service, e.g. one pointed at a test endpoint.
func NewClientWithService(srv *gsheets.Service, spreadsheetID, sheetName string, width int) *Client {
	return &Client{
		values:        srv.Spreadsheets.Values,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		width:         width,
	}
}

// EnsureHeader writes header into row 1 when the sheet is empty.
func (c *Client) EnsureHeader(ctx context.Context, header []string) error {
	resp, err := c.values.Get(c.spreadsheetID, c.rangeOf("A1", columnName(len(header)-1)+"1")).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to read header: %w", err)
	}
	if len(resp.Values) > 0 && len(resp.Values[0]) > 0 {
		return nil
	}
	vr := &gsheets.ValueRange{Values: [][]interface{}{toInterfaces(header)}}
	_, err = c.values.Update(c.spreadsheetID, c.rangeOf("A1"), vr).ValueInputOption(rawInput).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	return nil
}

func (c *Client) AppendRow(ctx context.Context, row []string) error {
	vr := &gsheets.ValueRange{Values: [][]interface{}{toInterfaces(row)}}
	_, err := c.values.Append(c.spreadsheetID, c.rangeOf("A1"), vr).
		ValueInputOption(rawInput).
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("failed to append row: %w", err)
	}
	return nil
}

func (c *Client) ReadRows(ctx context.Context) ([][]string, error) {
	resp, err := c.values.Get(c.spreadsheetID, c.rangeOf("A2", columnName(c.width-1))).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}
	rows := make([][]string, len(resp.Values))
	for i, raw := range resp.Values {
		rows[i] = padRow(toStrings(raw), c.width)
	}
	return rows, nil
}

func (c *Client) ReadCell(ctx context.Context, row, col int) (string, error) {
	resp, err := c.values.Get(c.spreadsheetID, c.rangeOf(a1(row, col))).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("failed to read cell: %w", err)
	}
	if len(resp.Values) == 0 || len(resp.Values[0]) == 0 {
		return "", nil
	}
	return fmt.Sprint(resp.Values[0][0]), nil
}

// WriteCells uses one values.batchUpdate request, which the API applies atomically.
func (c *Client) WriteCells(ctx context.Context, row int, cells []Cell) error {
	data := make([]*gsheets.ValueRange, 0, len(cells))
	for _, cell := range cells {
		data = append(data, &gsheets.ValueRange{
			Range:  c.rangeOf(a1(row, cell.Col)),
			Values: [][]interface{}{{cell.Value}},
		})
	}
	req := &gsheets.BatchUpdateValuesRequest{
		ValueInputOption: rawInput,
		Data:             data,
	}
	if _, err := c.values.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to write cells: %w", err)
	}
	return nil
}

// rangeOf builds "Sheet!A1" or "Sheet!A2:J" style ranges.
func (c *Client) rangeOf(from string, to ...string) string {
	r := fmt.Sprintf("'%s'!%s", c.sheetName, from)
	if len(to) > 0 {
		r += ":" + to[0]
	}
	return r
}

// a1 converts a 0-based data row and column to A1 notation; data starts on sheet row 2.
func a1(row, col int) string {
	return fmt.Sprintf("%s%d", columnName(col), row+2)
}

// columnName converts a 0-based column index to its letter name (0 -> A, 26 -> AA).
func columnName(col int) string {
	name := ""
	for col >= 0 {
		name = string(rune('A'+col%26)) + name
		col = col/26 - 1
	}
	return name
}

func toInterfaces(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = v
	}
	return out
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}
