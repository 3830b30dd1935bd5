// Package sheets holds the row-oriented backing table the report store is built on.
package sheets

import "context"

// Table is a named, row-oriented table with a fixed column schema. Rows are
// addressed by 0-based position among data rows; the header row is not counted.
type Table interface {
	AppendRow(ctx context.Context, row []string) error
	ReadRows(ctx context.Context) ([][]string, error)
	ReadCell(ctx context.Context, row, col int) (string, error)
	// WriteCells writes all cells of one row in a single call. Implementations
	// must apply either every cell or none of them.
	WriteCells(ctx context.Context, row int, cells []Cell) error
}

// Cell is one value addressed by 0-based column.
type Cell struct {
	Col   int
	Value string
}

// padRow extends row with empty cells up to width; backends trim trailing blanks.
func padRow(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
