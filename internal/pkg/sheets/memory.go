package sheets

import (
	"context"
	"fmt"
	"sync"
)

// MemoryTable is an in-process Table used by tests and the "memory" store backend.
type MemoryTable struct {
	mu    sync.RWMutex
	width int
	rows  [][]string
	err   error
}

func NewMemoryTable(width int) *MemoryTable {
	return &MemoryTable{width: width}
}

// FailWith makes every subsequent call return err until cleared with nil.
func (t *MemoryTable) FailWith(err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.err = err
}

func (t *MemoryTable) AppendRow(ctx context.Context, row []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	t.rows = append(t.rows, padRow(append([]string(nil), row...), t.width))
	return nil
}

func (t *MemoryTable) ReadRows(ctx context.Context) ([][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.err != nil {
		return nil, t.err
	}
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = append([]string(nil), row...)
	}
	return out, nil
}

func (t *MemoryTable) ReadCell(ctx context.Context, row, col int) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.err != nil {
		return "", t.err
	}
	if row < 0 || row >= len(t.rows) {
		return "", nil
	}
	if col < 0 || col >= len(t.rows[row]) {
		return "", fmt.Errorf("column %d out of range", col)
	}
	return t.rows[row][col], nil
}

func (t *MemoryTable) WriteCells(ctx context.Context, row int, cells []Cell) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.err != nil {
		return t.err
	}
	if row < 0 || row >= len(t.rows) {
		return fmt.Errorf("row %d out of range", row)
	}
	for _, c := range cells {
		if c.Col < 0 || c.Col >= t.width {
			return fmt.Errorf("column %d out of range", c.Col)
		}
	}
	for _, c := range cells {
		t.rows[row][c.Col] = c.Value
	}
	return nil
}

// Overwrite replaces a whole row, the way another writer editing the sheet would.
func (t *MemoryTable) Overwrite(row int, values []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows[row] = padRow(append([]string(nil), values...), t.width)
}

// InsertRow inserts values at position row, shifting later rows down.
func (t *MemoryTable) InsertRow(row int, values []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	padded := padRow(append([]string(nil), values...), t.width)
	t.rows = append(t.rows[:row], append([][]string{padded}, t.rows[row:]...)...)
}

// Len returns the number of data rows.
func (t *MemoryTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
