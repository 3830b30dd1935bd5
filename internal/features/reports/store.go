package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/xyz-asif/dropwatch/internal/pkg/logger"
	"github.com/xyz-asif/dropwatch/internal/pkg/metrics"
	"github.com/xyz-asif/dropwatch/internal/pkg/sheets"
)

// Store is the only code that reads or writes the backing table. Reports are
// addressed by reference, never by row position.
type Store struct {
	table sheets.Table
	log   *logger.Logger
}

func NewStore(table sheets.Table, log *logger.Logger) *Store {
	if log == nil {
		log = logger.Default()
	}
	return &Store{table: table, log: log.Named("store")}
}

// Append persists a new report as a new row.
func (s *Store) Append(ctx context.Context, r *Report) error {
	defer observe("append", time.Now())

	rows, err := s.readRows(ctx)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if referenceAt(row) == r.Reference {
			return fmt.Errorf("append %s: %w", r.Reference, ErrDuplicateReference)
		}
	}

	if err := s.table.AppendRow(ctx, encodeRow(r)); err != nil {
		return unavailable("append", err)
	}
	return nil
}

// FindByReference scans the table for an exact reference match. A missing report
// is found=false with a nil error.
func (s *Store) FindByReference(ctx context.Context, reference string) (RowHandle, *Report, bool, error) {
	defer observe("find", time.Now())

	rows, err := s.readRows(ctx)
	if err != nil {
		return RowHandle{}, nil, false, err
	}
	for i, row := range rows {
		if referenceAt(row) != reference {
			continue
		}
		r, err := decodeRow(row)
		if err != nil {
			s.log.Warn("skipping undecodable row %d: %v", i, err)
			continue
		}
		return RowHandle{row: i, reference: reference}, r, true, nil
	}
	return RowHandle{}, nil, false, nil
}

// UpdateStatus writes the status and status-updated-at cells of the handle's row.
// It re-reads the reference cell first and refuses to write if the row no longer
// holds the report the handle was issued for.
func (s *Store) UpdateStatus(ctx context.Context, h RowHandle, status Status, at time.Time) error {
	defer observe("update_status", time.Now())

	if h.reference == "" {
		return fmt.Errorf("update status: empty handle: %w", ErrStaleHandle)
	}

	current, err := s.table.ReadCell(ctx, h.row, colReference)
	if err != nil {
		return unavailable("read reference", err)
	}
	if strings.TrimSpace(current) != h.reference {
		return fmt.Errorf("update status %s: row %d now holds %q: %w", h.reference, h.row, current, ErrStaleHandle)
	}

	cells := []sheets.Cell{
		{Col: colStatus, Value: string(status)},
		{Col: colStatusUpdatedAt, Value: encodeTime(at)},
	}
	if err := s.table.WriteCells(ctx, h.row, cells); err != nil {
		return unavailable("update status", err)
	}
	return nil
}

// ListAll returns a point-in-time snapshot of every decodable report.
func (s *Store) ListAll(ctx context.Context) ([]Report, error) {
	defer observe("list", time.Now())

	rows, err := s.readRows(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Report, 0, len(rows))
	for i, row := range rows {
		r, err := decodeRow(row)
		if err != nil {
			// blank rows are normal in a hand-edited sheet
			s.log.Debug("skipping row %d: %v", i, err)
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

func (s *Store) readRows(ctx context.Context) ([][]string, error) {
	rows, err := s.table.ReadRows(ctx)
	if err != nil {
		return nil, unavailable("read rows", err)
	}
	return rows, nil
}

// referenceAt reads a row's reference the way decodeRow does, so hand-edited
// padding does not hide a report from lookups.
func referenceAt(row []string) string {
	if len(row) <= colReference {
		return ""
	}
	return strings.TrimSpace(row[colReference])
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
}

func observe(op string, start time.Time) {
	metrics.StoreLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
}
