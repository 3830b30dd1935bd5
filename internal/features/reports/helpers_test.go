package reports

import (
	"context"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/xyz-asif/dropwatch/internal/pkg/logger"
	"github.com/xyz-asif/dropwatch/internal/pkg/sheets"
)

var quietLog = logger.NewWithWriter(logger.FATAL, io.Discard)

type sentMail struct {
	to, subject, body string
}

type recordingMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (m *recordingMailer) Send(ctx context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

func (m *recordingMailer) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type testEnv struct {
	table  *sheets.MemoryTable
	store  *Store
	svc    *Service
	mailer *recordingMailer
	now    time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		table:  sheets.NewMemoryTable(columnCount),
		mailer: &recordingMailer{},
		now:    time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	env.store = NewStore(env.table, quietLog)
	env.svc = NewService(env.store, env.mailer, time.Second, quietLog)
	env.svc.now = func() time.Time { return env.now }
	return env
}

// sequence returns a reference generator that yields refs in order.
func sequence(refs ...string) func() string {
	i := 0
	return func() string {
		r := refs[i%len(refs)]
		i++
		return r
	}
}

func floatPtr(f float64) *float64 { return &f }

func sampleReport(ref string) *Report {
	updated := time.Date(2025, 3, 2, 8, 30, 0, 0, time.UTC)
	return &Report{
		Reference:       ref,
		ReporterName:    "Thandi Nkosi",
		ReporterContact: "thandi@example.com",
		Municipality:    "City of Johannesburg",
		Category:        CategoryBurstPipe,
		Location: Location{
			Address:     "123 Main Rd, Soweto",
			Coordinates: &Coordinates{Latitude: -26.2041, Longitude: 28.0473},
		},
		CreatedAt:       time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		Status:          StatusInProgress,
		StatusUpdatedAt: &updated,
		Evidence:        []string{"https://res.cloudinary.com/demo/image/upload/leak.jpg"},
	}
}
