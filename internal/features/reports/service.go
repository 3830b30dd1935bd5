package reports

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/xyz-asif/dropwatch/internal/pkg/logger"
	"github.com/xyz-asif/dropwatch/internal/pkg/mail"
	"github.com/xyz-asif/dropwatch/internal/pkg/metrics"
	"github.com/xyz-asif/dropwatch/internal/pkg/pagination"
)

// DefaultMunicipality is used when the form leaves the municipality blank.
const DefaultMunicipality = "Other"

// Service is what the web form and the dashboard call into. Each method is one
// synchronous read-then-write against the store; nothing is cached between calls.
type Service struct {
	store   *Store
	mailer  mail.Sender
	timeout time.Duration
	log     *logger.Logger

	now          func() time.Time
	newReference func() string
}

func NewService(store *Store, mailer mail.Sender, timeout time.Duration, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Service{
		store:        store,
		mailer:       mailer,
		timeout:      timeout,
		log:          log.Named("reports"),
		now:          time.Now,
		newReference: GenerateReference,
	}
}

// Submit validates and persists a new report and returns its reference. The
// confirmation email is sent afterwards and its failure never fails the call.
func (s *Service) Submit(ctx context.Context, req SubmitRequest) (string, error) {
	normalizeRequest(&req)
	if err := ValidateSubmission(&req); err != nil {
		return "", err
	}

	category, _ := ParseCategory(req.Category)
	municipality := req.Municipality
	if municipality == "" {
		municipality = DefaultMunicipality
	}

	report := &Report{
		ReporterName:    req.Name,
		ReporterContact: req.Contact,
		Municipality:    municipality,
		Category:        category,
		Location:        Location{Address: req.Address},
		CreatedAt:       s.now().UTC().Truncate(time.Second),
		Status:          StatusPending,
		Evidence:        req.Evidence,
	}
	if req.Latitude != nil && req.Longitude != nil {
		report.Location.Coordinates = &Coordinates{Latitude: *req.Latitude, Longitude: *req.Longitude}
	}

	// One automatic regeneration on a reference collision; a second collision
	// in a row means something is wrong with the generator or the table.
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		report.Reference = s.newReference()
		err = s.call(ctx, func(ctx context.Context) error {
			return s.store.Append(ctx, report)
		})
		if !errors.Is(err, ErrDuplicateReference) {
			break
		}
		s.log.Warn("reference collision on %s (attempt %d)", report.Reference, attempt+1)
	}
	if errors.Is(err, ErrDuplicateReference) {
		return "", fmt.Errorf("submit: repeated reference collision: %w", ErrUnavailable)
	}
	if err != nil {
		s.log.Error("failed to save report: %v", err)
		return "", err
	}

	metrics.ReportsSubmitted.Inc()
	s.log.Info("report %s submitted for %s", report.Reference, report.Municipality)

	s.sendConfirmation(ctx, report)
	return report.Reference, nil
}

func (s *Service) sendConfirmation(ctx context.Context, r *Report) {
	if s.mailer == nil {
		return
	}
	// The report is already stored; a client disconnect should not abort the mail.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.timeout)
	defer cancel()

	subject, body := mail.Confirmation(r.ReporterName, r.Reference)
	if err := s.mailer.Send(ctx, r.ReporterContact, subject, body); err != nil {
		metrics.MailFailures.Inc()
		s.log.Warn("confirmation email for %s failed: %v", r.Reference, err)
	}
}

// CheckStatus looks a report up by reference. An unknown reference is
// (nil, false, nil), not an error.
func (s *Service) CheckStatus(ctx context.Context, reference string) (*Report, bool, error) {
	reference = NormalizeReference(reference)
	if !ValidReference(reference) {
		return nil, false, nil
	}

	var (
		report *Report
		found  bool
	)
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		_, report, found, err = s.store.FindByReference(ctx, reference)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return report, found, nil
}

// ListForDashboard summarizes a fresh snapshot of the table.
func (s *Service) ListForDashboard(ctx context.Context) (*Summary, error) {
	reports, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	summary := Summarize(reports)
	return &summary, nil
}

// ListReports returns one page of reports, newest first, plus the filtered total.
func (s *Service) ListReports(ctx context.Context, f ListFilter) ([]Report, *pagination.Pagination, error) {
	reports, err := s.snapshot(ctx)
	if err != nil {
		return nil, nil, err
	}

	filtered := reports[:0]
	for _, r := range reports {
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		if f.Municipality != "" && !strings.EqualFold(r.Municipality, f.Municipality) {
			continue
		}
		filtered = append(filtered, r)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	p := pagination.New(f.Page, f.Limit, int64(len(filtered)))
	start, end := p.Bounds(len(filtered))
	return filtered[start:end], p, nil
}

// Transition moves a report to requested if the lifecycle allows it. The
// status and its timestamp are written together or not at all.
func (s *Service) Transition(ctx context.Context, reference string, requested Status) (*Report, error) {
	reference = NormalizeReference(reference)

	var (
		handle RowHandle
		report *Report
		found  bool
	)
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		handle, report, found, err = s.store.FindByReference(ctx, reference)
		return err
	})
	if err != nil {
		metrics.Transitions.WithLabelValues("unavailable").Inc()
		return nil, err
	}
	if !found {
		metrics.Transitions.WithLabelValues("not_found").Inc()
		return nil, fmt.Errorf("report %s: %w", reference, ErrNotFound)
	}

	to, err := RequestTransition(report.Status, requested)
	if err != nil {
		metrics.Transitions.WithLabelValues("invalid").Inc()
		return nil, err
	}

	at := s.now().UTC().Truncate(time.Second)
	if at.Before(report.CreatedAt) {
		at = report.CreatedAt
	}

	err = s.call(ctx, func(ctx context.Context) error {
		return s.store.UpdateStatus(ctx, handle, to, at)
	})
	if err != nil {
		outcome := "unavailable"
		if errors.Is(err, ErrStaleHandle) {
			outcome = "stale"
		}
		metrics.Transitions.WithLabelValues(outcome).Inc()
		s.log.Warn("status update for %s failed: %v", reference, err)
		return nil, err
	}

	metrics.Transitions.WithLabelValues("applied").Inc()
	s.log.Info("report %s: %s -> %s", reference, report.Status, to)

	report.Status = to
	report.StatusUpdatedAt = &at
	return report, nil
}

func (s *Service) snapshot(ctx context.Context) ([]Report, error) {
	var reports []Report
	err := s.call(ctx, func(ctx context.Context) error {
		var err error
		reports, err = s.store.ListAll(ctx)
		return err
	})
	return reports, err
}

// call bounds one store call by the configured timeout.
func (s *Service) call(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	return fn(ctx)
}

func normalizeRequest(req *SubmitRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Contact = strings.TrimSpace(req.Contact)
	req.Municipality = strings.TrimSpace(req.Municipality)
	req.Category = strings.TrimSpace(req.Category)
	req.Address = strings.TrimSpace(req.Address)

	evidence := req.Evidence[:0]
	for _, e := range req.Evidence {
		if e = strings.TrimSpace(e); e != "" {
			evidence = append(evidence, e)
		}
	}
	if len(evidence) == 0 {
		evidence = nil
	}
	req.Evidence = evidence
}
