package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() SubmitRequest {
	return SubmitRequest{
		Name:     "  Thandi Nkosi ",
		Contact:  "thandi@example.com",
		Category: "Burst Pipe",
		Address:  "123 Main Rd, Soweto",
	}
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.svc.newReference = sequence("ABC12345")

	req := validRequest()
	req.Latitude, req.Longitude = floatPtr(-26.2041), floatPtr(28.0473)

	ref, err := env.svc.Submit(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "ABC12345", ref)

	got, found, err := env.svc.CheckStatus(ctx, ref)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Thandi Nkosi", got.ReporterName)
	assert.Equal(t, DefaultMunicipality, got.Municipality)
	assert.Equal(t, CategoryBurstPipe, got.Category)
	assert.Equal(t, StatusPending, got.Status)
	assert.Nil(t, got.StatusUpdatedAt)
	assert.Equal(t, env.now, got.CreatedAt)
	require.NotNil(t, got.Location.Coordinates)
	assert.Equal(t, -26.2041, got.Location.Coordinates.Latitude)

	require.Equal(t, 1, env.mailer.count())
	assert.Equal(t, "thandi@example.com", env.mailer.sent[0].to)
	assert.Contains(t, env.mailer.sent[0].body, "ABC12345")
}

func TestService_SubmitValidationWritesNothing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Submit(context.Background(), SubmitRequest{Name: "", Contact: "not-an-email", Address: ""})
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Len(t, verr.Fields, 3)
	assert.Equal(t, 0, env.table.Len())
	assert.Equal(t, 0, env.mailer.count())
}

func TestService_SubmitRetriesOnceOnCollision(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.Append(ctx, sampleReport("ABC12345")))

	env.svc.newReference = sequence("ABC12345", "DEF67890")
	ref, err := env.svc.Submit(ctx, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "DEF67890", ref)
	assert.Equal(t, 2, env.table.Len())
}

func TestService_SubmitRepeatedCollisionIsUnavailable(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.Append(ctx, sampleReport("ABC12345")))

	env.svc.newReference = sequence("ABC12345")
	_, err := env.svc.Submit(ctx, validRequest())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.False(t, errors.Is(err, ErrDuplicateReference))
	assert.Equal(t, 1, env.table.Len())
}

func TestService_SubmitSurvivesMailFailure(t *testing.T) {
	env := newTestEnv(t)
	env.mailer.err = errors.New("smtp down")

	ref, err := env.svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, ref)
	assert.Equal(t, 1, env.table.Len())
}

func TestService_SubmitStoreDown(t *testing.T) {
	env := newTestEnv(t)
	env.table.FailWith(errors.New("503 from upstream"))

	_, err := env.svc.Submit(context.Background(), validRequest())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, 0, env.mailer.count())
}

func TestService_CheckStatusNotFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.Append(ctx, sampleReport("ABC12345")))

	for _, ref := range []string{"ZZZZZZZZ", "", "abc"} {
		got, found, err := env.svc.CheckStatus(ctx, ref)
		require.NoError(t, err, ref)
		assert.False(t, found, ref)
		assert.Nil(t, got, ref)
	}

	_, found, err := env.svc.CheckStatus(ctx, " abc12345 ")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestService_Transition(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.svc.newReference = sequence("ABC12345")
	_, err := env.svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	env.now = env.now.Add(time.Hour)
	got, err := env.svc.Transition(ctx, "abc12345", StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, got.Status)
	require.NotNil(t, got.StatusUpdatedAt)
	assert.Equal(t, env.now, *got.StatusUpdatedAt)

	stored, _, err := env.svc.CheckStatus(ctx, "ABC12345")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, stored.Status)
	assert.Equal(t, env.now, *stored.StatusUpdatedAt)
}

func TestService_TransitionNeverPredatesCreation(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	r := sampleReport("ABC12345")
	r.Status, r.StatusUpdatedAt = StatusPending, nil
	r.CreatedAt = env.now.Add(24 * time.Hour) // clock skew between writers
	require.NoError(t, env.store.Append(ctx, r))

	got, err := env.svc.Transition(ctx, "ABC12345", StatusRejected)
	require.NoError(t, err)
	assert.Equal(t, r.CreatedAt, *got.StatusUpdatedAt)
}

func TestService_TransitionTerminalIsFinal(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	env.svc.newReference = sequence("ABC12345")
	_, err := env.svc.Submit(ctx, validRequest())
	require.NoError(t, err)

	_, err = env.svc.Transition(ctx, "ABC12345", StatusResolved)
	require.NoError(t, err)
	before, err := env.table.ReadRows(ctx)
	require.NoError(t, err)

	for _, to := range Statuses {
		_, err := env.svc.Transition(ctx, "ABC12345", to)
		assert.ErrorIs(t, err, ErrInvalidTransition, "Resolved -> %s", to)
	}

	after, err := env.table.ReadRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestService_TransitionErrors(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.svc.Transition(ctx, "ZZZZZZZZ", StatusResolved)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, env.store.Append(ctx, sampleReport("ABC12345")))
	env.table.FailWith(errors.New("timeout"))
	_, err = env.svc.Transition(ctx, "ABC12345", StatusResolved)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestService_ListForDashboard(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	for i, st := range []Status{StatusPending, StatusPending, StatusResolved, StatusRejected} {
		r := sampleReport(string(rune('A'+i)) + "0000000")
		r.Status = st
		require.NoError(t, env.store.Append(ctx, r))
	}

	s, err := env.svc.ListForDashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, s.Total)
	assert.Equal(t, map[Status]int{StatusPending: 2, StatusResolved: 1, StatusRejected: 1}, s.ByStatus)
	assert.Len(t, s.Locations, 4)
}

func TestService_ListReports(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		r := sampleReport(string(rune('A'+i)) + "0000000")
		r.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		r.Status = StatusPending
		if i%2 == 1 {
			r.Status = StatusResolved
			r.Municipality = "Tshwane"
		}
		require.NoError(t, env.store.Append(ctx, r))
	}

	items, page, err := env.svc.ListReports(ctx, ListFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, 3, page.Pages)
	require.Len(t, items, 2)
	assert.Equal(t, "E0000000", items[0].Reference)
	assert.Equal(t, "D0000000", items[1].Reference)

	items, page, err = env.svc.ListReports(ctx, ListFilter{Status: StatusResolved, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	for _, r := range items {
		assert.Equal(t, StatusResolved, r.Status)
	}

	items, _, err = env.svc.ListReports(ctx, ListFilter{Municipality: "tshwane"})
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestService_ExpiredDeadlineIsUnavailable(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store.Append(context.Background(), sampleReport("ABC12345")))

	ctx, cancel := context.WithDeadline(context.Background(), env.now.Add(-time.Minute))
	defer cancel()

	_, err := env.svc.Submit(ctx, validRequest())
	assert.ErrorIs(t, err, ErrUnavailable)
	_, _, err = env.svc.CheckStatus(ctx, "ABC12345")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = env.svc.ListForDashboard(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = env.svc.Transition(ctx, "ABC12345", StatusResolved)
	assert.ErrorIs(t, err, ErrUnavailable)

	assert.Equal(t, 1, env.table.Len())
	assert.Equal(t, 0, env.mailer.count())
}

func TestService_StoreTimeoutIsUnavailable(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.store.Append(context.Background(), sampleReport("ABC12345")))
	// every store call starts past its deadline
	env.svc.timeout = -time.Second

	_, _, err := env.svc.CheckStatus(context.Background(), "ABC12345")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = env.svc.Transition(context.Background(), "ABC12345", StatusResolved)
	assert.ErrorIs(t, err, ErrUnavailable)
}
