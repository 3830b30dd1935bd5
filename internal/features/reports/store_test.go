package reports

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AppendAndFind(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	want := sampleReport("ABC12345")
	require.NoError(t, env.store.Append(ctx, want))
	require.NoError(t, env.store.Append(ctx, sampleReport("DEF67890")))

	h, got, found, err := env.store.FindByReference(ctx, "ABC12345")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)
	assert.Equal(t, 0, h.row)

	_, _, found, err = env.store.FindByReference(ctx, "ZZZZZZZZ")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestStore_AppendRejectsDuplicate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.store.Append(ctx, sampleReport("ABC12345")))
	err := env.store.Append(ctx, sampleReport("ABC12345"))
	assert.ErrorIs(t, err, ErrDuplicateReference)
	assert.Equal(t, 1, env.table.Len())
}

func TestStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.Append(ctx, sampleReport("ABC12345")))

	env.table.FailWith(errors.New("quota exceeded"))

	_, _, _, err := env.store.FindByReference(ctx, "ABC12345")
	assert.ErrorIs(t, err, ErrUnavailable)
	_, err = env.store.ListAll(ctx)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, env.store.Append(ctx, sampleReport("DEF67890")), ErrUnavailable)
}

func TestStore_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.Append(ctx, sampleReport("ABC12345")))

	h, _, _, err := env.store.FindByReference(ctx, "ABC12345")
	require.NoError(t, err)

	at := time.Date(2025, 3, 5, 12, 0, 0, 0, time.UTC)
	require.NoError(t, env.store.UpdateStatus(ctx, h, StatusResolved, at))

	_, got, _, err := env.store.FindByReference(ctx, "ABC12345")
	require.NoError(t, err)
	assert.Equal(t, StatusResolved, got.Status)
	require.NotNil(t, got.StatusUpdatedAt)
	assert.True(t, at.Equal(*got.StatusUpdatedAt))
}

func TestStore_UpdateStatusDetectsOverwrittenRow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.Append(ctx, sampleReport("ABC12345")))

	h, _, _, err := env.store.FindByReference(ctx, "ABC12345")
	require.NoError(t, err)

	// someone else rewrites the row between our read and our write
	external := encodeRow(sampleReport("QQQ99999"))
	env.table.Overwrite(h.row, external)

	err = env.store.UpdateStatus(ctx, h, StatusResolved, time.Now())
	require.ErrorIs(t, err, ErrStaleHandle)

	rows, err := env.table.ReadRows(ctx)
	require.NoError(t, err)
	assert.Equal(t, external, rows[0])
}

func TestStore_UpdateStatusDetectsShiftedRow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.store.Append(ctx, sampleReport("ABC12345")))

	h, _, _, err := env.store.FindByReference(ctx, "ABC12345")
	require.NoError(t, err)

	env.table.InsertRow(0, encodeRow(sampleReport("NEW00001")))

	err = env.store.UpdateStatus(ctx, h, StatusRejected, time.Now())
	require.ErrorIs(t, err, ErrStaleHandle)

	_, got, _, err := env.store.FindByReference(ctx, "NEW00001")
	require.NoError(t, err)
	assert.Equal(t, StatusInProgress, got.Status)
}

func TestStore_UpdateStatusZeroHandle(t *testing.T) {
	env := newTestEnv(t)
	err := env.store.UpdateStatus(context.Background(), RowHandle{}, StatusResolved, time.Now())
	assert.ErrorIs(t, err, ErrStaleHandle)
}

func TestStore_ListAllSkipsBlankRows(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.store.Append(ctx, sampleReport("ABC12345")))
	require.NoError(t, env.table.AppendRow(ctx, []string{"", "stray note"}))
	require.NoError(t, env.store.Append(ctx, sampleReport("DEF67890")))

	all, err := env.store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "ABC12345", all[0].Reference)
	assert.Equal(t, "DEF67890", all[1].Reference)
}

func TestStore_AddressWithCoordinateTextRoundTrips(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	r := sampleReport("ABC12345")
	r.Location = Location{Address: "Plot 4 | geo:1,2"}
	require.NoError(t, env.store.Append(ctx, r))

	_, got, found, err := env.store.FindByReference(ctx, "ABC12345")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, Location{Address: "Plot 4 | geo:1,2"}, got.Location)
}

func TestStore_PaddedReferenceCellIsFound(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	row := encodeRow(sampleReport("ABC12345"))
	row[colReference] = " ABC12345 "
	require.NoError(t, env.table.AppendRow(ctx, row))

	all, err := env.store.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "ABC12345", all[0].Reference)

	h, _, found, err := env.store.FindByReference(ctx, "ABC12345")
	require.NoError(t, err)
	require.True(t, found)
	require.NoError(t, env.store.UpdateStatus(ctx, h, StatusResolved, time.Now()))

	assert.ErrorIs(t, env.store.Append(ctx, sampleReport("ABC12345")), ErrDuplicateReference)
}
