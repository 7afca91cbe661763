package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/visaflow/backend/internal/domain"
	"github.com/pkordes/visaflow/backend/internal/repo"
	"github.com/pkordes/visaflow/backend/testutil"
)

// newTestTx opens a transaction against the test database. The transaction is
// automatically rolled back when the test finishes, giving free per-test
// isolation.
//
// Requires TEST_DATABASE_URL to be set; migrations are applied by TestMain.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return tx
}

func newTestTripRepo(t *testing.T) repo.TripRepo {
	t.Helper()
	return repo.NewTripRepo(newTestTx(t))
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture() domain.Trip {
	entry := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	exit := time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		UserID:              uuid.NewString(),
		Country:             "Thailand",
		CountryCode:         "TH",
		VisaType:            "visa_free",
		EntryDate:           entry,
		ExitDate:            exit,
		TotalDays:           10,
		ExtensionsAvailable: 0,
	}
}

func TestTripRepo_Create(t *testing.T) {
	r := newTestTripRepo(t)
	ctx := context.Background()

	input := tripFixture()
	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID, "ID should be DB-generated UUID")
	assert.Equal(t, input.UserID, got.UserID)
	assert.Equal(t, "Thailand", got.Country)
	assert.Equal(t, "TH", got.CountryCode)
	assert.Equal(t, "visa_free", got.VisaType)
	assert.True(t, got.EntryDate.Equal(input.EntryDate), "EntryDate mismatch")
	assert.True(t, got.ExitDate.Equal(input.ExitDate), "ExitDate mismatch")
	assert.Equal(t, 10, got.TotalDays)
	assert.Equal(t, domain.TripActive, got.Status, "status should default to active")
	assert.False(t, got.CreatedAt.IsZero(), "CreatedAt should be set by DB")
}

func TestTripRepo_Create_NegativeTotalDaysPreserved(t *testing.T) {
	r := newTestTripRepo(t)
	ctx := context.Background()

	input := tripFixture()
	input.EntryDate, input.ExitDate = input.ExitDate, input.EntryDate
	input.TotalDays = -10

	got, err := r.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, -10, got.TotalDays, "negative total_days must be stored as given")
}

func TestTripRepo_GetByID(t *testing.T) {
	r := newTestTripRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)

	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.UserID, got.UserID)
}

func TestTripRepo_GetByID_NotFound(t *testing.T) {
	r := newTestTripRepo(t)
	ctx := context.Background()

	_, err := r.GetByID(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_ListActiveByUser_FiltersStatusAndUser(t *testing.T) {
	r := newTestTripRepo(t)
	ctx := context.Background()

	mine := tripFixture()
	created, err := r.Create(ctx, mine)
	require.NoError(t, err)

	completed := tripFixture()
	completed.UserID = mine.UserID
	done, err := r.Create(ctx, completed)
	require.NoError(t, err)
	require.NoError(t, r.Complete(ctx, done.ID))

	other := tripFixture() // different user_id from the fixture's random one
	_, err = r.Create(ctx, other)
	require.NoError(t, err)

	trips, err := r.ListActiveByUser(ctx, mine.UserID)

	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, created.ID, trips[0].ID)
	assert.Equal(t, domain.TripActive, trips[0].Status)
}

func TestTripRepo_ListActiveByUser_CappedAt100(t *testing.T) {
	r := newTestTripRepo(t)
	ctx := context.Background()

	userID := uuid.NewString()
	for i := 0; i < 105; i++ {
		trip := tripFixture()
		trip.UserID = userID
		trip.Country = fmt.Sprintf("Country %d", i)
		_, err := r.Create(ctx, trip)
		require.NoError(t, err)
	}

	trips, err := r.ListActiveByUser(ctx, userID)

	require.NoError(t, err)
	assert.Len(t, trips, 100, "listing must truncate silently at 100")
}

func TestTripRepo_Complete(t *testing.T) {
	r := newTestTripRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	err = r.Complete(ctx, created.ID)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TripCompleted, got.Status)
}

func TestTripRepo_Complete_AlreadyCompleted(t *testing.T) {
	r := newTestTripRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	require.NoError(t, r.Complete(ctx, created.ID))

	// Completing twice is a no-op success, not an error.
	err = r.Complete(ctx, created.ID)
	require.NoError(t, err)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TripCompleted, got.Status)
}

func TestTripRepo_Complete_NotFound(t *testing.T) {
	r := newTestTripRepo(t)
	ctx := context.Background()

	err := r.Complete(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripRepo_Delete(t *testing.T) {
	r := newTestTripRepo(t)
	ctx := context.Background()

	created, err := r.Create(ctx, tripFixture())
	require.NoError(t, err)

	err = r.Delete(ctx, created.ID)
	require.NoError(t, err)

	_, err = r.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "trip should be gone after delete")

	trips, err := r.ListActiveByUser(ctx, created.UserID)
	require.NoError(t, err)
	assert.Empty(t, trips, "deleted trip must not appear in listings")
}

func TestTripRepo_Delete_NotFound(t *testing.T) {
	r := newTestTripRepo(t)
	ctx := context.Background()

	err := r.Delete(ctx, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
