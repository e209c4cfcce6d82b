package review

import (
	"context"
	"errors"
	"testing"

	"gearshare/internal/domain"
	"gearshare/internal/repository"
	"gearshare/internal/repository/gormstore"
	"gearshare/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store *gormstore.Store
	svc   *Service
	eq    *domain.Equipment
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := testutil.NewStore(t)
	return &fixture{
		store: store,
		svc:   NewService(store, nil, nil),
		eq:    testutil.SeedEquipment(t, store, "owner", "10.00"),
	}
}

// review creates a completed reservation by reserver and reviews it.
func (f *fixture) review(t *testing.T, reserver string, rating int) *domain.Review {
	t.Helper()
	res := testutil.SeedReservation(t, f.store, f.eq, reserver, domain.ReservationCompleted, "10.00")
	rv, err := f.svc.Create(context.Background(), CreateInput{ReservationID: res.ID, Rating: rating})
	require.NoError(t, err)
	return rv
}

func (f *fixture) aggregate(t *testing.T) (float64, int) {
	t.Helper()
	eq, err := f.store.Equipment().GetByID(context.Background(), f.eq.ID)
	require.NoError(t, err)
	return eq.RatingAvg, eq.RatingCount
}

func TestMean(t *testing.T) {
	avg, n := Mean(nil)
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0, n)

	avg, n = Mean([]int{5, 4, 3})
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 3, n)

	avg, _ = Mean([]int{5, 4, 4})
	assert.InDelta(t, 4.3333333, avg, 1e-6)
}

func TestService_RatingScenario(t *testing.T) {
	f := newFixture(t)
	f.review(t, "r1", 5)
	f.review(t, "r2", 4)
	three := f.review(t, "r3", 3)

	avg, count := f.aggregate(t)
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 3, count)

	require.NoError(t, f.svc.Delete(context.Background(), "r3", three.ID))

	avg, count = f.aggregate(t)
	assert.Equal(t, 4.5, avg)
	assert.Equal(t, 2, count)
}

func TestService_DeleteLastReviewResetsAggregate(t *testing.T) {
	f := newFixture(t)
	rv := f.review(t, "r1", 2)

	require.NoError(t, f.svc.Delete(context.Background(), "r1", rv.ID))

	avg, count := f.aggregate(t)
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0, count)
}

func TestService_Create_CopiesPartiesAndLinksReservation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := testutil.SeedReservation(t, f.store, f.eq, "renter", domain.ReservationReturned, "10.00")
	comment := "solid tripod"

	rv, err := f.svc.Create(ctx, CreateInput{ReservationID: res.ID, EquipmentID: f.eq.ID, Rating: 4, Comment: &comment})
	require.NoError(t, err)
	assert.Equal(t, "renter", rv.ReviewerUsername)
	assert.Equal(t, "owner", rv.OwnerUsername)
	assert.Equal(t, f.eq.ID, rv.EquipmentID)

	stored, err := f.store.Reservations().GetByID(ctx, res.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.ReviewID)
	assert.Equal(t, rv.ID, *stored.ReviewID)

	require.NoError(t, f.svc.Delete(ctx, "renter", rv.ID))
	stored, err = f.store.Reservations().GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ReviewID)
}

func TestService_Create_Rejections(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	pending := testutil.SeedReservation(t, f.store, f.eq, "renter", domain.ReservationPending, "10.00")
	done := testutil.SeedReservation(t, f.store, f.eq, "renter", domain.ReservationCompleted, "10.00")

	for _, rating := range []int{0, 6, -1} {
		_, err := f.svc.Create(ctx, CreateInput{ReservationID: done.ID, Rating: rating})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	_, err := f.svc.Create(ctx, CreateInput{ReservationID: 9999, Rating: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.svc.Create(ctx, CreateInput{ReservationID: pending.ID, Rating: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidState)

	_, err = f.svc.Create(ctx, CreateInput{ReservationID: done.ID, EquipmentID: f.eq.ID + 100, Rating: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	avg, count := f.aggregate(t)
	assert.Equal(t, 0.0, avg)
	assert.Equal(t, 0, count)
}

func TestService_Create_DuplicateIsConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := testutil.SeedReservation(t, f.store, f.eq, "renter", domain.ReservationCompleted, "10.00")

	first, err := f.svc.Create(ctx, CreateInput{ReservationID: res.ID, Rating: 5})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, CreateInput{ReservationID: res.ID, Rating: 1})
	assert.ErrorIs(t, err, domain.ErrConflict)

	kept, err := f.svc.GetByReservation(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, kept.ID)
	assert.Equal(t, 5, kept.Rating)

	avg, count := f.aggregate(t)
	assert.Equal(t, 5.0, avg)
	assert.Equal(t, 1, count)
}

func TestService_Delete_OnlyReviewer(t *testing.T) {
	f := newFixture(t)
	rv := f.review(t, "renter", 5)

	err := f.svc.Delete(context.Background(), "owner", rv.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	err = f.svc.Delete(context.Background(), "renter", 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, count := f.aggregate(t)
	assert.Equal(t, 1, count)
}

func TestService_Update(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.review(t, "a", 5)
	rv := f.review(t, "b", 5)

	two := 2
	updated, err := f.svc.Update(ctx, "b", rv.ID, ReviewPatch{Rating: &two})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)

	avg, count := f.aggregate(t)
	assert.Equal(t, 3.5, avg)
	assert.Equal(t, 2, count)

	note := "changed my mind"
	updated, err = f.svc.Update(ctx, "b", rv.ID, ReviewPatch{Comment: &note})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	require.NotNil(t, updated.Comment)
	assert.Equal(t, note, *updated.Comment)

	_, err = f.svc.Update(ctx, "a", rv.ID, ReviewPatch{Comment: &note})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	seven := 7
	_, err = f.svc.Update(ctx, "b", rv.ID, ReviewPatch{Rating: &seven})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_OwnerSummary(t *testing.T) {
	f := newFixture(t)
	f.review(t, "r1", 5)
	f.review(t, "r2", 5)
	f.review(t, "r3", 2)

	summary, err := f.svc.OwnerSummary(context.Background(), "owner", false)
	require.NoError(t, err)
	assert.Equal(t, 4.0, summary.AverageRating)
	assert.Equal(t, 3, summary.TotalReviews)
	assert.Nil(t, summary.Histogram)

	detail, err := f.svc.OwnerSummary(context.Background(), "owner", true)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{1: 0, 2: 1, 3: 0, 4: 0, 5: 2}, detail.Histogram)
	assert.Len(t, detail.Reviews, 3)

	empty, err := f.svc.OwnerSummary(context.Background(), "nobody", true)
	require.NoError(t, err)
	assert.Equal(t, 0.0, empty.AverageRating)
	assert.Equal(t, 0, empty.TotalReviews)
}

// failingRatingStore wraps a real store so the aggregate update always fails.
type failingRatingStore struct {
	repository.Store
}

type failingEquipmentRepo struct {
	repository.EquipmentRepository
}

var errRatingWrite = errors.New("rating write failed")

func (failingEquipmentRepo) SetRating(context.Context, int64, float64, int) error {
	return errRatingWrite
}

func (s failingRatingStore) Equipment() repository.EquipmentRepository {
	return failingEquipmentRepo{s.Store.Equipment()}
}

func (s failingRatingStore) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	return s.Store.WithinTx(ctx, func(tx repository.Store) error {
		return fn(failingRatingStore{tx})
	})
}

func TestService_Create_RollsBackWhenAggregateFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	res := testutil.SeedReservation(t, f.store, f.eq, "renter", domain.ReservationCompleted, "10.00")
	svc := NewService(failingRatingStore{f.store}, nil, nil)

	_, err := svc.Create(ctx, CreateInput{ReservationID: res.ID, Rating: 5})
	require.Error(t, err)
	assert.True(t, domain.IsPersistence(err))
	assert.ErrorIs(t, err, errRatingWrite)

	_, err = f.svc.GetByReservation(ctx, res.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "review insert must be rolled back")

	stored, err := f.store.Reservations().GetByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ReviewID)
}

func TestService_Delete_RollsBackWhenAggregateFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	rv := f.review(t, "renter", 4)
	svc := NewService(failingRatingStore{f.store}, nil, nil)

	err := svc.Delete(ctx, "renter", rv.ID)
	require.ErrorIs(t, err, errRatingWrite)

	_, err = f.svc.Get(ctx, rv.ID)
	assert.NoError(t, err, "review must survive the failed delete")
	avg, count := f.aggregate(t)
	assert.Equal(t, 4.0, avg)
	assert.Equal(t, 1, count)
}
