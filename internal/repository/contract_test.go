package repository_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"gearshare/internal/database"
	"gearshare/internal/domain"
	"gearshare/internal/modules/reservation"
	"gearshare/internal/modules/review"
	"gearshare/internal/repository"
	"gearshare/internal/repository/gormstore"
	"gearshare/internal/repository/pgxstore"
	"gearshare/internal/testutil"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adapters returns one constructor per Store implementation. The pgx adapter
// needs a disposable Postgres database in TEST_DATABASE_URL.
func adapters() map[string]func(t *testing.T) repository.Store {
	return map[string]func(t *testing.T) repository.Store{
		"gorm": func(t *testing.T) repository.Store {
			return testutil.NewStore(t)
		},
		"pgx": func(t *testing.T) repository.Store {
			dsn := os.Getenv("TEST_DATABASE_URL")
			if dsn == "" {
				t.Skip("TEST_DATABASE_URL not set")
			}
			db, err := database.Connect(dsn, nil)
			require.NoError(t, err)
			require.NoError(t, database.Migrate(db))
			require.NoError(t, db.Exec(
				"TRUNCATE reports, reviews, reservations, equipment, users RESTART IDENTITY CASCADE").Error)

			pool, err := database.OpenPool(context.Background(), dsn, 4)
			require.NoError(t, err)
			t.Cleanup(func() {
				pool.Close()
				if sqlDB, err := db.DB(); err == nil {
					_ = sqlDB.Close()
				}
			})
			return pgxstore.New(pool)
		},
	}
}

func forEachAdapter(t *testing.T, fn func(t *testing.T, store repository.Store)) {
	for name, open := range adapters() {
		t.Run(name, func(t *testing.T) {
			fn(t, open(t))
		})
	}
}

func seedUser(t *testing.T, store repository.Store, username string) {
	t.Helper()
	require.NoError(t, store.Users().Create(context.Background(), &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
		Role:         domain.DefaultRole,
	}))
}

func seedEquipment(t *testing.T, store repository.Store, owner, price string) *domain.Equipment {
	t.Helper()
	e := &domain.Equipment{
		OwnerUsername:  owner,
		Name:           "Tent",
		Category:       "Camping",
		DailyPrice:     decimal.RequireFromString(price),
		PickupLocation: "Sylhet",
		Status:         domain.EquipmentAvailable,
	}
	require.NoError(t, store.Equipment().Create(context.Background(), e))
	return e
}

func TestStore_NotFoundAndDuplicate(t *testing.T) {
	forEachAdapter(t, func(t *testing.T, store repository.Store) {
		ctx := context.Background()
		seedUser(t, store, "alice")

		err := store.Users().Create(ctx, &domain.User{
			Username: "alice", Email: "other@example.com", PasswordHash: "x", Role: domain.DefaultRole,
		})
		assert.ErrorIs(t, err, repository.ErrDuplicate)

		exists, err := store.Users().ExistsByUsernameOrEmail(ctx, "nobody", "ALICE@example.com")
		require.NoError(t, err)
		assert.True(t, exists)

		_, err = store.Users().GetByUsername(ctx, "ghost")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = store.Reservations().GetByID(ctx, 999)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		_, err = store.Reviews().GetByReservation(ctx, 999)
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.ErrorIs(t, store.Reports().Delete(ctx, 999), repository.ErrNotFound)
		assert.ErrorIs(t, store.Equipment().SetRating(ctx, 999, 4, 1), repository.ErrNotFound)
	})
}

func TestStore_ReservationRoundTrip(t *testing.T) {
	forEachAdapter(t, func(t *testing.T, store repository.Store) {
		ctx := context.Background()
		seedUser(t, store, "owner")
		eq := seedEquipment(t, store, "owner", "12.50")

		mk := func(reserver, status string) *domain.Reservation {
			r := &domain.Reservation{
				EquipmentID:      eq.ID,
				OwnerUsername:    "owner",
				ReserverUsername: reserver,
				Status:           status,
				StartDate:        domain.NewDate(2024, 3, 1),
				EndDate:          domain.NewDate(2024, 3, 4),
				PerDayPrice:      eq.DailyPrice,
				TotalPrice:       decimal.RequireFromString("37.50"),
			}
			require.NoError(t, store.Reservations().Create(ctx, r))
			return r
		}
		first := mk("carol", domain.ReservationPending)
		mk("carol", domain.ReservationCompleted)
		mk("dave", domain.ReservationReturned)

		got, err := store.Reservations().GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, "2024-03-01", got.StartDate.String())
		assert.Equal(t, "2024-03-04", got.EndDate.String())
		assert.True(t, decimal.RequireFromString("12.50").Equal(got.PerDayPrice), got.PerDayPrice.String())
		assert.True(t, decimal.RequireFromString("37.50").Equal(got.TotalPrice), got.TotalPrice.String())
		assert.Nil(t, got.ReviewID)

		fulfilled, err := store.Reservations().List(ctx, repository.ReservationFilter{
			Owner:    "owner",
			Statuses: domain.FulfilledStatuses,
		})
		require.NoError(t, err)
		assert.Len(t, fulfilled, 2)

		carols, err := store.Reservations().List(ctx, repository.ReservationFilter{Reserver: "carol"})
		require.NoError(t, err)
		assert.Len(t, carols, 2)

		reviewID := int64(7)
		got.Status = domain.ReservationCompleted
		got.ReviewID = &reviewID
		require.NoError(t, store.Reservations().Update(ctx, got))
		again, err := store.Reservations().GetByID(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationCompleted, again.Status)
		require.NotNil(t, again.ReviewID)
		assert.Equal(t, reviewID, *again.ReviewID)

		require.NoError(t, store.Reservations().Delete(ctx, first.ID))
		assert.ErrorIs(t, store.Reservations().Delete(ctx, first.ID), repository.ErrNotFound)
	})
}

func TestStore_WithinTx(t *testing.T) {
	forEachAdapter(t, func(t *testing.T, store repository.Store) {
		ctx := context.Background()
		boom := errors.New("boom")

		err := store.WithinTx(ctx, func(tx repository.Store) error {
			seedUser(t, tx, "rolled-back")
			return boom
		})
		assert.ErrorIs(t, err, boom)
		_, err = store.Users().GetByUsername(ctx, "rolled-back")
		assert.ErrorIs(t, err, repository.ErrNotFound)

		// a nested call joins the outer transaction and shares its fate
		err = store.WithinTx(ctx, func(tx repository.Store) error {
			seedUser(t, tx, "outer")
			if err := tx.WithinTx(ctx, func(inner repository.Store) error {
				seedUser(t, inner, "inner")
				return nil
			}); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)
		n, err := store.Users().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)

		require.NoError(t, store.WithinTx(ctx, func(tx repository.Store) error {
			seedUser(t, tx, "committed")
			return nil
		}))
		_, err = store.Users().GetByUsername(ctx, "committed")
		assert.NoError(t, err)
	})
}

func TestStore_RentalScenario(t *testing.T) {
	forEachAdapter(t, func(t *testing.T, store repository.Store) {
		ctx := context.Background()
		seedUser(t, store, "owner")
		seedUser(t, store, "renter")
		eq := seedEquipment(t, store, "owner", "20.00")

		reservations := reservation.NewService(store, nil, nil)
		reviews := review.NewService(store, nil, nil)

		var ids, reservationIDs []int64
		for _, rating := range []int{5, 4, 3} {
			res, err := reservations.Create(ctx, "renter", eq.ID, domain.NewDate(2024, 5, 1), domain.NewDate(2024, 5, 3))
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString("40.00").Equal(res.TotalPrice), res.TotalPrice.String())

			status := domain.ReservationCompleted
			_, err = reservations.Update(ctx, "owner", res.ID, reservation.ReservationPatch{Status: &status})
			require.NoError(t, err)

			rv, err := reviews.Create(ctx, review.CreateInput{ReservationID: res.ID, Rating: rating})
			require.NoError(t, err)
			ids = append(ids, rv.ID)
			reservationIDs = append(reservationIDs, res.ID)
		}

		_, err := reviews.Create(ctx, review.CreateInput{ReservationID: reservationIDs[0], Rating: 2})
		assert.ErrorIs(t, err, domain.ErrConflict)

		got, err := store.Equipment().GetByID(ctx, eq.ID)
		require.NoError(t, err)
		assert.InDelta(t, 4.0, got.RatingAvg, 1e-9)
		assert.Equal(t, 3, got.RatingCount)

		require.NoError(t, reviews.Delete(ctx, "renter", ids[2]))
		got, err = store.Equipment().GetByID(ctx, eq.ID)
		require.NoError(t, err)
		assert.InDelta(t, 4.5, got.RatingAvg, 1e-9)
		assert.Equal(t, 2, got.RatingCount)

		summary, err := reservations.Earnings(ctx, "owner")
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("120.00").Equal(summary.TotalEarnings), summary.TotalEarnings.String())
	})
}

var (
	_ repository.Store = (*gormstore.Store)(nil)
	_ repository.Store = (*pgxstore.Store)(nil)
)
