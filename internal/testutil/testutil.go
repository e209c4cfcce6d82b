// Package testutil wires an in-memory SQLite store for package tests.
package testutil

import (
	"context"
	"testing"

	"gearshare/internal/database"
	"gearshare/internal/domain"
	"gearshare/internal/repository/gormstore"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func NewStore(t *testing.T) *gormstore.Store {
	t.Helper()

	db, err := database.Connect(":memory:", nil)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gormstore.New(db)
}

func SeedUser(t *testing.T, store *gormstore.Store, username string) *domain.User {
	t.Helper()

	u := &domain.User{
		Username:           username,
		Email:              username + "@example.com",
		PasswordHash:       "x",
		Role:               domain.DefaultRole,
		VerificationStatus: true,
	}
	require.NoError(t, store.Users().Create(context.Background(), u))
	return u
}

// SeedEquipment creates an available listing owned by owner, creating the
// owner first if needed.
func SeedEquipment(t *testing.T, store *gormstore.Store, owner, dailyPrice string) *domain.Equipment {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Users().GetByUsername(ctx, owner); err != nil {
		SeedUser(t, store, owner)
	}

	e := &domain.Equipment{
		OwnerUsername:  owner,
		Name:           "Canon EOS R6",
		Category:       "Camera",
		DailyPrice:     decimal.RequireFromString(dailyPrice),
		PickupLocation: "Dhaka",
		Status:         domain.EquipmentAvailable,
	}
	require.NoError(t, store.Equipment().Create(ctx, e))
	return e
}

func SeedReservation(t *testing.T, store *gormstore.Store, eq *domain.Equipment, reserver, status, total string) *domain.Reservation {
	t.Helper()

	r := &domain.Reservation{
		EquipmentID:      eq.ID,
		OwnerUsername:    eq.OwnerUsername,
		ReserverUsername: reserver,
		Status:           status,
		StartDate:        domain.NewDate(2024, 1, 1),
		EndDate:          domain.NewDate(2024, 1, 2),
		PerDayPrice:      eq.DailyPrice,
		TotalPrice:       decimal.RequireFromString(total),
	}
	require.NoError(t, store.Reservations().Create(context.Background(), r))
	return r
}
