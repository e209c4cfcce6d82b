package review

import (
	"context"
	"errors"

	"gearshare/internal/repository"
)

// Mean returns the arithmetic mean and size of ratings; 0 for an empty set.
func Mean(ratings []int) (float64, int) {
	if len(ratings) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings)), len(ratings)
}

// Recompute rewrites the equipment's rating aggregate from its current
// review set. Pass the transaction-bound store of the triggering write so
// both commit or roll back together.
func Recompute(ctx context.Context, tx repository.Store, equipmentID int64) (float64, int, error) {
	ratings, err := tx.Reviews().RatingsForEquipment(ctx, equipmentID)
	if err != nil {
		return 0, 0, repository.DomainError("load ratings", err, nil)
	}

	avg, count := Mean(ratings)
	err = tx.Equipment().SetRating(ctx, equipmentID, avg, count)
	if errors.Is(err, repository.ErrNotFound) {
		// listing already removed; nothing left to aggregate onto
		return avg, count, nil
	}
	if err != nil {
		return 0, 0, repository.DomainError("update equipment rating", err, nil)
	}
	return avg, count, nil
}
