package review

import (
	"context"
	"errors"

	"gearshare/internal/domain"
	"gearshare/internal/modules/notify"
	"gearshare/internal/repository"

	"go.uber.org/zap"
)

type Service struct {
	store    repository.Store
	notifier Notifier
	log      *zap.Logger
}

func NewService(store repository.Store, notifier Notifier, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: store, notifier: notifier, log: log}
}

type CreateInput struct {
	ReservationID int64
	// EquipmentID is optional; when set it must match the reservation.
	EquipmentID int64
	Rating      int
	Comment     *string
}

// Create records the single review a fulfilled reservation may receive.
// Reviewer and owner come from the reservation, never from the caller.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Review, error) {
	if !domain.ValidRating(in.Rating) {
		return nil, ErrRatingOutOfRange
	}

	var created *domain.Review
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		res, err := tx.Reservations().GetByID(ctx, in.ReservationID)
		if err != nil {
			return repository.DomainError("load reservation", err, ErrReservationNotFound)
		}
		if in.EquipmentID != 0 && in.EquipmentID != res.EquipmentID {
			return ErrEquipmentMismatch
		}
		if !domain.IsFulfilled(res.Status) {
			return ErrNotFulfilled
		}

		_, err = tx.Reviews().GetByReservation(ctx, res.ID)
		switch {
		case err == nil:
			return ErrAlreadyReviewed
		case !errors.Is(err, repository.ErrNotFound):
			return repository.DomainError("check existing review", err, nil)
		}

		rv := &domain.Review{
			ReservationID:    res.ID,
			EquipmentID:      res.EquipmentID,
			ReviewerUsername: res.ReserverUsername,
			OwnerUsername:    res.OwnerUsername,
			Rating:           in.Rating,
			Comment:          in.Comment,
		}
		if err := tx.Reviews().Create(ctx, rv); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrAlreadyReviewed
			}
			return repository.DomainError("create review", err, nil)
		}

		res.ReviewID = &rv.ID
		if err := tx.Reservations().Update(ctx, res); err != nil {
			return repository.DomainError("link review", err, ErrReservationNotFound)
		}
		if _, _, err := Recompute(ctx, tx, rv.EquipmentID); err != nil {
			return err
		}
		created = rv
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("review created",
		zap.Int64("review_id", created.ID),
		zap.Int64("equipment_id", created.EquipmentID),
		zap.Int("rating", created.Rating))
	if s.notifier != nil {
		s.notifier.Notify(notify.EventReviewCreated, created, created.OwnerUsername)
	}
	return created, nil
}

// ReviewPatch holds optional changes; nil fields are left untouched.
type ReviewPatch struct {
	Rating  *int
	Comment *string
}

func (s *Service) Update(ctx context.Context, actor string, id int64, patch ReviewPatch) (*domain.Review, error) {
	if actor == "" {
		return nil, ErrMissingPrincipal
	}
	if patch.Rating != nil && !domain.ValidRating(*patch.Rating) {
		return nil, ErrRatingOutOfRange
	}

	var updated *domain.Review
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		rv, err := tx.Reviews().GetByID(ctx, id)
		if err != nil {
			return repository.DomainError("load review", err, ErrReviewNotFound)
		}
		if rv.ReviewerUsername != actor {
			return ErrNotReviewer
		}

		ratingChanged := patch.Rating != nil && *patch.Rating != rv.Rating
		if patch.Rating != nil {
			rv.Rating = *patch.Rating
		}
		if patch.Comment != nil {
			rv.Comment = patch.Comment
		}
		if err := tx.Reviews().Update(ctx, rv); err != nil {
			return repository.DomainError("update review", err, ErrReviewNotFound)
		}
		if ratingChanged {
			if _, _, err := Recompute(ctx, tx, rv.EquipmentID); err != nil {
				return err
			}
		}
		updated = rv
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a review and re-derives the equipment aggregate from what
// remains. The reservation's back-reference is cleared in the same step.
func (s *Service) Delete(ctx context.Context, actor string, id int64) error {
	if actor == "" {
		return ErrMissingPrincipal
	}

	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		rv, err := tx.Reviews().GetByID(ctx, id)
		if err != nil {
			return repository.DomainError("load review", err, ErrReviewNotFound)
		}
		if rv.ReviewerUsername != actor {
			return ErrNotReviewer
		}

		if err := tx.Reviews().Delete(ctx, id); err != nil {
			return repository.DomainError("delete review", err, ErrReviewNotFound)
		}

		res, err := tx.Reservations().GetByID(ctx, rv.ReservationID)
		switch {
		case err == nil:
			if res.ReviewID != nil && *res.ReviewID == rv.ID {
				res.ReviewID = nil
				if err := tx.Reservations().Update(ctx, res); err != nil {
					return repository.DomainError("unlink review", err, nil)
				}
			}
		case !errors.Is(err, repository.ErrNotFound):
			return repository.DomainError("load reservation", err, nil)
		}

		_, _, err = Recompute(ctx, tx, rv.EquipmentID)
		return err
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Review, error) {
	rv, err := s.store.Reviews().GetByID(ctx, id)
	if err != nil {
		return nil, repository.DomainError("load review", err, ErrReviewNotFound)
	}
	return rv, nil
}

func (s *Service) GetByReservation(ctx context.Context, reservationID int64) (*domain.Review, error) {
	rv, err := s.store.Reviews().GetByReservation(ctx, reservationID)
	if err != nil {
		return nil, repository.DomainError("load review", err, ErrReviewNotFound)
	}
	return rv, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Review, error) {
	return s.list(ctx, repository.ReviewFilter{})
}

// ListByEquipment returns the equipment's reviews, newest first.
func (s *Service) ListByEquipment(ctx context.Context, equipmentID int64) ([]domain.Review, error) {
	return s.list(ctx, repository.ReviewFilter{EquipmentID: equipmentID})
}

// OwnerSummary aggregates every review left on owner's rentals. With detail
// it adds a 1..5 star histogram and the reviews themselves.
func (s *Service) OwnerSummary(ctx context.Context, owner string, detail bool) (*OwnerSummary, error) {
	reviews, err := s.list(ctx, repository.ReviewFilter{Owner: owner})
	if err != nil {
		return nil, err
	}

	ratings := make([]int, 0, len(reviews))
	for _, rv := range reviews {
		ratings = append(ratings, rv.Rating)
	}
	avg, count := Mean(ratings)

	summary := &OwnerSummary{
		OwnerUsername: owner,
		AverageRating: avg,
		TotalReviews:  count,
	}
	if detail {
		summary.Histogram = make(map[int]int, domain.MaxRating)
		for star := domain.MinRating; star <= domain.MaxRating; star++ {
			summary.Histogram[star] = 0
		}
		for _, r := range ratings {
			summary.Histogram[r]++
		}
		summary.Reviews = reviews
	}
	return summary, nil
}

func (s *Service) list(ctx context.Context, f repository.ReviewFilter) ([]domain.Review, error) {
	rows, err := s.store.Reviews().List(ctx, f)
	if err != nil {
		return nil, repository.DomainError("list reviews", err, nil)
	}
	if rows == nil {
		rows = []domain.Review{}
	}
	return rows, nil
}
