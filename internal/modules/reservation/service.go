package reservation

import (
	"context"

	"gearshare/internal/domain"
	"gearshare/internal/modules/notify"
	"gearshare/internal/repository"

	"github.com/shopspring/decimal"
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

// Price returns the rental cost of days whole days at the given daily rate.
func Price(daily decimal.Decimal, days int) decimal.Decimal {
	return domain.RoundMoney(daily.Mul(decimal.NewFromInt(int64(days))))
}

// Create books equipmentID for [start, end) on behalf of reserver. Owner and
// daily rate are snapshotted from the equipment as it is at this instant.
func (s *Service) Create(ctx context.Context, reserver string, equipmentID int64, start, end domain.Date) (*domain.Reservation, error) {
	if reserver == "" {
		return nil, ErrMissingPrincipal
	}
	if start.IsZero() || end.IsZero() {
		return nil, ErrMissingDates
	}
	days := start.DaysUntil(end)
	if days < 1 {
		return nil, ErrInvalidRange
	}

	var created *domain.Reservation
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		eq, err := tx.Equipment().GetByID(ctx, equipmentID)
		if err != nil {
			return repository.DomainError("load equipment", err, ErrEquipmentNotFound)
		}

		res := &domain.Reservation{
			EquipmentID:      eq.ID,
			OwnerUsername:    eq.OwnerUsername,
			ReserverUsername: reserver,
			Status:           domain.ReservationPending,
			StartDate:        start,
			EndDate:          end,
			PerDayPrice:      eq.DailyPrice,
			TotalPrice:       Price(eq.DailyPrice, days),
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return repository.DomainError("create reservation", err, nil)
		}
		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("reservation created",
		zap.Int64("reservation_id", created.ID),
		zap.Int64("equipment_id", created.EquipmentID),
		zap.String("reserver", reserver),
		zap.String("total_price", created.TotalPrice.StringFixed(2)))
	s.notify(notify.EventReservationCreated, created, created.OwnerUsername, created.ReserverUsername)
	return created, nil
}

// ReservationPatch carries the fields a party may change. Nil means unchanged.
type ReservationPatch struct {
	Status   *string
	ReviewID *int64
}

func (s *Service) Update(ctx context.Context, actor string, id int64, patch ReservationPatch) (*domain.Reservation, error) {
	if actor == "" {
		return nil, ErrMissingPrincipal
	}
	if patch.Status != nil {
		if err := ValidateStatus(*patch.Status); err != nil {
			return nil, err
		}
	}

	res, err := s.store.Reservations().GetByID(ctx, id)
	if err != nil {
		return nil, repository.DomainError("load reservation", err, ErrReservationNotFound)
	}
	if actor != res.OwnerUsername && actor != res.ReserverUsername {
		return nil, ErrNotParty
	}

	if patch.Status != nil {
		res.Status = *patch.Status
	}
	if patch.ReviewID != nil {
		res.ReviewID = patch.ReviewID
	}
	if err := s.store.Reservations().Update(ctx, res); err != nil {
		return nil, repository.DomainError("update reservation", err, ErrReservationNotFound)
	}

	s.notify(notify.EventReservationUpdated, res, res.OwnerUsername, res.ReserverUsername)
	return res, nil
}

func (s *Service) Delete(ctx context.Context, actor string, id int64) error {
	if actor == "" {
		return ErrMissingPrincipal
	}
	return s.store.WithinTx(ctx, func(tx repository.Store) error {
		res, err := tx.Reservations().GetByID(ctx, id)
		if err != nil {
			return repository.DomainError("load reservation", err, ErrReservationNotFound)
		}
		if actor != res.ReserverUsername {
			return ErrNotReserver
		}
		if res.Status != domain.ReservationPending {
			return ErrNotPending
		}
		return repository.DomainError("delete reservation", tx.Reservations().Delete(ctx, id), ErrReservationNotFound)
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Reservation, error) {
	res, err := s.store.Reservations().GetByID(ctx, id)
	if err != nil {
		return nil, repository.DomainError("load reservation", err, ErrReservationNotFound)
	}
	return res, nil
}

func (s *Service) List(ctx context.Context) ([]domain.Reservation, error) {
	return s.list(ctx, repository.ReservationFilter{})
}

func (s *Service) ListByReserver(ctx context.Context, username string) ([]domain.Reservation, error) {
	return s.list(ctx, repository.ReservationFilter{Reserver: username})
}

func (s *Service) ListByOwner(ctx context.Context, username string) ([]domain.Reservation, error) {
	return s.list(ctx, repository.ReservationFilter{Owner: username})
}

// Earnings totals the owner's returned and completed rentals.
func (s *Service) Earnings(ctx context.Context, owner string) (*EarningsSummary, error) {
	rows, err := s.list(ctx, repository.ReservationFilter{Owner: owner, Statuses: domain.FulfilledStatuses})
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.TotalPrice)
	}
	return &EarningsSummary{
		OwnerUsername: owner,
		TotalEarnings: domain.RoundMoney(total),
		Currency:      domain.Currency,
	}, nil
}

// EarningsDetail returns the Earnings summary together with the owner's
// completed rentals. Returned-but-not-completed rentals count toward the
// total yet are not listed.
func (s *Service) EarningsDetail(ctx context.Context, owner string) (*EarningsDetail, error) {
	summary, err := s.Earnings(ctx, owner)
	if err != nil {
		return nil, err
	}
	completed, err := s.list(ctx, repository.ReservationFilter{
		Owner:    owner,
		Statuses: []string{domain.ReservationCompleted},
	})
	if err != nil {
		return nil, err
	}
	return &EarningsDetail{EarningsSummary: *summary, Reservations: completed}, nil
}

func (s *Service) list(ctx context.Context, f repository.ReservationFilter) ([]domain.Reservation, error) {
	rows, err := s.store.Reservations().List(ctx, f)
	if err != nil {
		return nil, repository.DomainError("list reservations", err, nil)
	}
	if rows == nil {
		rows = []domain.Reservation{}
	}
	return rows, nil
}

func (s *Service) notify(event string, payload any, usernames ...string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(event, payload, usernames...)
}
