package repository

import (
	"context"
	"errors"
	"fmt"

	"gearshare/internal/domain"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate key")
)

// DomainError converts a port error for the service layer: ErrNotFound
// becomes notFound, ErrDuplicate becomes a Conflict, anything else a
// persistence failure labelled op.
func DomainError(op string, err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound) && notFound != nil:
		return notFound
	case errors.Is(err, ErrDuplicate):
		return fmt.Errorf("%w: %s", domain.ErrConflict, op)
	}
	return domain.Persistence(op, err)
}

// Store is the persistence port the marketplace core depends on.
// Adapters live in gormstore (ORM sessions) and pgxstore (raw SQL).
type Store interface {
	Users() UserRepository
	Equipment() EquipmentRepository
	Reservations() ReservationRepository
	Reviews() ReviewRepository
	Reports() ReportRepository

	// WithinTx runs fn against a store bound to a single transaction.
	// Any error returned by fn rolls back every write made through it.
	WithinTx(ctx context.Context, fn func(tx Store) error) error
}

type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// EquipmentFilter is the listing predicate. Zero fields do not filter.
type EquipmentFilter struct {
	// ExcludeStatus hides listings in this status...
	ExcludeStatus domain.EquipmentStatus
	// ...unless they belong to VisibleOwner.
	VisibleOwner string
	Category     string
	Owner        string
}

type EquipmentRepository interface {
	Create(ctx context.Context, e *domain.Equipment) error
	GetByID(ctx context.Context, id int64) (*domain.Equipment, error)
	List(ctx context.Context, f EquipmentFilter) ([]domain.Equipment, error)
	Update(ctx context.Context, e *domain.Equipment) error
	SetRating(ctx context.Context, id int64, avg float64, count int) error
	Delete(ctx context.Context, id int64) error
}

type ReservationFilter struct {
	Owner    string
	Reserver string
	Statuses []string
}

type ReservationRepository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	List(ctx context.Context, f ReservationFilter) ([]domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	Delete(ctx context.Context, id int64) error
}

type ReviewFilter struct {
	EquipmentID int64
	Owner       string
}

type ReviewRepository interface {
	Create(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id int64) (*domain.Review, error)
	GetByReservation(ctx context.Context, reservationID int64) (*domain.Review, error)
	// List returns matching reviews, newest first.
	List(ctx context.Context, f ReviewFilter) ([]domain.Review, error)
	RatingsForEquipment(ctx context.Context, equipmentID int64) ([]int, error)
	Update(ctx context.Context, r *domain.Review) error
	Delete(ctx context.Context, id int64) error
}

type ReportRepository interface {
	Create(ctx context.Context, r *domain.Report) error
	GetByID(ctx context.Context, id int64) (*domain.Report, error)
	List(ctx context.Context, status string) ([]domain.Report, error)
	Update(ctx context.Context, r *domain.Report) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
