package gormstore

import (
	"context"
	"errors"
	"strings"

	"gearshare/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Users() repository.UserRepository               { return &userRepo{db: s.db} }
func (s *Store) Equipment() repository.EquipmentRepository      { return &equipmentRepo{db: s.db} }
func (s *Store) Reservations() repository.ReservationRepository { return &reservationRepo{db: s.db} }
func (s *Store) Reviews() repository.ReviewRepository           { return &reviewRepo{db: s.db} }
func (s *Store) Reports() repository.ReportRepository           { return &reportRepo{db: s.db} }

func (s *Store) WithinTx(ctx context.Context, fn func(tx repository.Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Store{db: tx})
	})
}

// translate maps driver errors onto the port's sentinel errors.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return repository.ErrNotFound
	}
	if isUniqueViolation(err) {
		return errors.Join(repository.ErrDuplicate, err)
	}
	return err
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// sqlite reports constraint failures only through the message
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
