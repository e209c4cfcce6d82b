package gormstore

import (
	"context"

	"gearshare/internal/domain"
	"gearshare/internal/repository"

	"gorm.io/gorm"
)

type reservationRepo struct {
	db *gorm.DB
}

func (r *reservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	return translate(r.db.WithContext(ctx).Create(res).Error)
}

func (r *reservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	var res domain.Reservation
	if err := r.db.WithContext(ctx).First(&res, "reservation_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &res, nil
}

func (r *reservationRepo) List(ctx context.Context, f repository.ReservationFilter) ([]domain.Reservation, error) {
	q := r.db.WithContext(ctx).Model(&domain.Reservation{})
	if f.Owner != "" {
		q = q.Where("owner_username = ?", f.Owner)
	}
	if f.Reserver != "" {
		q = q.Where("reserver_username = ?", f.Reserver)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}

	var rows []domain.Reservation
	if err := q.Order("reservation_id").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *reservationRepo) Update(ctx context.Context, res *domain.Reservation) error {
	// price snapshot and parties are fixed at creation
	tx := r.db.WithContext(ctx).
		Model(res).
		Select("status", "review_id", "updated_at").
		Updates(res)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *reservationRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Reservation{}, "reservation_id = ?", id)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
