package gormstore

import (
	"context"

	"gearshare/internal/domain"
	"gearshare/internal/repository"

	"gorm.io/gorm"
)

type reviewRepo struct {
	db *gorm.DB
}

func (r *reviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	return translate(r.db.WithContext(ctx).Create(rv).Error)
}

func (r *reviewRepo) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).First(&rv, "review_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rv, nil
}

func (r *reviewRepo) GetByReservation(ctx context.Context, reservationID int64) (*domain.Review, error) {
	var rv domain.Review
	if err := r.db.WithContext(ctx).First(&rv, "reservation_id = ?", reservationID).Error; err != nil {
		return nil, translate(err)
	}
	return &rv, nil
}

func (r *reviewRepo) List(ctx context.Context, f repository.ReviewFilter) ([]domain.Review, error) {
	q := r.db.WithContext(ctx).Model(&domain.Review{})
	if f.EquipmentID > 0 {
		q = q.Where("equipment_id = ?", f.EquipmentID)
	}
	if f.Owner != "" {
		q = q.Where("owner_username = ?", f.Owner)
	}

	var rows []domain.Review
	if err := q.Order("created_at DESC").Order("review_id DESC").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *reviewRepo) RatingsForEquipment(ctx context.Context, equipmentID int64) ([]int, error) {
	var ratings []int
	err := r.db.WithContext(ctx).
		Model(&domain.Review{}).
		Where("equipment_id = ?", equipmentID).
		Pluck("rating", &ratings).Error
	if err != nil {
		return nil, translate(err)
	}
	return ratings, nil
}

func (r *reviewRepo) Update(ctx context.Context, rv *domain.Review) error {
	tx := r.db.WithContext(ctx).
		Model(rv).
		Select("rating", "comment", "updated_at").
		Updates(rv)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *reviewRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Review{}, "review_id = ?", id)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
