package gormstore

import (
	"context"

	"gearshare/internal/domain"
	"gearshare/internal/repository"

	"gorm.io/gorm"
)

type equipmentRepo struct {
	db *gorm.DB
}

func (r *equipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	return translate(r.db.WithContext(ctx).Omit("Owner").Create(e).Error)
}

func (r *equipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	var e domain.Equipment
	if err := r.db.WithContext(ctx).First(&e, "equipment_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *equipmentRepo) List(ctx context.Context, f repository.EquipmentFilter) ([]domain.Equipment, error) {
	q := r.db.WithContext(ctx).Model(&domain.Equipment{})
	switch {
	case f.ExcludeStatus != "" && f.VisibleOwner != "":
		q = q.Where("(status <> ? OR owner_username = ?)", f.ExcludeStatus, f.VisibleOwner)
	case f.ExcludeStatus != "":
		q = q.Where("status <> ?", f.ExcludeStatus)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Owner != "" {
		q = q.Where("owner_username = ?", f.Owner)
	}

	var items []domain.Equipment
	if err := q.Order("equipment_id").Find(&items).Error; err != nil {
		return nil, translate(err)
	}
	return items, nil
}

func (r *equipmentRepo) Update(ctx context.Context, e *domain.Equipment) error {
	// rating columns belong to the aggregator
	tx := r.db.WithContext(ctx).
		Model(e).
		Select("name", "category", "daily_price", "photo_url", "photo_binary",
			"pickup_location", "status", "booked_until", "updated_at").
		Updates(e)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *equipmentRepo) SetRating(ctx context.Context, id int64, avg float64, count int) error {
	tx := r.db.WithContext(ctx).
		Model(&domain.Equipment{}).
		Where("equipment_id = ?", id).
		Updates(map[string]any{
			"rating_avg":   avg,
			"rating_count": count,
		})
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *equipmentRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Equipment{}, "equipment_id = ?", id)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}
