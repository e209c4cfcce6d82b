package gormstore

import (
	"context"

	"gearshare/internal/domain"
	"gearshare/internal/repository"

	"gorm.io/gorm"
)

type reportRepo struct {
	db *gorm.DB
}

func (r *reportRepo) Create(ctx context.Context, rp *domain.Report) error {
	return translate(r.db.WithContext(ctx).Create(rp).Error)
}

func (r *reportRepo) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	var rp domain.Report
	if err := r.db.WithContext(ctx).First(&rp, "report_id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &rp, nil
}

func (r *reportRepo) List(ctx context.Context, status string) ([]domain.Report, error) {
	q := r.db.WithContext(ctx).Model(&domain.Report{})
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var rows []domain.Report
	if err := q.Order("report_id").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *reportRepo) Update(ctx context.Context, rp *domain.Report) error {
	tx := r.db.WithContext(ctx).
		Model(rp).
		Select("status", "priority", "updated_at").
		Updates(rp)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *reportRepo) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&domain.Report{}, "report_id = ?", id)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *reportRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Report{}).Count(&count).Error
	return count, translate(err)
}
