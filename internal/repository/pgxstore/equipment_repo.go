package pgxstore

import (
	"context"
	"fmt"
	"strings"

	"gearshare/internal/domain"
	"gearshare/internal/repository"

	"github.com/jackc/pgx/v5"
)

const equipmentColumns = `equipment_id, owner_username, name, category, daily_price, photo_url, photo_binary,
pickup_location, status, booked_until, rating_avg, rating_count, created_at, updated_at`

type equipmentRepo struct {
	q querier
}

func scanEquipment(row pgx.Row) (*domain.Equipment, error) {
	var e domain.Equipment
	err := row.Scan(&e.ID, &e.OwnerUsername, &e.Name, &e.Category, &e.DailyPrice, &e.PhotoURL,
		&e.PhotoBinary, &e.PickupLocation, &e.Status, &e.BookedUntil, &e.RatingAvg, &e.RatingCount,
		&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (r *equipmentRepo) Create(ctx context.Context, e *domain.Equipment) error {
	row := r.q.QueryRow(ctx, `
INSERT INTO equipment (owner_username, name, category, daily_price, photo_url, photo_binary,
	pickup_location, status, booked_until, rating_avg, rating_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
RETURNING equipment_id, created_at, updated_at`,
		e.OwnerUsername, e.Name, e.Category, e.DailyPrice, e.PhotoURL, e.PhotoBinary,
		e.PickupLocation, e.Status, e.BookedUntil, e.RatingAvg, e.RatingCount)
	return translate(row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt))
}

func (r *equipmentRepo) GetByID(ctx context.Context, id int64) (*domain.Equipment, error) {
	return scanEquipment(r.q.QueryRow(ctx,
		`SELECT `+equipmentColumns+` FROM equipment WHERE equipment_id = $1`, id))
}

func (r *equipmentRepo) List(ctx context.Context, f repository.EquipmentFilter) ([]domain.Equipment, error) {
	var (
		where []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch {
	case f.ExcludeStatus != "" && f.VisibleOwner != "":
		where = append(where, fmt.Sprintf("(status <> %s OR owner_username = %s)",
			arg(f.ExcludeStatus), arg(f.VisibleOwner)))
	case f.ExcludeStatus != "":
		where = append(where, "status <> "+arg(f.ExcludeStatus))
	}
	if f.Category != "" {
		where = append(where, "category = "+arg(f.Category))
	}
	if f.Owner != "" {
		where = append(where, "owner_username = "+arg(f.Owner))
	}

	sql := `SELECT ` + equipmentColumns + ` FROM equipment`
	if len(where) > 0 {
		sql += ` WHERE ` + strings.Join(where, " AND ")
	}
	sql += ` ORDER BY equipment_id`

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(err)
	}
	defer rows.Close()

	out := make([]domain.Equipment, 0)
	for rows.Next() {
		e, err := scanEquipment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *e)
	}
	return out, translate(rows.Err())
}

func (r *equipmentRepo) Update(ctx context.Context, e *domain.Equipment) error {
	err := r.q.QueryRow(ctx, `
UPDATE equipment
SET name = $2, category = $3, daily_price = $4, photo_url = $5, photo_binary = $6,
	pickup_location = $7, status = $8, booked_until = $9, updated_at = NOW()
WHERE equipment_id = $1
RETURNING updated_at`,
		e.ID, e.Name, e.Category, e.DailyPrice, e.PhotoURL, e.PhotoBinary,
		e.PickupLocation, e.Status, e.BookedUntil).Scan(&e.UpdatedAt)
	return translate(err)
}

func (r *equipmentRepo) SetRating(ctx context.Context, id int64, avg float64, count int) error {
	return affected(r.q.Exec(ctx,
		`UPDATE equipment SET rating_avg = $2, rating_count = $3 WHERE equipment_id = $1`,
		id, avg, count))
}

func (r *equipmentRepo) Delete(ctx context.Context, id int64) error {
	return affected(r.q.Exec(ctx, `DELETE FROM equipment WHERE equipment_id = $1`, id))
}
